package response

import "github.com/gin-gonic/gin"

type Resp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// New 构造函数（保证 data 不为 null）
func New(code int, msg string, data any) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

// OK 成功响应
func OK(data any) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

func Created(data any) Resp {
	return New(CodeCreated, CodeMsgMap[CodeCreated], data)
}

// Error 失败响应（可以传自定义 msg 覆盖默认）
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// Write 输出 JSON，HTTP 状态与 code 保持一致
func Write(c *gin.Context, r Resp) {
	c.JSON(HTTPStatus(r.Code), r)
}

func Abort(c *gin.Context, r Resp) {
	c.AbortWithStatusJSON(HTTPStatus(r.Code), r)
}
