package ez

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	resp "gin-task-forms/internal/transport/http/response"
	"gin-task-forms/internal/validate"
)

// Fields 是未经校验的原始字段，交给 validate 规则表处理
type Fields = map[string]any

// BindFieldsFrom 读取 JSON 或 urlencoded/multipart 表单。
// 空 body 视为空对象，由规则表给出具体的字段错误。
func BindFieldsFrom(c *gin.Context) (Fields, error) {
	ct := c.ContentType()
	if ct == gin.MIMEPOSTForm || ct == gin.MIMEMultipartPOSTForm {
		if err := c.Request.ParseMultipartForm(8 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, bodyErr(err)
		}
		return validate.FromForm(c.Request.PostForm), nil
	}

	if c.Request.Body == nil {
		return Fields{}, nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, bodyErr(err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Fields{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out Fields
	if err := dec.Decode(&out); err != nil {
		return nil, &AErr{Code: resp.CodeBadRequest, Msg: "Invalid JSON body.", Err: err}
	}
	if out == nil { // body 为 null
		out = Fields{}
	}
	return out, nil
}

func bodyErr(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) || strings.Contains(err.Error(), "request body too large") {
		return &AErr{Code: resp.CodeTooLarge, Msg: "Request body too large.", Err: err}
	}
	return &AErr{Code: resp.CodeBadRequest, Msg: "Invalid request body.", Err: err}
}
