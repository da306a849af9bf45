package ez

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"gin-task-forms/internal/domain"
	mdw "gin-task-forms/internal/transport/http/middleware"
	resp "gin-task-forms/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindQuery  Binder = "query"  // 从 URL ?a=b 绑定
	BindFields Binder = "fields" // JSON 或表单 → Fields，交给 validate 规则表
	BindNone   Binder = "none"   // 不绑定，自己从 c.Param 取
)

// 统一错误对象（配合 resp.Error(int, msg)）
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Forbidden(msg string) error  { return &AErr{Code: resp.CodeForbidden, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}

// ErrorResp 把 AErr 与领域错误映射成统一包体；未知错误不外泄细节
func ErrorResp(err error) resp.Resp {
	var (
		ae *AErr
		ve *domain.ValidationError
		nf *domain.NotFoundError
		au *domain.AuthError
		cf *domain.ConflictError
		ue *domain.UpstreamError
	)
	switch {
	case errors.As(err, &ae):
		return resp.Error(ae.Code, ae.Error())
	case errors.As(err, &ve):
		return resp.Error(resp.CodeBadRequest, ve.Reason)
	case errors.As(err, &nf):
		return resp.Error(resp.CodeNotFound, nf.Error())
	case errors.As(err, &au):
		return resp.Error(resp.CodeUnauthorized, au.Reason)
	case errors.As(err, &cf):
		return resp.Error(resp.CodeConflict, cf.Reason)
	case errors.As(err, &ue):
		return resp.Error(resp.CodeServerError, ue.Msg)
	default:
		return resp.Error(resp.CodeServerError, "Internal error.")
	}
}

// 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string   // "GET" | "POST" | "PUT" | "DELETE"
	Path    string   // 例："/auth/login"、"/users/:id/ban"
	Binder  Binder   // 绑定方式
	Auth    bool     // 是否要求登录（分组需已挂 AuthJWT）
	Roles   []string // 限定角色（可选）
	Status  int      // 成功时的业务码，默认 CodeOK；创建类用 CodeCreated
	Handler func(c *gin.Context, in *I) (O, error)
}

// RegisterAction 在分组下注册动作接口
func RegisterAction[I any, O any](g *gin.RouterGroup, a Action[I, O]) {
	h := func(c *gin.Context) {
		// 1) 鉴权/角色
		if a.Auth {
			id, ok := mdw.IdentityFrom(c)
			if !ok {
				resp.Write(c, resp.Error(resp.CodeUnauthorized, "Missing or invalid Authorization header."))
				return
			}
			if len(a.Roles) > 0 && !slices.Contains(a.Roles, id.Role) {
				resp.Write(c, ErrorResp(Forbidden("Forbidden.")))
				return
			}
		}

		// 2) 绑定入参
		var in I
		var bindErr error
		switch a.Binder {
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		case BindFields:
			p, ok := any(&in).(*Fields)
			if !ok {
				resp.Write(c, ErrorResp(Internal("Internal error.", errors.New("ez: BindFields needs Fields input"))))
				return
			}
			*p, bindErr = BindFieldsFrom(c)
		default: // BindNone: 不绑定
		}
		if bindErr != nil {
			resp.Write(c, ErrorResp(asBindError(bindErr)))
			return
		}

		// 3) 执行 + 4) 统一错误映射
		out, err := a.Handler(c, &in)
		if err != nil {
			_ = c.Error(err)
			resp.Write(c, ErrorResp(err))
			return
		}
		code := a.Status
		if code == 0 {
			code = resp.CodeOK
		}
		resp.Write(c, resp.New(code, resp.CodeMsgMap[code], out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		g.GET(a.Path, h)
	case http.MethodPut:
		g.PUT(a.Path, h)
	case http.MethodDelete:
		g.DELETE(a.Path, h)
	default: // 默认 POST
		g.POST(a.Path, h)
	}
}

func asBindError(err error) error {
	var ae *AErr
	if errors.As(err, &ae) {
		return err
	}
	return BadRequest("Invalid request: " + err.Error())
}
