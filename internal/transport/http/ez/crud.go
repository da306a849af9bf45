package ez

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gin-task-forms/internal/resource"
	mdw "gin-task-forms/internal/transport/http/middleware"
	resp "gin-task-forms/internal/transport/http/response"
)

// ResourceHandler 由 resource.Handler[T] 实现
type ResourceHandler interface {
	Handle(resource.Request) resource.Outcome
}

type CrudConfig struct {
	Group   *gin.RouterGroup
	Path    string // 例如 "/tasks"
	Name    string // 指标 label
	Handler ResourceHandler
	Log     *zap.Logger

	AllowCreate bool
	AllowList   bool
	AllowGet    bool
	AllowUpdate bool
	AllowDelete bool
}

// Crud 把一个资源处理器挂成标准 REST 路由（无需模型实现任何接口）
func Crud(cfg CrudConfig) {
	// 默认放开所有操作
	if !cfg.AllowCreate && !cfg.AllowGet && !cfg.AllowList && !cfg.AllowUpdate && !cfg.AllowDelete {
		cfg.AllowCreate, cfg.AllowList, cfg.AllowGet, cfg.AllowUpdate, cfg.AllowDelete = true, true, true, true, true
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	run := func(c *gin.Context, req resource.Request) {
		out := cfg.Handler.Handle(req)
		mdw.ObserveOutcome(cfg.Name, out.Kind.String())
		if out.Err != nil {
			cfg.Log.Warn("resource failed",
				zap.String("resource", cfg.Name),
				zap.Stringer("op", req.Op),
				zap.Error(out.Err))
		}
		resp.Write(c, OutcomeResp(out))
	}

	withFields := func(op resource.Op) gin.HandlerFunc {
		return func(c *gin.Context) {
			fields, err := BindFieldsFrom(c)
			if err != nil {
				resp.Write(c, ErrorResp(err))
				return
			}
			run(c, resource.Request{Op: op, ID: pathID(c), Fields: fields})
		}
	}

	if cfg.AllowCreate {
		cfg.Group.POST(cfg.Path, withFields(resource.OpCreate))
	}
	if cfg.AllowList {
		cfg.Group.GET(cfg.Path, func(c *gin.Context) {
			run(c, resource.Request{Op: resource.OpList})
		})
	}
	if cfg.AllowGet {
		cfg.Group.GET(cfg.Path+"/:id", func(c *gin.Context) {
			run(c, resource.Request{Op: resource.OpRead, ID: pathID(c)})
		})
	}
	if cfg.AllowUpdate {
		cfg.Group.PUT(cfg.Path+"/:id", withFields(resource.OpUpdate))
	}
	if cfg.AllowDelete {
		cfg.Group.DELETE(cfg.Path+"/:id", func(c *gin.Context) {
			run(c, resource.Request{Op: resource.OpDelete, ID: pathID(c)})
		})
	}
}

// pathID 非法 id 记为 0；store 的 id 从 1 开始，自然落到 not found
func pathID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// OutcomeResp 把资源结果映射为统一包体
func OutcomeResp(o resource.Outcome) resp.Resp {
	switch o.Kind {
	case resource.KindCreated:
		return resp.Created(o.Entity)
	case resource.KindOK:
		if o.IsList() {
			return resp.OK(gin.H{"items": o.Items})
		}
		return resp.OK(o.Entity)
	case resource.KindDeleted:
		return resp.OK(gin.H{"deleted": o.Entity})
	case resource.KindRejected:
		return resp.Error(resp.CodeBadRequest, o.Reason)
	case resource.KindNotFound:
		return resp.Error(resp.CodeNotFound, o.Reason)
	case resource.KindFailed:
		// 只有上游（第三方 API）会产生 Failed
		return resp.Error(resp.CodeBadGateway, o.Reason)
	}
	return resp.Error(resp.CodeServerError, "Internal error.")
}
