package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gin-task-forms/internal/domain"
	"gin-task-forms/internal/service"
	"gin-task-forms/internal/transport/http/ez"
)

// Admin 管理端接口；分组已走 AuthJWT("admin")
type Admin struct {
	Users *service.UserService
	Stats *service.StatsService
}

func (m Admin) MountAdmin(admin *gin.RouterGroup) {
	// --- GET /admin/v1/users  用户列表 ---
	type listQ struct {
		Offset      int    `form:"offset,default=0"`
		Limit       int    `form:"limit,default=20"`
		Q           string `form:"q"`            // 按 email/name 模糊搜
		WithDeleted bool   `form:"with_deleted"` // 是否包含软删
	}
	type row struct {
		ID        int64      `json:"id"`
		Email     string     `json:"email"`
		Name      string     `json:"name"`
		Role      string     `json:"role"`
		CreatedAt time.Time  `json:"createdAt"`
		DeletedAt *time.Time `json:"deletedAt,omitempty"`
	}
	type listOut struct {
		Total int64 `json:"total"`
		Items []row `json:"items"`
	}

	ez.RegisterAction(admin, ez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, in *listQ) (listOut, error) {
			us, total, err := m.Users.List(c.Request.Context(), in.Q, in.WithDeleted, in.Offset, in.Limit)
			if err != nil {
				return listOut{}, err
			}
			out := listOut{Total: total, Items: make([]row, 0, len(us))}
			for _, u := range us {
				out.Items = append(out.Items, row{
					ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role,
					CreatedAt: u.CreatedAt, DeletedAt: u.DeletedAt,
				})
			}
			return out, nil
		},
	})

	// --- POST /admin/v1/users/:id/ban  封禁（软删） ---
	ez.RegisterAction(admin, ez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/users/:id/ban",
		Binder: ez.BindNone,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil || id <= 0 {
				return nil, ez.BadRequest("Invalid user id.")
			}
			if err := m.Users.Ban(c.Request.Context(), id); err != nil {
				return nil, err
			}
			m.Stats.Invalidate(c.Request.Context())
			return gin.H{"id": id, "banned": true}, nil
		},
	})

	// --- GET /admin/v1/stats ---
	ez.RegisterAction(admin, ez.Action[struct{}, service.Stats]{
		Method: http.MethodGet,
		Path:   "/stats",
		Binder: ez.BindNone,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, _ *struct{}) (service.Stats, error) {
			return m.Stats.Stats(c.Request.Context())
		},
	})
}
