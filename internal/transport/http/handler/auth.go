package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gin-task-forms/internal/core/auth"
	"gin-task-forms/internal/domain"
	"gin-task-forms/internal/service"
	"gin-task-forms/internal/transport/http/ez"
	mdw "gin-task-forms/internal/transport/http/middleware"
	resp "gin-task-forms/internal/transport/http/response"
)

// Accounts 挂载 /auth/register、/auth/login（公共）与 /me、/submissions（鉴权）
type Accounts struct {
	Users       *service.UserService
	Submissions *service.SubmissionService
	JWT         *auth.JWTer
}

func (Accounts) Priority() int { return 10 }

func (m Accounts) MountAPI(api *gin.RouterGroup) {
	ez.RegisterAction(api, ez.Action[ez.Fields, service.RegisterResult]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: ez.BindFields,
		Status: resp.CodeCreated,
		Handler: func(c *gin.Context, in *ez.Fields) (service.RegisterResult, error) {
			return m.Users.Register(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(api, ez.Action[ez.Fields, service.LoginResult]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindFields,
		Handler: func(c *gin.Context, in *ez.Fields) (service.LoginResult, error) {
			return m.Users.Login(c.Request.Context(), *in)
		},
	})

	// 鉴权分组（⚠️ /me 必须挂这里，才能拿到 identity）
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(m.JWT, ""))

	ez.RegisterAction(authed, ez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			id, _ := mdw.IdentityFrom(c)
			return m.Users.Me(c.Request.Context(), id)
		},
	})

	type listOut struct {
		Items []domain.Submission `json:"items"`
	}
	ez.RegisterAction(authed, ez.Action[struct{}, listOut]{
		Method: http.MethodGet,
		Path:   "/submissions",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (listOut, error) {
			id, _ := mdw.IdentityFrom(c)
			items, err := m.Submissions.List(c.Request.Context(), id)
			if err != nil {
				return listOut{}, err
			}
			return listOut{Items: items}, nil
		},
	})

	ez.RegisterAction(authed, ez.Action[ez.Fields, domain.Submission]{
		Method: http.MethodPost,
		Path:   "/submissions",
		Binder: ez.BindFields,
		Auth:   true,
		Status: resp.CodeCreated,
		Handler: func(c *gin.Context, in *ez.Fields) (domain.Submission, error) {
			id, _ := mdw.IdentityFrom(c)
			return m.Submissions.Create(c.Request.Context(), id, *in)
		},
	})
}
