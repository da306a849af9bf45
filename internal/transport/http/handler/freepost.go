package handler

import (
	"github.com/gin-gonic/gin"

	"gin-task-forms/internal/feature/freepost"
	"gin-task-forms/internal/transport/http/ez"
	mdw "gin-task-forms/internal/transport/http/middleware"
	resp "gin-task-forms/internal/transport/http/response"
)

type FreePosts struct {
	Svc *freepost.Service
}

func (m FreePosts) MountAPI(api *gin.RouterGroup) {
	api.GET("/free-posts", func(c *gin.Context) {
		out := m.Svc.Posts(c.Request.Context())
		mdw.ObserveOutcome("free_posts", out.Kind.String())
		resp.Write(c, ez.OutcomeResp(out))
	})
}
