package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gin-task-forms/internal/feature/form"
	"gin-task-forms/internal/transport/http/ez"
	mdw "gin-task-forms/internal/transport/http/middleware"
	resp "gin-task-forms/internal/transport/http/response"
)

// Forms 挂载 /forms/:kind 与活动流
type Forms struct {
	Feed *form.Feed
	Log  *zap.Logger
}

func (m Forms) MountAPI(api *gin.RouterGroup) {
	g := api.Group("/forms")

	// activity 是静态段，优先于 :kind 匹配
	g.GET("/activity", func(c *gin.Context) {
		resp.Write(c, ez.OutcomeResp(m.Feed.List()))
	})
	g.DELETE("/activity", func(c *gin.Context) {
		n := m.Feed.Clear()
		m.Log.Info("activity cleared", zap.Int("entries", n))
		resp.Write(c, resp.OK(gin.H{"cleared": n}))
	})

	g.POST("/:kind", func(c *gin.Context) {
		fields, err := ez.BindFieldsFrom(c)
		if err != nil {
			resp.Write(c, ez.ErrorResp(err))
			return
		}
		kind := c.Param("kind")
		out := m.Feed.Submit(kind, fields)
		// kind 来自 URL，未知值统一成一个 label，避免指标序列无限增长
		label := "form_unknown"
		if m.Feed.Known(kind) {
			label = "form_" + kind
		}
		mdw.ObserveOutcome(label, out.Kind.String())
		resp.Write(c, ez.OutcomeResp(out))
	})
}
