package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "gin-task-forms/internal/transport/http/response"
)

// Recovery 捕获 panic，记录堆栈并返回统一的 500 包体
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("error", rec),
					zap.String("rid", RequestIDFrom(c)),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				resp.Abort(c, resp.Error(resp.CodeServerError, "Internal error."))
			}
		}()
		c.Next()
	}
}
