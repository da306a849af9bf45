package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "gin-task-forms/internal/transport/http/response"
)

// MaxBodyBytes 限制请求体大小；声明长度超限直接拒绝，
// 分块上传的超限读取由绑定层报 413
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			abortTooLarge(c)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

func abortTooLarge(c *gin.Context) {
	resp.Abort(c, resp.Error(resp.CodeTooLarge, "Request body too large."))
}
