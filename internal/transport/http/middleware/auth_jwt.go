package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gin-task-forms/internal/core/auth"
	"gin-task-forms/internal/domain"
	resp "gin-task-forms/internal/transport/http/response"
)

const keyIdentity = "identity"

// AuthJWT 校验 Bearer token；requireRole 为空时只要求登录
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		tok, ok := strings.CutPrefix(ah, "Bearer ")
		if !ok || strings.TrimSpace(tok) == "" {
			resp.Abort(c, resp.Error(resp.CodeUnauthorized, "Missing or invalid Authorization header."))
			return
		}
		claims, err := j.Parse(strings.TrimSpace(tok))
		if err != nil {
			resp.Abort(c, resp.Error(resp.CodeUnauthorized, "Invalid or expired token."))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			resp.Abort(c, resp.Error(resp.CodeForbidden, "Forbidden."))
			return
		}
		// 只挂在本次请求上
		c.Set(keyIdentity, claims.Identity())
		c.Next()
	}
}

// IdentityFrom 取出 AuthJWT 放入的身份
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(keyIdentity)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok && id.ID != 0
}
