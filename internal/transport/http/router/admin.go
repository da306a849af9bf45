package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gin-task-forms/internal/core/auth"
	"gin-task-forms/internal/core/server"
	"gin-task-forms/internal/domain"
	mdw "gin-task-forms/internal/transport/http/middleware"
)

func NewAdminEngine(l *zap.Logger, reg *Registry, jwter *auth.JWTer, so server.Options, lim Limits) *gin.Engine {
	r := newEngine(l, so, lim)

	// 管理端 v1（统一要求 admin 角色）
	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, domain.RoleAdmin))
	reg.MountAllAdmin(admin)

	return r
}
