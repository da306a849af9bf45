// Package app wires configuration into the long-lived dependencies shared by
// the api and admin binaries.
package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"gin-task-forms/internal/core/auth"
	"gin-task-forms/internal/core/cache"
	"gin-task-forms/internal/core/config"
	"gin-task-forms/internal/core/database"
	"gin-task-forms/internal/core/logger"
	"gin-task-forms/internal/core/server"
	"gin-task-forms/internal/repo"
	"gin-task-forms/internal/service"
	"gin-task-forms/internal/transport/http/router"
)

// NewLogger 按配置构建 zap；prod 默认开启抽样
func NewLogger(cfg *config.Config) (*zap.Logger, func()) {
	c := cfg.Log
	return logger.New(logger.Options{
		Level:   c.Level,
		JSON:    c.JSON,
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Sample:  cfg.App.Env == "prod",
		Rotate: logger.FileRotate{
			Enable:     c.File.Enable,
			Filename:   c.File.Filename,
			MaxSizeMB:  c.File.MaxSizeMB,
			MaxBackups: c.File.MaxBackups,
			MaxAgeDays: c.File.MaxAgeDays,
			Compress:   c.File.Compress,
		},
	})
}

// Deps 两个进程共用的依赖
type Deps struct {
	DB    *gorm.DB
	Cache *cache.Cache
	JWT   *auth.JWTer
	Users *service.UserService
	Subs  *service.SubmissionService
	Stats *service.StatsService
}

func NewDeps(cfg *config.Config, l *zap.Logger) (*Deps, error) {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	l.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := repo.Migrate(db); err != nil {
			return nil, fmt.Errorf("automigrate: %w", err)
		}
		l.Info("automigrate done")
	}

	c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	c.Prefix = cfg.Redis.Prefix
	l.Info("cache", zap.Bool("redis", c.Enabled()))

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.JWT.TTL(),
	}
	users := repo.NewUserRepo(db)
	subs := repo.NewSubmissionRepo(db)
	return &Deps{
		DB:    db,
		Cache: c,
		JWT:   jwter,
		Users: service.NewUserService(users, jwter, l,
			service.WithHashCost(cfg.JWT.BcryptCost),
			service.WithAdminEmails(cfg.JWT.AdminEmails...)),
		Subs:  service.NewSubmissionService(subs, users, l),
		Stats: service.NewStatsService(users, subs, c, 10*time.Second, l),
	}, nil
}

func (d *Deps) Close() {
	_ = d.Cache.Close()
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func ServerOptions(cfg *config.Config) server.Options {
	return server.Options{Mode: cfg.App.Mode, CORSOrigins: cfg.App.CORSOrigins}
}

func Limits(cfg *config.Config) router.Limits {
	lc := cfg.App.Limits
	return router.Limits{
		RPS:         lc.RPS,
		Burst:       lc.Burst,
		Concurrency: lc.Concurrency,
		MaxBody:     lc.MaxBodyBytes,
		Timeout:     time.Duration(lc.TimeoutSec) * time.Second,
	}
}

// RedirectStd 把标准库 log 与 gin 的调试输出都写进 zap，返回还原函数
func RedirectStd(l *zap.Logger) func() {
	undo := logger.RedirectStdLog(l.Named("std"), zapcore.InfoLevel)
	prevOut, prevErr := gin.DefaultWriter, gin.DefaultErrorWriter
	gin.DefaultWriter = logger.ToWriter(l.Named("gin"), zapcore.DebugLevel)
	gin.DefaultErrorWriter = logger.ToWriter(l.Named("gin"), zapcore.ErrorLevel)
	return func() {
		gin.DefaultWriter, gin.DefaultErrorWriter = prevOut, prevErr
		undo()
	}
}
