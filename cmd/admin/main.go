package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gin-task-forms/internal/app"
	"gin-task-forms/internal/core/config"
	"gin-task-forms/internal/core/server"
	"gin-task-forms/internal/transport/http/handler"
	"gin-task-forms/internal/transport/http/router"
)

// 独立部署的管理端：只接数据库，不含用户端的内存资源
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, cleanup := app.NewLogger(cfg)
	defer cleanup()
	undo := app.RedirectStd(log)
	defer undo()

	deps, err := app.NewDeps(cfg, log)
	if err != nil {
		log.Fatal("init deps", zap.Error(err))
	}
	defer deps.Close()

	reg := router.NewRegistry(handler.Admin{Users: deps.Users, Stats: deps.Stats})
	r := router.NewAdminEngine(log, reg, deps.JWT, app.ServerOptions(cfg), app.Limits(cfg))

	// HTTP Server
	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 5*time.Second, 10*time.Second, 60*time.Second)

	// 启动前打印可点击地址
	baseURL := server.BaseURL(cfg.App.Admin.Host, cfg.App.Admin.Port)
	log.Info("admin api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("admin_v1", baseURL+"/admin/v1"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := server.Serve(ctx, log, 10*time.Second, srv); err != nil {
		log.Error("admin api start FAILED", zap.Error(err))
		return
	}
	log.Info("admin api stopped gracefully")
}
