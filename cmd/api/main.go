package main

import (
	"context"
	"fmt"
	"net/http"
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
	"gin-task-forms/internal/feature/form"
	"gin-task-forms/internal/feature/freepost"
	"gin-task-forms/internal/feature/task"
	"gin-task-forms/internal/transport/http/handler"
	"gin-task-forms/internal/transport/http/router"
)

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

	// 数据库 / 缓存 / 服务（失败直接 Fatal）
	deps, err := app.NewDeps(cfg, log)
	if err != nil {
		log.Fatal("init deps", zap.Error(err))
	}
	defer deps.Close()

	// 内存资源：进程内共享，重启即清空
	tasks := task.NewStore()
	feed := form.NewFeed(form.NewStore())
	posts := freepost.NewService(
		freepost.NewClient(cfg.FreePosts.URL, time.Duration(cfg.FreePosts.TimeoutSec)*time.Second),
		deps.Cache,
		time.Duration(cfg.FreePosts.CacheTTLSec)*time.Second,
		cfg.FreePosts.Limit,
		log,
	)

	reg := router.NewRegistry(
		handler.Tasks{Store: tasks, Log: log},
		handler.Forms{Feed: feed, Log: log},
		handler.FreePosts{Svc: posts},
		handler.Accounts{Users: deps.Users, Submissions: deps.Subs, JWT: deps.JWT},
		handler.Admin{Users: deps.Users, Stats: deps.Stats},
	)
	so, lim := app.ServerOptions(cfg), app.Limits(cfg)

	// HTTP Server（用户端）
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, router.NewAPIEngine(log, reg, so, lim),
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)
	servers := []*http.Server{srv}

	// 启动日志
	baseURL := server.BaseURL(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	log.Info("user api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api", baseURL+"/api"),
	)

	// 同进程管理端（与用户端共享内存资源）
	if cfg.App.Admin.Enabled {
		adminAddr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
		servers = append(servers, server.BuildServer(
			adminAddr, router.NewAdminEngine(log, reg, deps.JWT, so, lim),
			5*time.Second, 10*time.Second, 60*time.Second,
		))
		log.Info("admin api starting", zap.String("addr", adminAddr))
	}

	// 收到 SIGINT/SIGTERM 后优雅关闭全部 server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	log.Info("user api started SUCCESS")
	if err := server.Serve(ctx, log, 10*time.Second, servers...); err != nil {
		log.Error("http server FAILED", zap.Error(err))
		return
	}
	log.Info("user api stopped gracefully")
}
