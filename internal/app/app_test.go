package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"

	"gin-task-forms/internal/core/config"
	"gin-task-forms/internal/testutil"
)

func TestNewDeps_SQLite(t *testing.T) {
	cfg := &config.Config{
		JWT: config.JWT{Secret: "s", Issuer: "test", AccessTokenTTLMin: 5, BcryptCost: bcrypt.MinCost},
		DB: config.DB{
			Driver:      "sqlite",
			DSN:         "file:" + filepath.Join(t.TempDir(), "app.db"),
			AutoMigrate: true,
			LogLevel:    "silent",
		},
	}
	deps, err := NewDeps(cfg, testutil.MakeLogger(t))
	require.NoError(t, err)
	t.Cleanup(deps.Close)

	assert.False(t, deps.Cache.Enabled())
	assert.Equal(t, 5*time.Minute, deps.JWT.TTL)

	ctx := context.Background()
	res, err := deps.Users.Register(ctx, map[string]any{"name": "Ada", "email": "ada@example.com", "password": "password123"})
	require.NoError(t, err)
	assert.NotZero(t, res.User.ID)

	st, err := deps.Stats.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, st.Users)
}

func TestLimits(t *testing.T) {
	cfg := &config.Config{App: config.App{Limits: config.Limits{RPS: 5, Burst: 10, TimeoutSec: 3}}}
	l := Limits(cfg)
	assert.Equal(t, 5.0, l.RPS)
	assert.Equal(t, 3*time.Second, l.Timeout)
}

func TestNewLogger_RotateFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "api.log")
	cfg := &config.Config{
		App: config.App{Name: "tasks-api", Env: "test"},
		Log: config.Log{Level: "info", JSON: true, File: config.LogFile{Enable: true, Filename: file, MaxSizeMB: 1}},
	}
	l, flush := NewLogger(cfg)
	l.Info("boot")
	flush()

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"service":"tasks-api"`)
}

func TestRedirectStd_GinWriter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := gin.DefaultWriter
	undo := RedirectStd(zap.New(core))
	fmt.Fprintln(gin.DefaultWriter, "[GIN-debug] route registered")
	undo()

	assert.Equal(t, prev, gin.DefaultWriter)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "gin", logs.All()[0].LoggerName)
}
