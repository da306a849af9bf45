package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gin-task-forms/internal/feature/task"
	"gin-task-forms/internal/transport/http/ez"
)

// Tasks 挂载 /tasks 的增删改查
type Tasks struct {
	Store *task.Store
	Log   *zap.Logger
}

func (m Tasks) MountAPI(api *gin.RouterGroup) {
	ez.Crud(ez.CrudConfig{
		Group:   api,
		Path:    "/tasks",
		Name:    "task",
		Handler: task.NewHandler(m.Store),
		Log:     m.Log,
	})
}
