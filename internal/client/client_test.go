package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gin-task-forms/internal/feature/task"
	"gin-task-forms/internal/testutil"
	"gin-task-forms/internal/transport/http/ez"
)

func newServer(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ez.Crud(ez.CrudConfig{
		Group:   r.Group("/api"),
		Path:    "/tasks",
		Name:    "task",
		Handler: task.NewHandler(task.NewStore()),
		Log:     testutil.MakeLogger(t),
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", time.Second)
}

func TestClient_TaskRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newServer(t)

	created, err := c.CreateTask(ctx, TaskInput{Title: "Visual demo", Description: "Created from the terminal client"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, created.ID)
	assert.Equal(t, "todo", created.Status)

	list, err := c.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	deleted, err := c.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Visual demo", deleted.Title)

	_, err = c.DeleteTask(ctx, created.ID)
	var ae *APIError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "Task not found.", ae.Msg)
}

func TestClient_Rejected(t *testing.T) {
	c := newServer(t)

	_, err := c.CreateTask(context.Background(), TaskInput{Title: "Sh", Description: "too short title"})
	var ae *APIError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "Title is required and must be 3-80 characters.", ae.Msg)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := New(srv.URL, 200*time.Millisecond).ListTasks(context.Background())
	assert.Error(t, err)
}
