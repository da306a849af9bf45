package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRouter_CORS(t *testing.T) {
	r := NewRouter(zap.NewNop(), Options{Mode: gin.TestMode, CORSOrigins: []string{"http://localhost:5173"}})
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestServe_StopsOnCancel(t *testing.T) {
	srv := BuildServer(Addr("127.0.0.1", 0), http.NotFoundHandler(), time.Second, time.Second, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, zap.NewNop(), time.Second, srv) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServe_ListenError(t *testing.T) {
	srv := BuildServer("127.0.0.1:-1", http.NotFoundHandler(), time.Second, time.Second, time.Second)
	err := Serve(context.Background(), zap.NewNop(), time.Second, srv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen 127.0.0.1:-1")
}

func TestAddr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:4180", Addr("0.0.0.0", 4180))
	assert.Equal(t, "http://127.0.0.1:4181", BaseURL("0.0.0.0", 4181))
	assert.Equal(t, "http://10.0.0.5:4180", BaseURL("10.0.0.5", 4180))
}
