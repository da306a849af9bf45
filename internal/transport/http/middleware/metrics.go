package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpReqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Count of HTTP requests"},
		[]string{"path", "method", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"},
	)
	outcomeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "resource_outcomes_total", Help: "Resource handler outcomes by kind"},
		[]string{"resource", "kind"},
	)
)

func init() { prometheus.MustRegister(httpReqTotal, httpLatency, outcomeTotal) }

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched" // 避免 404 扫描打爆 label 基数
		}
		httpReqTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// ObserveOutcome 统计资源处理结果（created / rejected / not_found ...）
func ObserveOutcome(resource, kind string) {
	outcomeTotal.WithLabelValues(resource, kind).Inc()
}
