// Package metrics exposes the site's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "potatolake_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "potatolake_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Content
	SingletonsProvisioned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "potatolake_singleton_pages_provisioned_total",
			Help: "Page rows inserted with default content on first read",
		},
		[]string{"kind"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "potatolake_uploads_total",
			Help: "Upload attempts by category and outcome",
		},
		[]string{"category", "outcome"},
	)

	UploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "potatolake_upload_bytes_total",
			Help: "Bytes accepted by the upload endpoint",
		},
	)
)

// RecordRequest records one finished HTTP request.
func RecordRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordProvisioned counts a page row created by the get-or-create path.
func RecordProvisioned(kind string) {
	SingletonsProvisioned.WithLabelValues(kind).Inc()
}

// RecordUpload counts an upload attempt; size is only added on success.
func RecordUpload(category, outcome string, size int64) {
	UploadsTotal.WithLabelValues(category, outcome).Inc()
	if outcome == "ok" && size > 0 {
		UploadBytes.Add(float64(size))
	}
}

// Middleware records request counts and latency keyed by the matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
