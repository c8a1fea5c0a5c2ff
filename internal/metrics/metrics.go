// Package metrics exposes the prometheus collectors of the service.
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
	Violations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soundthread_violations_total",
		Help: "Rejected requests, by use case",
	}, []string{"use_case"})

	StoreFaults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soundthread_store_faults_total",
		Help: "Backing-store failures, by use case",
	}, []string{"use_case"})

	Deletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soundthread_deletions_total",
		Help: "Completed deletions, by kind",
	}, []string{"kind"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "soundthread_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Middleware records request latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
