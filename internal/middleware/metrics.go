package middleware

import (
	"strconv"
	"time"

	"collectbox/internal/observability/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics creates a Gin middleware that records per-request metrics.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
