package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tripreco/pkg/observability"
)

// MetricsMiddleware records request counts and latency per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
