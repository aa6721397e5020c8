package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventure/events-api/internal/service"
)

// Metrics returns middleware that captures request metrics using the
// provided service. The scrape endpoint itself is not observed, so the
// collector does not count its own scrapes.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		// Unmatched routes have no FullPath.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
