package server

import (
	"time"

	"match-night/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs each request with its outcome and timing.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"client":  c.ClientIP(),
		"latency": time.Since(start).String(),
	}
	if q := c.Request.URL.RawQuery; q != "" {
		fields["query"] = q
	}

	utils.Info("http request", fields)
}
