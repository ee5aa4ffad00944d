package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sentineldesk/backend/internal/logger"
)

// RequestLoggerMiddleware logs every HTTP request with a generated request id.
// The id is echoed back in the X-Request-ID header so browser consoles and
// server logs can be correlated.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    latency.String(),
			"client_ip":  c.ClientIP(),
			"request_id": requestID,
		}

		if c.Writer.Status() >= 500 {
			logger.Error("request failed", fields)
		} else {
			logger.Info("request completed", fields)
		}
	}
}
