package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"reviewfeed/pkg/utils"
)

// RequestLogger logs every request once it has been served.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String(utils.TraceIDKey, c.GetString(utils.TraceIDKey)),
		}
		if len(c.Errors) > 0 {
			log.Warn("Request served with errors", append(fields, zap.String("errors", c.Errors.String()))...)
			return
		}
		log.Info("Request served", fields...)
	}
}
