package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/alpstech-academy-api/pkg/middleware/requestid"
)

// Audit creates a middleware that writes an audit log entry after successful admin edits.
func Audit(logger *zap.Logger, action, resource string) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now().UTC()
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		fields := []zap.Field{
			zap.String("action", action),
			zap.String("resource", resource),
			zap.String("resource_id", c.Param("id")),
			zap.String("path", c.FullPath()),
			zap.String("request_id", requestid.Value(c)),
			zap.Time("at", start),
		}
		if account := SessionFromContext(c); account != nil {
			fields = append(fields, zap.String("account_id", account.ID))
		}
		logger.Info("audit", fields...)
	}
}
