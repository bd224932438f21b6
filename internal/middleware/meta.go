package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/alpstech-academy-api/pkg/notice"
	"github.com/noah-isme/alpstech-academy-api/pkg/response"
)

// WithResponseMeta initialises response metadata storage and a notice collector for the request.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(response.MetaKey, map[string]interface{}{})
		c.Request = c.Request.WithContext(notice.WithCollector(c.Request.Context()))
		c.Next()
	}
}

// SetMeta records a metadata entry for the current response.
func SetMeta(c *gin.Context, key string, value interface{}) {
	ensureMeta(c)[key] = value
}

// ExtractMeta returns the metadata map stored on the context.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	if meta, exists := c.Get(response.MetaKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok {
			return typed
		}
	}
	return nil
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if meta := ExtractMeta(c); meta != nil {
		return meta
	}
	newMeta := make(map[string]interface{})
	c.Set(response.MetaKey, newMeta)
	return newMeta
}
