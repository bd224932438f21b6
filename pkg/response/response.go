package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/alpstech-academy-api/pkg/errors"
	"github.com/noah-isme/alpstech-academy-api/pkg/notice"
)

// MetaKey is the gin context key holding response metadata collected during a request.
const MetaKey = "response_meta"

// Envelope represents the common response contract.
type Envelope struct {
	Data  interface{}            `json:"data,omitempty"`
	Error *appErrors.Error       `json:"error,omitempty"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// JSON sends a success response merging request-scoped metadata with the provided one.
func JSON(c *gin.Context, status int, data interface{}, meta ...map[string]interface{}) {
	noStore(c)
	envelope := Envelope{Data: data, Meta: collectMeta(c, meta...)}
	c.JSON(status, envelope)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.JSON(appErr.Status, Envelope{Error: appErr, Meta: collectMeta(c)})
}

// Attachment streams a downloadable payload.
func Attachment(c *gin.Context, filename, contentType string, payload []byte) {
	noStore(c)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, payload)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

func collectMeta(c *gin.Context, extra ...map[string]interface{}) map[string]interface{} {
	merged := map[string]interface{}{}
	if stored, ok := c.Get(MetaKey); ok {
		if typed, ok := stored.(map[string]interface{}); ok {
			for k, v := range typed {
				merged[k] = v
			}
		}
	}
	for _, m := range extra {
		for k, v := range m {
			merged[k] = v
		}
	}
	if c.Request != nil {
		if notices := notice.FromContext(c.Request.Context()); len(notices) > 0 {
			merged["notices"] = notices
		}
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}
