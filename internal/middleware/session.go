package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
	appErrors "github.com/noah-isme/alpstech-academy-api/pkg/errors"
	"github.com/noah-isme/alpstech-academy-api/pkg/response"
)

// ContextSessionKey is the gin context key storing the active session account.
const ContextSessionKey = "currentSession"

type sessionProvider interface {
	Current() *models.PublicAccount
}

// RequireSession rejects requests while no session is active.
func RequireSession(sessions sessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := sessions.Current()
		if current == nil {
			response.Error(c, appErrors.ErrNoActiveSession)
			c.Abort()
			return
		}
		c.Set(ContextSessionKey, current)
		c.Next()
	}
}

// RequireRoles allows the request only when the session role is listed. It must run after
// RequireSession.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		current := SessionFromContext(c)
		if current == nil {
			response.Error(c, appErrors.ErrNoActiveSession)
			c.Abort()
			return
		}
		if _, ok := allowed[current.Role]; !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the account stored by RequireSession.
func SessionFromContext(c *gin.Context) *models.PublicAccount {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil
	}
	account, ok := value.(*models.PublicAccount)
	if !ok {
		return nil
	}
	return account
}
