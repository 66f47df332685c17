// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/cafe-gateway/internal/config"
	"github.com/your-org/cafe-gateway/internal/pkg/session"
)

// SessionIDKey is the context key holding the cart session id
const SessionIDKey = "cart_session_id"

// CartSession resolves the cart session for each request. A valid
// session cookie is reused; anything else gets a fresh session id
// wrapped in a signed token.
func CartSession(cfg *config.Config) gin.HandlerFunc {
	manager := session.NewManager(cfg)

	return func(c *gin.Context) {
		var sessionID string

		if token, err := c.Cookie(cfg.Session.CookieName); err == nil && token != "" {
			if sid, err := manager.Validate(token); err == nil {
				sessionID = sid
			}
		}

		if sessionID == "" {
			sessionID = uuid.New().String()

			token, err := manager.Generate(sessionID)
			if err == nil {
				c.SetCookie(cfg.Session.CookieName, token, int(cfg.Session.TTL.Seconds()), "/", "", false, true)
			}
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the cart session id for the current request
func GetSessionID(c *gin.Context) string {
	if sid, exists := c.Get(SessionIDKey); exists {
		if s, ok := sid.(string); ok {
			return s
		}
	}
	return ""
}
