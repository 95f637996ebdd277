package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect-four/backend/internal/service/game"
	"github.com/iamasit07/connect-four/backend/pkg/auth"
	"github.com/iamasit07/connect-four/backend/pkg/httputil"
)

const SessionContextKey = "game_session"

// SessionAuthMiddleware checks that the caller's token belongs to the :id session
func SessionAuthMiddleware(sm *game.SessionManager, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract token (header or cookie)
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// 2. Validate signature and expiry
		claims, err := auth.ValidateSessionToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// 3. Token must be for the session in the URL
		if claims.SessionID != c.Param("id") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token does not match this game"})
			return
		}

		session, exists := sm.GetSession(claims.SessionID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// SessionFromContext returns the session attached by SessionAuthMiddleware
func SessionFromContext(c *gin.Context) (*game.Session, bool) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*game.Session)
	return session, ok
}
