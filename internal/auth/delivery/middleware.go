package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pracsphere-backend/internal/auth/usecase"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "pracsphere_session"

// ContextIdentityKey is the gin context key holding the session identity.
const ContextIdentityKey = "identity"

// AuthMiddleware rejects requests without a valid session before any
// handler runs. The token is read from the session cookie, with an
// Authorization Bearer header accepted as a fallback for API clients.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		identity, err := authUsecase.ValidateSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(ContextIdentityKey, identity)
		c.Set("userID", identity.ID)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
