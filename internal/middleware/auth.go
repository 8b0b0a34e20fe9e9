package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"billbook/internal/domain"
	"billbook/internal/service"
)

// ContextKeySession holds the caller's domain.Session.
const ContextKeySession = "session"

// AuthMiddleware validates the bearer token and resolves it into a session
// stored on the context. Handlers read only the session.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		claims, err := authService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextKeySession, claims.Session())
		c.Next()
	}
}

// RequireRole returns middleware that checks the session role against allowed roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := GetSession(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "session not found in context"},
			})
			return
		}

		for _, r := range roles {
			if session.Role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   gin.H{"code": "FORBIDDEN", "message": "insufficient permissions"},
		})
	}
}

// GetSession returns the session resolved by AuthMiddleware.
func GetSession(c *gin.Context) (domain.Session, error) {
	val, exists := c.Get(ContextKeySession)
	if !exists {
		return domain.Session{}, domain.ErrUnauthorized
	}
	session, ok := val.(domain.Session)
	if !ok {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return session, nil
}
