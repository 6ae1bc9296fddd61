// Package middleware holds gin middleware shared across routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ashpazyar/backend/internal/models"
	"github.com/ashpazyar/backend/internal/types"
)

// AuthCookieName is the session cookie set on login and register.
const AuthCookieName = "auth_token"

// Authenticator validates session tokens and resolves them to users.
type Authenticator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUser(userID uuid.UUID) (*models.User, error)
}

// AuthMiddleware validates the session and loads the current user. The
// token is read from the auth cookie first, then from a Bearer header.
// Loading the user each request means deleting an account revokes its
// outstanding tokens immediately.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		user, err := auth.GetUser(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("current_user", user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// CurrentUser returns the user loaded by AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get("current_user")
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
