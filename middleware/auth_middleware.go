package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudhev0011/VoterMngmtServer/auth"
	"github.com/sudhev0011/VoterMngmtServer/models"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// Auth reads the session token from the "token" cookie, verifies it and
// attaches the decoded claims to the request context.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route on the authenticated role. Must run after Auth.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get(ContextRole)
		if !ok || got.(models.Role) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}
