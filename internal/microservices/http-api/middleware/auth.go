package middleware

import (
	"net/http"
	"strings"

	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextClaims = "claims"
)

// TokenValidator is satisfied by service.AuthService.
type TokenValidator interface {
	ValidateToken(token string) (*service.Claims, error)
}

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// The token comes from "Authorization: Bearer <token>"; browsers opening a
// websocket cannot set headers, so a ?token= query parameter is accepted too.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// Set user info in context for handlers to use
		c.Set(ContextClaims, claims)
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		token := c.Query("token")
		return token, token != ""
	}

	// format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// RequireRole checks if the user has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin is a convenience function for requiring admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// UserID returns the authenticated user's id, or "" outside AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// Requester returns the authenticated caller for visibility checks.
func Requester(c *gin.Context) service.Requester {
	return service.Requester{UserID: c.GetString(ContextUserID), Role: c.GetString(ContextRole)}
}
