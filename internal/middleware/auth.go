package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/craftnet/backend/internal/types"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that requires a valid JWT token
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromHeader(c, validator)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a token is
// presented but lets anonymous requests through. Read endpoints use it so
// responses can still compute is_owner for logged-in callers.
func OptionalAuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if claims, err := claimsFromHeader(c, validator); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

func claimsFromHeader(c *gin.Context, validator TokenValidator) (*types.TokenClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errMissingHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errInvalidHeader
	}

	return validator.ValidateToken(c.Request.Context(), parts[1])
}

func setIdentity(c *gin.Context, claims *types.TokenClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("username", claims.Username)
	c.Set("session_id", claims.ID)
}
