package middleware

import (
	"errors"
	"net/http"
	"strings"

	"gramvista/internal/model"
	"gramvista/internal/service"

	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves bearer tokens to principals.
type TokenVerifier interface {
	VerifyToken(token string) (model.Principal, error)
}

// JWTAuthMiddleware verifies the bearer token and stores the principal in the
// request context.
func JWTAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied: No token provided"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			return
		}

		principal, err := verifier.VerifyToken(strings.TrimSpace(parts[1]))
		if err != nil {
			msg := "Access denied: Invalid token"
			if errors.Is(err, service.ErrExpired) {
				msg = "Access denied: Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}
