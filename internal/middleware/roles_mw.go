package middleware

import (
	"net/http"

	"gramvista/internal/model"
	"gramvista/internal/service"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware rejects principals whose role differs from required.
// JWTAuthMiddleware must run first.
func RoleMiddleware(required model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied: No token provided"})
			return
		}

		if err := service.Authorize(principal, required); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: " + required.String() + " type required"})
			return
		}

		c.Next()
	}
}

// VendorMiddleware admits vendor principals only
func VendorMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleVendor)
}

// UserMiddleware admits user principals only
func UserMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleUser)
}

// CurrentVendor returns the vendor behind the request.
func CurrentVendor(c *gin.Context) (model.VendorPrincipal, error) {
	p, ok := PrincipalFromContext(c.Request.Context())
	if !ok {
		return model.VendorPrincipal{}, service.ErrInvalidToken
	}
	return service.AsVendor(p)
}

// CurrentUser returns the user behind the request.
func CurrentUser(c *gin.Context) (model.UserPrincipal, error) {
	p, ok := PrincipalFromContext(c.Request.Context())
	if !ok {
		return model.UserPrincipal{}, service.ErrInvalidToken
	}
	return service.AsUser(p)
}
