package handler

import (
	"context"
	"net/http"

	"gramvista/internal/middleware"
	"gramvista/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Services bundles what the router dispatches to.
type Services struct {
	Auth     service.AuthService
	Products service.ProductService
	Bookings service.BookingService
}

// HealthCheck reports store health; nil means healthy.
type HealthCheck func(ctx context.Context) error

// NewRouter wires middleware and every route under /api.
func NewRouter(svcs Services, log zerolog.Logger, health HealthCheck) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS())

	jwtAuthMW := middleware.JWTAuthMiddleware(svcs.Auth)
	vendorMW := middleware.VendorMiddleware()
	userMW := middleware.UserMiddleware()

	api := router.Group("/api")
	NewAuthHandler(svcs.Auth, log).RegisterAuthRoutes(api, jwtAuthMW)
	NewProductHandler(svcs.Products, log).RegisterProductRoutes(api, jwtAuthMW, vendorMW)
	NewBookingHandler(svcs.Bookings, log).RegisterBookingRoutes(api, jwtAuthMW, userMW)

	router.GET("/health", func(c *gin.Context) {
		if health != nil {
			if err := health(c.Request.Context()); err != nil {
				log.Error().Err(err).Msg("health check failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	return router
}
