package handler

import (
	"net/http"

	"gramvista/internal/middleware"
	"gramvista/internal/model"
	"gramvista/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BookingHandler handles experience booking requests
type BookingHandler struct {
	service service.BookingService
	log     zerolog.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(s service.BookingService, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{service: s, log: log}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	var req model.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.service.Create(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, h.log, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	bookings, err := h.service.ListMine(c.Request.Context(), user)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// RegisterBookingRoutes registers experience booking routes
func (h *BookingHandler) RegisterBookingRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, userMW gin.HandlerFunc) {
	bookings := rg.Group("/experienceBooking", authMW, userMW)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.GetMyBookings)
	}
}
