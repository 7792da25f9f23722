package handler

import (
	"errors"
	"net/http"

	"gramvista/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// statusFor maps service errors onto HTTP statuses. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrExpired):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError writes {message}. Internal errors are logged and replaced by
// a generic message.
func respondError(c *gin.Context, log zerolog.Logger, err error, internalMsg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		log.Error().Err(err).Str("path", c.FullPath()).Msg(internalMsg)
		c.JSON(status, gin.H{"message": internalMsg})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

// bindJSON decodes the body and answers 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return false
	}
	return true
}
