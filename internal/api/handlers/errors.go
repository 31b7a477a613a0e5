package handlers

import (
	"net/http"

	apperrors "quickdesk-backend/internal/errors"
	"quickdesk-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Error   string            `json:"error" example:"error message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

const msgDeliveryFailed = "Failed to send verification email, please try again later"

// respondError maps a service error to a status and a user-safe body.
// Unexpected errors are logged with their detail and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	log := logger.WithContext(c.Request.Context()).WithField("path", c.FullPath())

	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Fields: apperrors.ValidationFields(err)})
	case apperrors.IsAlreadyExists(err),
		apperrors.IsInvalidCode(err),
		apperrors.IsExpired(err),
		apperrors.IsLimitExceeded(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsConfiguration(err), apperrors.IsDelivery(err):
		log.WithError(err).Error("email delivery failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgDeliveryFailed})
	default:
		log.WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

func respondInvalidBody(c *gin.Context, err error) {
	logger.WithContext(c.Request.Context()).WithError(err).Debug("invalid request body")
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}
