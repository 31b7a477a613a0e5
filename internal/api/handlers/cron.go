package handlers

import (
	"net/http"

	"quickdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CronHandler handles scheduled-job endpoints
type CronHandler struct {
	service service.CleanupServiceInterface
}

// NewCronHandler creates a new cron handler
func NewCronHandler(service service.CleanupServiceInterface) *CronHandler {
	return &CronHandler{service: service}
}

// CleanupOTPs handles POST /api/cron/cleanup-otps
// @Summary Delete expired codes
// @Description Delete every expired signup and password reset code. Requires the cron secret as a bearer token.
// @Tags cron
// @Produce json
// @Success 200 {object} service.CleanupResult "Cleanup done"
// @Failure 401 {object} ErrorResponse "Missing or invalid cron secret"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security CronSecret
// @Router /cron/cleanup-otps [post]
func (h *CronHandler) CleanupOTPs(c *gin.Context) {
	result, err := h.service.CleanupExpired(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to clean up expired codes")
		return
	}

	c.JSON(http.StatusOK, result)
}
