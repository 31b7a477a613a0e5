package handlers

import (
	"net/http"

	"quickdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PasswordResetHandler handles the password reset endpoints
type PasswordResetHandler struct {
	service service.PasswordResetServiceInterface
}

// NewPasswordResetHandler creates a new password reset handler
func NewPasswordResetHandler(service service.PasswordResetServiceInterface) *PasswordResetHandler {
	return &PasswordResetHandler{service: service}
}

// SendResetOTP handles POST /api/auth/reset-password/send-otp
// @Summary Request a password reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Account email"
// @Description Answers 200 for unknown emails too; no email is sent for them.
// @Success 200 {object} service.PasswordResetOTPResponse "Code sent"
// @Failure 400 {object} ErrorResponse "Missing email"
// @Failure 500 {object} ErrorResponse "Email could not be sent"
// @Router /auth/reset-password/send-otp [post]
func (h *PasswordResetHandler) SendResetOTP(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	response, err := h.service.RequestReset(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err, "Failed to send password reset code")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ResetPassword handles POST /api/auth/reset-password/verify
// @Summary Reset the password with a code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.ResetPasswordRequest true "Code and new password"
// @Success 200 {object} SuccessResponse "Password changed"
// @Failure 400 {object} ErrorResponse "Invalid input, invalid or expired code"
// @Failure 404 {object} ErrorResponse "No reset requested for this email"
// @Router /auth/reset-password/verify [post]
func (h *PasswordResetHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err, "Failed to reset password")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
