package handlers

import (
	"net/http"

	"quickdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OTPHandler handles the signup OTP endpoints
type OTPHandler struct {
	service service.SignupServiceInterface
}

// NewOTPHandler creates a new OTP handler
func NewOTPHandler(service service.SignupServiceInterface) *OTPHandler {
	return &OTPHandler{service: service}
}

// EmailRequest carries a single email address
type EmailRequest struct {
	Email string `json:"email" example:"jo@acme.com"`
}

// SuccessResponse represents a bare success acknowledgement
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// SendOTP handles POST /api/auth/send-otp
// @Summary Start a signup
// @Description Validate the signup form, email a 6-digit code and keep the pending registration until it is verified
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body service.SignupRequest true "Signup form"
// @Success 200 {object} service.SendOTPResponse "Code sent, or already sent and still valid"
// @Failure 400 {object} ErrorResponse "Invalid input, or organization or user already exists"
// @Failure 500 {object} ErrorResponse "Email could not be sent"
// @Router /auth/send-otp [post]
func (h *OTPHandler) SendOTP(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	response, err := h.service.SendOTP(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to send verification code")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ResendOTP handles POST /api/auth/resend-otp
// @Summary Resend the signup code
// @Description Email a fresh code for a pending signup. After three codes the signup is discarded.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.ResendOTPRequest true "Email of the pending signup"
// @Success 200 {object} service.ResendOTPResponse "Code resent"
// @Failure 400 {object} ErrorResponse "Missing email or resend limit reached"
// @Failure 404 {object} ErrorResponse "No pending signup for this email"
// @Failure 500 {object} ErrorResponse "Email could not be sent"
// @Router /auth/resend-otp [post]
func (h *OTPHandler) ResendOTP(c *gin.Context) {
	var req service.ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	response, err := h.service.ResendOTP(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err, "Failed to resend verification code")
		return
	}

	c.JSON(http.StatusOK, response)
}

// VerifyOTP handles POST /api/auth/verify-otp
// @Summary Verify the signup code
// @Description Check the code and create the user, the organization and the admin membership
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.VerifyOTPRequest true "Email and code"
// @Success 200 {object} service.VerifyOTPResponse "Tenant created"
// @Failure 400 {object} ErrorResponse "Invalid or expired code"
// @Failure 404 {object} ErrorResponse "No pending signup for this email"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/verify-otp [post]
func (h *OTPHandler) VerifyOTP(c *gin.Context) {
	var req service.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	response, err := h.service.VerifyOTP(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to verify code")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetOTPExpiration handles GET /api/auth/get-otp-expiration
// @Summary Get code expiry
// @Description Return when the active signup code for an email expires
// @Tags auth
// @Produce json
// @Param email query string true "Email of the pending signup"
// @Success 200 {object} service.OTPExpirationResponse "Active code found"
// @Failure 400 {object} ErrorResponse "Missing email"
// @Failure 404 {object} ErrorResponse "No pending signup for this email"
// @Router /auth/get-otp-expiration [get]
func (h *OTPHandler) GetOTPExpiration(c *gin.Context) {
	response, err := h.service.GetOTPExpiration(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err, "Failed to get code expiration")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteExpiredOTP handles POST /api/auth/delete-expired-otp
// @Summary Discard an expired code
// @Description Delete the signup code for an email if it has expired. Unexpired codes are kept.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email of the pending signup"
// @Success 200 {object} SuccessResponse "Done"
// @Failure 400 {object} ErrorResponse "Missing email"
// @Router /auth/delete-expired-otp [post]
func (h *OTPHandler) DeleteExpiredOTP(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	if _, err := h.service.DeleteExpiredOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "Failed to delete expired code")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
