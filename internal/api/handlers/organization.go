package handlers

import (
	"net/http"

	"quickdesk-backend/internal/auth"
	"quickdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// GetCurrentOrganization handles GET /api/v1/organizations/current
// @Summary Get the caller's organization
// @Description Return the organization of the authenticated user with its deadline settings and the caller's membership
// @Tags organizations
// @Produce json
// @Success 200 {object} service.CurrentOrganizationResponse "Organization found"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "User has no organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/organizations/current [get]
func (h *OrganizationHandler) GetCurrentOrganization(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	org, err := h.service.GetCurrent(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}
