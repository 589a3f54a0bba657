package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/galacticorp/hr-portal/internal/app/models/dto"
)

// featureCards is the dashboard catalog rendered by the portal front end.
var featureCards = []dto.FeatureCard{
	{
		Name:        "Healing Tower",
		Icon:        "✨",
		Route:       "/sick-leave",
		Description: "Request time off for recovery and healing",
	},
	{
		Name:        "Education and Social Activities",
		Icon:        "📚",
		Route:       "/education",
		Description: "Discover learning events and social activities",
	},
	{
		Name:        "Rocket Pad",
		Icon:        "🚀",
		Route:       "/travel",
		Description: "Book your corporate travels across the galaxy",
	},
	{
		Name:        "Robot Workshop",
		Icon:        "🛠",
		Route:       "/maintenance",
		Description: "Report and track maintenance issues",
	},
	{
		Name:        "Item Portal",
		Icon:        "📦",
		Route:       "/assets",
		Description: "Book company assets and equipment",
	},
	{
		Name:        "Hologram Terminal",
		Icon:        "💰",
		Route:       "/expenses",
		Description: "Manage your expense reports and reimbursements",
	},
}

// placeholderModules maps the unimplemented module routes to their static
// payloads. These modules carry no logic yet.
var placeholderModules = map[string]dto.ModuleStatusResponse{
	"sick-leave":  {Module: "Healing Tower", Message: "Sick leave management coming soon..."},
	"travel":      {Module: "Rocket Pad", Message: "Travel booking coming soon..."},
	"maintenance": {Module: "Robot Workshop", Message: "Maintenance tracking coming soon..."},
	"assets":      {Module: "Item Portal", Message: "Asset booking coming soon..."},
	"expenses":    {Module: "Hologram Terminal", Message: "Expense management coming soon..."},
}

// PortalController serves the dashboard catalog and the placeholder modules
type PortalController struct{}

// NewPortalController creates a new PortalController
func NewPortalController() *PortalController {
	return &PortalController{}
}

// GetDashboard handles retrieving the dashboard feature cards
// @Summary Get dashboard
// @Description Retrieves the portal's feature-card catalog
// @Tags portal
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved successfully"
// @Router /dashboard [get]
func (c *PortalController) GetDashboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DashboardResponse{Features: featureCards}))
}

// ModuleStatus returns a handler serving the named placeholder module.
func (c *PortalController) ModuleStatus(module string) gin.HandlerFunc {
	status, ok := placeholderModules[module]
	if !ok {
		status = dto.ModuleStatusResponse{Module: module, Message: "Coming soon..."}
	}
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(status))
	}
}
