package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/galacticorp/hr-portal/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	activityController *controllers.ActivityController,
	portalController *controllers.PortalController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Dashboard ---
	v1.GET("/dashboard", portalController.GetDashboard)

	// --- Activity directory ---
	activities := v1.Group("/activities")
	{
		activities.GET("", activityController.GetAllActivities)
		activities.GET("/:id", activityController.GetActivityByID)
		activities.POST("", activityController.CreateActivity)
		activities.PUT("/:id", activityController.UpdateActivity)
		activities.DELETE("/:id", activityController.DeleteActivity)

		// Roster management
		activities.POST("/:id/join", activityController.JoinActivity)
		activities.POST("/:id/leave", activityController.LeaveActivity)
	}

	// --- Placeholder modules (static payloads only) ---
	v1.GET("/sick-leave", portalController.ModuleStatus("sick-leave"))
	v1.GET("/travel", portalController.ModuleStatus("travel"))
	v1.GET("/maintenance", portalController.ModuleStatus("maintenance"))
	v1.GET("/assets", portalController.ModuleStatus("assets"))
	v1.GET("/expenses", portalController.ModuleStatus("expenses"))
}
