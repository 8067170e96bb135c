package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check route stays outside the API key requirement
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("")
	secured.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Incident report intake
	reports := secured.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
	}

	// Dispatch engine and assignment lifecycle
	secured.POST("/dispatch", h.dispatchReport)
	assignments := secured.Group("/assignments")
	{
		assignments.GET("", h.listAssignments)
		assignments.PUT("/:id/status", h.updateAssignmentStatus)
	}

	// Responder directory snapshots
	secured.GET("/responders", h.listResponders)

	// Bus requests, capacity ledger and hot spots
	busRequests := secured.Group("/bus-requests")
	{
		busRequests.POST("", h.createBusRequest)
		busRequests.GET("", h.listBusRequests)
		busRequests.GET("/hotspots", h.listHotSpots)
		busRequests.PATCH("/:id/accept", h.acceptBusRequest)
		busRequests.GET("/:id/acceptances", h.listBusAcceptances)
	}
}
