package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Представления доски
	board := api.Group("/board")
	{
		board.GET("", h.getBoard)
		board.GET("/ticker", h.getTicker)
		board.GET("/feed", h.getFeed)
		board.GET("/moderation", h.getModeration)
		board.GET("/markers", h.getMarkers)
		board.GET("/summary", h.getSummary)
		board.GET("/filter", h.getFilter)
		board.PUT("/filter", h.setFilter)
	}

	// Маршруты для работы с инцидентами
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.submitIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/verify", h.verifyIncident)
		incidents.POST("/:id/flag", h.flagIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
