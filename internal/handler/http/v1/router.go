package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Аутентификация по API-ключу, если ключи настроены
	if len(h.cfg.APIKeys) > 0 {
		api.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Маршруты активных оповещений
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/stream", h.streamAlerts)
		alerts.DELETE("/:id", h.dismissAlert)
	}

	// Прием инцидентов от внешнего фида
	api.POST("/incidents", h.pushIncident)

	// Данные для отрисовки карты
	api.GET("/clusters", h.getClusters)
	api.GET("/heatmap", h.getHeatmap)

	// Настройки движка
	api.GET("/settings", h.getSettings)
	api.PATCH("/settings", h.updateSettings)

	// Статистика
	api.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
