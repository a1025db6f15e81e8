package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_engine/internal/config"
	"github.com/shenikar/incident_alert_engine/internal/models"
	"github.com/shenikar/incident_alert_engine/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	engine   service.Engine
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
	hub      *StreamHub
}

func NewHandler(engine service.Engine, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		engine:   engine,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
		hub:      NewStreamHub(engine, logger),
	}
}

// @Summary List active alerts
// @Description Get the active alert set, most recent first. Optional priority/category filters. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param priority query string false "Filter by priority (low|medium|high|emergency)"
// @Param category query string false "Filter by category"
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	if priority := c.Query("priority"); priority != "" {
		alerts := h.engine.AlertsByPriority(models.ParsePriority(priority))
		c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
		return
	}
	if category := c.Query("category"); category != "" {
		alerts := h.engine.AlertsByCategory(models.Category(category))
		c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(h.engine.ActiveAlerts()))
}

// @Summary Dismiss an alert
// @Description Dismiss an active alert by ID, cancelling its expiry timer. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [delete]
func (h *Handler) dismissAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "dismissAlert").WithField("id", id)

	if !h.engine.Dismiss(id) {
		log.Warn("Attempted to dismiss an alert that is not active")
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Push an incident
// @Description Feed an incident from an external source into the pipeline. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body PushIncidentRequest true "Incident push request"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 503 {object} map[string]string "Push feed disabled or overloaded"
// @Router /incidents [post]
func (h *Handler) pushIncident(c *gin.Context) {
	var input PushIncidentRequest
	log := h.logger.WithField("method", "pushIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.engine.PushIncident(DTOToRawIncident(input)); err != nil {
		log.WithError(err).Error("Failed to push incident into the pipeline")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push feed unavailable"})
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Get map clusters
// @Description Get active incidents grouped into clusters for the given zoom level. Requires API key.
// @Tags Map
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zoom query int false "Map zoom level" default(13)
// @Success 200 {array} ClusterResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /clusters [get]
func (h *Handler) getClusters(c *gin.Context) {
	zoom, err := strconv.Atoi(c.DefaultQuery("zoom", "13"))
	if err != nil || zoom < 1 || zoom > 22 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zoom level"})
		return
	}
	c.JSON(http.StatusOK, ClustersToResponses(h.engine.Clusters(zoom)))
}

// @Summary Get heatmap weights
// @Description Get one weighted point per active incident for heatmap rendering. Requires API key.
// @Tags Map
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} HeatPointResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /heatmap [get]
func (h *Handler) getHeatmap(c *gin.Context) {
	c.JSON(http.StatusOK, HeatPointsToResponses(h.engine.HeatPoints()))
}

// @Summary Get engine settings
// @Description Get the current runtime settings. Requires API key.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SettingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotToSettingsResponse(h.engine.Settings()))
}

// @Summary Update engine settings
// @Description Apply a partial update to the runtime settings. Disabling alerts clears the active set. Requires API key.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param settings body UpdateSettingsRequest true "Settings update request"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /settings [patch]
func (h *Handler) updateSettings(c *gin.Context) {
	var input UpdateSettingsRequest
	log := h.logger.WithField("method", "updateSettings")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.engine.ApplySettings(DTOToSettingsUpdate(input))
	c.JSON(http.StatusOK, SnapshotToSettingsResponse(h.engine.Settings()))
}

// @Summary Get alert statistics
// @Description Get aggregate counters over the active alert set. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	stats := h.engine.Stats()
	c.JSON(http.StatusOK, StatsResponse{
		Active:     stats.Active,
		ByPriority: stats.ByPriority,
		ByCategory: stats.ByCategory,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
