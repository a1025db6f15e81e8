package v1

import (
	"time"

	"github.com/shenikar/incident_alert_engine/internal/models"
	"github.com/shenikar/incident_alert_engine/internal/service"
)

// DTOToRawIncident преобразует DTO приема в сырое событие фида
func DTOToRawIncident(dto PushIncidentRequest) models.RawIncident {
	return models.RawIncident{
		Category:      dto.Category,
		Description:   dto.Description,
		LocationLabel: dto.LocationLabel,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
	}
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.Incident) *AlertResponse {
	return &AlertResponse{
		ID:            model.ID,
		Category:      string(model.Category),
		Priority:      model.Priority.String(),
		Severity:      model.Severity,
		Color:         model.Color,
		Icon:          model.Icon,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		OccurredAt:    model.OccurredAt,
		DistanceKm:    model.DistanceKm,
		Description:   model.Description,
		LocationLabel: model.LocationLabel,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []*models.Incident) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

// ClusterToResponse преобразует кластер в DTO для ответа
func ClusterToResponse(c models.Cluster) ClusterResponse {
	return ClusterResponse{
		MemberCount:      c.MemberCount,
		DominantCategory: string(c.DominantCategory),
		Icon:             c.Icon,
		Latitude:         c.Latitude,
		Longitude:        c.Longitude,
		Members:          ModelsToAlertResponses(c.Members),
	}
}

// ClustersToResponses преобразует слайс кластеров в слайс DTO
func ClustersToResponses(clusters []models.Cluster) []ClusterResponse {
	responses := make([]ClusterResponse, len(clusters))
	for i, c := range clusters {
		responses[i] = ClusterToResponse(c)
	}
	return responses
}

// HeatPointsToResponses преобразует точки тепловой карты в DTO
func HeatPointsToResponses(points []models.HeatPoint) []HeatPointResponse {
	responses := make([]HeatPointResponse, len(points))
	for i, p := range points {
		responses[i] = HeatPointResponse{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Weight:    p.Weight,
		}
	}
	return responses
}

// SnapshotToSettingsResponse преобразует снимок настроек в DTO
func SnapshotToSettingsResponse(s service.SettingsSnapshot) SettingsResponse {
	return SettingsResponse{
		AlertsEnabled:     s.AlertsEnabled,
		SoundEnabled:      s.SoundEnabled,
		ProximityRadiusKm: s.ProximityRadiusKm,
		ClusterRadiusPx:   s.ClusterRadiusPx,
		MaxAlerts:         s.MaxAlerts,
		AlertTTLSeconds:   s.AlertTTL.Seconds(),
	}
}

// DTOToSettingsUpdate преобразует DTO обновления в частичное обновление настроек
func DTOToSettingsUpdate(dto UpdateSettingsRequest) service.SettingsUpdate {
	update := service.SettingsUpdate{
		AlertsEnabled:     dto.AlertsEnabled,
		SoundEnabled:      dto.SoundEnabled,
		ProximityRadiusKm: dto.ProximityRadiusKm,
		ClusterRadiusPx:   dto.ClusterRadiusPx,
		MaxAlerts:         dto.MaxAlerts,
	}
	if dto.AlertTTLSeconds != nil {
		ttl := time.Duration(*dto.AlertTTLSeconds * float64(time.Second))
		update.AlertTTL = &ttl
	}
	return update
}
