package v1

import (
	"time"

	"github.com/google/uuid"
)

// PushIncidentRequest DTO для приема инцидента от внешнего фида
// @Description DTO для приема инцидента от внешнего фида
type PushIncidentRequest struct {
	Category      string  `json:"category" validate:"required,min=2,max=64"`
	Description   string  `json:"description,omitempty"`
	LocationLabel string  `json:"location_label,omitempty"`
	Latitude      float64 `json:"latitude" validate:"required,latitude"`
	Longitude     float64 `json:"longitude" validate:"required,longitude"`
}

// AlertResponse DTO для ответа с информацией об оповещении
// @Description DTO для ответа с информацией об оповещении
type AlertResponse struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	Priority      string    `json:"priority"`
	Severity      int       `json:"severity"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	OccurredAt    time.Time `json:"occurred_at"`
	DistanceKm    *float64  `json:"distance_km,omitempty"`
	Description   string    `json:"description,omitempty"`
	LocationLabel string    `json:"location_label,omitempty"`
}

// ClusterResponse DTO для кластера инцидентов на карте
// @Description DTO для кластера инцидентов на карте
type ClusterResponse struct {
	MemberCount      int              `json:"member_count"`
	DominantCategory string           `json:"dominant_category"`
	Icon             string           `json:"icon"`
	Latitude         float64          `json:"latitude"`
	Longitude        float64          `json:"longitude"`
	Members          []*AlertResponse `json:"members"`
}

// HeatPointResponse DTO для точки тепловой карты
// @Description DTO для точки тепловой карты
type HeatPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Weight    float64 `json:"weight"`
}

// SettingsResponse DTO для текущих настроек движка
// @Description DTO для текущих настроек движка
type SettingsResponse struct {
	AlertsEnabled     bool    `json:"alerts_enabled"`
	SoundEnabled      bool    `json:"sound_enabled"`
	ProximityRadiusKm float64 `json:"proximity_radius_km"`
	ClusterRadiusPx   float64 `json:"cluster_radius_px"`
	MaxAlerts         int     `json:"max_alerts"`
	AlertTTLSeconds   float64 `json:"alert_ttl_seconds"`
}

// UpdateSettingsRequest DTO для частичного обновления настроек
// @Description DTO для частичного обновления настроек
type UpdateSettingsRequest struct {
	AlertsEnabled     *bool    `json:"alerts_enabled,omitempty"`
	SoundEnabled      *bool    `json:"sound_enabled,omitempty"`
	ProximityRadiusKm *float64 `json:"proximity_radius_km,omitempty" validate:"omitempty,gte=1,lte=20"`
	ClusterRadiusPx   *float64 `json:"cluster_radius_px,omitempty" validate:"omitempty,gt=0,lte=500"`
	MaxAlerts         *int     `json:"max_alerts,omitempty" validate:"omitempty,gt=0,lte=500"`
	AlertTTLSeconds   *float64 `json:"alert_ttl_seconds,omitempty" validate:"omitempty,gt=0,lte=3600"`
}

// StatsResponse DTO для агрегированных счетчиков
// @Description DTO для агрегированных счетчиков
type StatsResponse struct {
	Active     int            `json:"active"`
	ByPriority map[string]int `json:"by_priority"`
	ByCategory map[string]int `json:"by_category"`
}
