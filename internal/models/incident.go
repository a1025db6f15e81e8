package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Category - категория инцидента, определяет цвет и иконку на карте
type Category string

const (
	CategoryViolent       Category = "violent"
	CategoryProperty      Category = "property"
	CategoryHazard        Category = "hazard"
	CategoryInformational Category = "informational"
)

// Priority - уровень приоритета оповещения, упорядочен по возрастанию
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityEmergency
)

// String возвращает строковое представление приоритета
func (p Priority) String() string {
	switch p {
	case PriorityEmergency:
		return "emergency"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// MarshalJSON сериализует приоритет строковым представлением, чтобы
// SSE-поток и REST-ответы отдавали одинаковый формат
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON разбирает строковое представление приоритета
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = ParsePriority(s)
	return nil
}

// ParsePriority разбирает строковое представление приоритета.
// Неизвестные значения трактуются как low.
func ParsePriority(s string) Priority {
	switch s {
	case "emergency":
		return PriorityEmergency
	case "high":
		return PriorityHigh
	case "medium":
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// RawIncident - сырое событие из фида до классификации
type RawIncident struct {
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	LocationLabel string    `json:"location_label"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Incident - классифицированный инцидент. Неизменяем после классификации;
// в активное множество попадает только после проверки координат и близости.
type Incident struct {
	ID            uuid.UUID `json:"id"`
	Category      Category  `json:"category"`
	Priority      Priority  `json:"priority"`
	Severity      int       `json:"severity"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	OccurredAt    time.Time `json:"occurred_at"`
	DistanceKm    *float64  `json:"distance_km,omitempty"`
	Description   string    `json:"description"`
	LocationLabel string    `json:"location_label"`
}

// Cluster - группа инцидентов в пределах пиксельного радиуса на текущем зуме.
// Производная структура: пересчитывается при каждом изменении активного множества.
type Cluster struct {
	Members          []*Incident `json:"members"`
	MemberCount      int         `json:"member_count"`
	DominantCategory Category    `json:"dominant_category"`
	Icon             string      `json:"icon"`
	Latitude         float64     `json:"latitude"`
	Longitude        float64     `json:"longitude"`
}

// HeatPoint - точка тепловой карты с нормализованным весом [0,1]
type HeatPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Weight    float64 `json:"weight"`
}
