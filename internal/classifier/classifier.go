package classifier

import (
	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_engine/internal/models"
)

// visual - визуальные атрибуты категории на карте
type visual struct {
	Color string
	Icon  string
}

// Таблицы классификации - чистые данные. Таблицы тотальны: для любой
// неизвестной категории используются значения по умолчанию, классификация
// никогда не завершается ошибкой.
var (
	categoryPriority = map[models.Category]models.Priority{
		models.CategoryViolent:       models.PriorityEmergency,
		models.CategoryHazard:        models.PriorityHigh,
		models.CategoryProperty:      models.PriorityMedium,
		models.CategoryInformational: models.PriorityLow,
	}

	categoryVisual = map[models.Category]visual{
		models.CategoryViolent:       {Color: "#d32f2f", Icon: "exclamation-triangle"},
		models.CategoryHazard:        {Color: "#f57c00", Icon: "radiation"},
		models.CategoryProperty:      {Color: "#fbc02d", Icon: "shield-alt"},
		models.CategoryInformational: {Color: "#1976d2", Icon: "info-circle"},
	}

	// severity 1..5, используется для нормализованных весов тепловой карты
	categorySeverity = map[models.Category]int{
		models.CategoryViolent:       5,
		models.CategoryHazard:        4,
		models.CategoryProperty:      3,
		models.CategoryInformational: 1,
	}

	defaultVisual = visual{Color: "#757575", Icon: "map-marker-alt"}
)

const (
	defaultPriority = models.PriorityLow
	defaultSeverity = 1
)

// Classify превращает сырое событие в классифицированный инцидент.
// Неизвестные категории получают информационные значения по умолчанию.
func Classify(raw models.RawIncident) *models.Incident {
	category := models.Category(raw.Category)

	priority, ok := categoryPriority[category]
	if !ok {
		priority = defaultPriority
	}

	vis, ok := categoryVisual[category]
	if !ok {
		vis = defaultVisual
	}

	severity, ok := categorySeverity[category]
	if !ok {
		severity = defaultSeverity
	}

	return &models.Incident{
		ID:            uuid.New(),
		Category:      category,
		Priority:      priority,
		Severity:      severity,
		Color:         vis.Color,
		Icon:          vis.Icon,
		Latitude:      raw.Latitude,
		Longitude:     raw.Longitude,
		OccurredAt:    raw.OccurredAt,
		Description:   raw.Description,
		LocationLabel: raw.LocationLabel,
	}
}

// CategoryIcon возвращает иконку категории (для иконки кластера)
func CategoryIcon(category models.Category) string {
	if vis, ok := categoryVisual[category]; ok {
		return vis.Icon
	}
	return defaultVisual.Icon
}
