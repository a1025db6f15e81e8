package feed

import (
	"context"

	"github.com/shenikar/incident_alert_engine/internal/models"
)

// Feed - источник сырых инцидентов. Конвейер не зависит от природы
// источника: симулятор и push-фид отдают события одинаково - по одному,
// асинхронно, в порядке поступления.
type Feed interface {
	// Run запускает источник; блокирует до отмены контекста
	Run(ctx context.Context)
	// Events возвращает канал исходящих событий. Канал закрывается
	// после завершения Run.
	Events() <-chan models.RawIncident
}
