package feed

import (
	"context"
	"fmt"

	"github.com/shenikar/incident_alert_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// PushFeed - адаптер реального push-фида: события приходят снаружи
// (через HTTP API) и передаются конвейеру в порядке поступления.
type PushFeed struct {
	logger *logrus.Logger
	in     chan models.RawIncident
	events chan models.RawIncident
}

// NewPushFeed создает push-фид с буфером на случай всплесков
func NewPushFeed(logger *logrus.Logger, buffer int) *PushFeed {
	if buffer <= 0 {
		buffer = 64
	}
	return &PushFeed{
		logger: logger,
		in:     make(chan models.RawIncident, buffer),
		events: make(chan models.RawIncident),
	}
}

// Push ставит событие в очередь фида. Возвращает ошибку, если буфер полон
func (f *PushFeed) Push(raw models.RawIncident) error {
	select {
	case f.in <- raw:
		return nil
	default:
		return fmt.Errorf("feed: push buffer full, incident dropped")
	}
}

// Events возвращает канал исходящих событий
func (f *PushFeed) Events() <-chan models.RawIncident {
	return f.events
}

// Run перекачивает события из входной очереди до отмены контекста
func (f *PushFeed) Run(ctx context.Context) {
	log := f.logger.WithField("feed", "push")
	log.Info("Starting push feed")
	defer close(f.events)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping push feed")
			return
		case raw := <-f.in:
			select {
			case f.events <- raw:
			case <-ctx.Done():
				log.Info("Stopping push feed")
				return
			}
		}
	}
}
