package pubsub

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// EventType - тип события движка оповещений
type EventType string

const (
	EventNewAlert     EventType = "new_alert"
	EventAlertRemoved EventType = "alert_removed"
	EventPlaySound    EventType = "play_sound"
	EventSystem       EventType = "system_message"
)

// Event - типизированное событие, доставляемое подписчикам
type Event struct {
	Type     EventType        `json:"type"`
	Incident *models.Incident `json:"incident,omitempty"`
	AlertID  uuid.UUID        `json:"alert_id"`
	Tones    []Tone           `json:"tones,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// Tone - один тон звукового сигнала оповещения
type Tone struct {
	FrequencyHz int `json:"frequency_hz"`
	DurationMs  int `json:"duration_ms"`
}

// Handler - обработчик события. Паника внутри обработчика изолируется
// и не прерывает доставку остальным подписчикам.
type Handler func(Event)

// Registry хранит подписчиков по типам событий. Доставка идет в порядке
// регистрации; реестр живет все время сессии.
type Registry struct {
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers map[EventType][]Handler
}

// NewRegistry создает пустой реестр подписок
func NewRegistry(logger *logrus.Logger) *Registry {
	return &Registry{
		logger:   logger,
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe добавляет обработчик в конец списка для данного типа события
func (r *Registry) Subscribe(eventType EventType, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], handler)
}

// Publish вызывает всех подписчиков типа в порядке регистрации.
// Сбой одного обработчика логируется и не мешает остальным.
func (r *Registry) Publish(event Event) {
	r.mu.RLock()
	handlers := make([]Handler, len(r.handlers[event.Type]))
	copy(handlers, r.handlers[event.Type])
	r.mu.RUnlock()

	for i, handler := range handlers {
		r.invoke(event, i, handler)
	}
}

func (r *Registry) invoke(event Event, idx int, handler Handler) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.WithFields(logrus.Fields{
				"event_type": event.Type,
				"subscriber": idx,
				"panic":      rec,
			}).Error("Subscriber callback panicked, continuing fan-out")
		}
	}()
	handler(event)
}

// Clear удаляет все подписки данного типа
func (r *Registry) Clear(eventType EventType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, eventType)
}

// Len возвращает количество подписчиков данного типа
func (r *Registry) Len(eventType EventType) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[eventType])
}
