package v1

import (
	"io"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_alert_engine/internal/pubsub"
	"github.com/shenikar/incident_alert_engine/internal/service"
	"github.com/sirupsen/logrus"
)

// clientBuffer - размер буфера на клиента; медленный клиент теряет
// события, а не тормозит раздачу остальным
const clientBuffer = 16

// StreamHub ретранслирует события движка подключенным SSE-клиентам.
// Hub подписывается на реестр один раз и сам управляет жизненным циклом
// клиентских каналов.
type StreamHub struct {
	logger  *logrus.Logger
	mu      sync.Mutex
	clients map[chan pubsub.Event]struct{}
}

// NewStreamHub создает хаб и подписывает его на события движка
func NewStreamHub(engine service.Engine, logger *logrus.Logger) *StreamHub {
	hub := &StreamHub{
		logger:  logger,
		clients: make(map[chan pubsub.Event]struct{}),
	}
	for _, eventType := range []pubsub.EventType{
		pubsub.EventNewAlert,
		pubsub.EventAlertRemoved,
		pubsub.EventPlaySound,
		pubsub.EventSystem,
	} {
		engine.OnEvent(eventType, hub.broadcast)
	}
	return hub
}

// broadcast рассылает событие всем клиентам без блокировки:
// переполненный клиентский буфер означает потерю события
func (h *StreamHub) broadcast(event pubsub.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client <- event:
		default:
			h.logger.WithField("event_type", event.Type).Debug("SSE client buffer full, event skipped")
		}
	}
}

// register добавляет нового клиента
func (h *StreamHub) register() chan pubsub.Event {
	client := make(chan pubsub.Event, clientBuffer)
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	return client
}

// unregister убирает клиента
func (h *StreamHub) unregister(client chan pubsub.Event) {
	h.mu.Lock()
	delete(h.clients, client)
	h.mu.Unlock()
}

// @Summary Stream engine events
// @Description Server-sent events stream of new_alert, alert_removed, play_sound and system_message events. Requires API key.
// @Tags Alerts
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Success 200 "SSE stream"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /alerts/stream [get]
func (h *Handler) streamAlerts(c *gin.Context) {
	client := h.hub.register()
	defer h.hub.unregister(client)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(_ io.Writer) bool {
		select {
		case event, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Type), event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
