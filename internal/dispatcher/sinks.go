package dispatcher

import (
	"context"

	"github.com/shenikar/incident_alert_engine/internal/config"
	"github.com/shenikar/incident_alert_engine/internal/models"
	"github.com/shenikar/incident_alert_engine/internal/pubsub"
	"github.com/shenikar/incident_alert_engine/internal/webhook"
)

// Sink - best-effort канал доставки оповещения (звук, платформенное
// уведомление). Ошибка синка логируется и не влияет ни на активное
// множество, ни на доставку остальным синкам.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, incident *models.Incident) error
}

// Последовательности тонов по приоритетам: чем выше приоритет, тем
// настойчивее сигнал
var priorityTones = map[models.Priority][]pubsub.Tone{
	models.PriorityEmergency: {
		{FrequencyHz: 1000, DurationMs: 200},
		{FrequencyHz: 1300, DurationMs: 200},
		{FrequencyHz: 1000, DurationMs: 200},
		{FrequencyHz: 1300, DurationMs: 400},
	},
	models.PriorityHigh: {
		{FrequencyHz: 900, DurationMs: 180},
		{FrequencyHz: 1100, DurationMs: 260},
	},
	models.PriorityMedium: {
		{FrequencyHz: 750, DurationMs: 220},
	},
	models.PriorityLow: {
		{FrequencyHz: 600, DurationMs: 150},
	},
}

// AudioSink публикует звуковой сигнал для отображающего слоя.
// Молчит, если звук выключен в настройках.
type AudioSink struct {
	registry *pubsub.Registry
	settings *config.Settings
}

// NewAudioSink создает звуковой синк
func NewAudioSink(registry *pubsub.Registry, settings *config.Settings) *AudioSink {
	return &AudioSink{registry: registry, settings: settings}
}

func (s *AudioSink) Name() string {
	return "audio"
}

// Deliver публикует последовательность тонов для приоритета инцидента
func (s *AudioSink) Deliver(_ context.Context, incident *models.Incident) error {
	if !s.settings.SoundEnabled() {
		return nil
	}

	s.registry.Publish(pubsub.Event{
		Type:    pubsub.EventPlaySound,
		AlertID: incident.ID,
		Tones:   priorityTones[incident.Priority],
	})
	return nil
}

// autoCloseSeconds - время автозакрытия неэкстренных уведомлений
const autoCloseSeconds = 5

// NotificationSink отправляет платформенное уведомление через очередь
// вебхуков. Emergency-уведомления требуют явного закрытия, остальные
// закрываются автоматически.
type NotificationSink struct {
	publisher webhook.Publisher
}

// NewNotificationSink создает синк платформенных уведомлений
func NewNotificationSink(publisher webhook.Publisher) *NotificationSink {
	return &NotificationSink{publisher: publisher}
}

func (s *NotificationSink) Name() string {
	return "notification"
}

// Deliver публикует уведомление в очередь доставки
func (s *NotificationSink) Deliver(ctx context.Context, incident *models.Incident) error {
	emergency := incident.Priority == models.PriorityEmergency

	notification := webhook.Notification{
		AlertID:            incident.ID,
		Title:              incident.LocationLabel,
		Body:               incident.Description,
		Category:           string(incident.Category),
		Priority:           incident.Priority.String(),
		Icon:               incident.Icon,
		RequireInteraction: emergency,
		Timestamp:          incident.OccurredAt,
	}
	if !emergency {
		notification.AutoCloseSeconds = autoCloseSeconds
	}

	return s.publisher.Publish(ctx, notification)
}
