package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_engine/internal/classifier"
	"github.com/shenikar/incident_alert_engine/internal/config"
	"github.com/shenikar/incident_alert_engine/internal/dispatcher"
	"github.com/shenikar/incident_alert_engine/internal/feed"
	"github.com/shenikar/incident_alert_engine/internal/geo"
	"github.com/shenikar/incident_alert_engine/internal/models"
	"github.com/shenikar/incident_alert_engine/internal/observability"
	"github.com/shenikar/incident_alert_engine/internal/pubsub"
	"github.com/sirupsen/logrus"
)

// SettingsSnapshot - снимок изменяемых настроек движка
type SettingsSnapshot struct {
	AlertsEnabled     bool          `json:"alerts_enabled"`
	SoundEnabled      bool          `json:"sound_enabled"`
	ProximityRadiusKm float64       `json:"proximity_radius_km"`
	ClusterRadiusPx   float64       `json:"cluster_radius_px"`
	MaxAlerts         int           `json:"max_alerts"`
	AlertTTL          time.Duration `json:"alert_ttl"`
}

// SettingsUpdate - частичное обновление настроек; nil-поля не меняются
type SettingsUpdate struct {
	AlertsEnabled     *bool
	SoundEnabled      *bool
	ProximityRadiusKm *float64
	ClusterRadiusPx   *float64
	MaxAlerts         *int
	AlertTTL          *time.Duration
}

// Stats - агрегированные счетчики по активному множеству
type Stats struct {
	Active     int            `json:"active"`
	ByPriority map[string]int `json:"by_priority"`
	ByCategory map[string]int `json:"by_category"`
}

// Engine определяет контракт движка оповещений для HTTP-слоя
type Engine interface {
	ActiveAlerts() []*models.Incident
	AlertsByPriority(p models.Priority) []*models.Incident
	AlertsByCategory(c models.Category) []*models.Incident
	Clusters(zoom int) []models.Cluster
	HeatPoints() []models.HeatPoint
	Dismiss(id uuid.UUID) bool
	PushIncident(raw models.RawIncident) error
	Settings() SettingsSnapshot
	ApplySettings(update SettingsUpdate)
	Stats() Stats
	OnEvent(eventType pubsub.EventType, handler pubsub.Handler)
}

// AlertEngine связывает конвейер: фид -> валидатор координат -> фильтр
// близости -> классификатор -> диспетчер оповещений
type AlertEngine struct {
	logger     *logrus.Logger
	settings   *config.Settings
	validator  *geo.Validator
	proximity  *geo.ProximityFilter
	dispatcher *dispatcher.Dispatcher
	registry   *pubsub.Registry
	metrics    *observability.Metrics
	feed       feed.Feed
	push       *feed.PushFeed
}

// NewAlertEngine создает движок. push может быть nil, если прием
// инцидентов снаружи не используется
func NewAlertEngine(
	logger *logrus.Logger,
	settings *config.Settings,
	validator *geo.Validator,
	proximity *geo.ProximityFilter,
	disp *dispatcher.Dispatcher,
	registry *pubsub.Registry,
	metrics *observability.Metrics,
	f feed.Feed,
	push *feed.PushFeed,
) *AlertEngine {
	return &AlertEngine{
		logger:     logger,
		settings:   settings,
		validator:  validator,
		proximity:  proximity,
		dispatcher: disp,
		registry:   registry,
		metrics:    metrics,
		feed:       f,
		push:       push,
	}
}

// Run запускает фид и обрабатывает его события до отмены контекста.
// Инциденты идут через конвейер строго в порядке поступления.
func (e *AlertEngine) Run(ctx context.Context) {
	log := e.logger.WithFields(logrus.Fields{
		"service": "engine",
		"method":  "Run",
	})
	log.Info("Starting alert engine pipeline")

	go e.feed.Run(ctx)

	for raw := range e.feed.Events() {
		e.metrics.FeedEmissions.Inc()
		e.process(ctx, raw)
	}
	log.Info("Alert engine pipeline stopped")
}

// process проводит одно сырое событие через конвейер. Отбраковка - это
// не ошибка: событие молча отбрасывается с записью в лог.
func (e *AlertEngine) process(ctx context.Context, raw models.RawIncident) {
	log := e.logger.WithFields(logrus.Fields{
		"service":  "engine",
		"method":   "process",
		"category": raw.Category,
	})

	if !e.validator.IsValidLocation(raw.Latitude, raw.Longitude) {
		e.metrics.AlertsDropped.WithLabelValues(observability.DropReasonInvalidLocation).Inc()
		log.WithFields(logrus.Fields{
			"latitude":  raw.Latitude,
			"longitude": raw.Longitude,
		}).Debug("Invalid location, dropping incident")
		return
	}

	// Фильтрация близости - ворота на приеме, не постоянное ограничение:
	// уже активные инциденты при смене радиуса не перепроверяются
	result := e.proximity.Check(raw.Latitude, raw.Longitude, e.settings.ProximityRadiusKm())
	if !result.Accepted {
		e.metrics.AlertsDropped.WithLabelValues(observability.DropReasonOutOfRange).Inc()
		log.WithField("distance_km", *result.DistanceKm).Debug("Out of proximity range, dropping incident")
		return
	}

	incident := classifier.Classify(raw)
	if result.DistanceKm != nil {
		incident.DistanceKm = result.DistanceKm
	}

	e.dispatcher.Ingest(ctx, incident)
}

// PushIncident принимает инцидент снаружи через push-фид
func (e *AlertEngine) PushIncident(raw models.RawIncident) error {
	if e.push == nil {
		return fmt.Errorf("service: push feed is not enabled")
	}
	if raw.OccurredAt.IsZero() {
		raw.OccurredAt = time.Now()
	}
	if err := e.push.Push(raw); err != nil {
		return fmt.Errorf("service: could not push incident: %w", err)
	}
	return nil
}

// ActiveAlerts возвращает снимок активных оповещений, новые первыми
func (e *AlertEngine) ActiveAlerts() []*models.Incident {
	return e.dispatcher.ActiveAlerts()
}

// AlertsByPriority возвращает активные оповещения заданного приоритета
func (e *AlertEngine) AlertsByPriority(p models.Priority) []*models.Incident {
	return e.dispatcher.AlertsByPriority(p)
}

// AlertsByCategory возвращает активные оповещения заданной категории
func (e *AlertEngine) AlertsByCategory(c models.Category) []*models.Incident {
	return e.dispatcher.AlertsByCategory(c)
}

// Clusters возвращает кластеры активных инцидентов для заданного зума
func (e *AlertEngine) Clusters(zoom int) []models.Cluster {
	return e.dispatcher.Clusters(zoom)
}

// HeatPoints возвращает веса тепловой карты активных инцидентов
func (e *AlertEngine) HeatPoints() []models.HeatPoint {
	return e.dispatcher.HeatPoints()
}

// Dismiss снимает оповещение по ID; false, если оно уже снято
func (e *AlertEngine) Dismiss(id uuid.UUID) bool {
	return e.dispatcher.Dismiss(id)
}

// Settings возвращает снимок текущих настроек
func (e *AlertEngine) Settings() SettingsSnapshot {
	return SettingsSnapshot{
		AlertsEnabled:     e.settings.AlertsEnabled(),
		SoundEnabled:      e.settings.SoundEnabled(),
		ProximityRadiusKm: e.settings.ProximityRadiusKm(),
		ClusterRadiusPx:   e.settings.ClusterRadiusPx(),
		MaxAlerts:         e.settings.MaxAlerts(),
		AlertTTL:          e.settings.AlertTTL(),
	}
}

// ApplySettings применяет частичное обновление настроек. Отключение
// оповещений немедленно снимает все активные и отменяет их таймеры.
func (e *AlertEngine) ApplySettings(update SettingsUpdate) {
	log := e.logger.WithFields(logrus.Fields{
		"service": "engine",
		"method":  "ApplySettings",
	})

	if update.SoundEnabled != nil {
		e.settings.SetSoundEnabled(*update.SoundEnabled)
	}
	if update.ProximityRadiusKm != nil {
		e.settings.SetProximityRadiusKm(*update.ProximityRadiusKm)
	}
	if update.ClusterRadiusPx != nil {
		e.settings.SetClusterRadiusPx(*update.ClusterRadiusPx)
	}
	if update.MaxAlerts != nil {
		e.settings.SetMaxAlerts(*update.MaxAlerts)
	}
	if update.AlertTTL != nil {
		e.settings.SetAlertTTL(*update.AlertTTL)
	}
	if update.AlertsEnabled != nil {
		e.dispatcher.SetEnabled(*update.AlertsEnabled)
	}

	log.Info("Engine settings updated")
}

// Stats возвращает агрегированные счетчики активного множества
func (e *AlertEngine) Stats() Stats {
	alerts := e.dispatcher.ActiveAlerts()
	stats := Stats{
		Active:     len(alerts),
		ByPriority: make(map[string]int),
		ByCategory: make(map[string]int),
	}
	for _, alert := range alerts {
		stats.ByPriority[alert.Priority.String()]++
		stats.ByCategory[string(alert.Category)]++
	}
	return stats
}

// OnEvent регистрирует подписчика на события движка
func (e *AlertEngine) OnEvent(eventType pubsub.EventType, handler pubsub.Handler) {
	e.registry.Subscribe(eventType, handler)
}

// OnNewAlert регистрирует подписчика на новые оповещения
func (e *AlertEngine) OnNewAlert(handler pubsub.Handler) {
	e.registry.Subscribe(pubsub.EventNewAlert, handler)
}
