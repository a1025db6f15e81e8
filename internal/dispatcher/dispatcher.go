package dispatcher

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/incident_alert_engine/internal/cluster"
	"github.com/shenikar/incident_alert_engine/internal/config"
	"github.com/shenikar/incident_alert_engine/internal/geo"
	"github.com/shenikar/incident_alert_engine/internal/models"
	"github.com/shenikar/incident_alert_engine/internal/observability"
	"github.com/shenikar/incident_alert_engine/internal/pubsub"
	"github.com/sirupsen/logrus"
)

// defaultZoom - зум карты по умолчанию для пересчета кластеров
const defaultZoom = 13

// activeAlert - отображаемый инцидент с таймером автоистечения
type activeAlert struct {
	incident *models.Incident
	timer    clockwork.Timer
}

// Dispatcher - ядро pub/sub: принимает классифицированные инциденты,
// держит ограниченное активное множество (новые в начале, старые
// вытесняются), раздает их синкам и подписчикам и снимает по таймеру.
// Активное множество мутирует только Dispatcher; кластеры и веса тепловой
// карты пересчитываются при каждой мутации.
type Dispatcher struct {
	logger    *logrus.Logger
	settings  *config.Settings
	clock     clockwork.Clock
	registry  *pubsub.Registry
	proximity *geo.ProximityFilter
	sinks     []Sink
	metrics   *observability.Metrics
	agg       *cluster.Aggregator

	mu     sync.Mutex
	active []*activeAlert // most-recent-first
	zoom   int
	// кеш производных структур и параметры, на которых он построен;
	// обновляется при каждой мутации
	radiusPx float64
	clusters []models.Cluster
	heat     []models.HeatPoint
}

// New создает Dispatcher. Синки опциональны
func New(
	logger *logrus.Logger,
	settings *config.Settings,
	clock clockwork.Clock,
	registry *pubsub.Registry,
	proximity *geo.ProximityFilter,
	metrics *observability.Metrics,
	sinks ...Sink,
) *Dispatcher {
	return &Dispatcher{
		logger:    logger,
		settings:  settings,
		clock:     clock,
		registry:  registry,
		proximity: proximity,
		sinks:     sinks,
		metrics:   metrics,
		agg:       cluster.NewAggregator(settings.ClusterRadiusPx()),
		zoom:      defaultZoom,
		radiusPx:  settings.ClusterRadiusPx(),
		clusters:  []models.Cluster{},
		heat:      []models.HeatPoint{},
	}
}

// Ingest принимает классифицированный инцидент: перепроверяет близость,
// добавляет в начало активного множества (вытесняя старейший при
// переполнении), взводит таймер истечения и раздает оповещение синкам
// и подписчикам new_alert. Инциденты обрабатываются в порядке поступления.
func (d *Dispatcher) Ingest(ctx context.Context, incident *models.Incident) {
	log := d.logger.WithFields(logrus.Fields{
		"service":  "dispatcher",
		"method":   "Ingest",
		"alert_id": incident.ID,
		"category": incident.Category,
		"priority": incident.Priority.String(),
	})

	if !d.settings.AlertsEnabled() {
		d.metrics.AlertsDropped.WithLabelValues(observability.DropReasonDisabled).Inc()
		log.Debug("Alerts disabled, dropping incident")
		return
	}

	// Перепроверка близости на приеме: радиус мог измениться после
	// фильтрации в конвейере
	result := d.proximity.Check(incident.Latitude, incident.Longitude, d.settings.ProximityRadiusKm())
	if !result.Accepted {
		d.metrics.AlertsDropped.WithLabelValues(observability.DropReasonOutOfRange).Inc()
		log.WithField("distance_km", *result.DistanceKm).Info("Incident out of proximity range, dropping")
		return
	}
	if result.DistanceKm != nil {
		incident.DistanceKm = result.DistanceKm
	}

	d.mu.Lock()
	alert := &activeAlert{incident: incident}
	ttl := d.settings.AlertTTL()
	alert.timer = d.clock.AfterFunc(ttl, func() {
		d.expire(incident.ID)
	})
	d.active = append([]*activeAlert{alert}, d.active...)

	var evicted []*activeAlert
	maxAlerts := d.settings.MaxAlerts()
	for len(d.active) > maxAlerts {
		oldest := d.active[len(d.active)-1]
		oldest.timer.Stop()
		d.active = d.active[:len(d.active)-1]
		evicted = append(evicted, oldest)
	}
	d.recomputeLocked()
	d.mu.Unlock()

	d.metrics.AlertsIngested.Inc()
	log.Info("Alert ingested and displayed")

	for _, old := range evicted {
		d.metrics.AlertsEvicted.Inc()
		d.registry.Publish(pubsub.Event{
			Type:    pubsub.EventAlertRemoved,
			AlertID: old.incident.ID,
		})
	}

	// Синки независимы и best-effort: сбой одного не мешает остальным
	// и не откатывает прием инцидента
	for _, sink := range d.sinks {
		if err := sink.Deliver(ctx, incident); err != nil {
			d.metrics.SinkFailures.WithLabelValues(sink.Name()).Inc()
			log.WithError(err).WithField("sink", sink.Name()).Warn("Sink delivery failed")
		}
	}

	d.registry.Publish(pubsub.Event{
		Type:     pubsub.EventNewAlert,
		Incident: incident,
		AlertID:  incident.ID,
	})
}

// Dismiss снимает оповещение по инициативе пользователя: отменяет таймер
// истечения и убирает инцидент из активного множества. Возвращает false,
// если инцидент уже снят.
func (d *Dispatcher) Dismiss(id uuid.UUID) bool {
	if !d.remove(id) {
		return false
	}
	d.metrics.AlertsDismissed.Inc()
	d.logger.WithFields(logrus.Fields{
		"service":  "dispatcher",
		"method":   "Dismiss",
		"alert_id": id,
	}).Info("Alert dismissed")
	d.registry.Publish(pubsub.Event{
		Type:    pubsub.EventAlertRemoved,
		AlertID: id,
	})
	return true
}

// expire снимает оповещение по таймеру. Если инцидент уже снят вручную,
// это no-op: повторного вытеснения и повторного уведомления не происходит.
func (d *Dispatcher) expire(id uuid.UUID) {
	if !d.remove(id) {
		return
	}
	d.metrics.AlertsExpired.Inc()
	d.logger.WithFields(logrus.Fields{
		"service":  "dispatcher",
		"method":   "expire",
		"alert_id": id,
	}).Debug("Alert expired")
	d.registry.Publish(pubsub.Event{
		Type:    pubsub.EventAlertRemoved,
		AlertID: id,
	})
}

// remove убирает инцидент из активного множества и гасит его таймер.
// Возвращает false, если инцидента уже нет.
func (d *Dispatcher) remove(id uuid.UUID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, alert := range d.active {
		if alert.incident.ID == id {
			alert.timer.Stop()
			d.active = append(d.active[:i], d.active[i+1:]...)
			d.recomputeLocked()
			return true
		}
	}
	return false
}

// ClearAll немедленно снимает все активные оповещения и отменяет их
// таймеры; используется при глобальном отключении оповещений
func (d *Dispatcher) ClearAll() {
	d.mu.Lock()
	cleared := d.active
	d.active = nil
	for _, alert := range cleared {
		alert.timer.Stop()
	}
	d.recomputeLocked()
	d.mu.Unlock()

	for _, alert := range cleared {
		d.metrics.AlertsDismissed.Inc()
		d.registry.Publish(pubsub.Event{
			Type:    pubsub.EventAlertRemoved,
			AlertID: alert.incident.ID,
		})
	}

	d.logger.WithFields(logrus.Fields{
		"service": "dispatcher",
		"method":  "ClearAll",
		"count":   len(cleared),
	}).Info("All active alerts cleared")
}

// SetEnabled включает или выключает оповещения глобально.
// Выключение немедленно снимает все активные оповещения.
func (d *Dispatcher) SetEnabled(enabled bool) {
	d.settings.SetAlertsEnabled(enabled)
	if !enabled {
		d.ClearAll()
	}
}

// OnNewAlert регистрирует подписчика на новые оповещения
func (d *Dispatcher) OnNewAlert(handler pubsub.Handler) {
	d.registry.Subscribe(pubsub.EventNewAlert, handler)
}

// ActiveAlerts возвращает снимок активного множества, новые первыми
func (d *Dispatcher) ActiveAlerts() []*models.Incident {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*models.Incident, len(d.active))
	for i, alert := range d.active {
		out[i] = alert.incident
	}
	return out
}

// AlertsByPriority возвращает активные оповещения заданного приоритета
func (d *Dispatcher) AlertsByPriority(p models.Priority) []*models.Incident {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*models.Incident, 0)
	for _, alert := range d.active {
		if alert.incident.Priority == p {
			out = append(out, alert.incident)
		}
	}
	return out
}

// AlertsByCategory возвращает активные оповещения заданной категории
func (d *Dispatcher) AlertsByCategory(c models.Category) []*models.Incident {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*models.Incident, 0)
	for _, alert := range d.active {
		if alert.incident.Category == c {
			out = append(out, alert.incident)
		}
	}
	return out
}

// Clusters возвращает кластеры для заданного зума. Смена зума или
// пиксельного радиуса вызывает полный пересчет.
func (d *Dispatcher) Clusters(zoom int) []models.Cluster {
	d.mu.Lock()
	defer d.mu.Unlock()

	if zoom != d.zoom || d.settings.ClusterRadiusPx() != d.radiusPx {
		d.zoom = zoom
		d.recomputeLocked()
	}
	out := make([]models.Cluster, len(d.clusters))
	copy(out, d.clusters)
	return out
}

// HeatPoints возвращает веса тепловой карты для активного множества
func (d *Dispatcher) HeatPoints() []models.HeatPoint {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]models.HeatPoint, len(d.heat))
	copy(out, d.heat)
	return out
}

// recomputeLocked полностью пересчитывает кластеры и веса тепловой карты.
// Вызывается под мьютексом при каждой мутации активного множества;
// активное множество ограничено, инкрементальный пересчет не требуется.
func (d *Dispatcher) recomputeLocked() {
	incidents := make([]*models.Incident, len(d.active))
	// Кластеризация обходит участников в порядке прибытия: старые первыми
	for i, alert := range d.active {
		incidents[len(d.active)-1-i] = alert.incident
	}

	d.radiusPx = d.settings.ClusterRadiusPx()
	d.agg.SetRadiusPx(d.radiusPx)
	d.clusters = d.agg.Recompute(incidents, d.zoom)
	d.heat = cluster.HeatWeights(incidents)
	d.metrics.ActiveAlerts.Set(float64(len(d.active)))
}
