package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/incident_alert_engine/internal/config"
	"github.com/shenikar/incident_alert_engine/internal/dispatcher"
	"github.com/shenikar/incident_alert_engine/internal/feed"
	"github.com/shenikar/incident_alert_engine/internal/geo"
	"github.com/shenikar/incident_alert_engine/internal/models"
	"github.com/shenikar/incident_alert_engine/internal/observability"
	"github.com/shenikar/incident_alert_engine/internal/pubsub"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engineEnv struct {
	engine  *AlertEngine
	push    *feed.PushFeed
	metrics *observability.Metrics
	cancel  context.CancelFunc
}

// newTestEngine собирает полный конвейер на push-фиде с фейковыми часами
func newTestEngine(t *testing.T, subscriber *geo.Point) *engineEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		MaxAlerts:         50,
		AlertTTL:          10 * time.Second,
		ClusterRadiusPx:   50,
		ProximityRadiusKm: 5,
		AlertsEnabled:     true,
		SoundEnabled:      true,
	}
	settings := config.NewSettings(cfg)
	registry := pubsub.NewRegistry(logger)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	proximity := geo.NewProximityFilter(subscriber)
	disp := dispatcher.New(logger, settings, clockwork.NewFakeClock(), registry, proximity, metrics)
	push := feed.NewPushFeed(logger, 16)

	engine := NewAlertEngine(logger, settings, geo.NewChennaiValidator(), proximity, disp, registry, metrics, push, push)

	ctx, cancel := context.WithCancel(context.Background())
	go engine.Run(ctx)
	t.Cleanup(cancel)

	return &engineEnv{engine: engine, push: push, metrics: metrics, cancel: cancel}
}

func TestEngine_PushToActiveAlert(t *testing.T) {
	env := newTestEngine(t, nil)

	require.NoError(t, env.engine.PushIncident(models.RawIncident{
		Category:      "violent",
		Description:   "Armed robbery in progress",
		LocationLabel: "T. Nagar",
		Latitude:      13.0827,
		Longitude:     80.2707,
	}))

	require.Eventually(t, func() bool {
		return len(env.engine.ActiveAlerts()) == 1
	}, time.Second, 10*time.Millisecond)

	// Классификатор присвоил приоритет и визуальные атрибуты
	alert := env.engine.ActiveAlerts()[0]
	assert.Equal(t, models.PriorityEmergency, alert.Priority)
	assert.Equal(t, 5, alert.Severity)
	assert.Equal(t, "#d32f2f", alert.Color)
	assert.False(t, alert.OccurredAt.IsZero())
}

func TestEngine_DropsInvalidLocation(t *testing.T) {
	env := newTestEngine(t, nil)

	// Координата в зоне исключения (море)
	require.NoError(t, env.engine.PushIncident(models.RawIncident{
		Category:  "hazard",
		Latitude:  13.0,
		Longitude: 80.32,
	}))

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(env.metrics.AlertsDropped.WithLabelValues(observability.DropReasonInvalidLocation)) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, env.engine.ActiveAlerts())
}

func TestEngine_DropsOutOfProximityRange(t *testing.T) {
	// Подписчик на юге города, инцидент на севере за пределами 5 км
	env := newTestEngine(t, &geo.Point{Latitude: 12.90, Longitude: 80.20})

	require.NoError(t, env.engine.PushIncident(models.RawIncident{
		Category:  "violent",
		Latitude:  13.20,
		Longitude: 80.20,
	}))

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(env.metrics.AlertsDropped.WithLabelValues(observability.DropReasonOutOfRange)) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, env.engine.ActiveAlerts())
}

func TestEngine_AttachesDistanceForSubscriber(t *testing.T) {
	env := newTestEngine(t, &geo.Point{Latitude: 13.08, Longitude: 80.27})

	require.NoError(t, env.engine.PushIncident(models.RawIncident{
		Category:  "property",
		Latitude:  13.0827,
		Longitude: 80.2707,
	}))

	require.Eventually(t, func() bool {
		alerts := env.engine.ActiveAlerts()
		return len(alerts) == 1 && alerts[0].DistanceKm != nil
	}, time.Second, 10*time.Millisecond)
}

func TestEngine_DismissRemovesAlert(t *testing.T) {
	env := newTestEngine(t, nil)

	require.NoError(t, env.engine.PushIncident(models.RawIncident{
		Category:  "hazard",
		Latitude:  13.0827,
		Longitude: 80.2707,
	}))
	require.Eventually(t, func() bool {
		return len(env.engine.ActiveAlerts()) == 1
	}, time.Second, 10*time.Millisecond)

	id := env.engine.ActiveAlerts()[0].ID
	assert.True(t, env.engine.Dismiss(id))
	assert.Empty(t, env.engine.ActiveAlerts())
	assert.False(t, env.engine.Dismiss(id))
}

func TestEngine_Stats(t *testing.T) {
	env := newTestEngine(t, nil)

	for _, category := range []string{"violent", "violent", "property"} {
		require.NoError(t, env.engine.PushIncident(models.RawIncident{
			Category:  category,
			Latitude:  13.0827,
			Longitude: 80.2707,
		}))
	}
	require.Eventually(t, func() bool {
		return len(env.engine.ActiveAlerts()) == 3
	}, time.Second, 10*time.Millisecond)

	stats := env.engine.Stats()
	assert.Equal(t, 3, stats.Active)
	assert.Equal(t, 2, stats.ByPriority["emergency"])
	assert.Equal(t, 1, stats.ByPriority["medium"])
	assert.Equal(t, 2, stats.ByCategory["violent"])
}

func TestEngine_ApplySettings(t *testing.T) {
	env := newTestEngine(t, nil)

	require.NoError(t, env.engine.PushIncident(models.RawIncident{
		Category:  "hazard",
		Latitude:  13.0827,
		Longitude: 80.2707,
	}))
	require.Eventually(t, func() bool {
		return len(env.engine.ActiveAlerts()) == 1
	}, time.Second, 10*time.Millisecond)

	// Отключение оповещений немедленно очищает активное множество
	disabled := false
	radius := 12.0
	env.engine.ApplySettings(SettingsUpdate{
		AlertsEnabled:     &disabled,
		ProximityRadiusKm: &radius,
	})

	assert.Empty(t, env.engine.ActiveAlerts())
	snapshot := env.engine.Settings()
	assert.False(t, snapshot.AlertsEnabled)
	assert.InDelta(t, 12.0, snapshot.ProximityRadiusKm, 1e-9)
}

func TestEngine_PushWithoutPushFeed(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{MaxAlerts: 50, AlertTTL: 10 * time.Second, ClusterRadiusPx: 50, ProximityRadiusKm: 5, AlertsEnabled: true}
	settings := config.NewSettings(cfg)
	registry := pubsub.NewRegistry(logger)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	proximity := geo.NewProximityFilter(nil)
	disp := dispatcher.New(logger, settings, clockwork.NewFakeClock(), registry, proximity, metrics)
	sim := feed.NewSimulator(feed.SimulatorConfig{
		Center:      geo.Point{Latitude: 13.0827, Longitude: 80.2707},
		Warmup:      time.Second,
		MinInterval: time.Second,
		MaxInterval: 2 * time.Second,
		Seed:        1,
	}, geo.NewChennaiValidator(), logger, clockwork.NewFakeClock())

	engine := NewAlertEngine(logger, settings, geo.NewChennaiValidator(), proximity, disp, registry, metrics, sim, nil)

	err := engine.PushIncident(models.RawIncident{Category: "hazard"})
	assert.Error(t, err)
}

func TestEngine_OnNewAlertNotified(t *testing.T) {
	env := newTestEngine(t, nil)

	notified := make(chan pubsub.Event, 1)
	env.engine.OnNewAlert(func(e pubsub.Event) {
		select {
		case notified <- e:
		default:
		}
	})

	require.NoError(t, env.engine.PushIncident(models.RawIncident{
		Category:  "violent",
		Latitude:  13.0827,
		Longitude: 80.2707,
	}))

	select {
	case event := <-notified:
		assert.Equal(t, pubsub.EventNewAlert, event.Type)
		require.NotNil(t, event.Incident)
		assert.Equal(t, models.CategoryViolent, event.Incident.Category)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for new_alert event")
	}
}
