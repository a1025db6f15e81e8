package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счетчики Prometheus для конвейера оповещений
type Metrics struct {
	AlertsIngested  prometheus.Counter
	AlertsDropped   *prometheus.CounterVec // labels: reason={invalid_location,out_of_range,disabled}
	AlertsExpired   prometheus.Counter
	AlertsDismissed prometheus.Counter
	AlertsEvicted   prometheus.Counter
	ActiveAlerts    prometheus.Gauge
	SinkFailures    *prometheus.CounterVec // labels: sink={audio,notification}
	FeedEmissions   prometheus.Counter
}

// Возможные значения метки reason для AlertsDropped
const (
	DropReasonInvalidLocation = "invalid_location"
	DropReasonOutOfRange      = "out_of_range"
	DropReasonDisabled        = "disabled"
)

// NewMetrics создает метрики и регистрирует их в переданном реестре
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AlertsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alert_engine",
			Name:      "alerts_ingested_total",
			Help:      "Total incidents accepted into the active alert set.",
		}),
		AlertsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "alert_engine",
			Name:      "alerts_dropped_total",
			Help:      "Incidents dropped before ingestion, by reason.",
		}, []string{"reason"}),
		AlertsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alert_engine",
			Name:      "alerts_expired_total",
			Help:      "Alerts removed by their expiry timer.",
		}),
		AlertsDismissed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alert_engine",
			Name:      "alerts_dismissed_total",
			Help:      "Alerts dismissed explicitly.",
		}),
		AlertsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alert_engine",
			Name:      "alerts_evicted_total",
			Help:      "Oldest alerts evicted when the active set exceeded capacity.",
		}),
		ActiveAlerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "alert_engine",
			Name:      "active_alerts",
			Help:      "Current size of the active alert set.",
		}),
		SinkFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "alert_engine",
			Name:      "sink_failures_total",
			Help:      "Best-effort sink delivery failures, by sink.",
		}, []string{"sink"}),
		FeedEmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alert_engine",
			Name:      "feed_emissions_total",
			Help:      "Raw incidents emitted by the feed.",
		}),
	}

	reg.MustRegister(
		m.AlertsIngested,
		m.AlertsDropped,
		m.AlertsExpired,
		m.AlertsDismissed,
		m.AlertsEvicted,
		m.ActiveAlerts,
		m.SinkFailures,
		m.FeedEmissions,
	)
	return m
}
