package config

import (
	"sync"
	"time"
)

// Settings - изменяемая во время работы часть конфигурации движка.
// Все поля защищены RWMutex: читаются конвейером, меняются через API.
type Settings struct {
	mu sync.RWMutex

	alertsEnabled     bool
	soundEnabled      bool
	proximityRadiusKm float64
	clusterRadiusPx   float64
	maxAlerts         int
	alertTTL          time.Duration
}

// NewSettings создает Settings со значениями из загруженной конфигурации
func NewSettings(cfg *Config) *Settings {
	return &Settings{
		alertsEnabled:     cfg.AlertsEnabled,
		soundEnabled:      cfg.SoundEnabled,
		proximityRadiusKm: cfg.ProximityRadiusKm,
		clusterRadiusPx:   cfg.ClusterRadiusPx,
		maxAlerts:         cfg.MaxAlerts,
		alertTTL:          cfg.AlertTTL,
	}
}

func (s *Settings) AlertsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alertsEnabled
}

func (s *Settings) SetAlertsEnabled(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertsEnabled = v
}

func (s *Settings) SoundEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.soundEnabled
}

func (s *Settings) SetSoundEnabled(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.soundEnabled = v
}

func (s *Settings) ProximityRadiusKm() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.proximityRadiusKm
}

// SetProximityRadiusKm меняет радиус фильтра близости. Уже активные
// инциденты не перепроверяются: фильтр применяется только при приеме.
func (s *Settings) SetProximityRadiusKm(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proximityRadiusKm = v
}

func (s *Settings) ClusterRadiusPx() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clusterRadiusPx
}

func (s *Settings) SetClusterRadiusPx(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clusterRadiusPx = v
}

func (s *Settings) MaxAlerts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxAlerts
}

func (s *Settings) SetMaxAlerts(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxAlerts = v
}

func (s *Settings) AlertTTL() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alertTTL
}

func (s *Settings) SetAlertTTL(v time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertTTL = v
}
