package feed

import (
	"context"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/incident_alert_engine/internal/geo"
	"github.com/shenikar/incident_alert_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// template - шаблон генерации события для одной категории
type template struct {
	Category  string
	Messages  []string
	Locations []string
}

var defaultTemplates = []template{
	{
		Category: "violent",
		Messages: []string{
			"Assault reported near market area",
			"Armed robbery in progress",
			"Street fight reported",
		},
		Locations: []string{"T. Nagar", "Egmore", "Royapettah"},
	},
	{
		Category: "property",
		Messages: []string{
			"Vehicle theft reported",
			"Burglary at residential complex",
			"Chain snatching incident",
		},
		Locations: []string{"Anna Nagar", "Velachery", "Adyar"},
	},
	{
		Category: "hazard",
		Messages: []string{
			"Road accident with injuries",
			"Fire reported at commercial building",
			"Waterlogging blocking traffic",
		},
		Locations: []string{"Mount Road", "OMR", "Guindy"},
	},
	{
		Category: "informational",
		Messages: []string{
			"Planned road closure for procession",
			"Heavy police presence reported",
			"Public gathering near beach",
		},
		Locations: []string{"Marina Beach", "Mylapore", "Besant Nagar"},
	},
}

// Точки, заведомо проходящие валидатор: используются, если подбор
// случайной координаты исчерпал попытки
var fallbackPoints = []geo.Point{
	{Latitude: 13.0827, Longitude: 80.2707},
	{Latitude: 13.0067, Longitude: 80.2206},
	{Latitude: 13.0850, Longitude: 80.2101},
	{Latitude: 12.9800, Longitude: 80.2200},
}

const resampleRetries = 10

// SimulatorConfig - параметры симулятора фида
type SimulatorConfig struct {
	Center      geo.Point
	JitterDeg   float64
	Warmup      time.Duration
	MinInterval time.Duration
	MaxInterval time.Duration
	Seed        int64
}

// Simulator - имитация push-фида: лениво генерирует бесконечную
// последовательность инцидентов со случайным дрожанием интервалов.
// Первое событие выходит после прогрева, дальше интервалы равномерно
// распределены в [MinInterval, MaxInterval] - процесс самопланирующийся,
// а не таймер с фиксированным периодом.
type Simulator struct {
	cfg       SimulatorConfig
	validator *geo.Validator
	logger    *logrus.Logger
	clock     clockwork.Clock
	rng       *rand.Rand
	events    chan models.RawIncident
}

// NewSimulator создает симулятор. Seed=0 означает недетерминированный запуск
func NewSimulator(cfg SimulatorConfig, validator *geo.Validator, logger *logrus.Logger, clock clockwork.Clock) *Simulator {
	if cfg.JitterDeg == 0 {
		cfg.JitterDeg = 0.05
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		cfg:       cfg,
		validator: validator,
		logger:    logger,
		clock:     clock,
		rng:       rand.New(rand.NewSource(seed)),
		events:    make(chan models.RawIncident),
	}
}

// Events возвращает канал исходящих событий
func (s *Simulator) Events() <-chan models.RawIncident {
	return s.events
}

// Run генерирует события до отмены контекста, затем закрывает канал
func (s *Simulator) Run(ctx context.Context) {
	log := s.logger.WithField("feed", "simulator")
	log.Info("Starting feed simulator")
	defer close(s.events)

	delay := s.cfg.Warmup
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping feed simulator")
			return
		case <-s.clock.After(delay):
		}

		raw := s.generate()
		select {
		case s.events <- raw:
		case <-ctx.Done():
			log.Info("Stopping feed simulator")
			return
		}

		delay = s.nextInterval()
	}
}

// nextInterval возвращает независимо разыгранную паузу до следующего события
func (s *Simulator) nextInterval() time.Duration {
	window := s.cfg.MaxInterval - s.cfg.MinInterval
	if window <= 0 {
		return s.cfg.MinInterval
	}
	return s.cfg.MinInterval + time.Duration(s.rng.Int63n(int64(window)))
}

// generate собирает одно сырое событие из случайного шаблона
func (s *Simulator) generate() models.RawIncident {
	tpl := defaultTemplates[s.rng.Intn(len(defaultTemplates))]
	point := s.samplePoint()

	return models.RawIncident{
		Category:      tpl.Category,
		Description:   tpl.Messages[s.rng.Intn(len(tpl.Messages))],
		LocationLabel: tpl.Locations[s.rng.Intn(len(tpl.Locations))],
		Latitude:      point.Latitude,
		Longitude:     point.Longitude,
		OccurredAt:    s.clock.Now(),
	}
}

// samplePoint подбирает координату вокруг центра, пересэмплируя до
// resampleRetries раз, пока валидатор не примет точку; после исчерпания
// попыток берется одна из заведомо валидных
func (s *Simulator) samplePoint() geo.Point {
	for i := 0; i < resampleRetries; i++ {
		lat := s.cfg.Center.Latitude + (s.rng.Float64()*2-1)*s.cfg.JitterDeg
		lng := s.cfg.Center.Longitude + (s.rng.Float64()*2-1)*s.cfg.JitterDeg
		if s.validator.IsValidLocation(lat, lng) {
			return geo.Point{Latitude: lat, Longitude: lng}
		}
	}

	point := fallbackPoints[s.rng.Intn(len(fallbackPoints))]
	s.logger.WithFields(logrus.Fields{
		"feed":     "simulator",
		"fallback": point,
	}).Debug("Coordinate sampling exhausted retries, using fallback point")
	return point
}
