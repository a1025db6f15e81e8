package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/incident_alert_engine/internal/config"
	"github.com/shenikar/incident_alert_engine/internal/dispatcher"
	"github.com/shenikar/incident_alert_engine/internal/feed"
	"github.com/shenikar/incident_alert_engine/internal/geo"
	v1 "github.com/shenikar/incident_alert_engine/internal/handler/http/v1"
	"github.com/shenikar/incident_alert_engine/internal/observability"
	"github.com/shenikar/incident_alert_engine/internal/pubsub"
	"github.com/shenikar/incident_alert_engine/internal/service"
	"github.com/shenikar/incident_alert_engine/internal/webhook"
	"github.com/shenikar/incident_alert_engine/pkg/logger"
	redisclient "github.com/shenikar/incident_alert_engine/pkg/redis"
)

// @title Incident Alert Engine API
// @version 1.0
// @description Incident alert engine: geo-filtered ingestion, map clustering and alert notifications.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента (очередь платформенных уведомлений)
	redisClient, err := redisclient.NewClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя и воркера уведомлений
	notifyPublisher := webhook.NewRedisPublisher(redisClient)
	notifyWorker := webhook.NewWorker(redisClient, log, cfg)
	notifyWorker.Start(ctx)

	// Метрики
	promRegistry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(promRegistry)

	// Настройки движка и геокомпоненты
	settings := config.NewSettings(cfg)
	validator := geo.NewChennaiValidator()

	// Местоположение подписчика опционально: без него фильтр близости
	// пропускает все
	var subscriber *geo.Point
	if cfg.SubscriberLat != nil && cfg.SubscriberLng != nil {
		subscriber = &geo.Point{Latitude: *cfg.SubscriberLat, Longitude: *cfg.SubscriberLng}
		log.WithFields(logrus.Fields{
			"latitude":  subscriber.Latitude,
			"longitude": subscriber.Longitude,
		}).Info("Subscriber location configured, proximity filtering enabled")
	} else {
		log.Info("No subscriber location, proximity filtering disabled")
	}
	proximity := geo.NewProximityFilter(subscriber)

	// Реестр подписок и диспетчер с синками
	registry := pubsub.NewRegistry(log)
	clock := clockwork.NewRealClock()
	disp := dispatcher.New(
		log, settings, clock, registry, proximity, metrics,
		dispatcher.NewAudioSink(registry, settings),
		dispatcher.NewNotificationSink(notifyPublisher),
	)

	// Источник инцидентов: симулятор или внешний push-фид
	var engineFeed feed.Feed
	var pushFeed *feed.PushFeed
	switch cfg.FeedMode {
	case "push":
		pushFeed = feed.NewPushFeed(log, 64)
		engineFeed = pushFeed
	default:
		engineFeed = feed.NewSimulator(feed.SimulatorConfig{
			Center:      geo.Point{Latitude: 13.0827, Longitude: 80.2707},
			Warmup:      cfg.FeedWarmup,
			MinInterval: cfg.FeedMinInterval,
			MaxInterval: cfg.FeedMaxInterval,
			Seed:        cfg.FeedSeed,
		}, validator, log, clock)
	}
	log.WithField("feed_mode", cfg.FeedMode).Info("Feed configured")

	// Движок оповещений
	engine := service.NewAlertEngine(log, settings, validator, proximity, disp, registry, metrics, engineFeed, pushFeed)
	go engine.Run(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(engine, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Маршрут метрик Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
