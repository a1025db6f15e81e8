package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Feed Config
	FeedMode        string        `env:"FEED_MODE" envDefault:"simulator"`
	FeedSeed        int64         `env:"FEED_SEED" envDefault:"0"`
	FeedWarmup      time.Duration `env:"FEED_WARMUP" envDefault:"3s"`
	FeedMinInterval time.Duration `env:"FEED_MIN_INTERVAL" envDefault:"15s"`
	FeedMaxInterval time.Duration `env:"FEED_MAX_INTERVAL" envDefault:"45s"`

	// Engine defaults (runtime-mutable through Settings)
	MaxAlerts         int           `env:"MAX_ALERTS" envDefault:"50"`
	AlertTTL          time.Duration `env:"ALERT_TTL" envDefault:"10s"`
	ClusterRadiusPx   float64       `env:"CLUSTER_RADIUS_PX" envDefault:"50"`
	ProximityRadiusKm float64       `env:"PROXIMITY_RADIUS_KM" envDefault:"5"`
	AlertsEnabled     bool          `env:"ALERTS_ENABLED" envDefault:"true"`
	SoundEnabled      bool          `env:"SOUND_ENABLED" envDefault:"true"`

	// Subscriber location (optional; empty disables proximity filtering)
	SubscriberLat *float64 `env:"SUBSCRIBER_LAT"`
	SubscriberLng *float64 `env:"SUBSCRIBER_LNG"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		FeedMode:          getEnv("FEED_MODE", "simulator"),
		FeedSeed:          int64(getEnvAsInt("FEED_SEED", 0)),
		FeedWarmup:        getEnvAsDuration("FEED_WARMUP", 3*time.Second),
		FeedMinInterval:   getEnvAsDuration("FEED_MIN_INTERVAL", 15*time.Second),
		FeedMaxInterval:   getEnvAsDuration("FEED_MAX_INTERVAL", 45*time.Second),
		MaxAlerts:         getEnvAsInt("MAX_ALERTS", 50),
		AlertTTL:          getEnvAsDuration("ALERT_TTL", 10*time.Second),
		ClusterRadiusPx:   getEnvAsFloat("CLUSTER_RADIUS_PX", 50),
		ProximityRadiusKm: getEnvAsFloat("PROXIMITY_RADIUS_KM", 5),
		AlertsEnabled:     getEnvAsBool("ALERTS_ENABLED", true),
		SoundEnabled:      getEnvAsBool("SOUND_ENABLED", true),
		SubscriberLat:     getEnvAsFloatPtr("SUBSCRIBER_LAT"),
		SubscriberLng:     getEnvAsFloatPtr("SUBSCRIBER_LNG"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.FeedMinInterval > cfg.FeedMaxInterval {
		return nil, fmt.Errorf("FEED_MIN_INTERVAL must not exceed FEED_MAX_INTERVAL")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsFloatPtr возвращает указатель на float64 или nil, если переменная не задана
func getEnvAsFloatPtr(key string) *float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return &floatValue
		}
	}
	return nil
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
