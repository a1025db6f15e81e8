package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	notificationQueueKey = "alert_notifications"
)

// Notification - полезная нагрузка платформенного уведомления об оповещении.
// Emergency-уведомления требуют явного закрытия пользователем, остальные
// закрываются автоматически через AutoCloseSeconds.
type Notification struct {
	AlertID            uuid.UUID `json:"alert_id"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	Category           string    `json:"category"`
	Priority           string    `json:"priority"`
	Icon               string    `json:"icon"`
	RequireInteraction bool      `json:"require_interaction"`
	AutoCloseSeconds   int       `json:"auto_close_seconds,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}

// Publisher - интерфейс для публикации уведомлений
type Publisher interface {
	Publish(ctx context.Context, notification Notification) error
}

// RedisPublisher - реализация Publisher, использующая очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует уведомление в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, notification Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// Используем LPUSH для добавления уведомления в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification to Redis: %w", err)
	}
	return nil
}
