package webhook

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestPublish_PushesNotificationToQueue(t *testing.T) {
	mr, client := newTestRedis(t)
	publisher := NewRedisPublisher(client)

	notification := Notification{
		AlertID:            uuid.New(),
		Title:              "T. Nagar",
		Body:               "Armed robbery in progress",
		Category:           "violent",
		Priority:           "emergency",
		Icon:               "exclamation-triangle",
		RequireInteraction: true,
		Timestamp:          time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.Publish(context.Background(), notification))

	// Проверяем, что в очереди ровно одно уведомление с тем же содержимым
	payloads, err := mr.List(notificationQueueKey)
	require.NoError(t, err)
	require.Len(t, payloads, 1)

	var got Notification
	require.NoError(t, json.Unmarshal([]byte(payloads[0]), &got))
	assert.Equal(t, notification.AlertID, got.AlertID)
	assert.Equal(t, notification.Title, got.Title)
	assert.Equal(t, notification.Body, got.Body)
	assert.True(t, got.RequireInteraction)
	assert.Zero(t, got.AutoCloseSeconds)
}

func TestPublish_AutoCloseOmittedWhenZero(t *testing.T) {
	mr, client := newTestRedis(t)
	publisher := NewRedisPublisher(client)

	require.NoError(t, publisher.Publish(context.Background(), Notification{
		AlertID:  uuid.New(),
		Priority: "emergency",
	}))

	payloads, err := mr.List(notificationQueueKey)
	require.NoError(t, err)
	require.Len(t, payloads, 1)
	assert.NotContains(t, payloads[0], "auto_close_seconds")
}

func TestPublish_PreservesQueueOrder(t *testing.T) {
	mr, client := newTestRedis(t)
	publisher := NewRedisPublisher(client)

	first := uuid.New()
	second := uuid.New()
	require.NoError(t, publisher.Publish(context.Background(), Notification{AlertID: first}))
	require.NoError(t, publisher.Publish(context.Background(), Notification{AlertID: second}))

	// LPUSH кладет в голову: потребитель с BRPOP заберет first первым
	payload, err := mr.RPop(notificationQueueKey)
	require.NoError(t, err)
	assert.Contains(t, payload, first.String())
}

func TestPublish_RedisUnavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	publisher := NewRedisPublisher(client)
	mr.Close()

	err := publisher.Publish(context.Background(), Notification{AlertID: uuid.New()})

	assert.Error(t, err)
}
