package pubsub

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestRegistry() *Registry {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewRegistry(logger)
}

func TestPublish_DeliveryInRegistrationOrder(t *testing.T) {
	registry := newTestRegistry()
	var order []int

	registry.Subscribe(EventNewAlert, func(Event) { order = append(order, 1) })
	registry.Subscribe(EventNewAlert, func(Event) { order = append(order, 2) })
	registry.Subscribe(EventNewAlert, func(Event) { order = append(order, 3) })

	registry.Publish(Event{Type: EventNewAlert})

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestPublish_PanicIsolatedFromOtherSubscribers(t *testing.T) {
	registry := newTestRegistry()
	var delivered []int

	registry.Subscribe(EventNewAlert, func(Event) { delivered = append(delivered, 1) })
	registry.Subscribe(EventNewAlert, func(Event) { panic("subscriber failure") })
	registry.Subscribe(EventNewAlert, func(Event) { delivered = append(delivered, 3) })

	// Паника второго подписчика не должна прервать доставку третьему
	assert.NotPanics(t, func() {
		registry.Publish(Event{Type: EventNewAlert})
	})
	assert.Equal(t, []int{1, 3}, delivered)
}

func TestPublish_OnlyMatchingEventType(t *testing.T) {
	registry := newTestRegistry()
	newAlerts := 0
	removed := 0

	registry.Subscribe(EventNewAlert, func(Event) { newAlerts++ })
	registry.Subscribe(EventAlertRemoved, func(Event) { removed++ })

	registry.Publish(Event{Type: EventNewAlert, AlertID: uuid.New()})
	registry.Publish(Event{Type: EventNewAlert, AlertID: uuid.New()})
	registry.Publish(Event{Type: EventAlertRemoved, AlertID: uuid.New()})

	assert.Equal(t, 2, newAlerts)
	assert.Equal(t, 1, removed)
}

func TestClear_RemovesAllSubscribersForType(t *testing.T) {
	registry := newTestRegistry()
	calls := 0

	registry.Subscribe(EventNewAlert, func(Event) { calls++ })
	registry.Subscribe(EventNewAlert, func(Event) { calls++ })
	assert.Equal(t, 2, registry.Len(EventNewAlert))

	registry.Clear(EventNewAlert)

	registry.Publish(Event{Type: EventNewAlert})
	assert.Zero(t, calls)
	assert.Zero(t, registry.Len(EventNewAlert))
}

func TestPublish_NoSubscribersIsNoop(t *testing.T) {
	registry := newTestRegistry()

	assert.NotPanics(t, func() {
		registry.Publish(Event{Type: EventPlaySound})
	})
}
