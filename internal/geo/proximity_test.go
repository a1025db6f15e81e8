package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine_Symmetric(t *testing.T) {
	d1 := Haversine(13.0, 80.2, 13.5, 80.2)
	d2 := Haversine(13.5, 80.2, 13.0, 80.2)

	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversine_ZeroForIdenticalPoints(t *testing.T) {
	assert.Zero(t, Haversine(13.0827, 80.2707, 13.0827, 80.2707))
	assert.Greater(t, Haversine(13.0827, 80.2707, 13.0828, 80.2707), 0.0)
}

func TestHaversine_KnownDistance(t *testing.T) {
	// Полградуса широты - примерно 55.6 км
	d := Haversine(13.0, 80.2, 13.5, 80.2)

	assert.InDelta(t, 55.6, d, 0.5)
}

func TestProximityFilter_NoSubscriberAcceptsAll(t *testing.T) {
	f := NewProximityFilter(nil)

	result := f.Check(13.5, 80.2, 5)

	assert.True(t, result.Accepted)
	assert.Nil(t, result.DistanceKm)
}

func TestProximityFilter_WithinRadius(t *testing.T) {
	f := NewProximityFilter(&Point{Latitude: 13.0, Longitude: 80.2})

	result := f.Check(13.01, 80.2, 5)

	require.NotNil(t, result.DistanceKm)
	assert.True(t, result.Accepted)
	assert.Less(t, *result.DistanceKm, 5.0)
}

func TestProximityFilter_OutOfRange(t *testing.T) {
	// Подписчик в (13.0, 80.2), инцидент в ~55 км - за пределами 5 км
	f := NewProximityFilter(&Point{Latitude: 13.0, Longitude: 80.2})

	result := f.Check(13.5, 80.2, 5)

	require.NotNil(t, result.DistanceKm)
	assert.False(t, result.Accepted)
	assert.InDelta(t, 55.6, *result.DistanceKm, 0.5)
}
