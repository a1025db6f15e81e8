package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLocation_KnownLandPoint(t *testing.T) {
	v := NewChennaiValidator()

	// Центр Ченнаи - заведомо валидная суша
	assert.True(t, v.IsValidLocation(13.0827, 80.2707))
}

func TestIsValidLocation_OutsideBounds(t *testing.T) {
	v := NewChennaiValidator()

	cases := []struct {
		name     string
		lat, lng float64
	}{
		{"north of bounds", 14.0, 80.2},
		{"south of bounds", 12.0, 80.2},
		{"east of bounds", 13.0, 81.0},
		{"west of bounds", 13.0, 79.5},
		{"far away", 20.0, 80.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, v.IsValidLocation(tc.lat, tc.lng))
		})
	}
}

func TestIsValidLocation_ExclusionZones(t *testing.T) {
	v := NewChennaiValidator()

	// Акватория Бенгальского залива внутри рабочей области
	assert.False(t, v.IsValidLocation(13.05, 80.32))
	// Устье Адьяра
	assert.False(t, v.IsValidLocation(13.01, 80.28))
	// Эннорский залив
	assert.False(t, v.IsValidLocation(13.22, 80.31))
}

func TestIsValidLocation_InclusiveBoundaries(t *testing.T) {
	bounds := Region{Name: "test", North: 14.0, South: 13.0, East: 81.0, West: 80.0}
	exclusion := Region{Name: "water", North: 14.0, South: 13.5, East: 81.0, West: 80.5}
	v := NewValidator(bounds, []Region{exclusion})

	// Точка ровно на границе рабочей области считается внутри
	assert.True(t, v.IsValidLocation(13.0, 80.0))

	// Точка на границе зоны исключения считается внутри зоны - отклоняется
	assert.False(t, v.IsValidLocation(13.5, 80.5))
}

func TestRegion_Contains(t *testing.T) {
	r := Region{North: 14.0, South: 13.0, East: 81.0, West: 80.0}

	assert.True(t, r.Contains(13.5, 80.5))
	assert.True(t, r.Contains(14.0, 81.0))
	assert.False(t, r.Contains(14.0001, 80.5))
	assert.False(t, r.Contains(13.5, 79.9999))
}
