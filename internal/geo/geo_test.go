package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineSymmetric(t *testing.T) {
	d1 := Haversine(6.4969, 2.6036, 6.5100, 2.6070)
	d2 := Haversine(6.5100, 2.6070, 6.4969, 2.6036)
	assert.Equal(t, d1, d2)
	assert.Greater(t, d1, 0.0)
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	assert.Zero(t, Haversine(6.4969, 2.6036, 6.4969, 2.6036))
}

func TestHaversinePortoNovoExample(t *testing.T) {
	// Roughly 1.5 km between the reference coordinates.
	d := Haversine(6.4969, 2.6036, 6.5100, 2.6070)
	assert.InDelta(t, 1500, d, 200)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "412 m", FormatDistance(412.4))
	assert.Equal(t, "999 m", FormatDistance(999.4))
	assert.Equal(t, "1.00 km", FormatDistance(1000))
	assert.Equal(t, "1.24 km", FormatDistance(1240))
}

func TestTravelMinutes(t *testing.T) {
	// 5 km on foot at 5 km/h is an hour.
	assert.InDelta(t, 60, TravelMinutes(5000, WalkingSpeedKmh), 1e-9)
	// 25 km by scooter at 25 km/h is an hour too.
	assert.InDelta(t, 60, TravelMinutes(25000, ScooterSpeedKmh), 1e-9)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "12 min", FormatDuration(12.3))
	assert.Equal(t, "59 min", FormatDuration(59.4))
	assert.Equal(t, "1 h 0 min", FormatDuration(60))
	assert.Equal(t, "1 h 5 min", FormatDuration(65.2))
	assert.Equal(t, "2 h 30 min", FormatDuration(150))
}
