package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHaversineZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, CalculateHaversineDistance(-6.2, 106.816666, -6.2, 106.816666))
}

func TestHaversineSymmetric(t *testing.T) {
	ab := CalculateHaversineDistance(-6.2, 106.8, -6.3, 106.9)
	ba := CalculateHaversineDistance(-6.3, 106.9, -6.2, 106.8)
	assert.InDelta(t, ab, ba, 1e-6)
}

func TestHaversineMonotonicWithSeparation(t *testing.T) {
	prev := 0.0
	for _, dLat := range []float64{0.0001, 0.001, 0.01, 0.1, 1, 10} {
		d := CalculateHaversineDistance(0, 0, dLat, 0)
		assert.Greater(t, d, prev)
		prev = d
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// one degree of latitude is ~111.19 km on a 6371 km sphere
	assert.InDelta(t, 111195, CalculateHaversineDistance(0, 0, 1, 0), 1)
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 4.6, RoundHours(4.599999))
	assert.Equal(t, 4.57, RoundHours(4.566667))
	assert.Equal(t, 0.0, RoundHours(0))
}

func TestHoursBetween(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	assert.InDelta(t, 4.6, HoursBetween(start, start.Add(4*time.Hour+36*time.Minute)), 1e-9)
}
