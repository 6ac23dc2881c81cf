package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMumbaiDelhi(t *testing.T) {
	mumbai := Point{Lat: 19.0760, Lon: 72.8777}
	delhi := Point{Lat: 28.7041, Lon: 77.1025}

	d := Haversine(mumbai, delhi)
	// Great-circle distance is roughly 1150 km.
	assert.InDelta(t, 1150, d, 30)
}

func TestHaversineSamePoint(t *testing.T) {
	p := Point{Lat: 12.9716, Lon: 77.5946}
	assert.Equal(t, 0.0, Haversine(p, p))
}

func TestHaversineSymmetric(t *testing.T) {
	a := Point{Lat: 13.0827, Lon: 80.2707}
	b := Point{Lat: 17.3850, Lon: 78.4867}
	assert.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-9)
}
