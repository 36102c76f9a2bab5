package postgres

import (
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestPolygonText(t *testing.T) {
	t.Run("open ring is closed with the first vertex", func(t *testing.T) {
		got := polygonText([]domain.Coordinate{
			{Latitude: 35.0, Longitude: 139.0},
			{Latitude: 36.0, Longitude: 139.0},
			{Latitude: 36.0, Longitude: 140.0},
		})
		assert.Equal(t, "POLYGON((35.000000 139.000000,36.000000 139.000000,36.000000 140.000000,35.000000 139.000000))", got)
	})

	t.Run("closed ring is kept as is", func(t *testing.T) {
		got := polygonText([]domain.Coordinate{
			{Latitude: 35.0, Longitude: 139.0},
			{Latitude: 36.0, Longitude: 139.0},
			{Latitude: 35.0, Longitude: 139.0},
		})
		assert.Equal(t, "POLYGON((35.000000 139.000000,36.000000 139.000000,35.000000 139.000000))", got)
	})
}

func TestLocationHash(t *testing.T) {
	hash := locationHash(35.6581, 139.7017)
	assert.Len(t, hash, geohashPrecision)
	assert.Equal(t, hash, locationHash(35.6581, 139.7017))

	far := locationHash(-33.8688, 151.2093)
	assert.NotEqual(t, hash, far)
}
