package postgres

import (
	"fmt"
	"strings"

	"listing-service/internal/core/domain"

	"github.com/mmcloughlin/geohash"
)

const geohashPrecision = 12

// polygonText writes the nazotte ring as a WKT literal, one "lat lon" pair per
// vertex. PostGIS rejects open rings, so the first point is appended again
// when the caller did not close the ring.
func polygonText(coords []domain.Coordinate) string {
	points := make([]string, 0, len(coords)+1)
	for _, c := range coords {
		points = append(points, fmt.Sprintf("%f %f", c.Latitude, c.Longitude))
	}
	if coords[0] != coords[len(coords)-1] {
		first := coords[0]
		points = append(points, fmt.Sprintf("%f %f", first.Latitude, first.Longitude))
	}
	return fmt.Sprintf("POLYGON((%s))", strings.Join(points, ","))
}

// locationHash derives the write-time spatial key stored next to the point.
func locationHash(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, geohashPrecision)
}
