// Package rank orders and filters a point set against a caller position.
// It is a pure function of its inputs; callers may invoke it concurrently.
package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/Emeralddossou/detecporc/internal/geo"
	"github.com/Emeralddossou/detecporc/internal/models"
)

// Rank annotates each point with its distance from origin (nil origin
// leaves distances nil), drops points failing the filters, and sorts the
// rest by ascending distance. Without an origin the repository order is
// preserved. The sort is stable, so points with equal distances keep
// their original relative order.
func Rank(points []models.Point, origin *models.Position, filters models.Filters) []models.RankedPoint {
	query := strings.ToLower(filters.Query)

	maxMeters := math.Inf(1)
	limited := filters.MaxDistanceKm != nil &&
		!math.IsNaN(*filters.MaxDistanceKm) && !math.IsInf(*filters.MaxDistanceKm, 0)
	if limited {
		maxMeters = *filters.MaxDistanceKm * 1000
	}

	ranked := make([]models.RankedPoint, 0, len(points))
	for _, p := range points {
		var distance *float64
		if origin != nil {
			d := geo.Haversine(origin.Lat, origin.Lng, p.Lat, p.Lng)
			distance = &d
		}

		if query != "" {
			haystack := strings.ToLower(p.Name + " " + p.Address + " " + p.Comment)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		if limited {
			// An unknown distance cannot satisfy a distance cap.
			if distance == nil || *distance > maxMeters {
				continue
			}
		}

		ranked = append(ranked, models.RankedPoint{Point: p, Distance: distance})
	}

	if origin != nil {
		sort.SliceStable(ranked, func(i, j int) bool {
			return *ranked[i].Distance < *ranked[j].Distance
		})
	}
	return ranked
}
