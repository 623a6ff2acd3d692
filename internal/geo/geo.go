// Package geo holds the pure distance and duration math. No state, safe
// for unlimited concurrent use.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMeters approximates Earth as a sphere.
const EarthRadiusMeters = 6371000.0

// Travel speeds used for duration estimates.
const (
	WalkingSpeedKmh = 5.0
	ScooterSpeedKmh = 25.0
)

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance in meters between two
// lat/lng pairs.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

// FormatDistance renders meters for display: whole meters under 1 km,
// kilometers with two decimals at or above it.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}

// TravelMinutes estimates travel time in minutes over the given distance
// at the given speed.
func TravelMinutes(meters, speedKmh float64) float64 {
	return meters / 1000 / speedKmh * 60
}

// FormatDuration renders minutes for display, rounded to the nearest
// minute; one hour and above renders as "H h M min".
func FormatDuration(minutes float64) string {
	total := int(math.Round(minutes))
	if total >= 60 {
		return fmt.Sprintf("%d h %d min", total/60, total%60)
	}
	return fmt.Sprintf("%d min", total)
}
