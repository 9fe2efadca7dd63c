package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371

// Point is a geographic coordinate in floating degrees.
type Point struct {
	Lat float64
	Lng float64
}

// DistanceKm returns the great-circle distance between two coordinates
// in kilometers, using the haversine formula.
//
// Inputs are not range-checked. Non-numeric coordinates propagate to a
// NaN result, which fails any "<= radius" comparison, so callers
// filtering by radius exclude such points instead of matching them.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceFrom returns the distance from p to the given coordinates.
func (p Point) DistanceFrom(lat, lng float64) float64 {
	return DistanceKm(p.Lat, p.Lng, lat, lng)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
