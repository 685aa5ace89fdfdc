package market

import (
	"math"
	"sort"
)

const earthRadiusKm = 6371

// Haversine returns the great-circle distance in kilometers between
// two coordinates.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// WithDistances returns a copy of the markets decorated with the
// distance from the given coordinate. The input slice is not modified.
func WithDistances(markets []Market, lat, lon float64) []Market {
	out := make([]Market, len(markets))
	for i, m := range markets {
		d := Haversine(lat, lon, m.Location.Latitude, m.Location.Longitude)
		m.Distance = &d
		out[i] = m
	}
	return out
}

// SortByDistance orders markets nearest first. Markets without a
// computed distance sort last, keeping their relative order.
func SortByDistance(markets []Market) {
	sort.SliceStable(markets, func(i, j int) bool {
		di, dj := markets[i].Distance, markets[j].Distance
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})
}
