// Package cities holds the static city registry the generators draw from.
package cities

import (
	"fmt"
	"math"
	"strings"

	"aqi-stack/internal/models"
	"aqi-stack/shared/config"
)

var defaultCities = []models.City{
	{Name: "New York", Latitude: 40.7128, Longitude: -74.0060, Country: "USA", Tier: models.TierLow},
	{Name: "Los Angeles", Latitude: 34.0522, Longitude: -118.2437, Country: "USA", Tier: models.TierTypical},
	{Name: "London", Latitude: 51.5074, Longitude: -0.1278, Country: "UK", Tier: models.TierTypical},
	{Name: "Paris", Latitude: 48.8566, Longitude: 2.3522, Country: "France", Tier: models.TierTypical},
	{Name: "Tokyo", Latitude: 35.6762, Longitude: 139.6503, Country: "Japan", Tier: models.TierTypical},
	{Name: "Delhi", Latitude: 28.7041, Longitude: 77.1025, Country: "India", Tier: models.TierHigh},
	{Name: "Beijing", Latitude: 39.9042, Longitude: 116.4074, Country: "China", Tier: models.TierHigh},
	{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777, Country: "India", Tier: models.TierHigh},
	{Name: "São Paulo", Latitude: -23.5505, Longitude: -46.6333, Country: "Brazil", Tier: models.TierTypical},
	{Name: "Sydney", Latitude: -33.8688, Longitude: 151.2093, Country: "Australia", Tier: models.TierLow},
}

// Registry is an ordered, read-only list of cities
type Registry struct {
	cities []models.City
}

// Default returns the built-in ten-city registry
func Default() *Registry {
	return New(defaultCities)
}

// New copies cities into a registry so later changes to the slice are not observed
func New(cities []models.City) *Registry {
	c := make([]models.City, len(cities))
	copy(c, cities)
	return &Registry{cities: c}
}

// minSeparationKm is how close two configured cities may sit before they are
// treated as the same place.
const minSeparationKm = 1.0

// FromConfig builds a registry from configured cities, falling back to the
// built-in list when none are configured. Duplicate names (ignoring case) and
// cities within minSeparationKm of an earlier entry are rejected.
func FromConfig(cfgs []config.CityConfig) (*Registry, error) {
	if len(cfgs) == 0 {
		return Default(), nil
	}

	r := &Registry{cities: make([]models.City, 0, len(cfgs))}
	for _, c := range cfgs {
		tier, err := models.ParseTier(c.Tier)
		if err != nil {
			return nil, fmt.Errorf("city %s: %w", c.Name, err)
		}
		if _, dup := r.Find(c.Name); dup {
			return nil, fmt.Errorf("city %s: listed more than once", c.Name)
		}
		if near, d, ok := r.Nearest(c.Latitude, c.Longitude); ok && d < minSeparationKm {
			return nil, fmt.Errorf("city %s: %.2f km from %s", c.Name, d, near.Name)
		}
		r.cities = append(r.cities, models.City{
			Name:      strings.TrimSpace(c.Name),
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
			Country:   c.Country,
			Tier:      tier,
		})
	}
	return r, nil
}

// All returns a copy of the registry's cities in order
func (r *Registry) All() []models.City {
	c := make([]models.City, len(r.cities))
	copy(c, r.cities)
	return c
}

func (r *Registry) Len() int {
	return len(r.cities)
}

// Find looks up a city by name, ignoring case and surrounding whitespace
func (r *Registry) Find(name string) (models.City, bool) {
	name = strings.TrimSpace(name)
	for _, c := range r.cities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return models.City{}, false
}

// Nearest returns the registry city closest to the given coordinates and its
// distance in kilometers. ok is false for an empty registry.
func (r *Registry) Nearest(lat, lon float64) (city models.City, distanceKm float64, ok bool) {
	distanceKm = math.Inf(1)
	for _, c := range r.cities {
		d := distance(lat, lon, c.Latitude, c.Longitude)
		if d < distanceKm {
			city, distanceKm, ok = c, d, true
		}
	}
	return city, distanceKm, ok
}

// distance calculates the great-circle distance between two coordinates in kilometers
func distance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad

	a := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
