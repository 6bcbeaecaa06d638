package cities

import (
	"math"
	"testing"

	"aqi-stack/internal/models"
	"aqi-stack/shared/config"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	if r.Len() != 10 {
		t.Fatalf("Expected 10 cities, got %d", r.Len())
	}

	tiers := map[string]models.PollutionTier{
		"Delhi":    models.TierHigh,
		"Beijing":  models.TierHigh,
		"Mumbai":   models.TierHigh,
		"Sydney":   models.TierLow,
		"New York": models.TierLow,
		"London":   models.TierTypical,
	}
	for name, want := range tiers {
		city, ok := r.Find(name)
		if !ok {
			t.Errorf("Expected %s in registry", name)
			continue
		}
		if city.Tier != want {
			t.Errorf("%s: expected tier %s, got %s", name, want, city.Tier)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	r := Default()
	all := r.All()
	all[0].Name = "Changed"

	if r.All()[0].Name != "New York" {
		t.Error("Mutating All() result changed the registry")
	}
}

func TestFind(t *testing.T) {
	r := Default()

	tests := []struct {
		query    string
		expected string
		found    bool
	}{
		{"Paris", "Paris", true},
		{"paris", "Paris", true},
		{"  TOKYO ", "Tokyo", true},
		{"são paulo", "São Paulo", true},
		{"Atlantis", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			city, ok := r.Find(tt.query)
			if ok != tt.found {
				t.Fatalf("Find(%q) found=%v, want %v", tt.query, ok, tt.found)
			}
			if city.Name != tt.expected {
				t.Errorf("Find(%q) = %q, want %q", tt.query, city.Name, tt.expected)
			}
		})
	}
}

func TestNearest(t *testing.T) {
	r := Default()

	tests := []struct {
		name     string
		lat, lon float64
		expected string
	}{
		{"Brooklyn", 40.6782, -73.9442, "New York"},
		{"Versailles", 48.8049, 2.1204, "Paris"},
		{"Yokohama", 35.4437, 139.6380, "Tokyo"},
		{"Melbourne", -37.8136, 144.9631, "Sydney"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, d, ok := r.Nearest(tt.lat, tt.lon)
			if !ok {
				t.Fatal("Expected a nearest city")
			}
			if city.Name != tt.expected {
				t.Errorf("Nearest(%.4f, %.4f) = %s, want %s", tt.lat, tt.lon, city.Name, tt.expected)
			}
			if d < 0 || math.IsInf(d, 0) {
				t.Errorf("Unexpected distance %.2f", d)
			}
		})
	}

	if _, _, ok := New(nil).Nearest(0, 0); ok {
		t.Error("Expected no nearest city for empty registry")
	}
}

func TestDistance(t *testing.T) {
	// London to Paris is roughly 344 km
	d := distance(51.5074, -0.1278, 48.8566, 2.3522)
	if math.Abs(d-344) > 5 {
		t.Errorf("London-Paris distance: expected ~344 km, got %.1f km", d)
	}

	if d := distance(10, 10, 10, 10); d != 0 {
		t.Errorf("Expected zero distance for identical points, got %.4f", d)
	}
}

func TestFromConfig(t *testing.T) {
	r, err := FromConfig(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r.Len() != 10 {
		t.Errorf("Expected default registry, got %d cities", r.Len())
	}

	r, err = FromConfig([]config.CityConfig{
		{Name: "Lagos", Country: "Nigeria", Latitude: 6.5244, Longitude: 3.3792, Tier: "high"},
		{Name: "Oslo", Country: "Norway", Latitude: 59.9139, Longitude: 10.7522},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("Expected 2 cities, got %d", r.Len())
	}
	all := r.All()
	if all[0].Tier != models.TierHigh || all[1].Tier != models.TierTypical {
		t.Errorf("Unexpected tiers: %s, %s", all[0].Tier, all[1].Tier)
	}

	if _, err := FromConfig([]config.CityConfig{{Name: "X", Tier: "bogus"}}); err == nil {
		t.Error("Expected error for unknown tier")
	}
}

func TestFromConfigRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		cfgs  []config.CityConfig
		valid bool
	}{
		{"same name", []config.CityConfig{
			{Name: "Lagos", Latitude: 6.5244, Longitude: 3.3792},
			{Name: "Lagos", Latitude: 9.0765, Longitude: 7.3986},
		}, false},
		{"name differs in case", []config.CityConfig{
			{Name: "Lagos", Latitude: 6.5244, Longitude: 3.3792},
			{Name: " LAGOS", Latitude: 9.0765, Longitude: 7.3986},
		}, false},
		{"same location", []config.CityConfig{
			{Name: "Lagos", Latitude: 6.5244, Longitude: 3.3792},
			{Name: "Eko", Latitude: 6.5250, Longitude: 3.3800},
		}, false},
		{"distinct cities", []config.CityConfig{
			{Name: "Lagos", Latitude: 6.5244, Longitude: 3.3792},
			{Name: "Abuja", Latitude: 9.0765, Longitude: 7.3986},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FromConfig(tt.cfgs)
			if tt.valid {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if r.Len() != len(tt.cfgs) {
					t.Errorf("Expected %d cities, got %d", len(tt.cfgs), r.Len())
				}
				return
			}
			if err == nil {
				t.Error("Expected error for duplicate city")
			}
		})
	}
}
