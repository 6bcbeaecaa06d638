package aqidataset

import (
	"math/rand/v2"
	"time"

	"aqi-stack/internal/models"
)

// ForecastDays is the default forecast horizon, starting tomorrow
const ForecastDays = 5

const (
	forecastFloor = 20
	forecastCeil  = maxAQI
)

// walk is the per-city forecast state: the current AQI estimate
type walk struct {
	aqi float64
}

// step advances the estimate by one day of trend plus noise, clamped to the forecast bounds
func (w walk) step(rng *rand.Rand) walk {
	trend := uniform(rng, -5, 5)
	noise := uniform(rng, -10, 10)
	return walk{aqi: clamp(w.aqi+trend+noise, forecastFloor, forecastCeil)}
}

// GenerateForecast produces days forecast points per city, for now+1 through
// now+days. Each city's points come from a random walk seeded with a fresh
// starting AQI; points within a city depend on the previous day's value.
func GenerateForecast(rng *rand.Rand, cities []models.City, now time.Time, days int) []models.ForecastPoint {
	points := make([]models.ForecastPoint, 0, len(cities)*days)

	for _, city := range cities {
		w := walk{aqi: float64(forecastStartAQI(rng, city.Tier))}

		for d := 1; d <= days; d++ {
			w = w.step(rng)

			points = append(points, models.ForecastPoint{
				City:         city.Name,
				Country:      city.Country,
				Latitude:     city.Latitude,
				Longitude:    city.Longitude,
				ForecastDate: now.AddDate(0, 0, d),
				PredictedAQI: int(w.aqi),
				Confidence:   uniform(rng, 0.75, 0.95),
			})
		}
	}

	return points
}

func forecastStartAQI(rng *rand.Rand, tier models.PollutionTier) int {
	start := randInt(rng, 50, 150)
	if tier == models.TierHigh {
		start += randInt(rng, 20, 60)
	}
	return start
}
