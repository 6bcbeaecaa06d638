package aqidataset

import (
	"math"
	"math/rand/v2"
	"time"

	"aqi-stack/internal/models"
)

// HistoricalDays is the default trailing window length
const HistoricalDays = 30

// GenerateHistorical produces one reading per city per day for the trailing
// window ending at now (offset 0 is now itself). Cities are emitted in order,
// each with its days from newest to oldest.
func GenerateHistorical(rng *rand.Rand, cities []models.City, now time.Time, days int) []models.Reading {
	readings := make([]models.Reading, 0, len(cities)*days)

	for _, city := range cities {
		for i := 0; i < days; i++ {
			readings = append(readings, generateReading(rng, city, now.AddDate(0, 0, -i)))
		}
	}

	return readings
}

func generateReading(rng *rand.Rand, city models.City, ts time.Time) models.Reading {
	base := historicalBaseAQI(rng, city.Tier)

	pm25 := uniform(rng, 10, math.Min(float64(base)*0.8, 200))
	pm10 := pm25 * uniform(rng, 1.2, 2.5)
	no2 := uniform(rng, 20, 100)
	o3 := uniform(rng, 50, 150)
	co := uniform(rng, 0.5, 15)
	so2 := uniform(rng, 5, 50)

	pm25, o3 = round2(pm25), round2(o3)

	return models.Reading{
		City:              city.Name,
		Country:           city.Country,
		Latitude:          city.Latitude,
		Longitude:         city.Longitude,
		Timestamp:         ts,
		AQI:               int(clamp(float64(base), minAQI, maxAQI)),
		PM25:              pm25,
		PM10:              round2(pm10),
		NO2:               round2(no2),
		O3:                o3,
		CO:                round2(co),
		SO2:               round2(so2),
		DominantPollutant: DominantPollutant(pm25, o3),
	}
}

// historicalBaseAQI draws the day's base AQI and applies the city's tier adjustment
func historicalBaseAQI(rng *rand.Rand, tier models.PollutionTier) int {
	base := randInt(rng, 50, 150)

	switch tier {
	case models.TierHigh:
		base += randInt(rng, 20, 80)
	case models.TierLow:
		base = max(20, base-randInt(rng, 20, 40))
	}

	return base
}

// DominantPollutant applies the fixed priority rule: PM2.5 above 35, then O3
// above 100, otherwise NO2. The magnitudes of NO2 and the other pollutants are
// not compared. Callers pass the published (rounded) values so the rule holds
// when re-checked against the saved document.
func DominantPollutant(pm25, o3 float64) string {
	if pm25 > 35 {
		return models.PollutantPM25
	} else if o3 > 100 {
		return models.PollutantO3
	}
	return models.PollutantNO2
}
