package aqidataset

import (
	"math"
	"time"

	"github.com/google/uuid"

	"aqi-stack/internal/models"
)

const runDateLayout = "2006-01-02"

// Forecast trend labels
const (
	TrendImproving = "improving"
	TrendWorsening = "worsening"
	TrendStable    = "stable"
)

// trendThreshold is the AQI change between the latest reading and the last
// forecast point needed to call a trend improving or worsening
const trendThreshold = 10

// Run describes a single generation run
type Run struct {
	Now            time.Time // the run's single clock read; its calendar date is the run date
	Seed           uint64
	HistoricalDays int
	ForecastDays   int
}

// Assemble combines generated readings and forecasts with the city registry
// and static reference data. Readings dated on the run date get health info
// attached; the historical slice is modified in place.
func Assemble(run Run, historical []models.Reading, forecast []models.ForecastPoint, cities []models.City) *models.Dataset {
	AttachHealthInfo(historical, run.Now)

	return &models.Dataset{
		HistoricalData: historical,
		ForecastData:   forecast,
		Cities:         cities,
		APIEndpoints:   APIEndpoints(),
		PollutantInfo:  PollutantInfo(),
		CitySummaries:  Summarize(cities, historical, forecast),
		Metadata: models.Metadata{
			RunID:          uuid.NewString(),
			GeneratedAt:    run.Now,
			RunDate:        run.Now.Format(runDateLayout),
			HistoricalDays: run.HistoricalDays,
			ForecastDays:   run.ForecastDays,
			Seed:           run.Seed,
		},
	}
}

// AttachHealthInfo classifies every reading that falls on runDate's calendar
// day (in runDate's location) and returns how many were augmented.
func AttachHealthInfo(readings []models.Reading, runDate time.Time) int {
	augmented := 0
	for i := range readings {
		if !sameDay(readings[i].Timestamp, runDate) {
			continue
		}
		info := Classify(readings[i].AQI)
		readings[i].HealthInfo = &info
		augmented++
	}
	return augmented
}

func sameDay(ts, day time.Time) bool {
	y1, m1, d1 := ts.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Summarize builds one summary per city, in registry order. Cities with no
// readings get a zero-value summary carrying only their name and country.
func Summarize(cities []models.City, historical []models.Reading, forecast []models.ForecastPoint) []models.CitySummary {
	byCity := make(map[string][]models.Reading, len(cities))
	for _, r := range historical {
		byCity[r.City] = append(byCity[r.City], r)
	}
	lastForecast := make(map[string]models.ForecastPoint, len(cities))
	for _, f := range forecast {
		if prev, ok := lastForecast[f.City]; !ok || f.ForecastDate.After(prev.ForecastDate) {
			lastForecast[f.City] = f
		}
	}

	summaries := make([]models.CitySummary, 0, len(cities))
	for _, city := range cities {
		summary := models.CitySummary{City: city.Name, Country: city.Country}

		readings := byCity[city.Name]
		if len(readings) == 0 {
			summaries = append(summaries, summary)
			continue
		}

		latest := readings[0]
		summary.MinAQI, summary.MaxAQI = readings[0].AQI, readings[0].AQI
		var aqiSum, pm25Sum float64
		for _, r := range readings {
			aqiSum += float64(r.AQI)
			pm25Sum += r.PM25
			summary.MinAQI = min(summary.MinAQI, r.AQI)
			summary.MaxAQI = max(summary.MaxAQI, r.AQI)
			if r.Timestamp.After(latest.Timestamp) {
				latest = r
			}
		}
		n := float64(len(readings))

		health := Classify(latest.AQI)
		summary.AverageAQI = math.Round(aqiSum/n*10) / 10
		summary.LatestAQI = latest.AQI
		summary.Level = health.Level
		summary.Color = health.Color
		summary.PM25SubIndex = PM25SubIndex(pm25Sum / n)
		summary.ForecastTrend = TrendStable
		if f, ok := lastForecast[city.Name]; ok {
			summary.ForecastTrend = forecastTrend(latest.AQI, f.PredictedAQI)
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

func forecastTrend(current, predicted int) string {
	switch delta := predicted - current; {
	case delta <= -trendThreshold:
		return TrendImproving
	case delta >= trendThreshold:
		return TrendWorsening
	default:
		return TrendStable
	}
}
