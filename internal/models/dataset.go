package models

import "time"

// Pollutant is static reference information shown alongside readings
type Pollutant struct {
	Name          string   `json:"name"`
	Unit          string   `json:"unit"`
	Description   string   `json:"description"`
	Sources       []string `json:"sources"`
	HealthEffects []string `json:"health_effects"`
}

// CitySummary aggregates a city's historical window and forecast
type CitySummary struct {
	City          string  `json:"city"`
	Country       string  `json:"country"`
	AverageAQI    float64 `json:"average_aqi"`
	MinAQI        int     `json:"min_aqi"`
	MaxAQI        int     `json:"max_aqi"`
	LatestAQI     int     `json:"latest_aqi"`
	Level         string  `json:"level"`
	Color         string  `json:"color"`
	PM25SubIndex  int     `json:"pm25_sub_index"`
	ForecastTrend string  `json:"forecast_trend"` // improving, worsening or stable
}

// Metadata describes the generation run that produced a dataset
type Metadata struct {
	RunID          string    `json:"run_id"`
	GeneratedAt    time.Time `json:"generated_at"`
	RunDate        string    `json:"run_date"` // 2006-01-02
	HistoricalDays int       `json:"historical_days"`
	ForecastDays   int       `json:"forecast_days"`
	Seed           uint64    `json:"seed"`
}

// Dataset is the complete document consumed by the dashboard
type Dataset struct {
	HistoricalData []Reading            `json:"historical_data"`
	ForecastData   []ForecastPoint      `json:"forecast_data"`
	Cities         []City               `json:"cities"`
	APIEndpoints   map[string]string    `json:"api_endpoints"`
	PollutantInfo  map[string]Pollutant `json:"pollutant_info"`
	CitySummaries  []CitySummary        `json:"city_summaries"`
	Metadata       Metadata             `json:"metadata"`
}
