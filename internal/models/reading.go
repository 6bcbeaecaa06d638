package models

import "time"

// Dominant pollutant tags
const (
	PollutantPM25 = "pm25"
	PollutantO3   = "o3"
	PollutantNO2  = "no2"
)

// Reading is one synthetic daily air quality observation for a city
type Reading struct {
	City              string      `json:"city"`
	Country           string      `json:"country"`
	Latitude          float64     `json:"lat"`
	Longitude         float64     `json:"lon"`
	Timestamp         time.Time   `json:"timestamp"`
	AQI               int         `json:"aqi"`
	PM25              float64     `json:"pm25"` // µg/m³
	PM10              float64     `json:"pm10"` // µg/m³
	NO2               float64     `json:"no2"`  // µg/m³
	O3                float64     `json:"o3"`   // µg/m³
	CO                float64     `json:"co"`   // mg/m³
	SO2               float64     `json:"so2"`  // µg/m³
	DominantPollutant string      `json:"dominant_pollutant"`
	HealthInfo        *HealthInfo `json:"health_info,omitempty"` // only set on run-date readings
}

// HealthInfo is the health guidance for an AQI value
type HealthInfo struct {
	Level           string   `json:"level"`
	Color           string   `json:"color"` // hex, e.g. "#00e400"
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}
