package models

import "time"

// ForecastPoint is a predicted AQI for a city on a future day
type ForecastPoint struct {
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Latitude     float64   `json:"lat"`
	Longitude    float64   `json:"lon"`
	ForecastDate time.Time `json:"forecast_date"`
	PredictedAQI int       `json:"predicted_aqi"`
	Confidence   float64   `json:"confidence"` // [0.75, 0.95)
}
