package aqidataset

import "aqi-stack/internal/models"

// Health levels, from cleanest to most polluted
const (
	LevelGood               = "Good"
	LevelModerate           = "Moderate"
	LevelUnhealthySensitive = "Unhealthy for Sensitive Groups"
	LevelUnhealthy          = "Unhealthy"
	LevelVeryUnhealthy      = "Very Unhealthy"
	LevelHazardous          = "Hazardous"
)

// healthBand is an inclusive upper AQI bound and the guidance up to it
type healthBand struct {
	upper int
	info  models.HealthInfo
}

var healthBands = []healthBand{
	{50, models.HealthInfo{
		Level:       LevelGood,
		Color:       "#00e400",
		Description: "Air quality is satisfactory, and air pollution poses little or no risk.",
		Recommendations: []string{
			"Enjoy outdoor activities",
			"Perfect time for exercise outdoors",
			"No health precautions needed",
		},
	}},
	{100, models.HealthInfo{
		Level:       LevelModerate,
		Color:       "#ffff00",
		Description: "Air quality is acceptable for most people.",
		Recommendations: []string{
			"Unusually sensitive people should consider reducing prolonged outdoor exertion",
			"Generally safe for outdoor activities",
			"Monitor symptoms if you're sensitive to air pollution",
		},
	}},
	{150, models.HealthInfo{
		Level:       LevelUnhealthySensitive,
		Color:       "#ff7e00",
		Description: "Members of sensitive groups may experience health effects.",
		Recommendations: []string{
			"People with respiratory or heart disease should limit prolonged outdoor exertion",
			"Children and elderly should reduce outdoor activities",
			"Consider wearing a mask outdoors",
		},
	}},
	{200, models.HealthInfo{
		Level:       LevelUnhealthy,
		Color:       "#ff0000",
		Description: "Everyone may begin to experience health effects.",
		Recommendations: []string{
			"Everyone should limit prolonged outdoor exertion",
			"Sensitive groups should avoid outdoor activities",
			"Close windows and use air purifiers indoors",
			"Wear N95 masks when going outside",
		},
	}},
	{300, models.HealthInfo{
		Level:       LevelVeryUnhealthy,
		Color:       "#8f3f97",
		Description: "Health alert: everyone may experience serious health effects.",
		Recommendations: []string{
			"Everyone should avoid outdoor exertion",
			"Stay indoors with windows closed",
			"Use air purifiers",
			"Seek medical attention if experiencing symptoms",
		},
	}},
}

var hazardous = models.HealthInfo{
	Level:       LevelHazardous,
	Color:       "#7e0023",
	Description: "Emergency conditions. The entire population is affected.",
	Recommendations: []string{
		"Everyone must avoid outdoor activities",
		"Stay indoors with all windows and doors sealed",
		"Use high-efficiency air purifiers",
		"Seek immediate medical attention for any symptoms",
	},
}

// Classify maps an AQI value to its health guidance. Bands are
// 0-50, 51-100, 101-150, 151-200, 201-300 and 301 upward; values below zero
// are treated as Good.
func Classify(aqi int) models.HealthInfo {
	for _, b := range healthBands {
		if aqi <= b.upper {
			return cloneHealthInfo(b.info)
		}
	}
	return cloneHealthInfo(hazardous)
}

func cloneHealthInfo(h models.HealthInfo) models.HealthInfo {
	h.Recommendations = append([]string(nil), h.Recommendations...)
	return h
}
