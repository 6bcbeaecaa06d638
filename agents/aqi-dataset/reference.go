package aqidataset

import (
	"maps"
	"slices"

	"aqi-stack/internal/models"
)

// APIEndpoints are recorded in the dataset for the dashboard. They are never called here.
func APIEndpoints() map[string]string {
	return map[string]string{
		"openweathermap": "http://api.openweathermap.org/data/2.5/air_pollution",
		"aqicn":          "https://api.waqi.info/feed/",
		"waqi":           "https://api.waqi.info/v2/",
	}
}

var pollutantInfo = map[string]models.Pollutant{
	"PM2.5": {
		Name:          "Fine Particulate Matter",
		Unit:          "µg/m³",
		Description:   "Particles with diameter ≤ 2.5 micrometers",
		Sources:       []string{"Vehicle emissions", "Industrial processes", "Wildfires"},
		HealthEffects: []string{"Respiratory issues", "Cardiovascular problems", "Lung cancer"},
	},
	"PM10": {
		Name:          "Coarse Particulate Matter",
		Unit:          "µg/m³",
		Description:   "Particles with diameter ≤ 10 micrometers",
		Sources:       []string{"Dust storms", "Construction", "Road dust"},
		HealthEffects: []string{"Throat irritation", "Asthma", "Lung inflammation"},
	},
	"NO2": {
		Name:          "Nitrogen Dioxide",
		Unit:          "µg/m³",
		Description:   "Reddish-brown gas",
		Sources:       []string{"Vehicle emissions", "Power plants", "Industrial facilities"},
		HealthEffects: []string{"Respiratory infections", "Asthma", "Lung development issues"},
	},
	"O3": {
		Name:          "Ground-level Ozone",
		Unit:          "µg/m³",
		Description:   "Secondary pollutant formed by photochemical reactions",
		Sources:       []string{"Vehicle emissions + sunlight", "Industrial emissions"},
		HealthEffects: []string{"Chest pain", "Coughing", "Throat irritation"},
	},
	"CO": {
		Name:          "Carbon Monoxide",
		Unit:          "mg/m³",
		Description:   "Colorless, odorless gas",
		Sources:       []string{"Vehicle emissions", "Residential heating", "Industrial processes"},
		HealthEffects: []string{"Headaches", "Dizziness", "Reduced oxygen delivery"},
	},
	"SO2": {
		Name:          "Sulfur Dioxide",
		Unit:          "µg/m³",
		Description:   "Colorless gas with pungent odor",
		Sources:       []string{"Coal burning", "Industrial processes", "Volcanic emissions"},
		HealthEffects: []string{"Respiratory irritation", "Asthma", "Eye irritation"},
	},
}

// PollutantInfo returns a copy of the static pollutant reference table, keyed by display name
func PollutantInfo() map[string]models.Pollutant {
	info := maps.Clone(pollutantInfo)
	for k, p := range info {
		p.Sources = slices.Clone(p.Sources)
		p.HealthEffects = slices.Clone(p.HealthEffects)
		info[k] = p
	}
	return info
}
