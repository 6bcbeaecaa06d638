package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqi-stack/internal/models"
)

func sampleDataset() *models.Dataset {
	now := time.Date(2025, 6, 23, 10, 30, 0, 0, time.UTC)
	health := &models.HealthInfo{
		Level:           "Moderate",
		Color:           "#ffff00",
		Description:     "Air quality is acceptable for most people.",
		Recommendations: []string{"Generally safe for outdoor activities"},
	}

	return &models.Dataset{
		HistoricalData: []models.Reading{
			{City: "London", Country: "UK", Latitude: 51.5074, Longitude: -0.1278, Timestamp: now, AQI: 72, PM25: 22.5, PM10: 40.1, NO2: 33.3, O3: 80, CO: 1.2, SO2: 7.7, DominantPollutant: "no2", HealthInfo: health},
			{City: "London", Country: "UK", Latitude: 51.5074, Longitude: -0.1278, Timestamp: now.AddDate(0, 0, -1), AQI: 130, PM25: 60.25, PM10: 99.9, NO2: 50, O3: 120, CO: 3.4, SO2: 12, DominantPollutant: "pm25"},
		},
		ForecastData: []models.ForecastPoint{
			{City: "London", Country: "UK", Latitude: 51.5074, Longitude: -0.1278, ForecastDate: now.AddDate(0, 0, 1), PredictedAQI: 75, Confidence: 0.81},
		},
		Cities:        []models.City{{Name: "London", Latitude: 51.5074, Longitude: -0.1278, Country: "UK", Tier: models.TierTypical}},
		APIEndpoints:  map[string]string{"waqi": "https://api.waqi.info/v2/"},
		PollutantInfo: map[string]models.Pollutant{"NO2": {Name: "Nitrogen Dioxide", Unit: "µg/m³"}},
		CitySummaries: []models.CitySummary{{City: "London", Country: "UK", AverageAQI: 101, MinAQI: 72, MaxAQI: 130, LatestAQI: 72}},
		Metadata:      models.Metadata{RunID: "run-1", GeneratedAt: now, RunDate: "2025-06-23", HistoricalDays: 2, ForecastDays: 1, Seed: 7},
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "air_quality_dataset.json")
	df := NewDatasetFile(path)
	original := sampleDataset()

	require.NoError(t, df.Save(original))

	loaded, err := df.Load()
	require.NoError(t, err)

	assert.Len(t, loaded.HistoricalData, len(original.HistoricalData))
	assert.Len(t, loaded.ForecastData, len(original.ForecastData))
	assert.Len(t, loaded.Cities, len(original.Cities))
	assert.Equal(t, original.APIEndpoints, loaded.APIEndpoints)
	assert.Equal(t, original.Metadata.RunID, loaded.Metadata.RunID)
	assert.True(t, original.Metadata.GeneratedAt.Equal(loaded.Metadata.GeneratedAt))

	require.NotNil(t, loaded.HistoricalData[0].HealthInfo)
	assert.Equal(t, "Moderate", loaded.HistoricalData[0].HealthInfo.Level)
	assert.Nil(t, loaded.HistoricalData[1].HealthInfo)
	assert.Equal(t, models.TierTypical, loaded.Cities[0].Tier)
}

func TestSaveWritesExpectedKeys(t *testing.T) {
	df := NewDatasetFile(filepath.Join(t.TempDir(), "out.json"))
	require.NoError(t, df.Save(sampleDataset()))

	keys, err := df.TopLevelKeys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"historical_data", "forecast_data", "cities", "api_endpoints",
		"pollutant_info", "city_summaries", "metadata",
	}, keys)

	data, err := os.ReadFile(df.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"historical_data\": [")
	assert.Contains(t, string(data), `"dominant_pollutant": "pm25"`)
	// health_info is omitted on readings that do not carry it
	assert.Equal(t, 1, strings.Count(string(data), `"health_info"`))
}

func TestSaveOverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	df := NewDatasetFile(filepath.Join(dir, "out.json"))

	first := sampleDataset()
	require.NoError(t, df.Save(first))

	second := sampleDataset()
	second.HistoricalData = second.HistoricalData[:1]
	require.NoError(t, df.Save(second))

	loaded, err := df.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.HistoricalData, 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveNilDataset(t *testing.T) {
	df := NewDatasetFile(filepath.Join(t.TempDir(), "out.json"))
	assert.Error(t, df.Save(nil))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewDatasetFile(filepath.Join(dir, "missing.json")).Load()
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = NewDatasetFile(bad).Load()
	assert.Error(t, err)

	_, err = NewDatasetFile(bad).TopLevelKeys()
	assert.Error(t, err)
}
