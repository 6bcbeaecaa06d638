package aqidataset

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"slices"
	"time"

	"aqi-stack/internal/cities"
	"aqi-stack/internal/models"
	"aqi-stack/shared/config"
	"aqi-stack/shared/scheduler"
	"aqi-stack/shared/storage"
)

// DatasetMetrics represents the metrics collected during a generation run
type DatasetMetrics struct {
	HistoricalRecords int    `json:"historical_records"`
	ForecastRecords   int    `json:"forecast_records"`
	Cities            int    `json:"cities"`
	HealthAugmented   int    `json:"health_augmented"`
	OutputFile        string `json:"output_file"`
}

// GetSummary implements the scheduler.Metrics interface
func (m DatasetMetrics) GetSummary() string {
	return fmt.Sprintf("%d historical and %d forecast records for %d cities (%d with health info) written to %s",
		m.HistoricalRecords, m.ForecastRecords, m.Cities, m.HealthAugmented, m.OutputFile)
}

// DatasetAgent implements the scheduler.Agent interface
type DatasetAgent struct {
	config   *config.Config
	registry *cities.Registry
	output   *storage.DatasetFile
	console  io.Writer
	now      func() time.Time
}

func NewDatasetAgent(cfg *config.Config) *DatasetAgent {
	return &DatasetAgent{
		config:  cfg,
		console: os.Stdout,
		now:     time.Now,
	}
}

func (d *DatasetAgent) Name() string {
	return "Air Quality Dataset Generator"
}

func (d *DatasetAgent) Initialize() error {
	log.Printf("Initializing %s...", d.Name())

	if d.registry == nil {
		registry, err := cities.FromConfig(d.config.Dataset.Cities)
		if err != nil {
			return fmt.Errorf("failed to build city registry: %w", err)
		}
		d.registry = registry
		log.Printf("City registry initialized (%d cities)", registry.Len())
	}

	if d.registry.Len() == 0 {
		return fmt.Errorf("city registry is empty")
	}

	if d.output == nil {
		if d.config.Dataset.OutputFile == "" {
			return fmt.Errorf("output file must be configured (dataset.output_file)")
		}
		d.output = storage.NewDatasetFile(d.config.Dataset.OutputFile)
	}

	log.Printf("Configured for %d historical days, %d forecast days, output %s",
		d.config.Dataset.HistoricalDays, d.config.Dataset.ForecastDays, d.output.Path())

	return nil
}

// Generate builds a complete dataset for a run at now. The same seed and now
// always produce the same readings and forecasts.
func (d *DatasetAgent) Generate(now time.Time, seed uint64) *models.Dataset {
	rng := rand.New(rand.NewPCG(seed, seed))
	cityList := d.registry.All()

	historical := GenerateHistorical(rng, cityList, now, d.config.Dataset.HistoricalDays)
	forecast := GenerateForecast(rng, cityList, now, d.config.Dataset.ForecastDays)

	return Assemble(Run{
		Now:            now,
		Seed:           seed,
		HistoricalDays: d.config.Dataset.HistoricalDays,
		ForecastDays:   d.config.Dataset.ForecastDays,
	}, historical, forecast, cityList)
}

// documentKeys are the root keys the dashboard reads from the saved document.
var documentKeys = []string{
	"historical_data",
	"forecast_data",
	"cities",
	"api_endpoints",
	"pollutant_info",
	"city_summaries",
	"metadata",
}

// verifySaved re-reads the written document and checks every root key is present.
func verifySaved(file *storage.DatasetFile) error {
	keys, err := file.TopLevelKeys()
	if err != nil {
		return fmt.Errorf("failed to verify saved dataset: %w", err)
	}
	for _, want := range documentKeys {
		if !slices.Contains(keys, want) {
			return fmt.Errorf("saved dataset %s is missing key %q", file.Path(), want)
		}
	}
	return nil
}

func (d *DatasetAgent) RunOnce(ctx context.Context, events *scheduler.AgentEvents) error {
	startTime := time.Now()

	if err := ctx.Err(); err != nil {
		return err
	}

	// One clock read per run: the run date used for health info is derived from it.
	now := d.now()
	seed := d.config.Dataset.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}

	log.Printf("Generating dataset for %s (seed %d)...", now.Format(runDateLayout), seed)
	dataset := d.Generate(now, seed)

	metrics := DatasetMetrics{
		HistoricalRecords: len(dataset.HistoricalData),
		ForecastRecords:   len(dataset.ForecastData),
		Cities:            len(dataset.Cities),
		OutputFile:        d.output.Path(),
	}
	for _, r := range dataset.HistoricalData {
		if r.HealthInfo != nil {
			metrics.HealthAugmented++
		}
	}

	if err := d.output.Save(dataset); err != nil {
		if events != nil && events.OnCriticalFailure != nil {
			events.OnCriticalFailure(fmt.Errorf("failed to save dataset: %w", err), time.Since(startTime))
		}
		return fmt.Errorf("failed to save dataset: %w", err)
	}
	if err := verifySaved(d.output); err != nil {
		if events != nil && events.OnCriticalFailure != nil {
			events.OnCriticalFailure(err, time.Since(startTime))
		}
		return err
	}
	log.Printf("Dataset saved to %s", d.output.Path())

	if err := WriteReport(d.console, dataset, d.config.Dataset.SampleSize); err != nil {
		log.Printf("Warning: Failed to write console report: %v", err)
	}

	duration := time.Since(startTime)
	if events != nil && events.OnSuccess != nil {
		events.OnSuccess(metrics, duration)
	}

	log.Printf("Dataset generation complete: %s", metrics.GetSummary())

	return nil
}
