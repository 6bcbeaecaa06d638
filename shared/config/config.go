package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"aqi-stack/internal/models"
)

type Config struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Schedule   string           `yaml:"schedule"` // empty runs once
}

type DatasetConfig struct {
	OutputFile     string       `yaml:"output_file" env:"AQI_OUTPUT_FILE"`
	HistoricalDays int          `yaml:"historical_days"`
	ForecastDays   int          `yaml:"forecast_days"`
	Seed           uint64       `yaml:"seed"` // 0 seeds from the clock
	SampleSize     int          `yaml:"sample_size"`
	Cities         []CityConfig `yaml:"cities"`
}

// CityConfig overrides the built-in city registry when at least one is listed
type CityConfig struct {
	Name      string  `yaml:"name"`
	Country   string  `yaml:"country"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Tier      string  `yaml:"tier"`
}

type MonitoringConfig struct {
	HealthPort int `yaml:"health_port"`
}

const defaultConfigFile = "config.yaml"

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	explicit := configFile != ""
	if !explicit {
		configFile = defaultConfigFile
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		log.Printf("No %s found, using defaults", configFile)
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	if cfg.Dataset.OutputFile == "" {
		cfg.Dataset.OutputFile = os.Getenv("AQI_OUTPUT_FILE")
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Dataset.OutputFile == "" {
		c.Dataset.OutputFile = "air_quality_dataset.json"
	}
	if c.Dataset.HistoricalDays == 0 {
		c.Dataset.HistoricalDays = 30
	}
	if c.Dataset.ForecastDays == 0 {
		c.Dataset.ForecastDays = 5
	}
	if c.Dataset.SampleSize == 0 {
		c.Dataset.SampleSize = 3
	}
	if c.Monitoring.HealthPort == 0 {
		c.Monitoring.HealthPort = 8080
	}
}

func (c *Config) validate() error {
	if c.Dataset.HistoricalDays < 1 {
		return fmt.Errorf("dataset.historical_days must be at least 1, got %d", c.Dataset.HistoricalDays)
	}
	if c.Dataset.ForecastDays < 1 {
		return fmt.Errorf("dataset.forecast_days must be at least 1, got %d", c.Dataset.ForecastDays)
	}
	if c.Dataset.SampleSize < 0 {
		return fmt.Errorf("dataset.sample_size cannot be negative, got %d", c.Dataset.SampleSize)
	}
	for i, city := range c.Dataset.Cities {
		if city.Name == "" {
			return fmt.Errorf("dataset.cities[%d]: name is required", i)
		}
		if city.Latitude < -90 || city.Latitude > 90 {
			return fmt.Errorf("dataset.cities[%d] (%s): latitude %.4f out of range", i, city.Name, city.Latitude)
		}
		if city.Longitude < -180 || city.Longitude > 180 {
			return fmt.Errorf("dataset.cities[%d] (%s): longitude %.4f out of range", i, city.Name, city.Longitude)
		}
		if _, err := models.ParseTier(city.Tier); err != nil {
			return fmt.Errorf("dataset.cities[%d] (%s): %w", i, city.Name, err)
		}
	}
	if c.Monitoring.HealthPort < 1 || c.Monitoring.HealthPort > 65535 {
		return fmt.Errorf("monitoring.health_port %d out of range", c.Monitoring.HealthPort)
	}
	return nil
}
