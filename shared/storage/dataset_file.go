package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"aqi-stack/internal/models"
)

// DatasetFile reads and writes the generated dataset document
type DatasetFile struct {
	filePath string
}

// NewDatasetFile returns a DatasetFile for path. Nothing is touched on disk until Save.
func NewDatasetFile(path string) *DatasetFile {
	return &DatasetFile{filePath: path}
}

func (df *DatasetFile) Path() string {
	return df.filePath
}

// Save writes the dataset as two-space indented JSON, replacing any previous
// document. The write goes to a temporary file that is renamed into place so
// readers never see a partial document.
func (df *DatasetFile) Save(dataset *models.Dataset) error {
	if dataset == nil {
		return fmt.Errorf("dataset cannot be nil")
	}

	dir := filepath.Dir(df.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.CreateTemp(dir, filepath.Base(df.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	tmpPath := file.Name()
	defer os.Remove(tmpPath)

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dataset); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, df.filePath); err != nil {
		return fmt.Errorf("failed to write %s: %w", df.filePath, err)
	}
	return nil
}

// Load reads a previously saved dataset
func (df *DatasetFile) Load() (*models.Dataset, error) {
	file, err := os.Open(df.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	var dataset models.Dataset
	if err := json.NewDecoder(file).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	return &dataset, nil
}

// TopLevelKeys returns the keys of the saved document's root object, in no particular order
func (df *DatasetFile) TopLevelKeys() ([]string, error) {
	data, err := os.ReadFile(df.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	keys := make([]string, 0, len(root))
	for k := range root {
		keys = append(keys, k)
	}
	return keys, nil
}
