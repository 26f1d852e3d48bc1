// Package config loads and saves the YAML run configuration for
// cmd/ccextract. Grounded on pkg/config/config.go's Config/
// LoadConfig/SaveConfig trio.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ExtractionConfig mirrors labeler.Options with YAML tags, decoupled so
// the labeler package stays free of serialization concerns.
type ExtractionConfig struct {
	Mode    string  `yaml:"mode"` // "background_all", "background_labeled", "exact_value", "roi"
	Value   float64 `yaml:"value"`
	MinSize uint64  `yaml:"min_size"`
	MaxSize uint64  `yaml:"max_size"`
	NoEdgeX bool    `yaml:"no_edge_x"`
	NoEdgeY bool    `yaml:"no_edge_y"`
	NoEdgeZ bool    `yaml:"no_edge_z"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Dir          string `yaml:"dir"`
	WriteLabels  bool   `yaml:"write_labels"` // not read by cmd/ccextract, which writes no labeled images
	WriteCSV     bool   `yaml:"write_csv"`
	SortByDepth  string `yaml:"sort_by_depth"` // "", "asc", "desc"
}

// ProcessingConfig controls concurrency and cancellation.
type ProcessingConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Config is the top-level run configuration.
type Config struct {
	Input      string            `yaml:"input"`
	Extraction ExtractionConfig  `yaml:"extraction"`
	Output     OutputConfig      `yaml:"output"`
	Processing ProcessingConfig  `yaml:"processing"`
}

// DefaultConfig returns the configuration used when no config file is
// present, matching the teacher's "LoadConfig returns defaults on
// os.IsNotExist" behavior.
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			Mode:    "background_all",
			Value:   0,
			MinSize: 1,
		},
		Output: OutputConfig{
			Dir:         "output",
			WriteLabels: true,
			WriteCSV:    true,
		},
		Processing: ProcessingConfig{
			TimeoutSeconds: 0,
		},
	}
}

// LoadConfig reads configPath and unmarshals it as YAML, returning
// DefaultConfig() unchanged if the file does not exist.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// SaveConfig marshals cfg as YAML and writes it to configPath,
// creating any missing parent directories.
func SaveConfig(cfg *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// CreateDefaultConfigFile writes DefaultConfig() to configPath if no
// file exists there yet.
func CreateDefaultConfigFile(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}
	return SaveConfig(DefaultConfig(), configPath)
}
