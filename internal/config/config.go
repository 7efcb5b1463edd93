// Package config loads battpulse configuration from environment
// variables (BATT_ prefix) with an optional YAML overlay file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// PathsConfig contains file system paths configuration.
type PathsConfig struct {
	// DataDir is the dataset root holding the metadata table.
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR" default:"cleaned_dataset" validate:"required"`
	// MetadataFile overrides metadata discovery when set; relative paths
	// resolve against DataDir.
	MetadataFile string `yaml:"metadata_file" envconfig:"METADATA_FILE"`
	// MeasurementDir holds the per-measurement files named by the
	// metadata filename column. Defaults to <data_dir>/data.
	MeasurementDir string `yaml:"measurement_dir" envconfig:"MEASUREMENT_DIR"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/battpulse.log"`
}

// PipelineConfig contains pipeline tunables.
type PipelineConfig struct {
	// Workers bounds the concurrent measurement-file reads.
	Workers int `yaml:"workers" envconfig:"WORKERS" default:"4" validate:"min=1,max=64"`
}

// Load builds the configuration: envconfig defaults and environment
// first, then the YAML file overlay (when present), then path resolution
// and validation.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("BATT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	cfg.resolvePaths()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// configFilePath returns the overlay file location: BATT_CONFIG_FILE when
// set, otherwise battpulse.yaml next to the working directory.
func configFilePath() string {
	if path := os.Getenv("BATT_CONFIG_FILE"); path != "" {
		return path
	}
	return "battpulse.yaml"
}

// resolvePaths fills derived path defaults.
func (c *Config) resolvePaths() {
	if c.Paths.MeasurementDir == "" {
		c.Paths.MeasurementDir = filepath.Join(c.Paths.DataDir, "data")
	}
	if c.Paths.MetadataFile != "" && !filepath.IsAbs(c.Paths.MetadataFile) {
		c.Paths.MetadataFile = filepath.Join(c.Paths.DataDir, c.Paths.MetadataFile)
	}
}

func (c *Config) validate() error {
	return validator.New().Struct(c)
}
