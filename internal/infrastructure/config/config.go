package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the dashboard binary.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Report  ReportConfig  `yaml:"report"`
}

type DatasetConfig struct {
	// Path of the YAML snapshot file. Empty means run against the
	// generated sample dataset.
	Path string `yaml:"path"`
}

type ReportConfig struct {
	// Salesperson scopes the snapshot; empty means the admin view over
	// every record.
	Salesperson string `yaml:"salesperson"`
	// Now pins the reference clock (RFC 3339) for reproducible output;
	// empty means wall-clock time.
	Now string `yaml:"now"`
}

// LoadFromFile loads settings from a YAML file, then overlays
// environment variables. A missing file is not an error.
func LoadFromFile(path string) (Config, error) {
	// Load a .env file when one exists.
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg = applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("SALES_DATASET"); val != "" {
		cfg.Dataset.Path = val
	}
	if val := os.Getenv("SALES_SALESPERSON"); val != "" {
		cfg.Report.Salesperson = val
	}
	if val := os.Getenv("SALES_NOW"); val != "" {
		cfg.Report.Now = val
	}
	return cfg
}
