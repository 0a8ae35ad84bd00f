package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging       LogConfig
	Installer     InstallerConfig
	Distributions DistributionsConfig
	Metrics       MetricsConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"true"`
}

// InstallerConfig holds pip bootstrap configuration.
type InstallerConfig struct {
	Python          string        `envconfig:"PIP_PYTHON" default:"python3"`
	URL             string        `envconfig:"PIP_INSTALLER_URL" default:"https://bootstrap.pypa.io/get-pip.py"`
	DownloadTimeout time.Duration `envconfig:"PIP_DOWNLOAD_TIMEOUT" default:"0s"`
	UserAgent       string        `envconfig:"PIP_USER_AGENT" default:"toolbox-pipinstall/1.0"`
}

// DistributionsConfig holds sampling and reporting configuration.
type DistributionsConfig struct {
	Samples int     `envconfig:"DIST_SAMPLES" default:"1000"`
	Output  string  `envconfig:"DIST_OUTPUT" default:"probability_distributions.png"`
	Seed    uint64  `envconfig:"DIST_SEED" default:"0"`
	Alpha   float64 `envconfig:"DIST_ALPHA" default:"0.05"`
}

// MetricsConfig holds metrics export configuration.
// An empty Textfile disables the export.
type MetricsConfig struct {
	Textfile string `envconfig:"METRICS_TEXTFILE" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: true,
		},
		Installer: InstallerConfig{
			Python:    "python3",
			URL:       "https://bootstrap.pypa.io/get-pip.py",
			UserAgent: "toolbox-pipinstall/1.0",
		},
		Distributions: DistributionsConfig{
			Samples: 1000,
			Output:  "probability_distributions.png",
			Alpha:   0.05,
		},
	}
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	if c.Installer.Python == "" {
		return errors.New("PIP_PYTHON cannot be empty")
	}
	if c.Installer.URL == "" {
		return errors.New("PIP_INSTALLER_URL cannot be empty")
	}
	if c.Installer.DownloadTimeout < 0 {
		return fmt.Errorf("PIP_DOWNLOAD_TIMEOUT must not be negative, got %s", c.Installer.DownloadTimeout)
	}
	if c.Distributions.Samples <= 0 {
		return fmt.Errorf("DIST_SAMPLES must be positive, got %d", c.Distributions.Samples)
	}
	if c.Distributions.Output == "" {
		return errors.New("DIST_OUTPUT cannot be empty")
	}
	if c.Distributions.Alpha <= 0 || c.Distributions.Alpha >= 1 {
		return fmt.Errorf("DIST_ALPHA must be in (0, 1), got %g", c.Distributions.Alpha)
	}
	return nil
}
