package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	// Installer config
	assert.Equal(t, "python3", cfg.Installer.Python)
	assert.Equal(t, "https://bootstrap.pypa.io/get-pip.py", cfg.Installer.URL)
	assert.Zero(t, cfg.Installer.DownloadTimeout)

	// Distributions config
	assert.Equal(t, 1000, cfg.Distributions.Samples)
	assert.Equal(t, "probability_distributions.png", cfg.Distributions.Output)
	assert.Zero(t, cfg.Distributions.Seed)
	assert.Equal(t, 0.05, cfg.Distributions.Alpha)

	// Metrics config
	assert.Empty(t, cfg.Metrics.Textfile)

	assert.NoError(t, cfg.Validate())
}

func TestLoadMatchesDefault(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"LOG_LEVEL":            "debug",
		"LOG_DEV":              "false",
		"PIP_PYTHON":           "/usr/bin/python3.12",
		"PIP_INSTALLER_URL":    "https://mirror.example.com/get-pip.py",
		"PIP_DOWNLOAD_TIMEOUT": "45s",
		"DIST_SAMPLES":         "500",
		"DIST_OUTPUT":          "out.png",
		"DIST_SEED":            "42",
		"DIST_ALPHA":           "0.01",
		"METRICS_TEXTFILE":     "/var/lib/node_exporter/toolbox.prom",
	}

	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	assert.Equal(t, "/usr/bin/python3.12", cfg.Installer.Python)
	assert.Equal(t, "https://mirror.example.com/get-pip.py", cfg.Installer.URL)
	assert.Equal(t, 45*time.Second, cfg.Installer.DownloadTimeout)

	assert.Equal(t, 500, cfg.Distributions.Samples)
	assert.Equal(t, "out.png", cfg.Distributions.Output)
	assert.Equal(t, uint64(42), cfg.Distributions.Seed)
	assert.Equal(t, 0.01, cfg.Distributions.Alpha)

	assert.Equal(t, "/var/lib/node_exporter/toolbox.prom", cfg.Metrics.Textfile)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	t.Setenv("DIST_SAMPLES", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Distributions.Samples)

	// Defaults still apply
	assert.Equal(t, "probability_distributions.png", cfg.Distributions.Output)
	assert.Equal(t, "python3", cfg.Installer.Python)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero samples", key: "DIST_SAMPLES", value: "0"},
		{name: "negative samples", key: "DIST_SAMPLES", value: "-10"},
		{name: "alpha too large", key: "DIST_ALPHA", value: "1.5"},
		{name: "alpha zero", key: "DIST_ALPHA", value: "0"},
		{name: "negative timeout", key: "PIP_DOWNLOAD_TIMEOUT", value: "-1s"},
		{name: "malformed samples", key: "DIST_SAMPLES", value: "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	os.Unsetenv("DIST_SAMPLES")
	t.Setenv("DIST_SAMPLES", "not-a-number")

	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, 1000, cfg.Distributions.Samples)
}
