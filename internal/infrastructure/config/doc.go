// Package config provides 12-factor configuration for the toolbox commands.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Installer: Python interpreter, installer URL, download timeout
//   - Distributions: Sample count, plot path, RNG seed, significance level
//   - Metrics: Optional Prometheus textfile export
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Sampling %d values per distribution\n", cfg.Distributions.Samples)
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - PIP_PYTHON, PIP_INSTALLER_URL, PIP_DOWNLOAD_TIMEOUT, PIP_USER_AGENT
//   - DIST_SAMPLES, DIST_OUTPUT, DIST_SEED, DIST_ALPHA
//   - METRICS_TEXTFILE
package config
