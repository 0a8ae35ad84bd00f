package monitoring

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for one command run.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Installer metrics
	InstallOutcomes   *prometheus.CounterVec
	DownloadBytes     prometheus.Gauge
	DownloadDuration  prometheus.Gauge
	InstallerDuration prometheus.Gauge
	VersionChecks     *prometheus.CounterVec

	// Distribution metrics
	SamplesGenerated *prometheus.CounterVec
	FitPValue        *prometheus.GaugeVec
	FitPassed        *prometheus.GaugeVec

	// Run metrics
	RunDuration  *prometheus.GaugeVec
	RunTimestamp *prometheus.GaugeVec
	startTime    time.Time
}

// NewMetrics creates a metrics collector on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry:  reg,
		startTime: time.Now(),

		InstallOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolbox_pip_install_outcomes_total",
				Help: "Outcomes of pip bootstrap runs",
			},
			[]string{"outcome"},
		),
		DownloadBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "toolbox_pip_installer_download_bytes",
				Help: "Size of the last downloaded installer script",
			},
		),
		DownloadDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "toolbox_pip_installer_download_seconds",
				Help: "Wall time of the last installer download",
			},
		),
		InstallerDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "toolbox_pip_installer_exec_seconds",
				Help: "Wall time of the last installer execution",
			},
		),
		VersionChecks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolbox_pip_version_checks_total",
				Help: "pip version probes by result",
			},
			[]string{"result"},
		),

		SamplesGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolbox_dist_samples_generated_total",
				Help: "Observations drawn per distribution",
			},
			[]string{"distribution"},
		),
		FitPValue: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "toolbox_dist_ks_p_value",
				Help: "Kolmogorov-Smirnov p-value per distribution",
			},
			[]string{"distribution"},
		),
		FitPassed: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "toolbox_dist_ks_passed",
				Help: "1 when the sample is compatible with its theoretical distribution",
			},
			[]string{"distribution"},
		),

		RunDuration: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "toolbox_run_duration_seconds",
				Help: "Wall time of the command run",
			},
			[]string{"command"},
		),
		RunTimestamp: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "toolbox_run_last_timestamp_seconds",
				Help: "Unix time the command last finished",
			},
			[]string{"command"},
		),
	}
}

// Registry returns the registry backing these metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordInstallOutcome counts a finished bootstrap run.
func (m *Metrics) RecordInstallOutcome(outcome string) {
	if m == nil {
		return
	}
	m.InstallOutcomes.WithLabelValues(outcome).Inc()
}

// RecordVersionCheck counts a pip version probe.
func (m *Metrics) RecordVersionCheck(ok bool) {
	if m == nil {
		return
	}
	result := "missing"
	if ok {
		result = "present"
	}
	m.VersionChecks.WithLabelValues(result).Inc()
}

// RecordDownload records size and duration of an installer download.
func (m *Metrics) RecordDownload(bytes int64, duration time.Duration) {
	if m == nil {
		return
	}
	m.DownloadBytes.Set(float64(bytes))
	m.DownloadDuration.Set(duration.Seconds())
}

// RecordInstallerExec records how long the installer ran.
func (m *Metrics) RecordInstallerExec(duration time.Duration) {
	if m == nil {
		return
	}
	m.InstallerDuration.Set(duration.Seconds())
}

// RecordSamples counts drawn observations for a distribution.
func (m *Metrics) RecordSamples(distribution string, n int) {
	if m == nil {
		return
	}
	m.SamplesGenerated.WithLabelValues(distribution).Add(float64(n))
}

// RecordFit records a goodness-of-fit result for a distribution.
func (m *Metrics) RecordFit(distribution string, pValue float64, passed bool) {
	if m == nil {
		return
	}
	m.FitPValue.WithLabelValues(distribution).Set(pValue)
	v := 0.0
	if passed {
		v = 1
	}
	m.FitPassed.WithLabelValues(distribution).Set(v)
}

// Finish stamps the run duration and completion time for command.
func (m *Metrics) Finish(command string) {
	if m == nil {
		return
	}
	m.RunDuration.WithLabelValues(command).Set(time.Since(m.startTime).Seconds())
	m.RunTimestamp.WithLabelValues(command).SetToCurrentTime()
}

// WriteTextfile writes all metrics in the node_exporter textfile format.
// An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
