/*
Package monitoring provides run metrics for the toolbox commands.

# Overview

The commands are short-lived, so nothing is scraped over HTTP. Instead each
run collects Prometheus metrics on a private registry and, when
METRICS_TEXTFILE is set, writes them once at exit in the format read by the
node_exporter textfile collector.

# Usage

	metrics := monitoring.NewMetrics()
	metrics.RecordSamples("Normal", 1000)
	metrics.Finish("distributions")
	if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		logger.Warn("Metrics export failed", zap.Error(err))
	}

All Record* methods accept a nil receiver, so components can be built
without metrics in tests.
*/
package monitoring
