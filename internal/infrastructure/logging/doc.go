// Package logging provides structured logging using uber/zap.
//
// Two modes are available:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Both commands write logs to stderr so that the human-readable reports on
// stdout stay clean when piped.
//
// Example Usage:
//
//	logger := logging.NewDevelopment().WithRun(runID)
//	logger.Info("Download finished", zap.Int64("bytes", n))
//	logger.Error("Installer exited", zap.Error(err))
package logging
