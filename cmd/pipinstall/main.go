package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/toolbox/internal/infrastructure/config"
	"github.com/GriffinCanCode/toolbox/internal/infrastructure/logging"
	"github.com/GriffinCanCode/toolbox/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/toolbox/internal/installer"
	"github.com/GriffinCanCode/toolbox/internal/shared/id"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Parse flags
	python := flag.String("python", cfg.Installer.Python, "Python interpreter to bootstrap pip for")
	url := flag.String("url", cfg.Installer.URL, "Location of get-pip.py")
	flag.Parse()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		logger = logging.NewDefault()
	}
	logger = logger.WithRun(id.NewRunID().String()).Named("pipinstall")
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := monitoring.NewMetrics()

	inst := installer.New(installer.Options{
		Python: *python,
		URL:    *url,
		Fetcher: installer.NewHTTPFetcher(installer.FetcherConfig{
			Timeout:   cfg.Installer.DownloadTimeout,
			UserAgent: cfg.Installer.UserAgent,
			Logger:    logger,
		}),
		Runner:  installer.NewExecRunner(),
		Logger:  logger,
		Metrics: metrics,
		Out:     os.Stdout,
	})

	run(ctx, os.Stdout, inst, *url)

	metrics.Finish("pipinstall")
	if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		logger.Warn("Metrics export failed", zap.Error(err))
	}
}

// run prints the banner, ensures pip is present and prints next steps.
func run(ctx context.Context, w io.Writer, inst *installer.Installer, url string) installer.Outcome {
	installer.WriteBanner(w)
	outcome := inst.EnsureAvailable(ctx)
	installer.WriteNextSteps(w, outcome, url)
	return outcome
}
