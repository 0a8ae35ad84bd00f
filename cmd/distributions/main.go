package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/GriffinCanCode/toolbox/internal/distributions"
	"github.com/GriffinCanCode/toolbox/internal/infrastructure/config"
	"github.com/GriffinCanCode/toolbox/internal/infrastructure/logging"
	"github.com/GriffinCanCode/toolbox/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/toolbox/internal/shared/id"
	"go.uber.org/zap"
)

// options controls one pipeline run.
type options struct {
	Samples int
	Output  string
	Seed    uint64
	Alpha   float64
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Parse flags
	opts := options{Alpha: cfg.Distributions.Alpha}
	flag.IntVar(&opts.Samples, "samples", cfg.Distributions.Samples, "Observations per distribution")
	flag.StringVar(&opts.Output, "out", cfg.Distributions.Output, "Path of the comparison figure")
	flag.Uint64Var(&opts.Seed, "seed", cfg.Distributions.Seed, "RNG seed (0 draws a fresh sequence every run)")
	flag.Parse()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		logger = logging.NewDefault()
	}
	logger = logger.WithRun(id.NewRunID().String()).Named("distributions")
	defer logger.Sync()

	metrics := monitoring.NewMetrics()

	if err := run(os.Stdout, opts, logger, metrics); err != nil {
		logger.Fatal("Distribution pipeline failed", zap.Error(err))
	}

	metrics.Finish("distributions")
	if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		logger.Warn("Metrics export failed", zap.Error(err))
	}
}

// run executes generate, plot, summarize and fit in order. The first error
// stops the pipeline.
func run(w io.Writer, opts options, logger *logging.Logger, metrics *monitoring.Metrics) error {
	var src rand.Source
	if opts.Seed != 0 {
		src = rand.NewPCG(opts.Seed, opts.Seed)
	}

	samples, err := distributions.Generate(opts.Samples, src)
	if err != nil {
		return fmt.Errorf("generate samples: %w", err)
	}
	for name, data := range samples {
		metrics.RecordSamples(name.String(), len(data))
	}
	logger.Debug("Samples generated",
		zap.Int("per_distribution", opts.Samples),
		zap.Uint64("seed", opts.Seed))

	if err := distributions.Plot(samples, opts.Output); err != nil {
		return fmt.Errorf("plot distributions: %w", err)
	}
	logger.Debug("Figure written", zap.String("path", opts.Output))

	summaries, err := distributions.SummarizeAll(samples)
	if err != nil {
		return fmt.Errorf("summarize samples: %w", err)
	}
	if err := distributions.WriteSummaries(w, summaries); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	results, err := distributions.FitTestAll(samples, opts.Alpha)
	if err != nil {
		return fmt.Errorf("fit test: %w", err)
	}
	for name, r := range results {
		metrics.RecordFit(name.String(), r.PValue, r.Passed)
	}
	if err := distributions.WriteFitResults(w, results); err != nil {
		return fmt.Errorf("write fit results: %w", err)
	}

	_, err = fmt.Fprintf(w, "\nPlots have been saved as '%s'\n", opts.Output)
	return err
}
