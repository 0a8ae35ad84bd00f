package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/GriffinCanCode/toolbox/internal/infrastructure/logging"
	"github.com/GriffinCanCode/toolbox/internal/infrastructure/monitoring"
	"go.uber.org/zap"
)

// DefaultURL is the official location of the pip bootstrap script.
const DefaultURL = "https://bootstrap.pypa.io/get-pip.py"

// Outcome is the result of EnsureAvailable.
type Outcome int

const (
	OutcomeAlreadyInstalled Outcome = iota
	OutcomeInstalled
	OutcomeFailed
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyInstalled:
		return "already_installed"
	case OutcomeInstalled:
		return "installed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// OK reports whether pip is usable after the run.
func (o Outcome) OK() bool {
	return o == OutcomeAlreadyInstalled || o == OutcomeInstalled
}

// Options configures an Installer. Zero values fall back to defaults.
type Options struct {
	Python  string
	URL     string
	Fetcher Fetcher
	Runner  Runner
	Logger  *logging.Logger
	Metrics *monitoring.Metrics
	// Out receives the human-readable progress lines.
	Out io.Writer
	// TempDir holds the downloaded script. Empty means os.TempDir().
	TempDir string
}

// Installer ensures pip is available for one interpreter.
type Installer struct {
	python  string
	url     string
	fetcher Fetcher
	runner  Runner
	logger  *logging.Logger
	metrics *monitoring.Metrics
	out     io.Writer
	tempDir string
}

// New creates an installer from opts.
func New(opts Options) *Installer {
	if opts.Python == "" {
		opts.Python = "python3"
	}
	if opts.URL == "" {
		opts.URL = DefaultURL
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Fetcher == nil {
		opts.Fetcher = NewHTTPFetcher(FetcherConfig{Logger: opts.Logger})
	}
	if opts.Runner == nil {
		opts.Runner = NewExecRunner()
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	return &Installer{
		python:  opts.Python,
		url:     opts.URL,
		fetcher: opts.Fetcher,
		runner:  opts.Runner,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		out:     opts.Out,
		tempDir: opts.TempDir,
	}
}

// EnsureAvailable installs pip only when the version check fails.
func (i *Installer) EnsureAvailable(ctx context.Context) Outcome {
	outcome := i.ensure(ctx)
	i.metrics.RecordInstallOutcome(outcome.String())
	i.logger.Info("pip bootstrap finished",
		zap.String("python", i.python),
		zap.Stringer("outcome", outcome))
	return outcome
}

func (i *Installer) ensure(ctx context.Context) Outcome {
	if i.Available(ctx) {
		i.printf("\nPip is already installed!\n")
		return OutcomeAlreadyInstalled
	}
	if i.Install(ctx) {
		return OutcomeInstalled
	}
	return OutcomeFailed
}

// Available runs `<python> -m pip --version` and reports whether it succeeded.
func (i *Installer) Available(ctx context.Context) bool {
	err := i.versionCheck(ctx)
	i.metrics.RecordVersionCheck(err == nil)
	if err != nil {
		i.logger.Debug("pip version check failed", zap.String("python", i.python), zap.Error(err))
		return false
	}
	return true
}

func (i *Installer) versionCheck(ctx context.Context) error {
	return i.runner.Run(ctx, i.python, "-m", "pip", "--version")
}

// Install downloads the bootstrap script, runs it and verifies the result.
// Failures are logged and reported as false.
func (i *Installer) Install(ctx context.Context) bool {
	i.printf("Starting pip installation...\n")

	path, err := i.download(ctx)
	if err != nil {
		i.printf("Error downloading get-pip.py: %v\n", err)
		i.printf("Failed to download get-pip.py\n")
		i.logger.Error("installer download failed", zap.String("url", i.url), zap.Error(err))
		return false
	}
	defer i.cleanup(path)

	i.printf("Installing pip...\n")
	start := time.Now()
	err = i.runner.Run(ctx, i.python, path)
	i.metrics.RecordInstallerExec(time.Since(start))
	if err != nil {
		i.printf("Error installing pip: %v\n", err)
		i.logger.Error("installer execution failed", zap.String("script", path), zap.Error(err))
		return false
	}

	if err := i.versionCheck(ctx); err != nil {
		i.printf("Error installing pip: %v\n", err)
		i.logger.Error("pip still unavailable after install", zap.Error(err))
		return false
	}

	i.printf("\nPip installed successfully!\n")
	return true
}

// download saves the installer into a fresh temp file and returns its path.
// On error no file is left behind.
func (i *Installer) download(ctx context.Context) (string, error) {
	i.printf("Downloading get-pip.py...\n")

	f, err := os.CreateTemp(i.tempDir, "get-pip-*.py")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()

	start := time.Now()
	n, err := i.fetcher.Fetch(ctx, i.url, f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to write %s: %w", path, closeErr)
	}
	if err != nil {
		i.cleanup(path)
		return "", err
	}

	i.metrics.RecordDownload(n, time.Since(start))
	i.logger.Debug("installer downloaded",
		zap.String("url", i.url),
		zap.String("path", path),
		zap.Int64("bytes", n))
	return path, nil
}

func (i *Installer) cleanup(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		i.logger.Debug("failed to remove installer script", zap.String("path", path), zap.Error(err))
	}
}

func (i *Installer) printf(format string, args ...interface{}) {
	fmt.Fprintf(i.out, format, args...)
}
