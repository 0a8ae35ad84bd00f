package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/GriffinCanCode/toolbox/internal/infrastructure/logging"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// ErrBadStatus is returned when the installer URL answers with a non-2xx status.
var ErrBadStatus = errors.New("unexpected HTTP status")

// Fetcher streams the body at url into dst.
type Fetcher interface {
	Fetch(ctx context.Context, url string, dst io.Writer) (int64, error)
}

// FetcherConfig configures HTTPFetcher.
type FetcherConfig struct {
	// Timeout bounds the whole request. Zero means no timeout.
	Timeout   time.Duration
	UserAgent string
	Logger    *logging.Logger
}

// HTTPFetcher downloads files with resty.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates a fetcher that performs exactly one attempt per call.
func NewHTTPFetcher(cfg FetcherConfig) *HTTPFetcher {
	// Only the pooled transport is borrowed; retries stay off.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	restyClient := resty.New()
	restyClient.
		SetTransport(retryClient.HTTPClient.Transport).
		SetRetryCount(0)

	if cfg.Timeout > 0 {
		restyClient.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		restyClient.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.Logger != nil {
		restyClient.SetLogger(restyLogger{cfg.Logger.Sugar()})
	}

	return &HTTPFetcher{client: restyClient}
}

// Fetch performs a GET and copies the response body into dst.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string, dst io.Writer) (int64, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return 0, fmt.Errorf("download %s: %w", url, err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return 0, fmt.Errorf("download %s: %w: HTTP %d", url, ErrBadStatus, resp.StatusCode())
	}

	n, err := io.Copy(dst, body)
	if err != nil {
		return n, fmt.Errorf("download %s: reading body: %w", url, err)
	}
	return n, nil
}

// restyLogger routes resty's internal diagnostics through zap.
type restyLogger struct {
	sugar *zap.SugaredLogger
}

func (l restyLogger) Errorf(format string, v ...interface{}) { l.sugar.Errorf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.sugar.Warnf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.sugar.Debugf(format, v...) }
