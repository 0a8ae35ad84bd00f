package installer

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcherFetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(fakeScript))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(FetcherConfig{UserAgent: "toolbox-test/1.0"})

	var buf bytes.Buffer
	n, err := f.Fetch(context.Background(), srv.URL, &buf)
	require.NoError(t, err)

	assert.Equal(t, int64(len(fakeScript)), n)
	assert.Equal(t, fakeScript, buf.String())
	assert.Equal(t, "toolbox-test/1.0", gotUA)
}

func TestHTTPFetcherBadStatusIsNotRetried(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(FetcherConfig{})

	var buf bytes.Buffer
	_, err := f.Fetch(context.Background(), srv.URL, &buf)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadStatus))
	assert.Contains(t, err.Error(), "HTTP 503")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Zero(t, buf.Len())
}

func TestHTTPFetcherTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(FetcherConfig{Timeout: 50 * time.Millisecond})

	var buf bytes.Buffer
	_, err := f.Fetch(context.Background(), srv.URL, &buf)
	assert.Error(t, err)
}

func TestHTTPFetcherCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fakeScript))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := NewHTTPFetcher(FetcherConfig{}).Fetch(ctx, srv.URL, &buf)
	assert.Error(t, err)
}
