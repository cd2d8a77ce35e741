package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clockface/internal/config"
)

var testFrame = []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)

// -----------------------------------------------------------------------------
// Unit Tests (White-Box Testing of Handler Logic)
// -----------------------------------------------------------------------------

// TestHandler_ServingContent verifies the standard headers and body when a
// snapshot is available.
func TestHandler_ServingContent(t *testing.T) {
	srv := NewSnapshotServer("0")
	srv.Update(testFrame, time.Now())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.handleSnapshotRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeSVG, resp.Header.Get(config.HeaderContentType))
	assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
	assert.Contains(t, resp.Header.Get(config.HeaderCacheControl), "no-cache")
	assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, testFrame, body)
}

// TestHandler_Head returns headers without a body.
func TestHandler_Head(t *testing.T) {
	srv := NewSnapshotServer("0")
	srv.Update(testFrame, time.Now())

	req := httptest.NewRequest(http.MethodHead, "/", nil)
	w := httptest.NewRecorder()
	srv.handleSnapshotRequest(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, config.MimeSVG, w.Header().Get(config.HeaderContentType))
	assert.Zero(t, w.Body.Len())
}

// TestHandler_Caching verifies If-None-Match yields 304 Not Modified.
func TestHandler_Caching(t *testing.T) {
	srv := NewSnapshotServer("0")
	srv.Update([]byte("FRAME_1"), time.Now())

	req1 := httptest.NewRequest(http.MethodGet, "/", nil)
	w1 := httptest.NewRecorder()
	srv.handleSnapshotRequest(w1, req1)

	etag := w1.Result().Header.Get(config.HeaderETag)
	require.NotEmpty(t, etag, "Server must provide an ETag")

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.Header.Set(config.HeaderIfNoneMatch, etag)
	w2 := httptest.NewRecorder()
	srv.handleSnapshotRequest(w2, req2)

	resp2 := w2.Result()
	defer func() { _ = resp2.Body.Close() }()

	assert.Equal(t, http.StatusNotModified, resp2.StatusCode)
	body, _ := io.ReadAll(resp2.Body)
	assert.Empty(t, body, "Body must be empty on 304 Not Modified")

	// A new frame changes the ETag.
	srv.Update([]byte("FRAME_2"), time.Now())
	w3 := httptest.NewRecorder()
	srv.handleSnapshotRequest(w3, req2)
	assert.Equal(t, http.StatusOK, w3.Code)
	assert.NotEqual(t, etag, w3.Header().Get(config.HeaderETag))
}

// TestHandler_IfModifiedSince compares against the snapshot instant.
func TestHandler_IfModifiedSince(t *testing.T) {
	srv := NewSnapshotServer("0")
	at := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	srv.Update(testFrame, at)

	tests := []struct {
		name  string
		since time.Time
		want  int
	}{
		{"Client is up to date", at, http.StatusNotModified},
		{"Client is newer", at.Add(time.Minute), http.StatusNotModified},
		{"Client is stale", at.Add(-time.Second), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(config.HeaderIfModifiedSince, tt.since.Format(http.TimeFormat))
			w := httptest.NewRecorder()
			srv.handleSnapshotRequest(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

// TestHandler_MethodNotAllowed ensures strictly GET and HEAD are accepted.
func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := NewSnapshotServer("0")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	srv.handleSnapshotRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, config.AllowedMethods, resp.Header.Get(config.HeaderAllow))
}

// TestHandler_Initializing verifies the 503 behavior before the first frame.
func TestHandler_Initializing(t *testing.T) {
	srv := NewSnapshotServer("0")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.handleSnapshotRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, config.RetryAfterSeconds, resp.Header.Get(config.HeaderRetryAfter))
}

func TestHandler_Health(t *testing.T) {
	srv := NewSnapshotServer("0")

	req := httptest.NewRequest(http.MethodGet, config.RouteHealth, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, config.HealthBody, w.Body.String())
}

// TestHandler_Metrics checks the snapshot counters are exported.
func TestHandler_Metrics(t *testing.T) {
	srv := NewSnapshotServer("0")
	srv.Update(testFrame, time.Unix(1700000000, 0))
	srv.Update(testFrame, time.Unix(1700000001, 0))

	req := httptest.NewRequest(http.MethodGet, config.RouteMetrics, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "clockface_snapshot_updates_total 2")
	assert.Contains(t, body, "clockface_snapshot_last_update_timestamp_seconds 1.700000001e+09")
	assert.Contains(t, body, fmt.Sprintf("clockface_snapshot_size_bytes %d", len(testFrame)))
}

// -----------------------------------------------------------------------------
// Concurrency Tests (Race Detection)
// -----------------------------------------------------------------------------

// TestServer_RaceCondition validates the thread-safety of atomic.Pointer usage.
// Run this with `go test -race`.
func TestServer_RaceCondition(t *testing.T) {
	srv := NewSnapshotServer("0")
	var wg sync.WaitGroup

	end := time.Now().Add(300 * time.Millisecond)

	// A single writer, like the UI goroutine publishing frames.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; time.Now().Before(end); i++ {
			srv.Update([]byte(fmt.Sprintf("<svg>%d</svg>", i)), time.Now())
			time.Sleep(time.Microsecond)
		}
	}()

	for r := 0; r < 10; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				w := httptest.NewRecorder()
				srv.handleSnapshotRequest(w, req)

				code := w.Code
				if code != http.StatusOK && code != http.StatusServiceUnavailable {
					t.Errorf("Unexpected status code during race test: %d", code)
				}
				if code == http.StatusOK && !strings.HasPrefix(w.Body.String(), "<svg>") {
					t.Errorf("Partial frame served: %q", w.Body.String())
				}
			}
		}()
	}

	wg.Wait()
}

// -----------------------------------------------------------------------------
// Integration Tests (Real TCP Lifecycle)
// -----------------------------------------------------------------------------

// TestServer_Lifecycle spins up the actual TCP listener to verify network binding
// and graceful shutdown logic.
func TestServer_Lifecycle(t *testing.T) {
	const port = "18199"

	srv := NewSnapshotServer(port)
	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start(ctx)
	}()

	url := "http://127.0.0.1:" + port + "/"

	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, 2*time.Second, 50*time.Millisecond, "Server failed to bind/listen in time")

	// 1. Initial State (503)
	resp, err := http.Get(url)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	_ = resp.Body.Close()

	// 2. Publish a frame
	srv.Update(testFrame, time.Now())

	// 3. Served Content (200)
	resp, err = http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeSVG, resp.Header.Get(config.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "<svg")

	// 4. Shutdown
	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err, "Server should shutdown gracefully without error")
	case <-time.After(5 * time.Second):
		t.Fatal("Server shutdown timed out")
	}
}

func TestServer_StartWithoutPort(t *testing.T) {
	srv := NewSnapshotServer("")
	err := srv.Start(context.Background())
	require.Error(t, err)
	assert.Equal(t, config.ErrPortRequired, err.Error())
}
