package dashboard

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/topicscout/core"
	"github.com/poiesic/topicscout/export"
	"github.com/poiesic/topicscout/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIndex_MissingSpreadsheet(t *testing.T) {
	s, err := NewServer(t.TempDir())
	require.NoError(t, err)

	rec := get(t, s.Handler(), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "<th>html_url</th>")
	assert.Contains(t, body, "No repositories yet")
	assert.NotContains(t, body, "<td>")
}

func TestIndex_RendersRepositories(t *testing.T) {
	dir := t.TempDir()
	repos := []core.Repository{
		{Interest: "llm", Name: "acme/llm-kit", HTMLURL: "https://github.com/acme/llm-kit", Description: "Tools <for> LLMs", Language: "Go", LastPushed: "2025-06-01T00:00:00Z"},
		{Interest: "bert", Name: "acme/bert", HTMLURL: "https://github.com/acme/bert"},
	}
	require.NoError(t, export.WriteRepositories(filepath.Join(dir, RepositoriesFile), repos))

	s, err := NewServer(dir)
	require.NoError(t, err)

	rec := get(t, s.Handler(), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<td>acme/llm-kit</td>")
	assert.Contains(t, body, `<a href="https://github.com/acme/bert">`)
	assert.Contains(t, body, "Tools &lt;for&gt; LLMs")
	assert.NotContains(t, body, "No repositories yet")
}

func TestIndex_CorruptSpreadsheet(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, RepositoriesFile), []byte("not a zip"), 0o644))

	s, err := NewServer(dir)
	require.NoError(t, err)

	rec := get(t, s.Handler(), "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUnknownPath(t *testing.T) {
	s, err := NewServer(t.TempDir())
	require.NoError(t, err)

	rec := get(t, s.Handler(), "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	s, err := NewServer(t.TempDir(), WithMetrics(m))
	require.NoError(t, err)
	h := s.Handler()

	get(t, h, "/")
	rec := get(t, h, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/", "200")))
}

func TestMetrics_UnknownPathsShareOneSeries(t *testing.T) {
	m := metrics.New()
	s, err := NewServer(t.TempDir(), WithMetrics(m))
	require.NoError(t, err)
	h := s.Handler()

	for i := 0; i < 50; i++ {
		rec := get(t, h, fmt.Sprintf("/scan-%d", i))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}
	get(t, h, "/")

	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestsTotal))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", metrics.OtherPath, "404")))
}

func TestNewServer_InvalidOptions(t *testing.T) {
	_, err := NewServer(t.TempDir(), WithMetrics(nil))
	assert.Error(t, err)

	_, err = NewServer(t.TempDir(), WithLogger(nil))
	assert.Error(t, err)
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	s, err := NewServer(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
