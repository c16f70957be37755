// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package dashboard serves the fetched repositories as an HTML table along
// with the Prometheus scrape endpoint.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/poiesic/topicscout/core"
	"github.com/poiesic/topicscout/export"
	"github.com/poiesic/topicscout/metrics"
)

// RepositoriesFile is the spreadsheet the index page renders.
const RepositoriesFile = "github_repos.xlsx"

const shutdownTimeout = 5 * time.Second

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>GitHub Repositories</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; vertical-align: top; }
th { background: #f0f0f0; }
</style>
</head>
<body>
<h1>GitHub Repositories</h1>
{{if not .Repos}}<p>No repositories yet. Run the analyze command first.</p>{{end}}
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Repos}}<tr><td>{{.Interest}}</td><td>{{.Name}}</td><td><a href="{{.HTMLURL}}">{{.HTMLURL}}</a></td><td>{{.Description}}</td><td>{{.Language}}</td><td>{{.LastPushed}}</td></tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type indexPage struct {
	Columns []string
	Repos   []core.Repository
}

// Server renders the output directory over HTTP.
type Server struct {
	outputDir string
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithMetrics sets the collectors exposed on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) error {
		if m == nil {
			return errors.New("metrics cannot be nil")
		}
		s.metrics = m
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates a dashboard for outputDir.
func NewServer(outputDir string, opts ...Option) (*Server, error) {
	s := &Server{
		outputDir: outputDir,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	s.logger = s.logger.With("component", "dashboard")
	return s, nil
}

// Handler returns the routed handler wrapped in the metrics middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", s.metrics.Handler())
	mux.HandleFunc("GET /{$}", s.handleIndex)
	return s.metrics.Middleware(mux)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down dashboard: %w", err)
		}
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	repos, err := s.loadRepositories()
	if err != nil {
		s.logger.Error("failed to load repositories", "err", err)
		http.Error(w, "failed to load repositories", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := indexPage{Columns: export.RepositoryColumns(), Repos: repos}
	if err := indexTemplate.Execute(w, page); err != nil {
		s.logger.Error("failed to render index", "err", err)
	}
}

// loadRepositories returns nothing, without error, when the spreadsheet has
// not been written yet.
func (s *Server) loadRepositories() ([]core.Repository, error) {
	path := filepath.Join(s.outputDir, RepositoriesFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	repos, err := export.ReadRepositories(path)
	if errors.Is(err, export.ErrEmptySheet) {
		return nil, nil
	}
	return repos, err
}
