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


// Package topicscout extracts the interests expressed in a folder of personal
// notes and gathers the repositories and papers that match them.
package topicscout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/poiesic/topicscout/ai"
	"github.com/poiesic/topicscout/ai/openai"
	"github.com/poiesic/topicscout/collect"
	"github.com/poiesic/topicscout/config"
	"github.com/poiesic/topicscout/core"
	"github.com/poiesic/topicscout/dashboard"
	"github.com/poiesic/topicscout/extract"
	"github.com/poiesic/topicscout/fetch"
	"github.com/poiesic/topicscout/metrics"
)

// Output file names, relative to the configured output directory.
const (
	RepositoriesFile  = dashboard.RepositoriesFile
	PapersFile        = "arxiv_papers.xlsx"
	MetricsFile       = "metrics.prom"
	GraphDOTFile      = "knowledge_graph.dot"
	GraphPNGFile      = "knowledge_graph.png"
	TimelineCSVFile   = "time_analysis.csv"
	TimelinePNGFile   = "time_analysis.png"
	SummaryReportFile = "paper_summaries.md"
	TopicsFile        = "topics.txt"
)

var (
	// ErrNoFolders is returned by runs that read documents when no folder is configured.
	ErrNoFolders = errors.New("no folders to analyze")

	// ErrNoSummarizer is returned by Summarize when the provider has no summarizer.
	ErrNoSummarizer = errors.New("provider has no summarizer")
)

// Scout wires the extraction, fetch and export packages into runs.
type Scout struct {
	cfg      *config.Config
	vocab    core.Vocabulary
	provider ai.AIProvider
	metrics  *metrics.Metrics
	progress io.Writer
	now      func() time.Time
	logger   *slog.Logger
}

// ScoutOption configures a Scout.
type ScoutOption func(*scoutOptions)

type scoutOptions struct {
	provider ai.AIProvider
	metrics  *metrics.Metrics
	vocab    *core.Vocabulary
	progress io.Writer
	now      func() time.Time
}

// WithProvider supplies the AI provider instead of building one from the config.
func WithProvider(provider ai.AIProvider) ScoutOption {
	return func(o *scoutOptions) {
		o.provider = provider
	}
}

// WithMetrics supplies the collectors the runs record into.
func WithMetrics(m *metrics.Metrics) ScoutOption {
	return func(o *scoutOptions) {
		o.metrics = m
	}
}

// WithVocabulary replaces the default candidate keywords.
func WithVocabulary(vocab core.Vocabulary) ScoutOption {
	return func(o *scoutOptions) {
		o.vocab = &vocab
	}
}

// WithProgressWriter sets where download progress is printed. Default is stderr.
func WithProgressWriter(w io.Writer) ScoutOption {
	return func(o *scoutOptions) {
		o.progress = w
	}
}

// WithClock overrides the time source for recency windows.
func WithClock(now func() time.Time) ScoutOption {
	return func(o *scoutOptions) {
		o.now = now
	}
}

// New validates cfg and builds a Scout.
func New(cfg *config.Config, opts ...ScoutOption) (*Scout, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &scoutOptions{
		progress: os.Stderr,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(cfg.AIConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create AI provider: %w", err)
		}
	}

	vocab := extract.DefaultVocabulary()
	if options.vocab != nil {
		vocab = *options.vocab
	}

	m := options.metrics
	if m == nil {
		m = metrics.New()
	}

	return &Scout{
		cfg:      cfg,
		vocab:    vocab,
		provider: provider,
		metrics:  m,
		progress: options.progress,
		now:      options.now,
		logger:   slog.Default().With("component", "scout"),
	}, nil
}

// Close releases the AI provider.
func (s *Scout) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
		return err
	}
	return nil
}

// Metrics returns the collectors the runs record into.
func (s *Scout) Metrics() *metrics.Metrics {
	return s.metrics
}

func (s *Scout) outputPath(name string) string {
	return filepath.Join(s.cfg.OutputDir, name)
}

func (s *Scout) newWalker() (*collect.Walker, error) {
	opts := []collect.Option{
		collect.WithRecencyDays(s.cfg.Days),
		collect.WithClock(s.now),
	}
	if len(s.cfg.Extensions) > 0 {
		opts = append(opts, collect.WithExtensions(s.cfg.Extensions...))
	}
	return collect.NewWalker(opts...)
}

func (s *Scout) fetchOptions() []fetch.Option {
	return []fetch.Option{
		fetch.WithTimeout(s.cfg.FetchTimeout()),
		fetch.WithClock(s.now),
	}
}

// Interests extracts the interests of the configured folders using the
// configured mode, then adds the keywords of the manual interests file.
func (s *Scout) Interests(ctx context.Context) (*collect.InterestsResult, error) {
	if len(s.cfg.Folders) == 0 {
		return nil, ErrNoFolders
	}
	walker, err := s.newWalker()
	if err != nil {
		return nil, err
	}

	basic := extract.NewKeywordMatcher(s.vocab)
	var advanced extract.Matcher
	if pipeline := s.provider.Pipeline(); pipeline != nil {
		advanced = extract.NewAdvancedMatcher(s.vocab, pipeline)
	}
	selector := extract.NewSelector(basic, advanced, nil)

	done := s.metrics.Time("interests")
	result, err := collect.NewAggregator(walker, selector).Interests(ctx, s.cfg.Folders, s.cfg.ExtractionMode())
	done()
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveReport(result.Report)
	s.metrics.ObserveExtraction(extract.Result{
		Interests: result.Interests,
		Strategy:  result.Strategy,
		Fallback:  result.Fallback,
	})
	s.logger.Info("extracted interests", "interests", result.Interests.Sorted(), "strategy", result.Strategy)

	manual, err := s.manualInterests(basic)
	if err != nil {
		return nil, err
	}
	if manual.Len() > 0 {
		s.logger.Info("manual interests found", "interests", manual.Sorted())
		result.Interests.Union(manual)
	}
	return result, nil
}

// manualInterests always uses keyword matching. A configured file that does
// not exist is ignored with a warning.
func (s *Scout) manualInterests(basic *extract.KeywordMatcher) (core.InterestSet, error) {
	path := s.cfg.ManualInterests
	if path == "" {
		return core.NewInterestSet(), nil
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("manual interests file not found", "path", path)
			return core.NewInterestSet(), nil
		}
		return nil, fmt.Errorf("stat manual interests: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manual interests: %w", err)
	}
	return basic.Find(string(data)), nil
}

// Serve runs the dashboard over the output directory until ctx is cancelled.
func (s *Scout) Serve(ctx context.Context) error {
	server, err := dashboard.NewServer(s.cfg.OutputDir,
		dashboard.WithMetrics(s.metrics),
		dashboard.WithLogger(s.logger))
	if err != nil {
		return err
	}
	return server.ListenAndServe(ctx, s.cfg.DashboardAddr)
}

func (s *Scout) downloadClient() *http.Client {
	return &http.Client{Timeout: 2 * s.cfg.FetchTimeout()}
}
