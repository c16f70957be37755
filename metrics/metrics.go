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


// Package metrics defines the Prometheus collectors for a scouting run and
// the dashboard. Collectors live on a private registry so a run can be
// written to a textfile and tests can build as many instances as they like.
package metrics

import (
	"net/http"

	"github.com/poiesic/topicscout/collect"
	"github.com/poiesic/topicscout/extract"
	"github.com/poiesic/topicscout/fetch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "topicscout"

// Metrics holds all Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	FilesTotal           *prometheus.CounterVec
	ExtractionsTotal     *prometheus.CounterVec
	ExtractionFallbacks  prometheus.Counter
	InterestsFound       prometheus.Gauge
	FetchedTotal         *prometheus.CounterVec
	FetchFailuresTotal   *prometheus.CounterVec
	DownloadsTotal       *prometheus.CounterVec
	StageDuration        *prometheus.HistogramVec
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FilesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "files_total",
				Help:      "Visited files and directories by outcome.",
			},
			[]string{"outcome"},
		),
		ExtractionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "extractions_total",
				Help:      "Interest extractions by the strategy that produced them.",
			},
			[]string{"strategy"},
		),
		ExtractionFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "extraction_fallbacks_total",
				Help:      "Advanced extractions that fell back to keyword matching.",
			},
		),
		InterestsFound: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "interests",
				Help:      "Number of interests used by the last run.",
			},
		),
		FetchedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetched_items_total",
				Help:      "Repositories and papers fetched by source.",
			},
			[]string{"source"},
		),
		FetchFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_failures_total",
				Help:      "Failed per-interest fetches by source.",
			},
			[]string{"source"},
		),
		DownloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pdf_downloads_total",
				Help:      "PDF downloads by status (ok, error).",
			},
			[]string{"status"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of run stages in seconds.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
			},
			[]string{"stage"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
	}

	m.registry.MustRegister(
		m.FilesTotal,
		m.ExtractionsTotal,
		m.ExtractionFallbacks,
		m.InterestsFound,
		m.FetchedTotal,
		m.FetchFailuresTotal,
		m.DownloadsTotal,
		m.StageDuration,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
	)

	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus scrape HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// WriteToTextfile writes the current values in the node exporter textfile
// format.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// ObserveReport counts every outcome of a walk.
func (m *Metrics) ObserveReport(report *collect.Report) {
	if report == nil {
		return
	}
	for _, o := range report.Outcomes {
		m.FilesTotal.WithLabelValues(o.Kind.String()).Inc()
	}
}

// ObserveExtraction records which strategy produced result.
func (m *Metrics) ObserveExtraction(result extract.Result) {
	m.ExtractionsTotal.WithLabelValues(string(result.Strategy)).Inc()
	if result.Fallback != nil {
		m.ExtractionFallbacks.Inc()
	}
}

// ObserveFetch records fetched item and failure counts for source.
func (m *Metrics) ObserveFetch(source string, fetched int, failures []fetch.Failure) {
	m.FetchedTotal.WithLabelValues(source).Add(float64(fetched))
	m.FetchFailuresTotal.WithLabelValues(source).Add(float64(len(failures)))
}

// ObserveDownloads records the outcome of each download.
func (m *Metrics) ObserveDownloads(results []fetch.DownloadResult) {
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = "error"
		}
		m.DownloadsTotal.WithLabelValues(status).Inc()
	}
}
