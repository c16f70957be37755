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


package fetch

import (
	"log/slog"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	baseURL    string
	token      string
	userAgent  string
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a GitHubClient or ArxivClient.
type Option func(*clientOptions)

// WithBaseURL sets a custom endpoint (for testing).
func WithBaseURL(url string) Option {
	return func(o *clientOptions) {
		o.baseURL = url
	}
}

// WithTimeout sets the HTTP client timeout. Default is 30s. A client passed
// to WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithToken sets the GitHub API token. Ignored by the arXiv client.
func WithToken(token string) Option {
	return func(o *clientOptions) {
		o.token = token
	}
}

// WithClock sets the time source used for recency thresholds.
func WithClock(now func() time.Time) Option {
	return func(o *clientOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newClientOptions(baseURL string, opts []Option) *clientOptions {
	o := &clientOptions{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		userAgent:  "topicscout",
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.timeout > 0 {
		c := *o.httpClient
		c.Timeout = o.timeout
		o.httpClient = &c
	}
	return o
}

// threshold returns the instant days*24h before now, or the zero time when
// days is not positive.
func (o *clientOptions) threshold(days int) time.Time {
	if days <= 0 {
		return time.Time{}
	}
	return o.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
}
