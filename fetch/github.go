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
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/poiesic/topicscout/core"
)

const defaultGitHubURL = "https://api.github.com"

// GitHubClient searches GitHub repositories.
type GitHubClient struct {
	opts   *clientOptions
	logger *slog.Logger
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Language    string `json:"language"`
	PushedAt    string `json:"pushed_at"`
}

// NewGitHubClient creates a GitHub search client.
func NewGitHubClient(opts ...Option) *GitHubClient {
	o := newClientOptions(defaultGitHubURL, opts)
	return &GitHubClient{
		opts:   o,
		logger: o.logger.With("component", "fetch-github"),
	}
}

// Query returns the search query for interest. A positive days value
// restricts results to repositories pushed on or after that many days ago.
func (c *GitHubClient) Query(interest string, days int) string {
	if t := c.opts.threshold(days); !t.IsZero() {
		return fmt.Sprintf("%s pushed:>=%s", interest, t.Format("2006-01-02"))
	}
	return interest
}

// Search returns up to limit repositories for interest, most starred first.
func (c *GitHubClient) Search(ctx context.Context, interest string, limit, days int) ([]core.Repository, error) {
	params := url.Values{}
	params.Set("q", c.Query(interest, days))
	params.Set("sort", "stars")
	params.Set("order", "desc")
	params.Set("per_page", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.opts.baseURL+"/search/repositories?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.opts.userAgent)
	if c.opts.token != "" {
		req.Header.Set("Authorization", "token "+c.opts.token)
	}

	resp, err := c.opts.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search repositories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.Status)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	repos := make([]core.Repository, 0, len(body.Items))
	for _, item := range body.Items {
		repos = append(repos, core.Repository{
			Interest:    interest,
			Name:        item.FullName,
			HTMLURL:     item.HTMLURL,
			Description: item.Description,
			Language:    item.Language,
			LastPushed:  item.PushedAt,
		})
	}
	return repos, nil
}

// FetchAll searches each interest in turn. Failed interests are logged and
// returned as failures; their repositories are simply absent.
func (c *GitHubClient) FetchAll(ctx context.Context, interests []string, limit, days int) ([]core.Repository, []Failure) {
	var repos []core.Repository
	var failures []Failure
	for _, interest := range interests {
		if ctx.Err() != nil {
			failures = append(failures, Failure{Interest: interest, Source: "github", Err: ctx.Err()})
			continue
		}
		found, err := c.Search(ctx, interest, limit, days)
		if err != nil {
			c.logger.Error("error fetching GitHub repos", "interest", interest, "err", err)
			failures = append(failures, Failure{Interest: interest, Source: "github", Err: err})
			continue
		}
		c.logger.Debug("fetched repositories", "interest", interest, "count", len(found))
		repos = append(repos, found...)
	}
	return repos, failures
}
