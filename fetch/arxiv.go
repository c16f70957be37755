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
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/poiesic/topicscout/core"
)

const defaultArxivURL = "http://export.arxiv.org/api/query"

// PublishedLayout is the timestamp format arXiv uses for entry dates.
const PublishedLayout = "2006-01-02T15:04:05Z"

// ArxivClient searches the arXiv API.
type ArxivClient struct {
	opts   *clientOptions
	logger *slog.Logger
}

// Atom feed structures for arXiv API

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string     `xml:"id"`
	Title     string     `xml:"title"`
	Summary   string     `xml:"summary"`
	Published string     `xml:"published"`
	Links     []atomLink `xml:"link"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
	Rel  string `xml:"rel,attr"`
}

// NewArxivClient creates an arXiv search client.
func NewArxivClient(opts ...Option) *ArxivClient {
	o := newClientOptions(defaultArxivURL, opts)
	return &ArxivClient{
		opts:   o,
		logger: o.logger.With("component", "fetch-arxiv"),
	}
}

// Search returns up to limit papers matching interest. With a positive
// days value, papers published before that many days ago are dropped.
func (c *ArxivClient) Search(ctx context.Context, interest string, limit, days int) ([]core.Paper, error) {
	u := fmt.Sprintf("%s?search_query=all:%s&start=0&max_results=%d",
		c.opts.baseURL, url.PathEscape(interest), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.userAgent)

	resp, err := c.opts.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query arxiv: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("%w: parse xml: %w", ErrDecode, err)
	}

	threshold := c.opts.threshold(days)
	papers := make([]core.Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		published := strings.TrimSpace(entry.Published)
		publishedAt, err := time.Parse(PublishedLayout, published)
		if err != nil {
			c.logger.Warn("skipping entry with unparseable date", "id", entry.ID, "published", published)
			continue
		}
		if !threshold.IsZero() && publishedAt.Before(threshold) {
			continue
		}
		papers = append(papers, core.Paper{
			Interest:  interest,
			Title:     strings.TrimSpace(entry.Title),
			Published: published,
			Summary:   strings.TrimSpace(entry.Summary),
			PDFURL:    pdfURL(entry),
		})
	}
	return papers, nil
}

// FetchAll searches each interest in turn, logging and collecting failures.
func (c *ArxivClient) FetchAll(ctx context.Context, interests []string, limit, days int) ([]core.Paper, []Failure) {
	var papers []core.Paper
	var failures []Failure
	for _, interest := range interests {
		if ctx.Err() != nil {
			failures = append(failures, Failure{Interest: interest, Source: "arxiv", Err: ctx.Err()})
			continue
		}
		found, err := c.Search(ctx, interest, limit, days)
		if err != nil {
			c.logger.Error("error fetching papers", "interest", interest, "err", err)
			failures = append(failures, Failure{Interest: interest, Source: "arxiv", Err: err})
			continue
		}
		c.logger.Debug("fetched papers", "interest", interest, "count", len(found))
		papers = append(papers, found...)
	}
	return papers, failures
}

// pdfURL prefers the entry's PDF link and otherwise derives one from the
// last segment of its id.
func pdfURL(entry atomEntry) string {
	for _, link := range entry.Links {
		if link.Type == "application/pdf" {
			return link.Href
		}
	}
	id := strings.TrimSpace(entry.ID)
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		id = id[idx+1:]
	}
	return "http://arxiv.org/pdf/" + id + ".pdf"
}
