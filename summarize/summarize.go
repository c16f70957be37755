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


// Package summarize writes a markdown report of generated summaries for the
// papers listed in an arXiv metadata spreadsheet.
package summarize

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/topicscout/ai"
	"github.com/poiesic/topicscout/export"
)

const (
	// NotAvailable replaces a summary the summarizer failed to produce.
	NotAvailable = "Summary not available"
	// NoSummary is used for papers without an abstract.
	NoSummary = "No summary provided."
	// NoTitle is used for papers without a title.
	NoTitle = "No Title"
)

var (
	// ErrMetadataNotFound is returned when the metadata spreadsheet does not exist.
	ErrMetadataNotFound = errors.New("metadata file not found")

	// ErrNoPapers is returned when the metadata spreadsheet lists no papers.
	ErrNoPapers = errors.New("no papers found in the metadata file")
)

// Entry is one paper of the report.
type Entry struct {
	Title     string
	Original  string
	Generated string
	Err       error
}

// Reporter summarizes paper abstracts.
type Reporter struct {
	summarizer ai.Summarizer
	logger     *slog.Logger
}

// NewReporter creates a reporter backed by summarizer.
func NewReporter(summarizer ai.Summarizer) *Reporter {
	return &Reporter{
		summarizer: summarizer,
		logger:     slog.Default().With("component", "summarize"),
	}
}

// Run reads metadataPath, summarizes every abstract and writes the report
// to outputPath. Individual summarization failures are logged and recorded
// in the returned entries; they do not fail the run.
func (r *Reporter) Run(ctx context.Context, metadataPath, outputPath string) ([]Entry, error) {
	if _, err := os.Stat(metadataPath); err != nil {
		r.logger.Error("metadata file not found", "path", metadataPath)
		return nil, fmt.Errorf("%w: %s", ErrMetadataNotFound, metadataPath)
	}

	papers, err := export.ReadPapers(metadataPath)
	if err != nil {
		return nil, err
	}
	if len(papers) == 0 {
		r.logger.Error("no papers found in the metadata file", "path", metadataPath)
		return nil, ErrNoPapers
	}

	entries := make([]Entry, 0, len(papers))
	for _, p := range papers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries = append(entries, r.summarize(ctx, p.Title, p.Summary))
	}

	if err := WriteMarkdown(outputPath, entries); err != nil {
		return entries, err
	}
	r.logger.Info("paper summaries written", "path", outputPath, "papers", len(entries))
	return entries, nil
}

func (r *Reporter) summarize(ctx context.Context, title, abstract string) Entry {
	if strings.TrimSpace(title) == "" {
		title = NoTitle
	}
	e := Entry{Title: title, Original: abstract}
	if abstract == "" {
		e.Generated = NoSummary
		return e
	}

	generated, err := r.summarizer.Summarize(ctx, abstract)
	if err != nil {
		r.logger.Error("error summarizing paper", "title", title, "err", err)
		e.Generated = NotAvailable
		e.Err = err
		return e
	}
	e.Generated = generated
	return e
}

// WriteMarkdown writes entries as a markdown document.
func WriteMarkdown(path string, entries []Entry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprint(w, "# Paper Summaries\n\n")
	for _, e := range entries {
		fmt.Fprintf(w, "## %s\n\n", e.Title)
		fmt.Fprint(w, "**Original Summary:**\n\n")
		fmt.Fprintf(w, "%s\n\n", e.Original)
		fmt.Fprint(w, "**Generated Summary:**\n\n")
		fmt.Fprintf(w, "%s\n\n", e.Generated)
		fmt.Fprint(w, "---\n\n")
	}
	return w.Flush()
}
