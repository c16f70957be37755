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


package topicscout

import (
	"context"
	"fmt"
	"os"

	"github.com/poiesic/topicscout/collect"
	"github.com/poiesic/topicscout/core"
	"github.com/poiesic/topicscout/export"
	"github.com/poiesic/topicscout/fetch"
)

// AnalyzeResult summarizes an Analyze run.
type AnalyzeResult struct {
	Interests    []string
	Extraction   *collect.InterestsResult
	Repositories []core.Repository
	Papers       []core.Paper
	Downloads    []fetch.DownloadResult
	Failures     []fetch.Failure
}

// Analyze extracts interests from the configured folders, fetches matching
// GitHub repositories and arXiv papers, and writes them to spreadsheets.
// With no interests it logs a warning and returns without fetching.
func (s *Scout) Analyze(ctx context.Context) (*AnalyzeResult, error) {
	for _, dir := range []string{s.cfg.OutputDir, s.cfg.PapersDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	extraction, err := s.Interests(ctx)
	if err != nil {
		return nil, err
	}
	result := &AnalyzeResult{
		Interests:  extraction.Interests.Sorted(),
		Extraction: extraction,
	}
	s.metrics.InterestsFound.Set(float64(len(result.Interests)))

	if len(result.Interests) == 0 {
		s.logger.Warn("no interests were extracted, check the input folders or provide a manual interests file")
		return result, s.writeMetrics()
	}

	if err := s.fetchRepositories(ctx, result); err != nil {
		return nil, err
	}
	if err := s.fetchPapers(ctx, result); err != nil {
		return nil, err
	}
	return result, s.writeMetrics()
}

func (s *Scout) fetchRepositories(ctx context.Context, result *AnalyzeResult) error {
	client := fetch.NewGitHubClient(append(s.fetchOptions(),
		fetch.WithBaseURL(s.cfg.GitHubURL),
		fetch.WithToken(s.cfg.GitHubToken))...)

	s.logger.Info("fetching GitHub repositories")
	done := s.metrics.Time("github")
	repos, failures := client.FetchAll(ctx, result.Interests, s.cfg.ReposPerInterest, s.cfg.Days)
	done()
	s.metrics.ObserveFetch("github", len(repos), failures)
	s.logger.Info("fetched repositories from GitHub", "count", len(repos), "failures", len(failures))

	result.Repositories = repos
	result.Failures = append(result.Failures, failures...)

	path := s.outputPath(RepositoriesFile)
	if err := export.WriteRepositories(path, repos); err != nil {
		return fmt.Errorf("write repositories: %w", err)
	}
	s.logger.Info("GitHub repository data saved", "path", path)
	return nil
}

func (s *Scout) fetchPapers(ctx context.Context, result *AnalyzeResult) error {
	client := fetch.NewArxivClient(append(s.fetchOptions(),
		fetch.WithBaseURL(s.cfg.ArxivURL))...)

	s.logger.Info("fetching research papers from arXiv")
	done := s.metrics.Time("arxiv")
	papers, failures := client.FetchAll(ctx, result.Interests, s.cfg.PapersPerInterest, s.cfg.Days)
	done()
	s.metrics.ObserveFetch("arxiv", len(papers), failures)
	s.logger.Info("fetched research papers from arXiv", "count", len(papers), "failures", len(failures))

	result.Papers = papers
	result.Failures = append(result.Failures, failures...)

	if s.cfg.DownloadPDFs && len(papers) > 0 {
		downloads, err := s.downloadPapers(ctx, papers)
		if err != nil {
			return err
		}
		result.Downloads = downloads
	}

	path := s.outputPath(PapersFile)
	if err := export.WritePapers(path, papers); err != nil {
		return fmt.Errorf("write papers: %w", err)
	}
	s.logger.Info("arXiv papers metadata saved", "path", path)
	return nil
}

func (s *Scout) downloadPapers(ctx context.Context, papers []core.Paper) ([]fetch.DownloadResult, error) {
	tracker := fetch.NewProgressTracker(s.progress, len(papers), 1, "downloads")
	downloader, err := fetch.NewDownloader(s.cfg.PapersDir,
		fetch.WithPoolSize(s.cfg.DownloadWorkers),
		fetch.WithDownloadHTTPClient(s.downloadClient()),
		fetch.WithProgress(tracker))
	if err != nil {
		return nil, err
	}
	defer downloader.Release()

	done := s.metrics.Time("download")
	tracker.Start()
	for _, paper := range papers {
		if err := downloader.Submit(ctx, paper); err != nil {
			s.logger.Error("error queueing PDF download", "title", paper.Title, "err", err)
		}
	}
	downloads := downloader.Wait()
	tracker.Finish()
	done()

	s.metrics.ObserveDownloads(downloads)
	return downloads, nil
}

func (s *Scout) writeMetrics() error {
	path := s.outputPath(MetricsFile)
	if err := s.metrics.WriteToTextfile(path); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
