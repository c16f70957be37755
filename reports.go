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
	"strings"

	"github.com/poiesic/topicscout/analysis"
	"github.com/poiesic/topicscout/collect"
	"github.com/poiesic/topicscout/export"
	"github.com/poiesic/topicscout/extract"
	"github.com/poiesic/topicscout/summarize"
	"github.com/poiesic/topicscout/topics"
)

// GraphResult summarizes a Graph run. Graph is nil when no topics were found.
type GraphResult struct {
	Graph  *analysis.Graph
	Report *collect.Report
}

// TopicsResult summarizes a Topics run.
type TopicsResult struct {
	Topics []topics.Topic
	Report *collect.Report
}

// TimelineResult summarizes a Timeline run.
type TimelineResult struct {
	Counts []analysis.TopicCount
	Report *collect.Report
}

// Graph builds the per-file co-occurrence graph of the configured folders
// and writes it as DOT and PNG. Files are matched with keywords only.
func (s *Scout) Graph(ctx context.Context) (*GraphResult, error) {
	if len(s.cfg.Folders) == 0 {
		return nil, ErrNoFolders
	}
	walker, err := s.newWalker()
	if err != nil {
		return nil, err
	}

	done := s.metrics.Time("graph")
	defer done()
	acc, report, err := analysis.BuildCooccurrence(ctx, walker, extract.NewKeywordMatcher(s.vocab), s.cfg.Folders)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveReport(report)

	result := &GraphResult{Report: report}
	if len(acc.Nodes()) == 0 {
		s.logger.Info("no topics found in the provided folders")
		return result, nil
	}
	graph := acc.Graph()
	result.Graph = &graph

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.cfg.OutputDir, err)
	}
	kg := export.NewKnowledgeGraph(graph)
	if err := kg.WriteDOT(s.outputPath(GraphDOTFile)); err != nil {
		return nil, fmt.Errorf("write graph: %w", err)
	}
	if err := kg.RenderPNG(s.outputPath(GraphPNGFile)); err != nil {
		return nil, fmt.Errorf("render graph: %w", err)
	}
	s.logger.Info("knowledge graph saved", "path", s.outputPath(GraphPNGFile),
		"nodes", len(graph.Nodes), "edges", len(graph.Edges))
	return result, nil
}

// Timeline records one (date, topic) entry per interest per file and writes
// them as CSV along with a stacked bar chart.
func (s *Scout) Timeline(ctx context.Context) (*TimelineResult, error) {
	if len(s.cfg.Folders) == 0 {
		return nil, ErrNoFolders
	}
	walker, err := s.newWalker()
	if err != nil {
		return nil, err
	}

	done := s.metrics.Time("timeline")
	defer done()
	timeline, report, err := analysis.BuildTimeline(ctx, walker, extract.NewKeywordMatcher(s.vocab), s.cfg.Folders)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveReport(report)

	result := &TimelineResult{Counts: timeline.Counts(), Report: report}
	if timeline.Len() == 0 {
		s.logger.Info("no records found")
		return result, nil
	}

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.cfg.OutputDir, err)
	}
	if err := export.RenderTimeline(s.outputPath(TimelinePNGFile), result.Counts); err != nil {
		return nil, fmt.Errorf("render timeline: %w", err)
	}
	if err := export.WriteTimelineCSV(s.outputPath(TimelineCSVFile), timeline.Records()); err != nil {
		return nil, fmt.Errorf("write timeline: %w", err)
	}
	s.logger.Info("report generated",
		"chart", s.outputPath(TimelinePNGFile),
		"csv", s.outputPath(TimelineCSVFile))
	return result, nil
}

// Summarize writes a markdown report summarizing every paper in the papers
// spreadsheet of a previous Analyze run.
func (s *Scout) Summarize(ctx context.Context) ([]summarize.Entry, error) {
	done := s.metrics.Time("summarize")
	defer done()
	summarizer := s.provider.Summarizer()
	if summarizer == nil {
		return nil, ErrNoSummarizer
	}
	reporter := summarize.NewReporter(summarizer)
	return reporter.Run(ctx, s.outputPath(PapersFile), s.outputPath(SummaryReportFile))
}

// Topics fits an LDA model over the files of the configured folders, one
// document per file, and writes the topics to the topics file.
func (s *Scout) Topics(ctx context.Context) (*TopicsResult, error) {
	if len(s.cfg.Folders) == 0 {
		return nil, ErrNoFolders
	}
	walker, err := s.newWalker()
	if err != nil {
		return nil, err
	}
	modeler, err := topics.NewModeler(
		topics.WithTopics(s.cfg.Topics),
		topics.WithWords(s.cfg.TopicWords),
		topics.WithIterations(s.cfg.TopicIterations),
	)
	if err != nil {
		return nil, err
	}

	done := s.metrics.Time("topics")
	defer done()
	found, report, err := topics.Build(ctx, walker, modeler, s.cfg.Folders)
	s.metrics.ObserveReport(report)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.cfg.OutputDir, err)
	}
	var sb strings.Builder
	for _, topic := range found {
		sb.WriteString(topic.String())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(s.outputPath(TopicsFile), []byte(sb.String()), 0o644); err != nil {
		return nil, fmt.Errorf("write topics: %w", err)
	}
	s.logger.Info("topics saved", "path", s.outputPath(TopicsFile), "topics", len(found))
	return &TopicsResult{Topics: found, Report: report}, nil
}
