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


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/poiesic/topicscout"
	"github.com/poiesic/topicscout/config"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func foldersFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "folders",
		Aliases: []string{"f"},
		Usage:   "Folders to analyze (repeat or comma-separate)",
	}
}

func daysFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "days",
		Usage: "Only consider files and online content from the last N days (0 disables)",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "topicscout",
		Usage: "Extract interests from your notes and fetch matching repositories and papers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "Extract interests and fetch GitHub repositories and arXiv papers",
				Action: analyzeCommand,
				Flags: []cli.Flag{
					foldersFlag(),
					daysFlag(),
					&cli.StringFlag{
						Name:    "manual-interests",
						Aliases: []string{"m"},
						Usage:   "Text file with additional interests",
					},
					&cli.BoolFlag{
						Name:  "advanced",
						Usage: "Use the linguistic pipeline for extraction, falling back to keywords",
					},
					&cli.BoolFlag{
						Name:  "download-pdfs",
						Usage: "Download the PDFs of fetched papers",
					},
				},
			},
			{
				Name:   "graph",
				Usage:  "Build a knowledge graph of co-occurring topics",
				Action: graphCommand,
				Flags:  []cli.Flag{foldersFlag(), daysFlag()},
			},
			{
				Name:   "timeline",
				Usage:  "Track topics over time by file modification date",
				Action: timelineCommand,
				Flags:  []cli.Flag{foldersFlag(), daysFlag()},
			},
			{
				Name:   "topics",
				Usage:  "Fit an LDA topic model over the files in the folders",
				Action: topicsCommand,
				Flags: []cli.Flag{
					foldersFlag(),
					daysFlag(),
					&cli.IntFlag{
						Name:  "num-topics",
						Usage: "Number of topics to extract",
					},
					&cli.IntFlag{
						Name:  "words",
						Usage: "Number of words shown per topic",
					},
				},
			},
			{
				Name:   "summarize",
				Usage:  "Summarize the papers fetched by analyze",
				Action: summarizeCommand,
			},
			{
				Name:   "serve",
				Usage:  "Serve the fetched repositories and metrics over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
					},
				},
			},
		},
	}
}

// loadConfig reads the --config file and applies command flags on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("folders") {
		cfg.Folders = c.StringSlice("folders")
	}
	if c.IsSet("days") {
		cfg.Days = c.Int("days")
	}
	if c.IsSet("manual-interests") {
		cfg.ManualInterests = c.String("manual-interests")
	}
	if c.Bool("advanced") {
		cfg.Mode = "advanced"
	}
	if c.Bool("download-pdfs") {
		cfg.DownloadPDFs = true
	}
	if c.IsSet("num-topics") {
		cfg.Topics = c.Int("num-topics")
	}
	if c.IsSet("words") {
		cfg.TopicWords = c.Int("words")
	}
	if c.IsSet("addr") {
		cfg.DashboardAddr = c.String("addr")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newScout(c *cli.Context) (*topicscout.Scout, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return topicscout.New(cfg)
}

func analyzeCommand(c *cli.Context) error {
	scout, err := newScout(c)
	if err != nil {
		return err
	}
	defer scout.Close()

	result, err := scout.Analyze(c.Context)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if len(result.Interests) == 0 {
		fmt.Fprintln(os.Stderr, "No interests were extracted.")
		return nil
	}
	fmt.Fprintf(os.Stderr, "Interests: %s\n", strings.Join(result.Interests, ", "))
	fmt.Fprintf(os.Stderr, "Repositories: %d, papers: %d, failed fetches: %d\n",
		len(result.Repositories), len(result.Papers), len(result.Failures))
	return nil
}

func graphCommand(c *cli.Context) error {
	scout, err := newScout(c)
	if err != nil {
		return err
	}
	defer scout.Close()

	result, err := scout.Graph(c.Context)
	if err != nil {
		return fmt.Errorf("graph failed: %w", err)
	}
	if result.Graph == nil {
		fmt.Fprintln(os.Stderr, "No topics found in the provided folders.")
		return nil
	}
	fmt.Fprintf(os.Stderr, "Knowledge graph: %d topics, %d edges\n",
		len(result.Graph.Nodes), len(result.Graph.Edges))
	return nil
}

func timelineCommand(c *cli.Context) error {
	scout, err := newScout(c)
	if err != nil {
		return err
	}
	defer scout.Close()

	result, err := scout.Timeline(c.Context)
	if err != nil {
		return fmt.Errorf("timeline failed: %w", err)
	}
	if len(result.Counts) == 0 {
		fmt.Fprintln(os.Stderr, "No records found.")
	}
	return nil
}

func topicsCommand(c *cli.Context) error {
	scout, err := newScout(c)
	if err != nil {
		return err
	}
	defer scout.Close()

	result, err := scout.Topics(c.Context)
	if err != nil {
		return fmt.Errorf("topic modeling failed: %w", err)
	}
	fmt.Fprintln(c.App.Writer, "Extracted Topics:")
	for _, topic := range result.Topics {
		fmt.Fprintln(c.App.Writer, topic)
	}
	return nil
}

func summarizeCommand(c *cli.Context) error {
	scout, err := newScout(c)
	if err != nil {
		return err
	}
	defer scout.Close()

	entries, err := scout.Summarize(c.Context)
	if err != nil {
		return fmt.Errorf("summarize failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Summarized %d papers\n", len(entries))
	return nil
}

func serveCommand(c *cli.Context) error {
	scout, err := newScout(c)
	if err != nil {
		return err
	}
	defer scout.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return scout.Serve(ctx)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
