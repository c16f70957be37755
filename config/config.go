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


// Package config loads the run configuration from YAML with defaults and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/poiesic/topicscout/ai"
	"github.com/poiesic/topicscout/core"
	"github.com/poiesic/topicscout/extract"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all run configuration.
type Config struct {
	Folders         []string `yaml:"folders"`
	ManualInterests string   `yaml:"manual_interests"`
	Extensions      []string `yaml:"extensions"`

	// Days is the recency window for files, repositories and papers. Zero disables it.
	Days int    `yaml:"days"`
	Mode string `yaml:"mode"`

	OutputDir string `yaml:"output_dir"`
	PapersDir string `yaml:"papers_dir"`

	ReposPerInterest  int  `yaml:"repos_per_interest"`
	PapersPerInterest int  `yaml:"papers_per_interest"`
	DownloadPDFs      bool `yaml:"download_pdfs"`
	DownloadWorkers   int  `yaml:"download_workers"`

	GitHubURL        string `yaml:"github_url"`
	GitHubToken      string `yaml:"github_token"`
	ArxivURL         string `yaml:"arxiv_url"`
	FetchTimeoutSecs int    `yaml:"fetch_timeout_secs"`

	Topics          int `yaml:"topics"`
	TopicWords      int `yaml:"topic_words"`
	TopicIterations int `yaml:"topic_iterations"`

	DashboardAddr string   `yaml:"dashboard_addr"`
	LogLevel      string   `yaml:"log_level"`
	AI            AIConfig `yaml:"ai"`
}

// AIConfig mirrors ai.Config for YAML.
type AIConfig struct {
	Host            string `yaml:"host"`
	PipelineModel   string `yaml:"pipeline_model"`
	SummarizerModel string `yaml:"summarizer_model"`
	APIToken        string `yaml:"api_token"`
	SummaryMinWords int    `yaml:"summary_min_words"`
	SummaryMaxWords int    `yaml:"summary_max_words"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	applyEnvironmentOverrides(cfg)
	return cfg
}

// Load reads configuration from a YAML file and applies defaults. An empty
// path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	applyDefaults(cfg)
	applyEnvironmentOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = extract.ModeBasic.String()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if cfg.PapersDir == "" {
		cfg.PapersDir = "papers"
	}
	if cfg.ReposPerInterest == 0 {
		cfg.ReposPerInterest = 5
	}
	if cfg.PapersPerInterest == 0 {
		cfg.PapersPerInterest = 3
	}
	if cfg.DownloadWorkers == 0 {
		cfg.DownloadWorkers = 1
	}
	if cfg.GitHubURL == "" {
		cfg.GitHubURL = "https://api.github.com"
	}
	if cfg.ArxivURL == "" {
		cfg.ArxivURL = "http://export.arxiv.org/api/query"
	}
	if cfg.FetchTimeoutSecs == 0 {
		cfg.FetchTimeoutSecs = 30
	}
	if cfg.Topics == 0 {
		cfg.Topics = 5
	}
	if cfg.TopicWords == 0 {
		cfg.TopicWords = 5
	}
	if cfg.TopicIterations == 0 {
		cfg.TopicIterations = 10
	}
	if cfg.DashboardAddr == "" {
		cfg.DashboardAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	defaults := ai.DefaultConfig()
	if cfg.AI.Host == "" {
		cfg.AI.Host = defaults.PipelineHost
	}
	if cfg.AI.PipelineModel == "" {
		cfg.AI.PipelineModel = defaults.PipelineModel
	}
	if cfg.AI.SummarizerModel == "" {
		cfg.AI.SummarizerModel = defaults.SummarizerModel
	}
	if cfg.AI.SummaryMinWords == 0 {
		cfg.AI.SummaryMinWords = defaults.SummaryMinWords
	}
	if cfg.AI.SummaryMaxWords == 0 {
		cfg.AI.SummaryMaxWords = defaults.SummaryMaxWords
	}
}

func applyEnvironmentOverrides(cfg *Config) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.GitHubToken = token
	}
	if host := os.Getenv("TOPICSCOUT_AI_HOST"); host != "" {
		cfg.AI.Host = host
	}
	if token := os.Getenv("TOPICSCOUT_AI_TOKEN"); token != "" {
		cfg.AI.APIToken = token
	}
}

// Validate checks value ranges. Folders are not required here because only
// the analysis commands need them.
func (c *Config) Validate() error {
	if err := core.ValidateRecencyWindow(c.Days); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := extract.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.ReposPerInterest < 1 {
		return fmt.Errorf("%w: repos_per_interest must be positive, got %d", ErrInvalidConfig, c.ReposPerInterest)
	}
	if c.PapersPerInterest < 1 {
		return fmt.Errorf("%w: papers_per_interest must be positive, got %d", ErrInvalidConfig, c.PapersPerInterest)
	}
	if c.DownloadWorkers < 1 {
		return fmt.Errorf("%w: download_workers must be positive, got %d", ErrInvalidConfig, c.DownloadWorkers)
	}
	if c.FetchTimeoutSecs < 1 {
		return fmt.Errorf("%w: fetch_timeout_secs must be positive, got %d", ErrInvalidConfig, c.FetchTimeoutSecs)
	}
	if c.Topics < 1 {
		return fmt.Errorf("%w: topics must be positive, got %d", ErrInvalidConfig, c.Topics)
	}
	if c.TopicWords < 1 {
		return fmt.Errorf("%w: topic_words must be positive, got %d", ErrInvalidConfig, c.TopicWords)
	}
	if c.TopicIterations < 1 {
		return fmt.Errorf("%w: topic_iterations must be positive, got %d", ErrInvalidConfig, c.TopicIterations)
	}
	if err := c.AIConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ExtractionMode returns the parsed Mode.
func (c *Config) ExtractionMode() extract.Mode {
	mode, err := extract.ParseMode(c.Mode)
	if err != nil {
		return extract.ModeBasic
	}
	return mode
}

// FetchTimeout returns the HTTP timeout for fetch clients.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSecs) * time.Second
}

// AIConfig builds the ai.Config for the providers.
func (c *Config) AIConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithHost(c.AI.Host),
		ai.WithPipelineModel(c.AI.PipelineModel),
		ai.WithSummarizerModel(c.AI.SummarizerModel),
		ai.WithAPIToken(c.AI.APIToken),
		ai.WithSummaryLength(c.AI.SummaryMinWords, c.AI.SummaryMaxWords),
	)
}
