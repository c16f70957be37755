package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/topicscout/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("TOPICSCOUT_AI_HOST", "")
	t.Setenv("TOPICSCOUT_AI_TOKEN", "")

	cfg, err := Load(writeConfig(t, "folders: [notes]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"notes"}, cfg.Folders)
	assert.Equal(t, "basic", cfg.Mode)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "papers", cfg.PapersDir)
	assert.Equal(t, 5, cfg.ReposPerInterest)
	assert.Equal(t, 3, cfg.PapersPerInterest)
	assert.Equal(t, 1, cfg.DownloadWorkers)
	assert.False(t, cfg.DownloadPDFs)
	assert.Equal(t, 0, cfg.Days)
	assert.Equal(t, "https://api.github.com", cfg.GitHubURL)
	assert.Equal(t, "http://export.arxiv.org/api/query", cfg.ArxivURL)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout())
	assert.Equal(t, 5, cfg.Topics)
	assert.Equal(t, 5, cfg.TopicWords)
	assert.Equal(t, 10, cfg.TopicIterations)
	assert.Equal(t, ":8080", cfg.DashboardAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:11434/v1", cfg.AI.Host)
	assert.Equal(t, 130, cfg.AI.SummaryMaxWords)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().OutputDir, cfg.OutputDir)
	assert.Empty(t, cfg.Folders)
}

func TestLoadOverrideDefaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	content := `
folders: [notes, chats]
manual_interests: interests.txt
extensions: [.txt, .md, .org]
days: 14
mode: advanced
output_dir: out
papers_dir: pdfs
repos_per_interest: 10
papers_per_interest: 2
download_pdfs: true
download_workers: 4
github_token: file-token
fetch_timeout_secs: 5
topics: 8
topic_words: 12
topic_iterations: 50
ai:
  host: http://llm:8000
  pipeline_model: gpt-4o-mini
  summary_min_words: 20
  summary_max_words: 60
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, []string{"notes", "chats"}, cfg.Folders)
	assert.Equal(t, "interests.txt", cfg.ManualInterests)
	assert.Equal(t, []string{".txt", ".md", ".org"}, cfg.Extensions)
	assert.Equal(t, 14, cfg.Days)
	assert.Equal(t, extract.ModeAdvanced, cfg.ExtractionMode())
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "pdfs", cfg.PapersDir)
	assert.Equal(t, 10, cfg.ReposPerInterest)
	assert.Equal(t, 2, cfg.PapersPerInterest)
	assert.True(t, cfg.DownloadPDFs)
	assert.Equal(t, 4, cfg.DownloadWorkers)
	assert.Equal(t, "file-token", cfg.GitHubToken)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout())
	assert.Equal(t, 8, cfg.Topics)
	assert.Equal(t, 12, cfg.TopicWords)
	assert.Equal(t, 50, cfg.TopicIterations)

	aiCfg := cfg.AIConfig()
	require.NoError(t, aiCfg.Validate())
	assert.Equal(t, "http://llm:8000/v1", aiCfg.PipelineHost)
	assert.Equal(t, "gpt-4o-mini", aiCfg.PipelineModel)
	assert.Equal(t, "qwen2.5:3b", aiCfg.SummarizerModel)
	assert.Equal(t, 20, aiCfg.SummaryMinWords)
	assert.Equal(t, 60, aiCfg.SummaryMaxWords)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	t.Setenv("TOPICSCOUT_AI_HOST", "http://env-host:1234/v1")
	t.Setenv("TOPICSCOUT_AI_TOKEN", "sk-env")

	cfg, err := Load(writeConfig(t, "github_token: file-token\n"))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.GitHubToken)
	assert.Equal(t, "http://env-host:1234/v1", cfg.AI.Host)
	assert.Equal(t, "sk-env", cfg.AI.APIToken)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{name: "negative days", content: "days: -3\n", message: "recency window"},
		{name: "unknown mode", content: "mode: magic\n", message: "magic"},
		{name: "negative repos", content: "repos_per_interest: -1\n", message: "repos_per_interest"},
		{name: "negative papers", content: "papers_per_interest: -1\n", message: "papers_per_interest"},
		{name: "negative workers", content: "download_workers: -2\n", message: "download_workers"},
		{name: "negative topics", content: "topics: -1\n", message: "topics"},
		{name: "negative topic words", content: "topic_words: -5\n", message: "topic_words"},
		{name: "negative topic iterations", content: "topic_iterations: -1\n", message: "topic_iterations"},
		{name: "summary bounds", content: "ai:\n  summary_min_words: 50\n  summary_max_words: 10\n", message: "SummaryMaxWords"},
		{name: "malformed yaml", content: "folders: [unclosed\n", message: "parse config yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateWrapsSentinel(t *testing.T) {
	cfg := Default()
	cfg.Days = -1

	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
