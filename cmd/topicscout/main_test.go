package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/topicscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func findCommand(t *testing.T, app *cli.App, name string) *cli.Command {
	t.Helper()
	for _, cmd := range app.Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %q not found", name)
	return nil
}

func TestAppCommands(t *testing.T) {
	app := newApp()

	for _, name := range []string{"analyze", "graph", "timeline", "topics", "summarize", "serve"} {
		t.Run(name, func(t *testing.T) {
			cmd := findCommand(t, app, name)
			assert.NotNil(t, cmd.Action)
			assert.NotEmpty(t, cmd.Usage)
		})
	}

	t.Run("analyze flags", func(t *testing.T) {
		cmd := findCommand(t, app, "analyze")
		names := map[string]bool{}
		for _, f := range cmd.Flags {
			for _, n := range f.Names() {
				names[n] = true
			}
		}
		for _, want := range []string{"folders", "f", "days", "manual-interests", "m", "advanced", "download-pdfs"} {
			assert.True(t, names[want], "missing flag %s", want)
		}
	})
}

func TestSetupLogger(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "INFO"},
		{level: "warn"},
		{level: "error"},
		{level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			app := &cli.App{
				Name:   "topicscout",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "log-level", Value: "info"}},
				Before: setupLogger,
				Action: func(*cli.Context) error { return nil },
			}
			err := app.Run([]string{"topicscout", "--log-level", tt.level})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				return
			}
			require.NoError(t, err)
		})
	}
}

func writeConfig(t *testing.T, outputDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "output_dir: " + outputDir + "\npapers_dir: " + filepath.Join(outputDir, "papers") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGraphCommand(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	notes := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(notes, "a.txt"), []byte("bert and gpt"), 0o644))
	out := t.TempDir()

	err := newApp().Run([]string{"topicscout", "--log-level", "error", "--config", writeConfig(t, out), "graph", "-f", notes})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, topicscout.GraphDOTFile))
	assert.FileExists(t, filepath.Join(out, topicscout.GraphPNGFile))
}

func TestAnalyzeCommand_NoInterests(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	notes := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(notes, "a.txt"), []byte("shopping list"), 0o644))
	out := t.TempDir()

	err := newApp().Run([]string{"topicscout", "--log-level", "error", "--config", writeConfig(t, out), "analyze", "--folders", notes})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, topicscout.MetricsFile))
	assert.NoFileExists(t, filepath.Join(out, topicscout.RepositoriesFile))
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	t.Run("no folders", func(t *testing.T) {
		err := newApp().Run([]string{"topicscout", "--log-level", "error", "--config", writeConfig(t, t.TempDir()), "analyze"})
		assert.ErrorIs(t, err, topicscout.ErrNoFolders)
	})

	t.Run("negative days", func(t *testing.T) {
		err := newApp().Run([]string{"topicscout", "--log-level", "error", "analyze", "-f", t.TempDir(), "--days", "-2"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recency window")
	})

	t.Run("missing config file", func(t *testing.T) {
		err := newApp().Run([]string{"topicscout", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "analyze"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})
}

func TestTopicsCommand(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	notes := t.TempDir()
	for name, text := range map[string]string{
		"a.txt": "Attention layers in the transformer model.",
		"b.txt": "Training the transformer with attention.",
		"c.md":  "Compost the garden soil and water the seedlings.",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(notes, name), []byte(text), 0o644))
	}
	out := t.TempDir()

	var stdout bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	err := app.Run([]string{"topicscout", "--log-level", "error", "--config", writeConfig(t, out),
		"topics", "-f", notes, "--num-topics", "3", "--words", "2"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Extracted Topics:", lines[0])
	for i, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, fmt.Sprintf("%d: ", i)), line)
		assert.Equal(t, 1, strings.Count(line, " + "), line)
	}
	assert.FileExists(t, filepath.Join(out, topicscout.TopicsFile))
}

func TestTopicsCommand_Errors(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	t.Run("no folders", func(t *testing.T) {
		err := newApp().Run([]string{"topicscout", "--log-level", "error", "--config", writeConfig(t, t.TempDir()), "topics"})
		assert.ErrorIs(t, err, topicscout.ErrNoFolders)
	})

	t.Run("negative topics", func(t *testing.T) {
		err := newApp().Run([]string{"topicscout", "--log-level", "error", "--config", writeConfig(t, t.TempDir()),
			"topics", "-f", t.TempDir(), "--num-topics", "-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "topics must be positive")
	})
}
