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


package collect

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/poiesic/topicscout/core"
)

// DefaultExtensions are the file extensions read when none are configured.
var DefaultExtensions = []string{".txt", ".md"}

// Walker enumerates text files beneath a set of directories.
type Walker struct {
	extensions []string
	window     time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Walker.
type Option func(*Walker) error

// WithExtensions sets the file name suffixes to read. Matching is case sensitive.
func WithExtensions(exts ...string) Option {
	return func(w *Walker) error {
		cleaned := make([]string, 0, len(exts))
		for _, e := range exts {
			e = strings.TrimSpace(e)
			if e == "" {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			cleaned = append(cleaned, e)
		}
		if len(cleaned) == 0 {
			return ErrNoExtensions
		}
		w.extensions = cleaned
		return nil
	}
}

// WithRecencyDays skips files modified more than days*24h ago.
// Zero disables the window.
func WithRecencyDays(days int) Option {
	return func(w *Walker) error {
		if err := core.ValidateRecencyWindow(days); err != nil {
			return err
		}
		w.window = time.Duration(days) * 24 * time.Hour
		return nil
	}
}

// WithClock sets the time source used for the recency window.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(w *Walker) error {
		if now == nil {
			now = time.Now
		}
		w.now = now
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Walker) error {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
		return nil
	}
}

// NewWalker creates a walker reading .txt and .md files with no recency window.
func NewWalker(opts ...Option) (*Walker, error) {
	w := &Walker{
		extensions: DefaultExtensions,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	w.logger = w.logger.With("component", "collect-walker")
	return w, nil
}

// Walk visits dirs in order and calls fn for every readable file.
//
// Missing directories, unlistable subdirectories and unreadable files are
// logged, recorded in the report and skipped. Walk stops early only when
// ctx is cancelled or fn returns an error; the partial report is returned
// alongside an error wrapping ErrWalkAborted.
func (w *Walker) Walk(ctx context.Context, dirs []string, fn func(core.Document) error) (*Report, error) {
	report := &Report{}
	var cutoff time.Time
	if w.window > 0 {
		cutoff = w.now().Add(-w.window)
	}

	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("%w: %w", ErrWalkAborted, err)
		}

		info, err := os.Stat(dir)
		if err == nil && !info.IsDir() {
			err = ErrNotDirectory
		}
		if err != nil {
			w.logger.Warn("folder not found", "dir", dir, "err", err)
			report.add(dir, MissingDir, err)
			continue
		}

		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				w.logger.Error("error walking directory", "path", path, "err", err)
				report.add(path, WalkFailed, err)
				return nil
			}
			if d.IsDir() || !w.accepts(d) {
				return nil
			}
			return w.visit(path, cutoff, report, fn)
		})
		if err != nil {
			return report, fmt.Errorf("%w: %w", ErrWalkAborted, err)
		}
	}
	return report, nil
}

func (w *Walker) accepts(d fs.DirEntry) bool {
	if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	name := d.Name()
	for _, ext := range w.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// visit reads one file. Only an error from fn is returned.
func (w *Walker) visit(path string, cutoff time.Time, report *Report, fn func(core.Document) error) error {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return nil
	}
	if err != nil {
		w.logger.Error("error reading file", "path", path, "err", err)
		report.add(path, ReadFailed, err)
		return nil
	}

	modTime := info.ModTime()
	if !cutoff.IsZero() && modTime.Before(cutoff) {
		w.logger.Debug("skipping file outside recency window", "path", path, "modified", modTime)
		report.add(path, OutsideWindow, nil)
		return nil
	}

	content, err := os.ReadFile(path)
	if err == nil && !utf8.Valid(content) {
		err = ErrInvalidEncoding
	}
	if err != nil {
		w.logger.Error("error reading file", "path", path, "err", err)
		report.add(path, ReadFailed, err)
		return nil
	}

	report.add(path, Read, nil)
	if err := fn(core.Document{Path: path, Content: string(content), ModTime: modTime}); err != nil {
		return fmt.Errorf("processing %s: %w", path, err)
	}
	return nil
}
