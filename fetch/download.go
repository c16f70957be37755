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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/topicscout/core"
)

const maxTitleRunes = 50

// DownloadResult is the outcome of one PDF download.
type DownloadResult struct {
	Paper core.Paper
	Path  string
	Err   error

	seq int
}

// Downloader saves paper PDFs into a directory using a worker pool.
type Downloader struct {
	dir        string
	httpClient *http.Client
	pool       *ants.Pool
	progress   *ProgressTracker
	logger     *slog.Logger

	wg      sync.WaitGroup
	mu      sync.Mutex
	seq     int
	results []DownloadResult
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader) error

// WithPoolSize sets the number of concurrent downloads.
// Default is 1.
func WithPoolSize(size int) DownloaderOption {
	return func(d *Downloader) error {
		if size < 1 {
			size = 1
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if d.pool != nil {
			d.pool.Release()
		}
		d.pool = pool
		return nil
	}
}

// WithDownloadHTTPClient replaces the HTTP client.
func WithDownloadHTTPClient(c *http.Client) DownloaderOption {
	return func(d *Downloader) error {
		if c != nil {
			d.httpClient = c
		}
		return nil
	}
}

// WithProgress reports each finished download to tracker.
func WithProgress(tracker *ProgressTracker) DownloaderOption {
	return func(d *Downloader) error {
		d.progress = tracker
		return nil
	}
}

// WithDownloadLogger sets a custom logger.
func WithDownloadLogger(logger *slog.Logger) DownloaderOption {
	return func(d *Downloader) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDownloader creates dir if needed and starts a single-worker pool.
func NewDownloader(dir string, opts ...DownloaderOption) (*Downloader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create download directory: %w", err)
	}

	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	d := &Downloader{
		dir:        dir,
		httpClient: &http.Client{Timeout: 2 * defaultTimeout},
		pool:       pool,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			d.Release()
			return nil, err
		}
	}
	d.logger = d.logger.With("component", "fetch-downloader")
	return d, nil
}

// Submit queues paper for download. It blocks while every worker is busy.
func (d *Downloader) Submit(ctx context.Context, paper core.Paper) error {
	d.mu.Lock()
	seq := d.seq
	d.seq++
	d.mu.Unlock()

	d.wg.Add(1)
	err := d.pool.Submit(func() {
		defer d.wg.Done()
		path, err := d.download(ctx, paper)
		if err != nil {
			d.logger.Error("error downloading PDF", "url", paper.PDFURL, "err", err)
		} else {
			d.logger.Info("downloaded PDF", "title", paper.Title, "path", path)
		}
		if d.progress != nil {
			d.progress.Increment(1)
		}

		d.mu.Lock()
		d.results = append(d.results, DownloadResult{Paper: paper, Path: path, Err: err, seq: seq})
		d.mu.Unlock()
	})
	if err != nil {
		d.wg.Done()
		if errors.Is(err, ants.ErrPoolClosed) {
			return ErrDownloaderClosed
		}
		return err
	}
	return nil
}

// Wait blocks until every submitted download has finished and returns the
// results in submission order.
func (d *Downloader) Wait() []DownloadResult {
	d.wg.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	out := slices.Clone(d.results)
	slices.SortFunc(out, func(a, b DownloadResult) int { return a.seq - b.seq })
	return out
}

// Release stops the worker pool. Pending downloads are not waited for.
func (d *Downloader) Release() {
	if d.pool != nil {
		d.pool.Release()
	}
}

func (d *Downloader) download(ctx context.Context, paper core.Paper) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, paper.PDFURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp.Status)
	}

	path := filepath.Join(d.dir, PDFFileName(paper))
	tmp, err := os.CreateTemp(d.dir, ".download-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}

// SafeTitle keeps letters, digits, space, '-', '_' and '.', replaces every
// other character with '_' and truncates to 50 characters.
func SafeTitle(title string) string {
	var sb strings.Builder
	n := 0
	for _, r := range title {
		if n == maxTitleRunes {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(" -_.", r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
		n++
	}
	return sb.String()
}

// PDFFileName is the file name a paper is saved under: its safe title and
// a short content ID of its PDF URL, so papers sharing a title prefix do
// not overwrite one another.
func PDFFileName(paper core.Paper) string {
	id := uint32(core.IDFromContent(paper.PDFURL))
	return fmt.Sprintf("%s_%08x.pdf", SafeTitle(paper.Title), id)
}
