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
	"errors"
	"fmt"
)

// OutcomeKind classifies what happened to one visited unit.
type OutcomeKind int

const (
	// Read means the file was read and handed to the callback.
	Read OutcomeKind = iota
	// MissingDir means a requested directory does not exist or is not a directory.
	MissingDir
	// ReadFailed means a file could not be read or decoded.
	ReadFailed
	// WalkFailed means a directory inside the tree could not be listed.
	WalkFailed
	// OutsideWindow means the file was last modified before the recency window.
	OutsideWindow
)

func (k OutcomeKind) String() string {
	switch k {
	case Read:
		return "read"
	case MissingDir:
		return "missing_dir"
	case ReadFailed:
		return "read_failed"
	case WalkFailed:
		return "walk_failed"
	case OutsideWindow:
		return "outside_window"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Failed reports whether the kind represents a skipped unit due to an error.
func (k OutcomeKind) Failed() bool {
	return k == MissingDir || k == ReadFailed || k == WalkFailed
}

// Outcome is the classified result for a single directory or file.
type Outcome struct {
	Path string
	Kind OutcomeKind
	Err  error
}

// Report collects the outcomes of a walk in visiting order.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) add(path string, kind OutcomeKind, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{Path: path, Kind: kind, Err: err})
}

// Count returns the number of outcomes of the given kind.
func (r *Report) Count(kind OutcomeKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Read returns the paths of all files that were read.
func (r *Report) Read() []string {
	var paths []string
	for _, o := range r.Outcomes {
		if o.Kind == Read {
			paths = append(paths, o.Path)
		}
	}
	return paths
}

// Failures returns the outcomes of skipped directories and files.
func (r *Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Kind.Failed() {
			out = append(out, o)
		}
	}
	return out
}

// Err joins every failure into a single error, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, o := range r.Failures() {
		errs = append(errs, fmt.Errorf("%s %s: %w", o.Kind, o.Path, o.Err))
	}
	return errors.Join(errs...)
}
