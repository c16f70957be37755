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
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus is returned for any non-200 HTTP response.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrDecode is returned when a response body cannot be parsed.
	ErrDecode = errors.New("decode response")

	// ErrDownloaderClosed is returned by Submit after Release.
	ErrDownloaderClosed = errors.New("downloader is closed")
)

// Failure records an interest or download that could not be completed.
type Failure struct {
	Interest string
	Source   string
	Err      error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s %q: %v", f.Source, f.Interest, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// JoinFailures combines failures into one error, or returns nil.
func JoinFailures(failures []Failure) error {
	errs := make([]error, len(failures))
	for i, f := range failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

func statusError(status string) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedStatus, status)
}
