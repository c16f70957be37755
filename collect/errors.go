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

import "errors"

var (
	// ErrNotDirectory is recorded when a requested path is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrInvalidEncoding is recorded for files that are not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")

	// ErrNoExtensions is returned when a walker is configured with no extensions.
	ErrNoExtensions = errors.New("at least one file extension is required")

	// ErrWalkAborted wraps the error that stopped a walk early.
	ErrWalkAborted = errors.New("walk aborted")
)
