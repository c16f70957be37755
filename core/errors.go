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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidVocabulary indicates a Vocabulary failed validation.
	ErrInvalidVocabulary = errors.New("invalid vocabulary")

	// ErrEmptyEntry indicates a vocabulary entry is empty.
	ErrEmptyEntry = errors.New("vocabulary entry cannot be empty")

	// ErrNotLowercase indicates a vocabulary entry contains uppercase letters.
	ErrNotLowercase = errors.New("vocabulary entry must be lowercase")

	// ErrUntrimmedEntry indicates a vocabulary entry has leading or trailing whitespace.
	ErrUntrimmedEntry = errors.New("vocabulary entry has surrounding whitespace")

	// ErrDuplicateEntry indicates the same phrase appears twice.
	ErrDuplicateEntry = errors.New("duplicate vocabulary entry")

	// ErrInvalidPair indicates a pair with an empty or repeated member.
	ErrInvalidPair = errors.New("pair members must be distinct and non-empty")

	// ErrInvalidRecencyWindow indicates a negative day count.
	ErrInvalidRecencyWindow = errors.New("recency window cannot be negative")
)
