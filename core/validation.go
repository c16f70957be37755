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

import (
	"fmt"
	"strings"
)

// ValidateVocabularyEntries validates vocabulary entries according to domain rules.
//
// Validation rules:
//   - Entries must not be empty
//   - Entries must be lowercase
//   - Entries must not have leading or trailing whitespace
//   - Entries must be unique
//
// An empty entry list is valid; it simply matches nothing.
func ValidateVocabularyEntries(entries []string) error {
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e == "" {
			return fmt.Errorf("%w: entry %d: %w", ErrInvalidVocabulary, i, ErrEmptyEntry)
		}
		if strings.TrimSpace(e) != e {
			return fmt.Errorf("%w: entry %q: %w", ErrInvalidVocabulary, e, ErrUntrimmedEntry)
		}
		if strings.ToLower(e) != e {
			return fmt.Errorf("%w: entry %q: %w", ErrInvalidVocabulary, e, ErrNotLowercase)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("%w: entry %q: %w", ErrInvalidVocabulary, e, ErrDuplicateEntry)
		}
		seen[e] = struct{}{}
	}
	return nil
}

// ValidateRecencyWindow checks a window expressed in days. Zero disables the window.
func ValidateRecencyWindow(days int) error {
	if days < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRecencyWindow, days)
	}
	return nil
}
