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


package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/poiesic/topicscout/core"
)

// Matcher reports which vocabulary entries occur in text.
type Matcher interface {
	Match(ctx context.Context, text string) (core.InterestSet, error)
}

// KeywordMatcher finds whole-word, case-insensitive occurrences of
// vocabulary entries. It never fails and is safe for concurrent use.
type KeywordMatcher struct {
	entries  []string
	patterns []*regexp.Regexp
}

// Word characters are Unicode letters, digits and underscore. RE2's \b only
// knows ASCII, so boundaries are spelled out.
const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:[^\p{L}\p{N}_]|$)`
)

// NewKeywordMatcher compiles one boundary-delimited pattern per entry.
func NewKeywordMatcher(vocab core.Vocabulary) *KeywordMatcher {
	entries := vocab.Entries()
	patterns := make([]*regexp.Regexp, len(entries))
	for i, e := range entries {
		patterns[i] = regexp.MustCompile(wordStart + regexp.QuoteMeta(e) + wordEnd)
	}
	return &KeywordMatcher{
		entries:  entries,
		patterns: patterns,
	}
}

// Find returns the entries present in text.
func (m *KeywordMatcher) Find(text string) core.InterestSet {
	found := core.NewInterestSet()
	if text == "" {
		return found
	}
	lower := strings.ToLower(text)
	for i, p := range m.patterns {
		if p.MatchString(lower) {
			found.Add(m.entries[i])
		}
	}
	return found
}

// Match implements Matcher. The error is always nil.
func (m *KeywordMatcher) Match(_ context.Context, text string) (core.InterestSet, error) {
	return m.Find(text), nil
}
