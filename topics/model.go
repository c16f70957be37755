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


package topics

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/james-bowman/nlp"
)

var termPattern = regexp.MustCompile(`\p{L}+`)

// Term is a vocabulary term and its weight within a topic. Weights of a
// topic's full vocabulary sum to 1.
type Term struct {
	Word   string
	Weight float64
}

// Topic is one fitted topic.
type Topic struct {
	Index int
	Terms []Term
	// Documents counts the documents whose most probable topic this is.
	Documents int
}

// String formats the topic as `0: 0.120*"attention" + 0.080*"bert"`.
func (t Topic) String() string {
	parts := make([]string, len(t.Terms))
	for i, term := range t.Terms {
		parts[i] = fmt.Sprintf("%.3f*%q", term.Weight, term.Word)
	}
	return fmt.Sprintf("%d: %s", t.Index, strings.Join(parts, " + "))
}

// Words returns the topic's terms without weights.
func (t Topic) Words() []string {
	words := make([]string, len(t.Terms))
	for i, term := range t.Terms {
		words[i] = term.Word
	}
	return words
}

// Modeler fits LDA topic models.
type Modeler struct {
	topics     int
	words      int
	iterations int
	stopWords  map[string]bool
	logger     *slog.Logger
}

// Option configures a Modeler.
type Option func(*Modeler) error

// WithTopics sets the number of topics. Default is 5.
func WithTopics(n int) Option {
	return func(m *Modeler) error {
		if n < 1 {
			return fmt.Errorf("%w: topics must be positive, got %d", ErrInvalidOption, n)
		}
		m.topics = n
		return nil
	}
}

// WithWords sets the number of terms reported per topic. Default is 5.
func WithWords(n int) Option {
	return func(m *Modeler) error {
		if n < 1 {
			return fmt.Errorf("%w: words must be positive, got %d", ErrInvalidOption, n)
		}
		m.words = n
		return nil
	}
}

// WithIterations caps the passes over the corpus. Default is 10.
func WithIterations(n int) Option {
	return func(m *Modeler) error {
		if n < 1 {
			return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidOption, n)
		}
		m.iterations = n
		return nil
	}
}

// WithStopWords replaces the English stop word list. Matching is on
// lowercased terms.
func WithStopWords(words ...string) Option {
	return func(m *Modeler) error {
		m.stopWords = make(map[string]bool, len(words))
		for _, w := range words {
			m.stopWords[strings.ToLower(w)] = true
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Modeler) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewModeler creates a Modeler with 5 topics of 5 terms each.
func NewModeler(opts ...Option) (*Modeler, error) {
	m := &Modeler{
		topics:     5,
		words:      5,
		iterations: 10,
		logger:     slog.Default(),
	}
	if err := WithStopWords(englishStopWords...)(m); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	m.logger = m.logger.With("component", "topics")
	return m, nil
}

// Terms lowercases text and returns its letter runs minus stop words.
func (m *Modeler) Terms(text string) []string {
	tokens := termPattern.FindAllString(strings.ToLower(text), -1)
	terms := tokens[:0]
	for _, token := range tokens {
		if !m.stopWords[token] {
			terms = append(terms, token)
		}
	}
	return terms
}

// Fit models docs and returns one Topic per configured topic, in index
// order. Documents with no terms after stop word removal are ignored.
func (m *Modeler) Fit(ctx context.Context, docs []string) ([]Topic, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	cleaned := make([]string, 0, len(docs))
	for _, doc := range docs {
		if terms := m.Terms(doc); len(terms) > 0 {
			cleaned = append(cleaned, strings.Join(terms, " "))
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrNoTerms
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vectoriser := nlp.NewCountVectoriser()
	counts, err := vectoriser.FitTransform(cleaned...)
	if err != nil {
		return nil, fmt.Errorf("count terms: %w", err)
	}

	lda := nlp.NewLatentDirichletAllocation(m.topics)
	lda.Iterations = m.iterations
	docTopics, err := lda.FitTransform(counts)
	if err != nil {
		return nil, fmt.Errorf("fit lda: %w", err)
	}

	vocab := make([]string, len(vectoriser.Vocabulary))
	for word, i := range vectoriser.Vocabulary {
		vocab[i] = word
	}

	result := topTerms(lda.Components(), vocab, m.words)
	rows, cols := docTopics.Dims()
	for doc := 0; doc < cols; doc++ {
		best := 0
		for topic := 1; topic < rows; topic++ {
			if docTopics.At(topic, doc) > docTopics.At(best, doc) {
				best = topic
			}
		}
		result[best].Documents++
	}

	m.logger.Debug("fitted topic model",
		"documents", len(cleaned),
		"terms", len(vocab),
		"topics", len(result))
	return result, nil
}

// weights is the read side of a gonum matrix.
type weights interface {
	Dims() (r, c int)
	At(i, j int) float64
}

// topTerms turns a topics by terms matrix into Topics holding the n
// heaviest normalized terms of each row. Ties order by word.
func topTerms(components weights, vocab []string, n int) []Topic {
	rows, cols := components.Dims()
	result := make([]Topic, rows)
	for topic := 0; topic < rows; topic++ {
		var total float64
		for word := 0; word < cols; word++ {
			total += components.At(topic, word)
		}

		terms := make([]Term, cols)
		for word := 0; word < cols; word++ {
			weight := components.At(topic, word)
			if total > 0 {
				weight /= total
			}
			terms[word] = Term{Word: vocab[word], Weight: weight}
		}
		sort.Slice(terms, func(i, j int) bool {
			if terms[i].Weight != terms[j].Weight {
				return terms[i].Weight > terms[j].Weight
			}
			return terms[i].Word < terms[j].Word
		})
		if len(terms) > n {
			terms = terms[:n]
		}
		result[topic] = Topic{Index: topic, Terms: terms}
	}
	return result
}
