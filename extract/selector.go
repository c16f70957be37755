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
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/topicscout/core"
)

// Mode is the extraction mode a caller asks for.
type Mode int

const (
	// ModeBasic uses only the keyword matcher.
	ModeBasic Mode = iota
	// ModeAdvanced prefers the advanced matcher when one is configured.
	ModeAdvanced
)

func (m Mode) String() string {
	switch m {
	case ModeBasic:
		return "basic"
	case ModeAdvanced:
		return "advanced"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "basic" or "advanced" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "basic":
		return ModeBasic, nil
	case "advanced":
		return ModeAdvanced, nil
	default:
		return ModeBasic, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Strategy names the matcher that produced a result.
type Strategy string

const (
	StrategyBasic    Strategy = "basic"
	StrategyAdvanced Strategy = "advanced"
)

// Stage is one step of an extraction plan.
type Stage struct {
	Strategy Strategy
	Matcher  Matcher
}

// Result is the outcome of Selector.Extract.
type Result struct {
	Interests core.InterestSet
	// Strategy is the stage whose output Interests holds.
	Strategy Strategy
	// Fallback is the error of the advanced stage when it failed and the
	// keyword matcher ran instead. Nil otherwise.
	Fallback error
}

// Selector runs an ordered extraction plan.
type Selector struct {
	basic    *KeywordMatcher
	advanced Matcher
	logger   *slog.Logger
}

// NewSelector creates a selector. advanced may be nil when no linguistic
// pipeline is available; advanced requests then use the keyword matcher.
func NewSelector(basic *KeywordMatcher, advanced Matcher, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{
		basic:    basic,
		advanced: advanced,
		logger:   logger.With("component", "extract-selector"),
	}
}

// Plan returns the stages Extract will try for mode, in order.
func (s *Selector) Plan(mode Mode) []Stage {
	basic := Stage{Strategy: StrategyBasic, Matcher: s.basic}
	if mode != ModeAdvanced {
		return []Stage{basic}
	}
	if s.advanced == nil {
		s.logger.Warn("advanced extraction requested but no linguistic pipeline is configured")
		return []Stage{basic}
	}
	return []Stage{{Strategy: StrategyAdvanced, Matcher: s.advanced}, basic}
}

// Extract runs the plan for mode and returns the first successful stage's
// interests.
func (s *Selector) Extract(ctx context.Context, text string, mode Mode) Result {
	var fallback error
	for _, stage := range s.Plan(mode) {
		interests, err := stage.Matcher.Match(ctx, text)
		if err != nil {
			s.logger.Error("extraction failed, falling back to basic extraction",
				"strategy", stage.Strategy,
				"err", err)
			fallback = err
			continue
		}
		s.logger.Debug("extracted interests", "strategy", stage.Strategy, "count", interests.Len())
		return Result{
			Interests: interests,
			Strategy:  stage.Strategy,
			Fallback:  fallback,
		}
	}

	// Only reached when every stage failed.
	return Result{Interests: core.NewInterestSet(), Strategy: StrategyBasic, Fallback: fallback}
}
