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


// Package extract finds vocabulary interests in text.
//
// Two matchers are provided. KeywordMatcher searches lowercased text for
// each vocabulary entry bounded by word boundaries. AdvancedMatcher asks an
// ai.LinguisticPipeline for noun-phrase and named-entity spans and reports
// every entry that is a substring of some span, so "gpt" is found inside
// "chatgpt". The substring test is intentional and mirrors the advanced
// path's recall-oriented purpose.
//
// Selector chooses between them. In advanced mode with a pipeline configured
// it runs the advanced matcher first and the keyword matcher only if that
// fails; the failure is reported in Result.Fallback and nothing from the
// failed stage is kept.
//
// A word character is any Unicode letter or digit, or underscore, so "gan"
// is not found in "ségan".
package extract
