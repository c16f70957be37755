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


// Package topics fits an LDA topic model over the documents beneath a set
// of folders.
//
// Documents are lowercased and split into runs of Unicode letters. English
// stop words are removed, the remaining terms are counted with
// nlp.CountVectoriser and the counts are fed to
// nlp.LatentDirichletAllocation. Each topic is reported as its highest
// weighted terms.
//
//	modeler, err := topics.NewModeler(topics.WithTopics(5), topics.WithWords(5))
//	walker, err := collect.NewWalker()
//	found, report, err := topics.Build(ctx, walker, modeler, []string{"notes"})
//	for _, topic := range found {
//	    fmt.Println(topic)
//	}
package topics
