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

	"github.com/poiesic/topicscout/collect"
	"github.com/poiesic/topicscout/core"
)

// Build models every file beneath dirs as one document. The walk report is
// returned even when modeling fails.
func Build(ctx context.Context, walker *collect.Walker, modeler *Modeler, dirs []string) ([]Topic, *collect.Report, error) {
	var docs []string
	report, err := walker.Walk(ctx, dirs, func(doc core.Document) error {
		docs = append(docs, doc.Content)
		return nil
	})
	if err != nil {
		return nil, report, err
	}
	if len(docs) == 0 {
		modeler.logger.Error("no text files found", "dirs", dirs)
		return nil, report, ErrNoDocuments
	}
	found, err := modeler.Fit(ctx, docs)
	return found, report, err
}
