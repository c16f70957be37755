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


package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/poiesic/topicscout/core"
)

// DateLayout formats timeline dates.
const DateLayout = "2006-01-02"

// WriteTimelineCSV writes one "date,topic" row per record under a header.
func WriteTimelineCSV(path string, records []core.TopicRecord) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"date", "topic"}); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write([]string{r.Date.Format(DateLayout), r.Topic}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
