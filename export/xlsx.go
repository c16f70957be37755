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
	"fmt"

	"github.com/poiesic/topicscout/core"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

var (
	repositoryColumns = []string{"interest", "name", "html_url", "description", "language", "last_pushed"}
	paperColumns      = []string{"interest", "title", "published", "summary", "pdf_url"}
)

// WriteRepositories saves repositories to an xlsx file with a header row.
func WriteRepositories(path string, repos []core.Repository) error {
	rows := make([][]string, len(repos))
	for i, r := range repos {
		rows[i] = []string{r.Interest, r.Name, r.HTMLURL, r.Description, r.Language, r.LastPushed}
	}
	return writeSheet(path, repositoryColumns, rows)
}

// ReadRepositories loads a file written by WriteRepositories. Columns are
// located by header name; missing columns read as empty strings.
func ReadRepositories(path string) ([]core.Repository, error) {
	records, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	repos := make([]core.Repository, len(records))
	for i, rec := range records {
		repos[i] = core.Repository{
			Interest:    rec["interest"],
			Name:        rec["name"],
			HTMLURL:     rec["html_url"],
			Description: rec["description"],
			Language:    rec["language"],
			LastPushed:  rec["last_pushed"],
		}
	}
	return repos, nil
}

// WritePapers saves paper metadata to an xlsx file with a header row.
func WritePapers(path string, papers []core.Paper) error {
	rows := make([][]string, len(papers))
	for i, p := range papers {
		rows[i] = []string{p.Interest, p.Title, p.Published, p.Summary, p.PDFURL}
	}
	return writeSheet(path, paperColumns, rows)
}

// ReadPapers loads a file written by WritePapers.
func ReadPapers(path string) ([]core.Paper, error) {
	records, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	papers := make([]core.Paper, len(records))
	for i, rec := range records {
		papers[i] = core.Paper{
			Interest:  rec["interest"],
			Title:     rec["title"],
			Published: rec["published"],
			Summary:   rec["summary"],
			PDFURL:    rec["pdf_url"],
		}
	}
	return papers, nil
}

// RepositoryColumns returns the spreadsheet header for repositories.
func RepositoryColumns() []string {
	return append([]string(nil), repositoryColumns...)
}

func writeSheet(path string, header []string, rows [][]string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := setRow(f, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return f.SetSheetRow(sheetName, cell, &vals)
}

// readSheet returns the rows of the first sheet keyed by header name.
func readSheet(path string) (records []map[string]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	header := rows[0]
	records = make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
