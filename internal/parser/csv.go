package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jyothish28/intelligent-document-analyst/internal/fragment"
)

// CSVParser handles CSV files. The header row becomes a heading fragment and
// batches of data rows become body fragments, so tabular exports still
// segment into sections.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) ([]fragment.Fragment, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	frags := []fragment.Fragment{
		headingFragment(strings.Join(headers, " "), 1, 2),
	}

	// Group rows into batches of 20 for manageable fragments.
	const batchSize = 20
	dataRows := records[1:]
	for i := 0; i < len(dataRows); i += batchSize {
		end := min(i+batchSize, len(dataRows))
		var buf strings.Builder
		for _, row := range dataRows[i:end] {
			for j, cell := range row {
				cell = strings.TrimSpace(cell)
				if cell == "" {
					continue
				}
				if j < len(headers) {
					buf.WriteString(headers[j])
					buf.WriteString(": ")
				}
				buf.WriteString(cell)
				buf.WriteString(". ")
			}
		}
		if buf.Len() > 0 {
			frags = append(frags, bodyFragment(strings.TrimSpace(buf.String()), 1))
		}
	}
	return frags, nil
}
