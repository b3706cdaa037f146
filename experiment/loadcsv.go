package experiment

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/johnruth96/kanonymity/table"
)

// LoadCSV reads a CSV file whose columns are already categorical (no
// quantile bucketing of continuous attributes — that loader stays
// out of scope per spec.md §6) into a table.Table, header row first.
// A leading RowIDColumn header (as written by WriteCSV) is recognized
// and dropped; a file with no such column is loaded as-is.
func LoadCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("experiment: LoadCSV: %w: %w", ErrIO, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("experiment: LoadCSV: %w: %w", ErrIO, err)
	}
	if len(records) == 0 {
		return table.New(nil)
	}

	header := records[0]
	rows := records[1:]
	if len(header) > 0 && header[0] == RowIDColumn {
		header = header[1:]
		for i, row := range rows {
			if len(row) > 0 {
				rows[i] = row[1:]
			}
		}
	}

	t, err := table.New(header)
	if err != nil {
		return nil, fmt.Errorf("experiment: LoadCSV: %w", err)
	}
	for _, row := range rows {
		if err := t.AddRow(row); err != nil {
			return nil, fmt.Errorf("experiment: LoadCSV: %w", err)
		}
	}

	return t, nil
}
