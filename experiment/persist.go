package experiment

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/johnruth96/kanonymity/table"
)

// Setup is the JSON manifest original_source/experiments/main.py
// writes to conf.setup before the k-sweep starts.
type Setup struct {
	A        []string `json:"A"`
	I        []string `json:"I"`
	O        string   `json:"O"`
	S        string   `json:"S"`
	QI       []string `json:"QI"`
	KInitial int      `json:"k_initial"`
	LInitial int      `json:"l_initial"`
	NGroups  int      `json:"n_groups"`
	KMax     int      `json:"k_max"`
	N        int      `json:"n"`
}

// Persist writes a Sweep's output to cfg's directory layout:
// setup.json, one tables/K{k}L{l}.csv per sweep point, and
// experiments.csv. No pack library specializes in CSV/JSON result
// persistence, so this uses encoding/csv and encoding/json directly
// (see DESIGN.md).
func Persist(cfg Config, setup Setup, result *SweepResult) error {
	if err := os.MkdirAll(cfg.BaseTableDir(), 0o755); err != nil {
		return fmt.Errorf("experiment: Persist: %w: %w", ErrIO, err)
	}

	setupBytes, err := json.Marshal(setup)
	if err != nil {
		return fmt.Errorf("experiment: Persist: %w", err)
	}
	if err := os.WriteFile(cfg.SetupFile(), setupBytes, 0o644); err != nil {
		return fmt.Errorf("experiment: Persist: %w: %w", ErrIO, err)
	}

	for kl, t := range result.Tables {
		path := cfg.TableFile(kl[0], kl[1])
		if err := WriteCSV(path, t); err != nil {
			return fmt.Errorf("experiment: Persist: %w", err)
		}
	}

	if err := writeExperimentsCSV(cfg.ExpFile(), result.Rows); err != nil {
		return fmt.Errorf("experiment: Persist: %w: %w", ErrIO, err)
	}

	return nil
}

func writeExperimentsCSV(path string, rows []SweepRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"k", "l", "k_call", "n_groups", "cost"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.K),
			strconv.Itoa(r.L),
			strconv.Itoa(r.KCall),
			strconv.Itoa(r.NGroups),
			strconv.Itoa(r.Cost),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

// RowIDColumn is the provenance/index column WriteCSV prepends to
// every persisted table, matching the original's df.to_csv()
// default index=True (spec.md §6: "first column is row id, rest are
// schema columns").
const RowIDColumn = "row_id"

// WriteCSV writes t to path with a leading row_id column (the 0-based
// output row index) ahead of a header row of t's column names. If t
// already carries a column named RowIDColumn (as resample.Cartesian/
// Uniform output does — its own source-row provenance column), that
// column stands in for the index and no second one is added, avoiding
// a duplicate header; this mirrors the original's own layered-index
// resample output (privacy/postprocessing.py's reset_index() followed
// by to_csv(index=True)) without literally duplicating the column name.
func WriteCSV(path string, t *table.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("experiment: WriteCSV: %w: %w", ErrIO, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("experiment: WriteCSV: %w: %w", ErrIO, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	cols := t.Columns()
	hasRowID := false
	for _, c := range cols {
		if c == RowIDColumn {
			hasRowID = true
			break
		}
	}

	header := cols
	if !hasRowID {
		header = append([]string{RowIDColumn}, cols...)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("experiment: WriteCSV: %w", err)
	}
	for r := 0; r < t.Len(); r++ {
		row, err := t.Row(r, cols)
		if err != nil {
			return fmt.Errorf("experiment: WriteCSV: %w", err)
		}
		if !hasRowID {
			row = append([]string{strconv.Itoa(r)}, row...)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("experiment: WriteCSV: %w", err)
		}
	}
	w.Flush()

	return w.Error()
}
