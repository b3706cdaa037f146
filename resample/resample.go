package resample

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/johnruth96/kanonymity/encode"
	"github.com/johnruth96/kanonymity/table"
)

// RowIDColumn is the provenance column every resampler prepends: the
// 0-based index of the input row a resampled row was derived from.
const RowIDColumn = "row_id"

// Cartesian replaces every generalized QI cell with its constituent
// values and expands the table into the Cartesian product over the QI
// columns: a row with generalized cells of sizes s_1..s_n produces
// Π s_i output rows. Non-QI columns replicate verbatim (spec.md §4.5).
func Cartesian(t *table.Table, qi []string) (*table.Table, error) {
	cols := t.Columns()
	isQI := qiSet(qi)

	out, err := table.New(append([]string{RowIDColumn}, cols...))
	if err != nil {
		return nil, fmt.Errorf("resample: Cartesian: %w", err)
	}

	for r := 0; r < t.Len(); r++ {
		row, err := t.Row(r, cols)
		if err != nil {
			return nil, fmt.Errorf("resample: Cartesian: %w", err)
		}

		options := make([][]string, len(cols))
		for i, c := range cols {
			if isQI[c] {
				options[i] = encode.ParseLabel(row[i])
			} else {
				options[i] = []string{row[i]}
			}
		}

		for _, combo := range product(options) {
			out.AddRow(append([]string{strconv.Itoa(r)}, combo...))
		}
	}

	return out, nil
}

// Uniform replaces every generalized QI cell with one value chosen
// uniformly at random from its member set; row count is unchanged
// (spec.md §4.5). rng must be supplied by the caller so output is
// reproducible under a fixed seed.
func Uniform(t *table.Table, qi []string, rng *rand.Rand) (*table.Table, error) {
	if rng == nil {
		return nil, ErrNilRand
	}

	cols := t.Columns()
	isQI := qiSet(qi)

	out, err := table.New(append([]string{RowIDColumn}, cols...))
	if err != nil {
		return nil, fmt.Errorf("resample: Uniform: %w", err)
	}

	for r := 0; r < t.Len(); r++ {
		row, err := t.Row(r, cols)
		if err != nil {
			return nil, fmt.Errorf("resample: Uniform: %w", err)
		}

		outRow := make([]string, len(cols))
		for i, c := range cols {
			if isQI[c] {
				vals := encode.ParseLabel(row[i])
				outRow[i] = vals[rng.Intn(len(vals))]
			} else {
				outRow[i] = row[i]
			}
		}

		if err := out.AddRow(append([]string{strconv.Itoa(r)}, outRow...)); err != nil {
			return nil, fmt.Errorf("resample: Uniform: %w", err)
		}
	}

	return out, nil
}

func qiSet(qi []string) map[string]bool {
	set := make(map[string]bool, len(qi))
	for _, a := range qi {
		set[a] = true
	}

	return set
}

// product returns the Cartesian product of options, one combination per
// output row, options[i] varying fastest for the last column.
func product(options [][]string) [][]string {
	combos := [][]string{{}}
	for _, opts := range options {
		next := make([][]string, 0, len(combos)*len(opts))
		for _, c := range combos {
			for _, v := range opts {
				row := append(append([]string(nil), c...), v)
				next = append(next, row)
			}
		}
		combos = next
	}

	return combos
}
