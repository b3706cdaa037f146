package experiment

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ReadExpIndex reads the (k, l) column pair out of an experiments.csv
// written by Persist, in file order — the Go equivalent of
// original_source/experiments/resample.py and evaluate.py's
// pd.read_csv(conf.exp_file, header=0, index_col=[0, 1]) followed by
// iteration over results.index.
func ReadExpIndex(path string) ([][2]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("experiment: ReadExpIndex: %w: %w", ErrIO, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("experiment: ReadExpIndex: %w: %w", ErrIO, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	pairs := make([][2]int, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 2 {
			continue
		}
		k, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("experiment: ReadExpIndex: %w", err)
		}
		l, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("experiment: ReadExpIndex: %w", err)
		}
		pairs = append(pairs, [2]int{k, l})
	}

	return pairs, nil
}
