package experiment

import (
	"fmt"

	"github.com/johnruth96/kanonymity/table"
)

// currentK reports (min equivalence-class size, number of classes) of
// t grouped by qi — the Go equivalent of original_source/privacy/
// models.py's get_k. An empty table has no classes; k is reported as
// 0.
func currentK(t *table.Table, qi []string) (k, nGroups int, err error) {
	groups, err := table.GroupBy(t, qi)
	if err != nil {
		return 0, 0, fmt.Errorf("experiment: currentK: %w", err)
	}
	if len(groups) == 0 {
		return 0, 0, nil
	}

	min := len(groups[0].Rows)
	for _, g := range groups[1:] {
		if len(g.Rows) < min {
			min = len(g.Rows)
		}
	}

	return min, len(groups), nil
}

// currentL reports the minimum number of distinct sensitive values
// across equivalence classes of t grouped by qi — the Go equivalent
// of models.py's get_l_distinct. Floors at 1, matching the original's
// "min_l if min_l > 0 else 1".
func currentL(t *table.Table, qi []string, sensitive string) (int, error) {
	sensCol, err := t.Column(sensitive)
	if err != nil {
		return 0, fmt.Errorf("experiment: currentL: %w", err)
	}
	groups, err := table.GroupBy(t, qi)
	if err != nil {
		return 0, fmt.Errorf("experiment: currentL: %w", err)
	}
	if len(groups) == 0 {
		return 1, nil
	}

	minL := -1
	for _, g := range groups {
		set := make(map[string]struct{})
		for _, r := range g.Rows {
			set[sensCol[r]] = struct{}{}
		}
		if minL == -1 || len(set) < minL {
			minL = len(set)
		}
	}
	if minL <= 0 {
		return 1, nil
	}

	return minL, nil
}
