package fairness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/johnruth96/kanonymity/table"
)

const keyDelim = "\x1f"

// ContingencyTable is a cross-tabulation of two (possibly multi-column)
// attribute groups: Counts[i][j] is the number of rows whose rowCols
// tuple equals RowKeys[i] and whose colCols tuple equals ColKeys[j].
// RowKeys and ColKeys are the distinct observed tuples, each sorted
// ascending — equivalent to pandas.crosstab's default axis ordering.
type ContingencyTable struct {
	RowKeys []string
	ColKeys []string
	Counts  [][]int
}

func joinTuple(vals []string) string { return strings.Join(vals, keyDelim) }

// BuildContingencyTable cross-tabulates rowCols against colCols over
// every row of t.
func BuildContingencyTable(t *table.Table, rowCols, colCols []string) (*ContingencyTable, error) {
	rowVals := make(map[string][]string)
	colVals := make(map[string][]string)
	cellCounts := make(map[string]map[string]int)

	for r := 0; r < t.Len(); r++ {
		rowTuple, err := t.Row(r, rowCols)
		if err != nil {
			return nil, fmt.Errorf("fairness: BuildContingencyTable: %w", err)
		}
		colTuple, err := t.Row(r, colCols)
		if err != nil {
			return nil, fmt.Errorf("fairness: BuildContingencyTable: %w", err)
		}

		rk, ck := joinTuple(rowTuple), joinTuple(colTuple)
		rowVals[rk] = rowTuple
		colVals[ck] = colTuple
		if cellCounts[rk] == nil {
			cellCounts[rk] = make(map[string]int)
		}
		cellCounts[rk][ck]++
	}

	rowKeys := sortedKeys(rowVals)
	colKeys := sortedKeys(colVals)

	counts := make([][]int, len(rowKeys))
	for i, rk := range rowKeys {
		counts[i] = make([]int, len(colKeys))
		for j, ck := range colKeys {
			counts[i][j] = cellCounts[rk][ck]
		}
	}

	return &ContingencyTable{
		RowKeys: labelsOf(rowKeys, rowVals),
		ColKeys: labelsOf(colKeys, colVals),
		Counts:  counts,
	}, nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func labelsOf(joined []string, vals map[string][]string) []string {
	out := make([]string, len(joined))
	for i, k := range joined {
		out[i] = joinTuple(vals[k])
	}

	return out
}

// GroupedContingencyTables builds one ContingencyTable per distinct
// value of groupCols (the "Z" conditioning attributes): if groupCols
// is empty, the whole table is treated as a single group, matching
// original_source/fairness.py's "Z = ∅" case for K-fairness.
func GroupedContingencyTables(t *table.Table, rowCols, colCols, groupCols []string) ([]*ContingencyTable, error) {
	if len(groupCols) == 0 {
		ct, err := BuildContingencyTable(t, rowCols, colCols)
		if err != nil {
			return nil, fmt.Errorf("fairness: GroupedContingencyTables: %w", err)
		}

		return []*ContingencyTable{ct}, nil
	}

	groups, err := table.GroupBy(t, groupCols)
	if err != nil {
		return nil, fmt.Errorf("fairness: GroupedContingencyTables: %w", err)
	}

	out := make([]*ContingencyTable, len(groups))
	for i, g := range groups {
		sub := t.Selected(g.Rows)
		ct, err := BuildContingencyTable(sub, rowCols, colCols)
		if err != nil {
			return nil, fmt.Errorf("fairness: GroupedContingencyTables: %w", err)
		}
		out[i] = ct
	}

	return out, nil
}

// indexOf returns the position of key in keys, or -1.
func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}

	return -1
}
