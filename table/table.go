package table

import (
	"fmt"
	"sort"
	"strings"
)

// Table is a row-major store: one []string per row, each holding one
// value per schema column; it keeps no per-column vectors, and Column
// copies a column out row by row. Column order is the input's original
// column order (spec.md §6: "same schema as input").
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New returns an empty Table with the given schema. Column names must be
// unique; duplicates return ErrDuplicateColumn.
func New(columns []string) (*Table, error) {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := idx[c]; dup {
			return nil, fmt.Errorf("table: New: %w: %q", ErrDuplicateColumn, c)
		}
		idx[c] = i
	}

	return &Table{
		columns: append([]string(nil), columns...),
		index:   idx,
	}, nil
}

// Columns returns the schema in original column order. The returned slice
// must not be mutated by callers.
func (t *Table) Columns() []string { return t.columns }

// Len reports the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// AddRow appends one row. row must have exactly len(Columns()) values, in
// schema order.
func (t *Table) AddRow(row []string) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("table: AddRow: %w: want %d, got %d", ErrRowArity, len(t.columns), len(row))
	}
	t.rows = append(t.rows, append([]string(nil), row...))

	return nil
}

// Value returns the value of column col in row r.
func (t *Table) Value(r int, col string) (string, error) {
	ci, ok := t.index[col]
	if !ok {
		return "", fmt.Errorf("table: Value: %w: %q", ErrUnknownColumn, col)
	}
	if r < 0 || r >= len(t.rows) {
		return "", fmt.Errorf("table: Value: %w: %d", ErrRowOutOfRange, r)
	}

	return t.rows[r][ci], nil
}

// SetValue overwrites the value of column col in row r, in place.
func (t *Table) SetValue(r int, col string, v string) error {
	ci, ok := t.index[col]
	if !ok {
		return fmt.Errorf("table: SetValue: %w: %q", ErrUnknownColumn, col)
	}
	if r < 0 || r >= len(t.rows) {
		return fmt.Errorf("table: SetValue: %w: %d", ErrRowOutOfRange, r)
	}
	t.rows[r][ci] = v

	return nil
}

// Column returns a fresh copy of every row's value for col, in row order.
func (t *Table) Column(col string) ([]string, error) {
	ci, ok := t.index[col]
	if !ok {
		return nil, fmt.Errorf("table: Column: %w: %q", ErrUnknownColumn, col)
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[ci]
	}

	return out, nil
}

// Row returns a fresh copy of the values of cols (in the order given) for
// row r.
func (t *Table) Row(r int, cols []string) ([]string, error) {
	if r < 0 || r >= len(t.rows) {
		return nil, fmt.Errorf("table: Row: %w: %d", ErrRowOutOfRange, r)
	}
	out := make([]string, len(cols))
	for i, c := range cols {
		ci, ok := t.index[c]
		if !ok {
			return nil, fmt.Errorf("table: Row: %w: %q", ErrUnknownColumn, c)
		}
		out[i] = t.rows[r][ci]
	}

	return out, nil
}

// Clone returns a deep copy sharing no backing storage with t.
func (t *Table) Clone() *Table {
	out := &Table{
		columns: append([]string(nil), t.columns...),
		index:   make(map[string]int, len(t.index)),
		rows:    make([][]string, len(t.rows)),
	}
	for k, v := range t.index {
		out.index[k] = v
	}
	for i, row := range t.rows {
		out.rows[i] = append([]string(nil), row...)
	}

	return out
}

// Project returns a new Table restricted to cols, in the order given,
// preserving row order. The receiver is left unchanged.
func (t *Table) Project(cols []string) (*Table, error) {
	out, err := New(cols)
	if err != nil {
		return nil, err
	}
	for i := range t.rows {
		row, rerr := t.Row(i, cols)
		if rerr != nil {
			return nil, rerr
		}
		_ = out.AddRow(row)
	}

	return out, nil
}

// Selected builds a new Table containing only the rows at the given
// indices, in the order given.
func (t *Table) Selected(rows []int) *Table {
	out := &Table{
		columns: append([]string(nil), t.columns...),
		index:   make(map[string]int, len(t.index)),
		rows:    make([][]string, 0, len(rows)),
	}
	for k, v := range t.index {
		out.index[k] = v
	}
	for _, r := range rows {
		out.rows = append(out.rows, append([]string(nil), t.rows[r]...))
	}

	return out
}

// SortLex sorts rows in place, lexicographically ascending by the values
// of cols (in the order given), ties broken by subsequent columns.
// This is what gives run(k) its deterministic output ordering
// (spec.md §4.2.5).
func (t *Table) SortLex(cols []string) error {
	idxs := make([]int, len(cols))
	for i, c := range cols {
		ci, ok := t.index[c]
		if !ok {
			return fmt.Errorf("table: SortLex: %w: %q", ErrUnknownColumn, c)
		}
		idxs[i] = ci
	}
	sort.SliceStable(t.rows, func(a, b int) bool {
		ra, rb := t.rows[a], t.rows[b]
		for _, ci := range idxs {
			if ra[ci] != rb[ci] {
				return ra[ci] < rb[ci]
			}
		}

		return false
	})

	return nil
}

// Group is one group produced by GroupBy: the grouping columns' common
// value tuple and the (ascending) indices of member rows.
type Group struct {
	Key  []string
	Rows []int
}

// GroupBy partitions rows by the values of cols and returns the groups
// sorted ascending by Key (lexicographic tuple compare), matching
// pandas' default groupby key ordering and keeping results independent
// of input row order. Implements the "group_by(columns) → map<key_tuple,
// row_indices>" utility spec.md §9 calls out as canonical.
func GroupBy(t *Table, cols []string) ([]Group, error) {
	idxs := make([]int, len(cols))
	for i, c := range cols {
		ci, ok := t.index[c]
		if !ok {
			return nil, fmt.Errorf("table: GroupBy: %w: %q", ErrUnknownColumn, c)
		}
		idxs[i] = ci
	}

	order := make([]string, 0)
	members := make(map[string][]int)
	keys := make(map[string][]string)
	for r, row := range t.rows {
		key := make([]string, len(idxs))
		for i, ci := range idxs {
			key[i] = row[ci]
		}
		joined := strings.Join(key, "\x1f")
		if _, seen := members[joined]; !seen {
			order = append(order, joined)
			keys[joined] = key
		}
		members[joined] = append(members[joined], r)
	}

	sort.Strings(order)
	groups := make([]Group, len(order))
	for i, k := range order {
		groups[i] = Group{Key: keys[k], Rows: members[k]}
	}

	return groups, nil
}
