package encode

import (
	"fmt"
	"sort"

	"github.com/johnruth96/kanonymity/table"
)

// Domain is the result of flattening a table's QI attribute domains into
// one contiguous integer enumeration V = D_1 ∥ D_2 ∥ … ∥ D_m
// (spec.md §3).
type Domain struct {
	// Attrs is the QI attribute list in canonical (sorted) order.
	Attrs []string

	// Values is V: all attributes' domain values concatenated. Values[i]
	// is the original value for 1-based id i+1.
	Values []string

	// Offsets[i] is off_i, the number of ids assigned to attributes
	// before attribute i (0-based).
	Offsets []int

	// Sizes[i] is |D_i|.
	Sizes []int

	// M is the most-general anonymization: {off_i + 1} for every
	// attribute, sorted ascending.
	M []int

	// Sigma is the candidate cut-point set: {1..|V|} \ M, sorted
	// ascending.
	Sigma []int

	// rows holds the encoded dataset: rows[r][i] is the 1-based id of
	// row r's value for Attrs[i].
	rows [][]int

	// attrIndex maps an attribute name to its position in Attrs.
	attrIndex map[string]int

	// valueID[i] maps an attribute i's original value to its 1-based id.
	valueID []map[string]int
}

// Encode builds a Domain from t restricted to qi, per spec.md §4.1's
// encode(table, QI) → EncodedTable. qi need not be pre-sorted; the
// Domain canonicalizes it (spec.md §3: "canonical (sorted) attribute
// order").
func Encode(t *table.Table, qi []string) (*Domain, error) {
	if len(qi) == 0 {
		return nil, ErrNoAttributes
	}
	if t.Len() == 0 {
		return nil, ErrEmptyTable
	}

	attrs := append([]string(nil), qi...)
	sort.Strings(attrs)

	columns := make([][]string, len(attrs))
	for i, a := range attrs {
		col, err := t.Column(a)
		if err != nil {
			return nil, fmt.Errorf("encode: Encode: %w: %q", ErrUnknownAttribute, a)
		}
		columns[i] = col
	}

	domains := make([][]string, len(attrs))
	valueID := make([]map[string]int, len(attrs))
	for i, col := range columns {
		seen := make(map[string]struct{})
		for _, v := range col {
			seen[v] = struct{}{}
		}
		dom := make([]string, 0, len(seen))
		for v := range seen {
			dom = append(dom, v)
		}
		sort.Strings(dom)
		domains[i] = dom
		valueID[i] = make(map[string]int, len(dom))
	}

	values := make([]string, 0)
	offsets := make([]int, len(attrs))
	sizes := make([]int, len(attrs))
	m := make([]int, len(attrs))
	nextID := 1
	for i, dom := range domains {
		offsets[i] = len(values)
		sizes[i] = len(dom)
		m[i] = offsets[i] + 1
		for _, v := range dom {
			valueID[i][v] = nextID
			values = append(values, v)
			nextID++
		}
	}
	sort.Ints(m)

	mSet := make(map[int]struct{}, len(m))
	for _, v := range m {
		mSet[v] = struct{}{}
	}
	sigma := make([]int, 0, len(values)-len(m))
	for id := 1; id <= len(values); id++ {
		if _, ok := mSet[id]; !ok {
			sigma = append(sigma, id)
		}
	}

	rows := make([][]int, len(columns[0]))
	for r := range rows {
		row := make([]int, len(attrs))
		for i, col := range columns {
			row[i] = valueID[i][col[r]]
		}
		rows[r] = row
	}

	attrIndex := make(map[string]int, len(attrs))
	for i, a := range attrs {
		attrIndex[a] = i
	}

	return &Domain{
		Attrs:     attrs,
		Values:    values,
		Offsets:   offsets,
		Sizes:     sizes,
		M:         m,
		Sigma:     sigma,
		rows:      rows,
		attrIndex: attrIndex,
		valueID:   valueID,
	}, nil
}

// NumRows reports the number of encoded rows (dataset size N).
func (d *Domain) NumRows() int { return len(d.rows) }

// Row returns a copy of the encoded ids for row r, in Attrs order.
func (d *Domain) Row(r int) []int {
	return append([]int(nil), d.rows[r]...)
}

// Rows returns the encoded dataset, one []int tuple per row in Attrs
// order. The returned slices are owned by the Domain and must not be
// mutated by callers.
func (d *Domain) Rows() [][]int {
	return d.rows
}

// ExpandHead returns sort(H ∪ M): the full anonymization induced by
// head-set H (spec.md §3).
func (d *Domain) ExpandHead(head []int) []int {
	return SortedUnion(head, d.M)
}

// BuildBucketMaps precomputes, for a sorted anonymization A, the
// representative id and the inclusive last id of the bucket containing
// every enumerated id 1..|V|. rep/end are 1-indexed (index 0 unused)
// so they can be indexed directly by an encoded value.
//
// Complexity: O(|V|), matching spec.md §9's "cache misses recompute...
// in O(N·m)" budget once combined with per-row lookups.
func (d *Domain) BuildBucketMaps(anonymization []int) (rep []int, end []int) {
	total := len(d.Values)
	rep = make([]int, total+1)
	end = make([]int, total+1)
	for idx, start := range anonymization {
		last := total
		if idx+1 < len(anonymization) {
			last = anonymization[idx+1] - 1
		}
		for id := start; id <= last; id++ {
			rep[id] = start
			end[id] = last
		}
	}

	return rep, end
}

// DecodeWithMaps renders the output labels for one encoded row given
// precomputed bucket maps (see BuildBucketMaps), implementing the label
// half of spec.md §4.1's decode(H, encoded_row) → output_row.
func (d *Domain) DecodeWithMaps(rep, end []int, row []int) []string {
	out := make([]string, len(row))
	for i, id := range row {
		lo, hi := rep[id], end[id]
		out[i] = FormatLabel(d.Values[lo-1 : hi])
	}

	return out
}

// Decode renders the output labels for one encoded row under the
// anonymization induced by head-set H. Convenience wrapper around
// BuildBucketMaps+DecodeWithMaps for callers decoding a single row (bulk
// callers should build the maps once and call DecodeWithMaps directly).
func (d *Domain) Decode(head []int, row []int) []string {
	anonymization := d.ExpandHead(head)
	rep, end := d.BuildBucketMaps(anonymization)

	return d.DecodeWithMaps(rep, end, row)
}

// SortedUnion returns the ascending, duplicate-free union of a and b.
// Neither input needs to be sorted; the result always is.
func SortedUnion(a, b []int) []int {
	set := make(map[int]struct{}, len(a)+len(b))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		set[v] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// RemoveValue returns a with v removed (first occurrence), leaving a
// itself untouched. a is assumed to contain no duplicates.
func RemoveValue(a []int, v int) []int {
	out := make([]int, 0, len(a))
	for _, x := range a {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
