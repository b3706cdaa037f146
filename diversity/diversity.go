package diversity

import (
	"fmt"
	"sort"

	"github.com/johnruth96/kanonymity/encode"
	"github.com/johnruth96/kanonymity/table"
)

// DefaultWeight is w in merge_cost = w*info_cost + (1-w)*div_cost
// (spec.md §4.4).
const DefaultWeight = 0.5

// class is one equivalence class under merge: its current per-attribute
// QI labels, its member row indices, and the set of distinct sensitive
// values occurring among them.
type class struct {
	label   []string
	rows    []int
	sensSet map[string]struct{}
}

func divOf(c *class) int { return len(c.sensSet) }

func unionSens(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for v := range a {
		out[v] = struct{}{}
	}
	for v := range b {
		out[v] = struct{}{}
	}

	return out
}

// mergeCost evaluates merge_cost(l, c1, c2) (spec.md §4.4).
func mergeCost(l int, c1, c2 *class, w float64) float64 {
	n1, n2 := len(c1.rows), len(c2.rows)
	infoCost := float64((n1+n2)*(n1+n2) - n1*n1 - n2*n2)

	merged := unionSens(c1.sensSet, c2.sensSet)
	divCost := 0.0
	if d := l - len(merged); d > 0 {
		divCost = float64(d)
	}

	return w*infoCost + (1-w)*divCost
}

// mergeLabels combines two per-attribute label tuples element-wise: each
// attribute's label is parsed into its member value set, unioned, sorted,
// and reformatted in canonical {v1; v2; …} form (spec.md §4.4, step 3c).
func mergeLabels(l1, l2 []string) []string {
	out := make([]string, len(l1))
	for i := range l1 {
		set := make(map[string]struct{})
		for _, v := range encode.ParseLabel(l1[i]) {
			set[v] = struct{}{}
		}
		for _, v := range encode.ParseLabel(l2[i]) {
			set[v] = struct{}{}
		}
		vals := make([]string, 0, len(set))
		for v := range set {
			vals = append(vals, v)
		}
		sort.Strings(vals)
		out[i] = encode.FormatLabel(vals)
	}

	return out
}

// Process merges equivalence classes of t (partitioned by the current
// QI labels) until every surviving class has sensitive-attribute
// diversity >= l or only one class remains, then writes the merged
// labels back into a clone of t. Fails with ErrInsufficientDiversity if
// the table-wide diversity is already below l.
func Process(t *table.Table, l int, sensitive string, qi []string) (*table.Table, error) {
	sensCol, err := t.Column(sensitive)
	if err != nil {
		return nil, fmt.Errorf("diversity: Process: %w", err)
	}
	tableWide := make(map[string]struct{})
	for _, v := range sensCol {
		tableWide[v] = struct{}{}
	}
	if len(tableWide) < l {
		return nil, fmt.Errorf("diversity: Process: %w", ErrInsufficientDiversity)
	}

	groups, err := table.GroupBy(t, qi)
	if err != nil {
		return nil, fmt.Errorf("diversity: Process: %w", err)
	}

	classes := make([]*class, len(groups))
	for i, g := range groups {
		sensSet := make(map[string]struct{})
		for _, r := range g.Rows {
			sensSet[sensCol[r]] = struct{}{}
		}
		classes[i] = &class{
			label:   append([]string(nil), g.Key...),
			rows:    append([]int(nil), g.Rows...),
			sensSet: sensSet,
		}
	}

	for {
		if len(classes) <= 1 {
			break
		}
		minIdx, minDiv := 0, divOf(classes[0])
		for i := 1; i < len(classes); i++ {
			if d := divOf(classes[i]); d < minDiv {
				minIdx, minDiv = i, d
			}
		}
		if minDiv >= l {
			break
		}

		partnerIdx := -1
		bestCost := 0.0
		for i, c := range classes {
			if i == minIdx {
				continue
			}
			cost := mergeCost(l, classes[minIdx], c, DefaultWeight)
			if partnerIdx == -1 || cost < bestCost {
				partnerIdx, bestCost = i, cost
			}
		}

		merged := &class{
			label:   mergeLabels(classes[minIdx].label, classes[partnerIdx].label),
			rows:    append(append([]int(nil), classes[minIdx].rows...), classes[partnerIdx].rows...),
			sensSet: unionSens(classes[minIdx].sensSet, classes[partnerIdx].sensSet),
		}

		next := make([]*class, 0, len(classes)-1)
		for i, c := range classes {
			if i != minIdx && i != partnerIdx {
				next = append(next, c)
			}
		}
		next = append(next, merged)
		classes = next
	}

	out := t.Clone()
	for _, c := range classes {
		for _, r := range c.rows {
			for i, attr := range qi {
				if err := out.SetValue(r, attr, c.label[i]); err != nil {
					return nil, fmt.Errorf("diversity: Process: %w", err)
				}
			}
		}
	}

	return out, nil
}
