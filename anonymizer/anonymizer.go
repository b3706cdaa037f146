package anonymizer

import (
	"fmt"
	"sort"
	"time"

	"github.com/johnruth96/kanonymity/encode"
	"github.com/johnruth96/kanonymity/table"
)

// Anonymizer runs the Bayardo-style branch-and-bound search (spec.md
// §4.2) for a fixed QI attribute set against one table. One instance
// owns one equivalence-class cache and is reset on every Run.
type Anonymizer struct {
	src  *table.Table
	opts Options

	domain  *encode.Domain
	eqCache *eqClassCache

	k          int
	bestHead   []int
	bestCost   int
	pruneCache map[string][]int
	calls      int
}

// New builds an Anonymizer over src restricted to the QI attributes qi.
// The domain (σ, M, the encoded dataset) is computed once here and
// never mutated afterward (spec.md §3: "constructed once per Anonymizer
// instance and is immutable thereafter").
func New(src *table.Table, qi []string, opts Options) (*Anonymizer, error) {
	domain, err := encode.Encode(src, qi)
	if err != nil {
		return nil, fmt.Errorf("anonymizer: New: %w", err)
	}

	return &Anonymizer{
		src:     src,
		opts:    opts,
		domain:  domain,
		eqCache: newEqClassCache(domain.Rows()),
	}, nil
}

// KMax is the largest k accepted by Run: the dataset's row count
// (spec.md §4.2.5).
func (a *Anonymizer) KMax() int {
	return a.domain.NumRows()
}

// Run searches for the head-set minimizing cost(H) under k-anonymity
// with k, resetting all per-run state first (spec.md §4.2.5).
func (a *Anonymizer) Run(k int) (Result, error) {
	if k < 1 || k > a.KMax() {
		return Result{}, fmt.Errorf("anonymizer: Run: %w: k=%d, kMax=%d", ErrInvalidK, k, a.KMax())
	}

	a.k = k
	a.bestCost = infCost
	a.bestHead = nil
	a.pruneCache = make(map[string][]int)
	a.calls = 0

	start := time.Now()
	a.search()
	elapsed := time.Since(start)

	return Result{
		BestHead:      append([]int(nil), a.bestHead...),
		BestCost:      a.bestCost,
		DurationNanos: elapsed.Nanoseconds(),
		CallCount:     a.calls,
	}, nil
}

// BestHead returns a copy of the head-set found by the most recent Run.
func (a *Anonymizer) BestHead() []int {
	return append([]int(nil), a.bestHead...)
}

// BestCost returns cost(BestHead) from the most recent Run.
func (a *Anonymizer) BestCost() int {
	return a.bestCost
}

// classesFor returns E(anonymization), via the domain's bucket maps and
// the Anonymizer's equivalence-class cache.
func (a *Anonymizer) classesFor(anonymization []int) []eqClass {
	rep, _ := a.domain.BuildBucketMaps(anonymization)

	return a.eqCache.classesFor(anonymization, rep)
}

func (a *Anonymizer) classesForHead(head []int) []eqClass {
	return a.classesFor(a.domain.ExpandHead(head))
}

func (a *Anonymizer) costOfHead(head []int) int {
	g := len(a.domain.Sigma) - len(head)

	return computeCost(a.classesForHead(head), g, a.k, a.domain.NumRows(), a.opts.UseSuppression)
}

func (a *Anonymizer) lowerBoundOf(head, all []int) int {
	return lowerBound(
		a.classesForHead(head),
		a.classesForHead(all),
		len(a.domain.Sigma),
		len(all),
		a.k,
		a.opts.UseSuppression,
	)
}

// AnonymizedTable materializes the output table for the most recent
// Run's best head-set, per spec.md §4.2.5: replaces each QI cell with
// its bucket label, reattaches non-QI columns, restores column order,
// sorts rows lexicographically, and — if suppression is enabled —
// drops rows whose output QI tuple occurs fewer than k times.
func (a *Anonymizer) AnonymizedTable() (*table.Table, error) {
	return a.tableForHead(a.bestHead)
}

func (a *Anonymizer) tableForHead(head []int) (*table.Table, error) {
	anonymization := a.domain.ExpandHead(head)
	rep, end := a.domain.BuildBucketMaps(anonymization)

	cols := a.src.Columns()
	qiIndex := make(map[string]int, len(a.domain.Attrs))
	for i, attr := range a.domain.Attrs {
		qiIndex[attr] = i
	}

	out, err := table.New(cols)
	if err != nil {
		return nil, fmt.Errorf("anonymizer: tableForHead: %w", err)
	}

	for r := 0; r < a.src.Len(); r++ {
		row, err := a.src.Row(r, cols)
		if err != nil {
			return nil, fmt.Errorf("anonymizer: tableForHead: %w", err)
		}
		labels := a.domain.DecodeWithMaps(rep, end, a.domain.Row(r))
		for i, col := range cols {
			if ai, ok := qiIndex[col]; ok {
				row[i] = labels[ai]
			}
		}
		if err := out.AddRow(row); err != nil {
			return nil, fmt.Errorf("anonymizer: tableForHead: %w", err)
		}
	}

	if err := out.SortLex(cols); err != nil {
		return nil, fmt.Errorf("anonymizer: tableForHead: %w", err)
	}

	if !a.opts.UseSuppression {
		return out, nil
	}

	groups, err := table.GroupBy(out, a.domain.Attrs)
	if err != nil {
		return nil, fmt.Errorf("anonymizer: tableForHead: %w", err)
	}
	keep := make([]int, 0, out.Len())
	for _, g := range groups {
		if len(g.Rows) >= a.k {
			keep = append(keep, g.Rows...)
		}
	}
	sort.Ints(keep)

	return out.Selected(keep), nil
}
