package partition

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/johnruth96/kanonymity/anonymizer"
	"github.com/johnruth96/kanonymity/table"
)

// Result is the aggregate outcome of one Driver.Run.
type Result struct {
	// BestCost is the sum of each partition's best_cost. It is -1 in
	// suppression-only mode, where no search runs and no cost is
	// defined (matching orig/privacy/bayardoext.py's best_cost
	// property).
	BestCost int

	// Partitions is the number of independent partitions processed.
	Partitions int
}

// Driver runs the Anonymizer across partitions of a table keyed by a
// grouping attribute set G, or performs suppression-only filtering when
// generalization is disabled (spec.md §4.3).
type Driver struct {
	src               *table.Table
	qi                []string
	grouping          []string
	useGeneralization bool
	useSuppression    bool
	log               zerolog.Logger
}

// New builds a Driver. qi and grouping must be disjoint. Progress logging
// defaults to a no-op logger; call SetLogger to attach one.
func New(src *table.Table, qi, grouping []string, useGeneralization, useSuppression bool) (*Driver, error) {
	qiSet := make(map[string]bool, len(qi))
	for _, a := range qi {
		qiSet[a] = true
	}
	for _, g := range grouping {
		if qiSet[g] {
			return nil, fmt.Errorf("partition: New: %w: %q", ErrInvalidConfig, g)
		}
	}

	return &Driver{
		src:               src,
		qi:                append([]string(nil), qi...),
		grouping:          append([]string(nil), grouping...),
		useGeneralization: useGeneralization,
		useSuppression:    useSuppression,
		log:               zerolog.Nop(),
	}, nil
}

// SetLogger attaches log for per-partition INFO progress reporting in Run,
// replacing the original's print("INFO: Anonymizing ... {:.2%}") (orig/
// privacy/bayardoext.py's run()). Returns d for chaining.
func (d *Driver) SetLogger(log zerolog.Logger) *Driver {
	d.log = log

	return d
}

func (d *Driver) suppressionOnly() bool {
	return d.useSuppression && !d.useGeneralization
}

// KMax computes the largest k this configuration can accept (spec.md
// §4.3): max-over-groups group size in suppression-only mode,
// min-over-groups group size when generalization is combined with
// grouping (conservative: every partition must itself reach k), or the
// whole dataset size otherwise.
func (d *Driver) KMax() (int, error) {
	if d.suppressionOnly() {
		cols := append(append([]string(nil), d.qi...), d.grouping...)
		groups, err := table.GroupBy(d.src, cols)
		if err != nil {
			return 0, fmt.Errorf("partition: KMax: %w", err)
		}
		max := 0
		for _, g := range groups {
			if len(g.Rows) > max {
				max = len(g.Rows)
			}
		}

		return max, nil
	}

	if len(d.grouping) > 0 {
		groups, err := table.GroupBy(d.src, d.grouping)
		if err != nil {
			return 0, fmt.Errorf("partition: KMax: %w", err)
		}
		min := d.src.Len()
		for _, g := range groups {
			if len(g.Rows) < min {
				min = len(g.Rows)
			}
		}

		return min, nil
	}

	return d.src.Len(), nil
}

// partitions splits src by the unique value-combinations of grouping,
// or returns a single partition covering the whole table when grouping
// is empty (spec.md §4.3).
func (d *Driver) partitions() ([]*table.Table, error) {
	if len(d.grouping) == 0 {
		return []*table.Table{d.src}, nil
	}

	groups, err := table.GroupBy(d.src, d.grouping)
	if err != nil {
		return nil, fmt.Errorf("partition: partitions: %w", err)
	}
	parts := make([]*table.Table, len(groups))
	for i, g := range groups {
		parts[i] = d.src.Selected(g.Rows)
	}

	return parts, nil
}

// Run produces the anonymized table for k, either via suppression-only
// filtering or by running one Anonymizer per partition and concatenating
// their outputs in partition order.
func (d *Driver) Run(k int) (*table.Table, Result, error) {
	if d.suppressionOnly() {
		cols := append(append([]string(nil), d.qi...), d.grouping...)
		out, err := SuppressOnly(d.src, cols, k)
		if err != nil {
			return nil, Result{}, fmt.Errorf("partition: Run: %w", err)
		}

		return out, Result{BestCost: -1, Partitions: 1}, nil
	}

	parts, err := d.partitions()
	if err != nil {
		return nil, Result{}, err
	}

	outTables := make([]*table.Table, 0, len(parts))
	totalCost := 0
	for i, p := range parts {
		a, err := anonymizer.New(p, d.qi, anonymizer.Options{UseSuppression: d.useSuppression})
		if err != nil {
			return nil, Result{}, fmt.Errorf("partition: Run: %w", err)
		}
		if _, err := a.Run(k); err != nil {
			return nil, Result{}, fmt.Errorf("partition: Run: %w", err)
		}
		pt, err := a.AnonymizedTable()
		if err != nil {
			return nil, Result{}, fmt.Errorf("partition: Run: %w", err)
		}
		outTables = append(outTables, pt)
		totalCost += a.BestCost()

		d.log.Info().
			Int("k", k).
			Float64("progress", float64(i+1)/float64(len(parts))).
			Msg("anonymizing")
	}

	merged, err := concatTables(outTables)
	if err != nil {
		return nil, Result{}, fmt.Errorf("partition: Run: %w", err)
	}

	return merged, Result{BestCost: totalCost, Partitions: len(parts)}, nil
}

// SuppressOnly groups t by cols and returns the rows belonging to
// groups of size >= k, in original row order.
func SuppressOnly(t *table.Table, cols []string, k int) (*table.Table, error) {
	groups, err := table.GroupBy(t, cols)
	if err != nil {
		return nil, fmt.Errorf("partition: SuppressOnly: %w", err)
	}
	keep := make([]int, 0, t.Len())
	for _, g := range groups {
		if len(g.Rows) >= k {
			keep = append(keep, g.Rows...)
		}
	}
	sort.Ints(keep)

	return t.Selected(keep), nil
}

func concatTables(parts []*table.Table) (*table.Table, error) {
	cols := parts[0].Columns()
	out, err := table.New(cols)
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		for r := 0; r < p.Len(); r++ {
			row, err := p.Row(r, cols)
			if err != nil {
				return nil, err
			}
			if err := out.AddRow(row); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
