package experiment

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/johnruth96/kanonymity/diversity"
	"github.com/johnruth96/kanonymity/partition"
	"github.com/johnruth96/kanonymity/table"
)

// SweepRow is one row of the experiments.csv timing/cost table: the
// Go equivalent of one entry of original_source/experiments/main.py's
// run_privacy k_lst/l_lst/n_lst/cost_lst/k_call accumulators.
type SweepRow struct {
	KCall   int
	K       int
	L       int
	NGroups int
	Cost    int
}

// SweepResult is the full output of a Sweep: the accumulated rows and
// the anonymized table produced at each (k, l) sweep point, keyed the
// same way original_source writes K{k}L{l}.csv files.
type SweepResult struct {
	Rows   []SweepRow
	Tables map[[2]int]*table.Table
}

// Sweep runs the "while 0 < k_current < k_max" loop from
// original_source/experiments/main.py's run_privacy: repeatedly
// anonymizing at increasing k until the result collapses to an empty
// table (spec.md §7's EmptyResult condition) or k_max is reached,
// triggering an automatic 2-diversity post-processing pass whenever a
// sweep point's diversity falls below 2 on a binary sensitive
// attribute.
func Sweep(src *table.Table, cfg Config, log zerolog.Logger) (*SweepResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("experiment: Sweep: %w", err)
	}
	qi, err := cfg.QI()
	if err != nil {
		return nil, fmt.Errorf("experiment: Sweep: %w", err)
	}
	sensitive := Registry[cfg.Attrs].S

	driver, err := partition.New(src, qi, nil, cfg.UseGeneralization(), cfg.UseSuppression())
	if err != nil {
		return nil, fmt.Errorf("experiment: Sweep: %w", err)
	}
	driver.SetLogger(log)
	kMax, err := driver.KMax()
	if err != nil {
		return nil, fmt.Errorf("experiment: Sweep: %w", err)
	}

	kCurrent, nGroups, err := currentK(src, qi)
	if err != nil {
		return nil, fmt.Errorf("experiment: Sweep: %w", err)
	}
	lInitial, err := currentL(src, qi, sensitive)
	if err != nil {
		return nil, fmt.Errorf("experiment: Sweep: %w", err)
	}

	result := &SweepResult{
		Rows:   []SweepRow{{KCall: 0, K: kCurrent, L: lInitial, NGroups: nGroups, Cost: 0}},
		Tables: map[[2]int]*table.Table{{kCurrent, lInitial}: src},
	}

	for kCurrent > 0 && kCurrent < kMax {
		k := kCurrent + 1
		log.Info().Int("k", k).Msg("anonymizing")

		out, runResult, err := driver.Run(k)
		if err != nil {
			return nil, fmt.Errorf("experiment: Sweep: %w", err)
		}
		if out.Len() == 0 {
			log.Info().Msg("stopping: anonymized table is empty")

			return result, fmt.Errorf("experiment: Sweep: %w", ErrEmptyResult)
		}

		lOut, err := currentL(out, qi, sensitive)
		if err != nil {
			return nil, fmt.Errorf("experiment: Sweep: %w", err)
		}
		kOut, nOut, err := currentK(out, qi)
		if err != nil {
			return nil, fmt.Errorf("experiment: Sweep: %w", err)
		}

		result.Rows = append(result.Rows, SweepRow{KCall: k, K: kOut, L: lOut, NGroups: nOut, Cost: runResult.BestCost})
		result.Tables[[2]int{kOut, lOut}] = out
		kCurrent = kOut

		if lOut < 2 {
			sensDomain, err := table.GroupBy(out, []string{sensitive})
			if err != nil {
				return nil, fmt.Errorf("experiment: Sweep: %w", err)
			}
			if len(sensDomain) == 2 {
				div, err := diversity.Process(out, 2, sensitive, qi)
				if err != nil {
					log.Warn().Err(err).Msg("skipping 2-diversity pass")
				} else {
					kDiv, nDiv, err := currentK(div, qi)
					if err != nil {
						return nil, fmt.Errorf("experiment: Sweep: %w", err)
					}
					result.Rows = append(result.Rows, SweepRow{KCall: k, K: kDiv, L: 2, NGroups: nDiv, Cost: 0})
					result.Tables[[2]int{kDiv, 2}] = div
				}
			}
		}
	}

	return result, nil
}
