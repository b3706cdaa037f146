package experiment

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/johnruth96/kanonymity/fairness"
)

// evalColumns is the alphabetically sorted fairness-measurement column
// set original_source/experiments/evaluate.py builds via
// sorted(measurements.keys()) once per table_dir (measure_fairness's
// dict keys plus the n_groups/idx_original fields evaluate_experiment
// adds).
var evalColumns = []string{
	"idx_original", "n_cont", "n_groups", "rank_mean",
	"rank_median", "ratio_fair", "rod", "rod_abs", "size",
}

// Evaluate measures fairness over every resampled table directory that
// exists (one per ResamplingStrategies entry) and writes a
// results_resample_<name>.csv per directory, the Go equivalent of
// original_source/experiments/evaluate.py's evaluate_experiment.
func Evaluate(cfg Config, log zerolog.Logger) error {
	v := Registry[cfg.Attrs]
	qi, err := cfg.QI()
	if err != nil {
		return fmt.Errorf("experiment: Evaluate: %w", err)
	}

	pairs, err := ReadExpIndex(cfg.ExpFile())
	if err != nil {
		return fmt.Errorf("experiment: Evaluate: %w", err)
	}

	for _, name := range ResamplingStrategies {
		dir := cfg.TableDir(name)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		log.Info().Str("strategy", name).Msg("evaluating")

		rows := make([][]string, 0, len(pairs))
		for _, kl := range pairs {
			origK, origL := kl[0], kl[1]

			t, err := LoadCSV(tableResampleFile(cfg, name, origK, origL))
			if err != nil {
				return fmt.Errorf("experiment: Evaluate: %w", err)
			}

			k, n, err := currentK(t, qi)
			if err != nil {
				return fmt.Errorf("experiment: Evaluate: %w", err)
			}
			l, err := currentL(t, qi, v.S)
			if err != nil {
				return fmt.Errorf("experiment: Evaluate: %w", err)
			}
			stats, err := fairness.Measure(t, v.A, v.I, v.O, v.S)
			if err != nil {
				return fmt.Errorf("experiment: Evaluate: %w", err)
			}

			rows = append(rows, []string{
				strconv.Itoa(k),
				strconv.Itoa(l),
				fmt.Sprintf("(%d, %d)", origK, origL),
				strconv.Itoa(stats.NCont),
				strconv.Itoa(n),
				strconv.FormatFloat(stats.RankMean, 'f', -1, 64),
				strconv.FormatFloat(stats.RankMedian, 'f', -1, 64),
				strconv.FormatFloat(stats.RatioFair, 'f', -1, 64),
				strconv.FormatFloat(stats.ROD, 'f', -1, 64),
				strconv.FormatFloat(stats.RODAbs, 'f', -1, 64),
				strconv.Itoa(stats.Size),
			})
		}

		if err := writeResultsCSV(cfg.ResultFile(name), rows); err != nil {
			return fmt.Errorf("experiment: Evaluate: %w", err)
		}
	}

	return nil
}

func writeResultsCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{"k", "l"}, evalColumns...)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}
