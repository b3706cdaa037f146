package experiment

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/johnruth96/kanonymity/resample"
)

// ResampleTables runs every strategy in ResamplingStrategies over every
// (k, l) table a prior Persist wrote, the Go equivalent of
// original_source/experiments/resample.py's resample_tables: it reads
// conf.exp_file for the (k, l) index, loads each tables/K{k}L{l}.csv,
// resamples it back to concrete rows, and writes the result under
// tables_resample_<name>/K{k}L{l}.csv. rng seeds the uniform strategy;
// it is unused by cartesian, which is exhaustive and deterministic.
func ResampleTables(cfg Config, rng *rand.Rand, log zerolog.Logger) error {
	qi, err := cfg.QI()
	if err != nil {
		return fmt.Errorf("experiment: ResampleTables: %w", err)
	}

	pairs, err := ReadExpIndex(cfg.ExpFile())
	if err != nil {
		return fmt.Errorf("experiment: ResampleTables: %w", err)
	}

	for _, name := range ResamplingStrategies {
		log.Info().Str("strategy", name).Msg("resampling")
		if err := os.MkdirAll(cfg.TableDir(name), 0o755); err != nil {
			return fmt.Errorf("experiment: ResampleTables: %w: %w", ErrIO, err)
		}

		for i, kl := range pairs {
			k, l := kl[0], kl[1]
			log.Info().
				Int("k", k).Int("l", l).
				Float64("progress", float64(i+1)/float64(len(pairs))).
				Msg("resampling table")

			t, err := LoadCSV(cfg.TableFile(k, l))
			if err != nil {
				return fmt.Errorf("experiment: ResampleTables: %w", err)
			}

			var out = t
			switch name {
			case "cartesian":
				out, err = resample.Cartesian(t, qi)
			case "uniform":
				out, err = resample.Uniform(t, qi, rng)
			default:
				err = fmt.Errorf("experiment: ResampleTables: unknown strategy %q", name)
			}
			if err != nil {
				return fmt.Errorf("experiment: ResampleTables: %w", err)
			}

			path := tableResampleFile(cfg, name, k, l)
			if err := WriteCSV(path, out); err != nil {
				return fmt.Errorf("experiment: ResampleTables: %w", err)
			}
		}
	}

	return nil
}

func tableResampleFile(cfg Config, name string, k, l int) string {
	return filepath.Join(cfg.TableDir(name), fmt.Sprintf("K%dL%d.csv", k, l))
}
