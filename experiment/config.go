package experiment

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResamplingStrategies names the resampling strategies whose table
// directories/result files Config lays out, sorted ascending to match
// original_source/experiments/conf.py's
// sorted(RESAMPLING_STRATEGIES.keys()) iteration order.
var ResamplingStrategies = []string{"cartesian", "uniform"}

// Config is the equivalent of original_source/experiments/conf.py's
// Config class: an anonymization mode, a QI-source mapping, and a
// Registry key, plus the result-directory layout derived from them.
type Config struct {
	Mode      string // one of "G", "S", "GS"
	QIMap     string // one of "AI", "A", "I"
	Attrs     string // a Registry key
	ResultDir string
}

func (c Config) String() string {
	return fmt.Sprintf("%s-%s-%s-ADULT", c.Mode, c.QIMap, c.Attrs)
}

// Validate checks Mode, QIMap and Attrs against the known vocabulary.
func (c Config) Validate() error {
	switch c.Mode {
	case "G", "S", "GS":
	default:
		return fmt.Errorf("experiment: Config.Validate: %w: %q", ErrInvalidMode, c.Mode)
	}
	switch c.QIMap {
	case "AI", "A", "I":
	default:
		return fmt.Errorf("experiment: Config.Validate: %w: %q", ErrInvalidQIMap, c.QIMap)
	}
	if _, ok := Registry[c.Attrs]; !ok {
		return fmt.Errorf("experiment: Config.Validate: %w: %q", ErrUnknownAttrs, c.Attrs)
	}

	return nil
}

// UseSuppression reports whether Mode enables the suppression path.
func (c Config) UseSuppression() bool { return strings.Contains(c.Mode, "S") }

// UseGeneralization reports whether Mode enables the generalization
// (search) path.
func (c Config) UseGeneralization() bool { return strings.Contains(c.Mode, "G") }

// QI resolves the quasi-identifier attribute list named by QIMap:
// "AI" is A++I, "A" is A alone, "I" is I alone.
func (c Config) QI() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	v := Registry[c.Attrs]
	switch c.QIMap {
	case "AI":
		return append(append([]string(nil), v.A...), v.I...), nil
	case "A":
		return append([]string(nil), v.A...), nil
	case "I":
		return append([]string(nil), v.I...), nil
	default:
		return nil, fmt.Errorf("experiment: Config.QI: %w: %q", ErrInvalidQIMap, c.QIMap)
	}
}

// Dir is the per-configuration result directory.
func (c Config) Dir() string { return filepath.Join(c.ResultDir, c.String()) }

// SetupFile is the path of the JSON setup manifest.
func (c Config) SetupFile() string { return filepath.Join(c.Dir(), "setup.json") }

// BaseTableDir holds the per-(k,l) anonymized tables before
// resampling.
func (c Config) BaseTableDir() string { return filepath.Join(c.Dir(), "tables") }

// TableDir holds the tables resampled with the named strategy.
func (c Config) TableDir(resample string) string {
	return filepath.Join(c.Dir(), fmt.Sprintf("tables_resample_%s", resample))
}

// ResultFile is the fairness-measurement CSV for the named resampling
// strategy.
func (c Config) ResultFile(resample string) string {
	return filepath.Join(c.Dir(), fmt.Sprintf("results_resample_%s.csv", resample))
}

// ExpFile is the timing/cost CSV written once per k-sweep.
func (c Config) ExpFile() string { return filepath.Join(c.Dir(), "experiments.csv") }

// TableFile is the path of the table for one (k, l) sweep point.
func (c Config) TableFile(k, l int) string {
	return filepath.Join(c.BaseTableDir(), fmt.Sprintf("K%dL%d.csv", k, l))
}
