package experiment

import (
	"fmt"

	"github.com/spf13/viper"
)

// VarConfig names one named attribute configuration: A (admissible
// QI candidates), I (inadmissible QI candidates), S (sensitive
// attribute), O (outcome attribute). Mirrors one entry of
// original_source/experiments/conf.py's CONF_VARS.
type VarConfig struct {
	A []string
	I []string
	S string
	O string
}

// Registry is the compiled-in equivalent of CONF_VARS: the fixed
// catalogue of named attribute configurations carried over from the
// research project so existing result directories remain nameable.
var Registry = map[string]VarConfig{
	"AS":      {A: []string{"age"}, I: nil, S: "sex", O: "income"},
	"ARS":     {A: []string{"age"}, I: []string{"race"}, S: "sex", O: "income"},
	"WRS":     {A: []string{"workclass"}, I: []string{"race"}, S: "sex", O: "income"},
	"ERS":     {A: []string{"education"}, I: []string{"race"}, S: "sex", O: "income"},
	"HRS":     {A: []string{"hours-per-week"}, I: []string{"race"}, S: "sex", O: "income"},
	"ORS":     {A: []string{"occupation"}, I: []string{"race"}, S: "sex", O: "income"},
	"WAS":     {A: []string{"workclass"}, I: []string{"age"}, S: "sex", O: "income"},
	"EAS":     {A: []string{"education"}, I: []string{"age"}, S: "sex", O: "income"},
	"HAS":     {A: []string{"hours-per-week"}, I: []string{"age"}, S: "sex", O: "income"},
	"OAS":     {A: []string{"occupation"}, I: []string{"age"}, S: "sex", O: "income"},
	"AWRS":    {A: []string{"age", "workclass"}, I: []string{"race"}, S: "sex", O: "income"},
	"WHRS":    {A: []string{"workclass", "hours-per-week"}, I: []string{"race"}, S: "sex", O: "income"},
	"AWEHOS":  {A: []string{"age", "workclass", "education", "hours-per-week", "occupation"}, I: nil, S: "sex", O: "income"},
	"AWEHORS": {A: []string{"age", "workclass", "education", "hours-per-week", "occupation"}, I: []string{"relationship"}, S: "sex", O: "income"},
	"WEHOSA":  {A: []string{"workclass", "education", "hours-per-week", "occupation"}, I: []string{"age"}, S: "sex", O: "income"},
}

// LoadRegistryOverlay reads a YAML file of extra/override named
// configurations via viper and merges them into Registry, so a
// deployment can add configurations beyond the compiled-in catalogue
// without a rebuild.
func LoadRegistryOverlay(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("experiment: LoadRegistryOverlay: %w", err)
	}

	var overlay map[string]VarConfig
	if err := v.Unmarshal(&overlay); err != nil {
		return fmt.Errorf("experiment: LoadRegistryOverlay: %w", err)
	}
	for k, v := range overlay {
		Registry[k] = v
	}

	return nil
}
