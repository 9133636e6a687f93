package heuristic

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/planopt/numheur/internal/perr"
)

// VariableOrderType selects the tie-break rule pattern generators use when
// ordering candidate variables.
type VariableOrderType string

const (
	CausalGoalLevel  VariableOrderType = "causal-goal-level"
	CausalGoalRandom VariableOrderType = "causal-goal-random"
	GoalCausalLevel  VariableOrderType = "goal-causal-level"
)

// Config mirrors the full configuration-option table as one YAML
// document, decoded with gopkg.in/yaml.v3 rather than a hand-rolled flag
// parser.
type Config struct {
	MaxNumberPDBStates      int               `yaml:"max_number_pdb_states"`
	MaxPDBSize              int               `yaml:"max_pdb_size"`
	CollectionMaxSize       int               `yaml:"collection_max_size"`
	NumSamples              int               `yaml:"num_samples"`
	MinImprovement          int               `yaml:"min_improvement"`
	MaxTimeSeconds          int               `yaml:"max_time_seconds"`
	PatternMaxSize          int               `yaml:"pattern_max_size"`
	OnlyInterestingPatterns bool              `yaml:"only_interesting_patterns"`
	DominancePruning        bool              `yaml:"dominance_pruning"`
	PreferNumericVariables  bool              `yaml:"prefer_numeric_variables"`
	VariableOrderType       VariableOrderType `yaml:"variable_order_type"`
}

// DefaultConfig returns the engine's option defaults, used when a caller
// has no YAML document to load.
func DefaultConfig() Config {
	return Config{
		MaxNumberPDBStates: 10_000,
		MaxPDBSize:         0,
		CollectionMaxSize:  1_000_000,
		NumSamples:         30,
		MinImprovement:     1,
		MaxTimeSeconds:     60,
		PatternMaxSize:     3,
		VariableOrderType:  CausalGoalLevel,
	}
}

// LoadOptions parses a YAML configuration-option document from r, filling
// any field left unset in the document from DefaultConfig.
func LoadOptions(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, perr.Wrap(perr.InvalidArgument, "heuristic", "failed to parse configuration document", err)
	}
	return cfg, nil
}
