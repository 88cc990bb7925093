package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/models"
	"github.com/KirkDiggler/hog/internal/services/strategy"
	"gopkg.in/yaml.v3"
)

// DefaultBaseline is the opponent used when a win rate entry names none
var DefaultBaseline = strategy.Spec{Name: strategy.NameAlwaysRoll, NumRolls: 5}

// Plan is a list of experiments read from YAML
type Plan struct {
	// Samples overrides the service default for every entry without its own
	Samples int `yaml:"samples,omitempty"`

	// Goal overrides the game goal score for win rate entries
	Goal int `yaml:"goal,omitempty"`

	Experiments []PlanEntry `yaml:"experiments"`
}

// PlanEntry is a single experiment in a plan
type PlanEntry struct {
	Name     string                `yaml:"name"`
	Kind     models.ExperimentKind `yaml:"kind"`
	Dice     int                   `yaml:"dice,omitempty"`
	Strategy strategy.Spec         `yaml:"strategy,omitempty"`
	Baseline *strategy.Spec        `yaml:"baseline,omitempty"`
	Samples  int                   `yaml:"samples,omitempty"`
}

// LoadPlan reads a plan from a YAML file
func LoadPlan(path string) (*Plan, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	return ParsePlan(b)
}

// ParsePlan decodes and validates a YAML plan. Unknown fields are rejected.
func ParsePlan(b []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var plan Plan
	if err := dec.Decode(&plan); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate checks every entry can be run
func (p *Plan) Validate() error {
	if len(p.Experiments) == 0 {
		return fmt.Errorf("%w: no experiments", ErrInvalidPlan)
	}
	if p.Samples < 0 || p.Goal < 0 {
		return fmt.Errorf("%w: samples and goal cannot be negative", ErrInvalidPlan)
	}

	seen := make(map[string]bool, len(p.Experiments))
	for i, entry := range p.Experiments {
		if entry.Name == "" {
			return fmt.Errorf("%w: experiment %d has no name", ErrInvalidPlan, i)
		}
		if seen[entry.Name] {
			return fmt.Errorf("%w: duplicate experiment %q", ErrInvalidPlan, entry.Name)
		}
		seen[entry.Name] = true

		if entry.Samples < 0 {
			return fmt.Errorf("%w: %s: samples cannot be negative", ErrInvalidPlan, entry.Name)
		}

		switch entry.Kind {
		case models.ExperimentKindMaxScoring:
			if entry.Dice != dice.FourSided && entry.Dice != dice.SixSided {
				return fmt.Errorf("%w: %s: dice must be %d or %d", ErrInvalidPlan, entry.Name, dice.FourSided, dice.SixSided)
			}
		case models.ExperimentKindWinRate:
			if entry.Strategy.Name == "" {
				return fmt.Errorf("%w: %s: strategy is required", ErrInvalidPlan, entry.Name)
			}
		default:
			return fmt.Errorf("%w: %s: %q", ErrUnknownKind, entry.Name, entry.Kind)
		}
	}
	return nil
}

// baseline returns the entry's baseline or DefaultBaseline
func (e PlanEntry) baseline() strategy.Spec {
	if e.Baseline != nil {
		return *e.Baseline
	}
	return DefaultBaseline
}

// DefaultPlan measures the best number of dice for both die sizes and the
// win rate of each built-in strategy against always rolling five.
func DefaultPlan() *Plan {
	return &Plan{
		Experiments: []PlanEntry{
			{Name: "six_sided_max", Kind: models.ExperimentKindMaxScoring, Dice: dice.SixSided},
			{Name: "four_sided_max", Kind: models.ExperimentKindMaxScoring, Dice: dice.FourSided},
			{Name: "always_roll_8", Kind: models.ExperimentKindWinRate, Strategy: strategy.Spec{Name: strategy.NameAlwaysRoll, NumRolls: 8}},
			{Name: "bacon_strategy", Kind: models.ExperimentKindWinRate, Strategy: strategy.Spec{Name: strategy.NameBacon}},
			{Name: "swap_strategy", Kind: models.ExperimentKindWinRate, Strategy: strategy.Spec{Name: strategy.NameSwap}},
			{Name: "final_strategy", Kind: models.ExperimentKindWinRate, Strategy: strategy.Spec{Name: strategy.NameFinal}},
		},
	}
}
