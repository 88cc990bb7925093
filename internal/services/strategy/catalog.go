package strategy

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/hog/internal/services/scoring"
	"gopkg.in/yaml.v3"
)

// StrategyError is a custom error type for strategy lookup errors
type StrategyError string

// Error implements the error interface
func (e StrategyError) Error() string {
	return string(e)
}

const (
	ErrUnknownStrategy StrategyError = "unknown strategy"
	ErrInvalidSpec     StrategyError = "invalid strategy spec"
)

// Strategy names understood by Catalog.Build
const (
	NameAlwaysRoll = "always_roll"
	NameBacon      = "bacon"
	NameSwap       = "swap"
	NameFinal      = "final"
	NameLookahead  = "lookahead"
	NameHybrid     = "hybrid"
)

// Spec describes a strategy by name, as found in experiment plans and
// command arguments.
type Spec struct {
	Name     string `yaml:"name"`
	NumRolls int    `yaml:"num_rolls,omitempty"`
	Margin   int    `yaml:"margin,omitempty"`
}

// String renders the spec the way ParseSpec reads it
func (s Spec) String() string {
	switch s.Name {
	case NameAlwaysRoll:
		return fmt.Sprintf("%s:%d", s.Name, s.NumRolls)
	case NameBacon, NameSwap:
		if s.Margin != 0 || s.NumRolls != 0 {
			return fmt.Sprintf("%s:%d:%d", s.Name, s.Margin, s.NumRolls)
		}
	}
	return s.Name
}

// ParseSpec reads "name", "always_roll:N" or "bacon:MARGIN:N" forms.
// always_roll needs its N, since rolling zero dice is a strategy too.
func ParseSpec(raw string) (Spec, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	spec := Spec{Name: parts[0]}
	if spec.Name == "" {
		return Spec{}, fmt.Errorf("%w: empty name", ErrInvalidSpec)
	}

	var err error
	switch len(parts) {
	case 1:
	case 2:
		spec.NumRolls, err = strconv.Atoi(parts[1])
	case 3:
		if spec.Margin, err = strconv.Atoi(parts[1]); err == nil {
			spec.NumRolls, err = strconv.Atoi(parts[2])
		}
	default:
		err = errors.New("too many fields")
	}
	if err == nil && spec.Name == NameAlwaysRoll && len(parts) != 2 {
		err = errors.New("expected always_roll:N")
	}
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %q: %v", ErrInvalidSpec, raw, err)
	}
	return spec, nil
}

// UnmarshalYAML decodes a spec mapping, requiring num_rolls for
// always_roll
func (s *Spec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected a mapping", ErrInvalidSpec, value.Line)
	}

	hasNumRolls := false
	for i := 0; i+1 < len(value.Content); i += 2 {
		switch key := value.Content[i].Value; key {
		case "name", "margin":
		case "num_rolls":
			hasNumRolls = true
		default:
			return fmt.Errorf("%w: line %d: unknown field %q", ErrInvalidSpec, value.Content[i].Line, key)
		}
	}

	type plain Spec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	if p.Name == NameAlwaysRoll && !hasNumRolls {
		return fmt.Errorf("%w: line %d: %s needs num_rolls", ErrInvalidSpec, value.Line, NameAlwaysRoll)
	}

	*s = Spec(p)
	return nil
}

// Config holds configuration for a strategy catalog
type Config struct {
	// Evaluator backs the final, lookahead and hybrid strategies
	Evaluator *Evaluator

	// Trace receives strategy decisions when set
	Trace *log.Logger
}

// Catalog builds strategies from specs
type Catalog struct {
	evaluator *Evaluator
	trace     *log.Logger
}

// NewCatalog creates a new strategy catalog
func NewCatalog(cfg *Config) *Catalog {
	c := &Catalog{}
	if cfg != nil {
		c.evaluator = cfg.Evaluator
		c.trace = cfg.Trace
	}
	if c.evaluator == nil {
		c.evaluator = NewEvaluator(nil)
	}
	return c
}

// Evaluator returns the evaluator shared by the catalog's strategies
func (c *Catalog) Evaluator() *Evaluator {
	return c.evaluator
}

// Names lists every strategy the catalog can build
func (c *Catalog) Names() []string {
	names := []string{NameAlwaysRoll, NameBacon, NameSwap, NameFinal, NameLookahead, NameHybrid}
	sort.Strings(names)
	return names
}

// Build returns the strategy described by spec
func (c *Catalog) Build(spec Spec) (Strategy, error) {
	margin := spec.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	numRolls := spec.NumRolls
	if numRolls == 0 && spec.Name != NameAlwaysRoll {
		numRolls = DefaultNumRolls
	}
	if numRolls < 0 || numRolls > scoring.MaxRolls {
		return nil, fmt.Errorf("%w: num_rolls must be between 0 and %d, got %d", ErrInvalidSpec, scoring.MaxRolls, numRolls)
	}

	switch spec.Name {
	case NameAlwaysRoll:
		return AlwaysRoll(numRolls), nil
	case NameBacon:
		return Bacon(margin, numRolls), nil
	case NameSwap:
		return Swap(margin, numRolls, c.trace), nil
	case NameFinal:
		return Final(c.evaluator.Cache(), c.trace)
	case NameLookahead:
		return Lookahead(c.evaluator, c.trace), nil
	case NameHybrid:
		return Hybrid(c.evaluator, c.trace), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, spec.Name)
	}
}
