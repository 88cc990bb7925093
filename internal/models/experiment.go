package models

import (
	"time"
)

// ExperimentKind identifies what an experiment measures
type ExperimentKind string

const (
	// ExperimentKindMaxScoring finds the number of dice with the best average turn
	ExperimentKindMaxScoring ExperimentKind = "max_scoring_num_rolls"

	// ExperimentKindWinRate measures a strategy against a baseline
	ExperimentKindWinRate ExperimentKind = "win_rate"
)

// ExperimentResult is the stored outcome of one experiment run
type ExperimentResult struct {
	// ID is the unique identifier for the result
	ID string `json:"id"`

	// Name is the experiment name from the plan
	Name string `json:"name"`

	// Kind is what the experiment measured
	Kind ExperimentKind `json:"kind"`

	// Strategy is the strategy under test, if any
	Strategy string `json:"strategy,omitempty"`

	// Baseline is the opposing strategy, if any
	Baseline string `json:"baseline,omitempty"`

	// Dice is the die used by max scoring experiments
	Dice int `json:"dice,omitempty"`

	// Samples is the number of samples averaged
	Samples int `json:"samples"`

	// WinRate is the averaged win rate for win rate experiments
	WinRate float64 `json:"win_rate,omitempty"`

	// NumRolls is the best number of dice for max scoring experiments
	NumRolls int `json:"num_rolls,omitempty"`

	// Averages holds the average turn score for 1..10 dice
	Averages []float64 `json:"averages,omitempty"`

	// CreatedAt is when the experiment finished
	CreatedAt time.Time `json:"created_at"`
}
