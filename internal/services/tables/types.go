package tables

import (
	tablesRepo "github.com/KirkDiggler/hog/internal/repositories/tables"
	"github.com/KirkDiggler/hog/internal/services/strategy"
)

// Config holds configuration for the tables service
type Config struct {
	// Repository stores the tables
	Repository tablesRepo.Repository

	// Evaluator owns the distribution cache and the expected-value table
	Evaluator *strategy.Evaluator
}

// WarmInput contains parameters for warming the distribution cache
type WarmInput struct {
	// MaxRolls is the largest number of rolls to cover, default scoring.MaxRolls
	MaxRolls int

	// Dice lists the die sizes to cover, default four and six sided
	Dice []int
}

// WarmOutput reports how the cache was filled
type WarmOutput struct {
	Loaded   int
	Computed int
}

// PrecomputeValuesInput contains parameters for filling the value table
type PrecomputeValuesInput struct {
	// Goal bounds both scores, default scoring.GoalScore
	Goal int
}

// PrecomputeValuesOutput reports the size of the saved table
type PrecomputeValuesOutput struct {
	Entries int
}

// LoadValuesOutput reports how many saved entries were loaded
type LoadValuesOutput struct {
	Entries int
}
