package experiment

import (
	"log"

	"github.com/KirkDiggler/hog/internal/common/clock"
	"github.com/KirkDiggler/hog/internal/common/uuid"
	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/models"
	experimentRepo "github.com/KirkDiggler/hog/internal/repositories/experiment"
	"github.com/KirkDiggler/hog/internal/services/game"
	"github.com/KirkDiggler/hog/internal/services/strategy"
)

// DefaultSamples is the number of samples averaged when none is given
const DefaultSamples = 10000

// Config holds configuration for the experiment service
type Config struct {
	// Samples is the default number of samples per measurement
	Samples int

	// Logger receives a report line per finished measurement when set
	Logger *log.Logger

	// Service dependencies
	DiceRoller    dice.Roller
	GameService   game.Service
	Repository    experimentRepo.Repository
	Catalog       *strategy.Catalog
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// AverageTurnScoreInput contains parameters for averaging turn scores
type AverageTurnScoreInput struct {
	NumRolls int
	Dice     int
	Samples  int
}

// AverageTurnScoreOutput contains the averaged turn score
type AverageTurnScoreOutput struct {
	Average float64
}

// MaxScoringNumRollsInput contains parameters for finding the best number of dice
type MaxScoringNumRollsInput struct {
	Dice    int
	Samples int
}

// MaxScoringNumRollsOutput contains the best number of dice and every average
type MaxScoringNumRollsOutput struct {
	// NumRolls is the lowest number of dice with the highest average
	NumRolls int

	// Averages holds the average for 1..scoring.MaxRolls dice in order
	Averages []float64
}

// WinRateInput contains parameters for measuring a win rate
type WinRateInput struct {
	Strategy strategy.Spec
	Baseline strategy.Spec
	Samples  int
	Goal     int
}

// WinRateOutput contains the measured win rates
type WinRateOutput struct {
	// WinRate averages the two seats
	WinRate float64

	// AsFirst is the win rate when the strategy moves first
	AsFirst float64

	// AsSecond is the win rate when the strategy moves second
	AsSecond float64
}

// RunPlanInput contains the plan to run
type RunPlanInput struct {
	Plan *Plan
}

// RunPlanOutput contains the stored result of every experiment, in plan order
type RunPlanOutput struct {
	Results []*models.ExperimentResult
}

// ListResultsInput contains parameters for listing results
type ListResultsInput struct {
	Name  string
	Limit int
}

// ListResultsOutput contains stored results, oldest first
type ListResultsOutput struct {
	Results []*models.ExperimentResult
}
