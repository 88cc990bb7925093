package experiment

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hog/internal/services/experiment Service

// Service defines the interface for Monte-Carlo strategy experiments
type Service interface {
	// AverageTurnScore averages the score of rolling a fixed number of dice
	AverageTurnScore(ctx context.Context, input *AverageTurnScoreInput) (*AverageTurnScoreOutput, error)

	// MaxScoringNumRolls finds the number of dice with the best average turn score
	MaxScoringNumRolls(ctx context.Context, input *MaxScoringNumRollsInput) (*MaxScoringNumRollsOutput, error)

	// WinRate measures a strategy against a baseline from both seats
	WinRate(ctx context.Context, input *WinRateInput) (*WinRateOutput, error)

	// RunPlan runs every experiment in a plan and stores the results
	RunPlan(ctx context.Context, input *RunPlanInput) (*RunPlanOutput, error)

	// ListResults returns stored results for an experiment name
	ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error)
}
