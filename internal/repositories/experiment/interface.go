package experiment

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hog/internal/repositories/experiment Repository

import (
	"context"

	"github.com/KirkDiggler/hog/internal/models"
)

// Repository defines the interface for experiment result persistence
type Repository interface {
	// SaveResult persists an experiment result
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves a result by ID
	GetResult(ctx context.Context, input *GetResultInput) (*models.ExperimentResult, error)

	// ListResults retrieves results for an experiment name, oldest first
	ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error)

	// ListNames retrieves every experiment name with stored results
	ListNames(ctx context.Context, input *ListNamesInput) (*ListNamesOutput, error)

	// DeleteResult removes a result
	DeleteResult(ctx context.Context, input *DeleteResultInput) error
}
