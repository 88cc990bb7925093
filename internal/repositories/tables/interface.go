package tables

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hog/internal/repositories/tables Repository

import (
	"context"
)

// Repository defines the interface for precomputed table persistence
type Repository interface {
	// SaveDistributions stores turn-total distributions, replacing any with the same rolls and dice
	SaveDistributions(ctx context.Context, input *SaveDistributionsInput) error

	// LoadDistributions retrieves every stored distribution
	LoadDistributions(ctx context.Context, input *LoadDistributionsInput) (*LoadDistributionsOutput, error)

	// SaveValues stores expected-value table entries
	SaveValues(ctx context.Context, input *SaveValuesInput) error

	// LoadValues retrieves every stored expected-value entry
	LoadValues(ctx context.Context, input *LoadValuesInput) (*LoadValuesOutput, error)
}
