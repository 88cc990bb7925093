package tables

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hog/internal/services/tables Service

// Service keeps the probability cache and expected-value table in sync
// with a persistent store
type Service interface {
	// Warm loads saved distributions and computes and saves the missing ones
	Warm(ctx context.Context, input *WarmInput) (*WarmOutput, error)

	// PrecomputeValues fills the expected-value table and saves it
	PrecomputeValues(ctx context.Context, input *PrecomputeValuesInput) (*PrecomputeValuesOutput, error)

	// LoadValues loads the saved expected-value table into the evaluator
	LoadValues(ctx context.Context) (*LoadValuesOutput, error)
}
