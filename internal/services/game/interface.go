package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hog/internal/services/game Service

// Service defines the interface for game operations
type Service interface {
	// PlayGame simulates a game between two strategies until one reaches the goal
	PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error)

	// TakeTurn plays a single turn for the player with Score
	TakeTurn(ctx context.Context, input *TakeTurnInput) (*TakeTurnOutput, error)
}
