package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hog/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetTurnMessage returns commentary for a finished turn
	GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error)

	// GetGameOverMessage returns a message announcing the winner
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetAdviceMessage returns a message recommending a number of dice
	GetAdviceMessage(ctx context.Context, input *GetAdviceMessageInput) (*GetAdviceMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
