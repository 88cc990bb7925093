package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidStrategyChoice GameError = "strategy chose an invalid number of dice"
	ErrNilStrategy           GameError = "strategy cannot be nil"
	ErrInvalidGoal           GameError = "goal score must be positive"
	ErrGameOver              GameError = "game is already over"
	ErrNilConfig             GameError = "config cannot be nil"
	ErrNilDiceRoller         GameError = "dice roller cannot be nil"
	ErrNilClock              GameError = "clock cannot be nil"
	ErrNilUUIDGenerator      GameError = "UUID generator cannot be nil"
)
