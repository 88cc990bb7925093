package scoring

// ScoringError is a custom error type for turn scoring errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidOutcome  ScoringError = "invalid roll outcome"
	ErrInvalidNumRolls ScoringError = "invalid number of rolls"
	ErrGameOver        ScoringError = "the game should be over"
	ErrNilRoller       ScoringError = "dice roller cannot be nil"
)
