package game

import (
	"log"

	"github.com/KirkDiggler/hog/internal/common/clock"
	"github.com/KirkDiggler/hog/internal/common/uuid"
	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/models"
	"github.com/KirkDiggler/hog/internal/services/strategy"
)

// Config holds configuration for the game service
type Config struct {
	// GoalScore is the default score needed to win
	GoalScore int

	// Trace receives a line per turn when set
	Trace *log.Logger

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// Player pairs a strategy with the name it is reported under
type Player struct {
	// Name labels the strategy in results
	Name string

	// Strategy chooses the number of dice each turn
	Strategy strategy.Strategy
}

// PlayGameInput contains parameters for playing a game
type PlayGameInput struct {
	// Players holds the first and second player
	Players [2]Player

	// Goal overrides the configured goal score when positive
	Goal int

	// RecordTurns keeps the full turn log on the returned game
	RecordTurns bool
}

// PlayGameOutput contains the result of playing a game
type PlayGameOutput struct {
	// Game is the completed game
	Game *models.Game
}

// TakeTurnInput contains parameters for a single turn
type TakeTurnInput struct {
	// Score is the current player's score
	Score int

	// OpponentScore is the other player's score
	OpponentScore int

	// NumRolls is the number of dice to roll, zero for free bacon
	NumRolls int

	// Goal overrides the configured goal score when positive
	Goal int
}

// TakeTurnOutput contains the result of a single turn
type TakeTurnOutput struct {
	// Turn describes what happened, with Scores[0] the current player
	Turn *models.Turn

	// Score is the current player's score after the turn and any swap
	Score int

	// OpponentScore is the other player's score after the turn and any swap
	OpponentScore int
}
