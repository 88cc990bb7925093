package messaging

import (
	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/models"
)

// Event is the rule a turn message is about
type Event string

const (
	// EventPigOut is a turn where a 1 was rolled
	EventPigOut Event = "pig_out"

	// EventFreeBacon is a turn where no dice were rolled
	EventFreeBacon Event = "free_bacon"

	// EventSwineSwap is a turn that ended with the scores swapped
	EventSwineSwap Event = "swine_swap"

	// EventHogWild is a turn rolled with four-sided dice
	EventHogWild Event = "hog_wild"

	// EventWin is the end of a game
	EventWin Event = "win"

	// EventRoll is any other turn
	EventRoll Event = "roll"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// Config contains configuration for the messaging service
type Config struct {
	// DiceRoller picks between equivalent messages
	DiceRoller dice.Roller
}

// GetTurnMessageInput contains parameters for a turn message
type GetTurnMessageInput struct {
	// PlayerName is the name of the player who took the turn
	PlayerName string

	// Turn is the finished turn
	Turn *models.Turn

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetTurnMessageOutput contains the turn message
type GetTurnMessageOutput struct {
	Title   string
	Message string

	// Event is the rule the message describes
	Event Event

	// Tone is the tone of the message
	Tone MessageTone
}

// GetGameOverMessageInput contains parameters for a game over message
type GetGameOverMessageInput struct {
	WinnerName  string
	LoserName   string
	WinnerScore int
	LoserScore  int
	Tone        MessageTone
}

// GetGameOverMessageOutput contains the game over message
type GetGameOverMessageOutput struct {
	Title   string
	Message string
}

// GetAdviceMessageInput contains parameters for an advice message
type GetAdviceMessageInput struct {
	Score         int
	OpponentScore int

	// NumRolls is the recommended number of dice
	NumRolls int

	// Dice is the die in play for this score pair
	Dice int

	// Value is the expected margin gain of the recommendation
	Value float64
}

// GetAdviceMessageOutput contains the advice message
type GetAdviceMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}
