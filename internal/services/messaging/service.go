package messaging

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/models"
)

// Error types understood by GetErrorMessage
const (
	ErrorTypeInvalidScore    = "invalid_score"
	ErrorTypeUnknownStrategy = "unknown_strategy"
	ErrorTypeInvalidRolls    = "invalid_rolls"
	ErrorTypeGameOver        = "game_over"
)

// service implements the Service interface
type service struct {
	diceRoller dice.Roller
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.DiceRoller == nil {
		return nil, errors.New("dice roller cannot be nil")
	}

	return &service{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// EventFor returns the rule a turn message should describe. A swap outranks
// a pig out, which outranks free bacon and hog wild.
func EventFor(turn *models.Turn) Event {
	switch {
	case turn == nil:
		return EventRoll
	case turn.Swapped:
		return EventSwineSwap
	case turn.PigOut:
		return EventPigOut
	case turn.FreeBacon:
		return EventFreeBacon
	case turn.HogWild:
		return EventHogWild
	default:
		return EventRoll
	}
}

// GetTurnMessage returns commentary for a finished turn
func (s *service) GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error) {
	if input == nil || input.Turn == nil {
		return nil, errors.New("input and turn cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	name := input.PlayerName
	turn := input.Turn
	event := EventFor(turn)

	var titles, messages []string
	switch event {
	case EventSwineSwap:
		titles = []string{"Swine Swap!", "Pigs Trade Places!", "Swapped!"}
		switch tone {
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("%s scored %d and the scores swapped. Now %d to %d.", name, turn.Points, turn.Scores[0], turn.Scores[1]),
			}
		case ToneSarcastic:
			messages = []string{
				fmt.Sprintf("%s did the math. Or got lucky. Either way the scores swapped to %d-%d.", name, turn.Scores[0], turn.Scores[1]),
				fmt.Sprintf("Double or nothing, says %s. The pigs disagree: %d-%d.", name, turn.Scores[0], turn.Scores[1]),
			}
		default:
			messages = []string{
				fmt.Sprintf("One score was exactly double the other! %s's pig swaps pens: %d-%d.", name, turn.Scores[0], turn.Scores[1]),
				fmt.Sprintf("Oink oink, swap swap! %s now sits at %d against %d.", name, turn.Scores[0], turn.Scores[1]),
				fmt.Sprintf("%s pulled a swine swap. Somebody check the pigpen: %d-%d.", name, turn.Scores[0], turn.Scores[1]),
			}
		}

	case EventPigOut:
		titles = []string{"Pig Out!", "Snake Eye!", "Bust!"}
		switch tone {
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("%s rolled a 1 and scores 1 point.", name),
			}
		case ToneEncouraging:
			messages = []string{
				fmt.Sprintf("Tough luck, %s. One point is still a point!", name),
				fmt.Sprintf("The 1 got you, %s. Shake it off and roll again next turn.", name),
			}
		case ToneSarcastic:
			messages = []string{
				fmt.Sprintf("%s rolled %d dice and all they got was this lousy point.", name, turn.NumRolls),
				fmt.Sprintf("Bold strategy, %s. Let's see if it pays off. It did not.", name),
			}
		default:
			messages = []string{
				fmt.Sprintf("%s pigged out! All those dice and a measly 1 point.", name),
				fmt.Sprintf("A 1 shows up and %s's turn goes straight to the slop bucket.", name),
				fmt.Sprintf("%s rolled a 1. Oink.", name),
			}
		}

	case EventFreeBacon:
		titles = []string{"Free Bacon!", "Sizzle!", "Bacon Time!"}
		switch tone {
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("%s rolled no dice and takes %d points of free bacon.", name, turn.Points),
			}
		case ToneSarcastic:
			messages = []string{
				fmt.Sprintf("%s didn't even pick up the dice. %d points for doing nothing.", name, turn.Points),
			}
		default:
			messages = []string{
				fmt.Sprintf("%s skips the dice and helps themselves to %d points of free bacon!", name, turn.Points),
				fmt.Sprintf("Why roll when there's bacon? %s takes %d.", name, turn.Points),
				fmt.Sprintf("Sizzle sizzle! %s grabs %d points straight off the opponent's plate.", name, turn.Points),
			}
		}

	case EventHogWild:
		titles = []string{"Hog Wild!", "Four-Sided Frenzy!"}
		switch tone {
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("%s rolled %d four-sided dice for %d points.", name, turn.NumRolls, turn.Points),
			}
		default:
			messages = []string{
				fmt.Sprintf("The scores add up to a multiple of 7, so %s goes hog wild with four-sided dice: %d points!", name, turn.Points),
				fmt.Sprintf("Hog wild! %s squeezes %d points out of %d tiny dice.", name, turn.Points, turn.NumRolls),
			}
		}

	default:
		titles = []string{"Roll!", "Dice Down!"}
		switch tone {
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("%s rolled %s for %d points.", name, outcomes(turn.Outcomes), turn.Points),
			}
		case ToneEncouraging:
			messages = []string{
				fmt.Sprintf("Nice one, %s! %d points and no 1 in sight.", name, turn.Points),
			}
		default:
			messages = []string{
				fmt.Sprintf("%s rolled %s for a tidy %d points.", name, outcomes(turn.Outcomes), turn.Points),
				fmt.Sprintf("No pigs were harmed in this roll. %s banks %d.", name, turn.Points),
				fmt.Sprintf("%s rolls %d dice and walks away with %d points.", name, turn.NumRolls, turn.Points),
			}
		}
	}

	return &GetTurnMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
		Event:   event,
		Tone:    tone,
	}, nil
}

// GetGameOverMessage returns a message announcing the winner
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	titles := []string{"Game Over!", "Hog Heaven!", "Winner Winner, Pork Dinner!"}

	var messages []string
	switch input.Tone {
	case ToneNeutral:
		messages = []string{
			fmt.Sprintf("%s wins %d to %d.", input.WinnerName, input.WinnerScore, input.LoserScore),
		}
	case ToneSarcastic:
		messages = []string{
			fmt.Sprintf("%s wins %d to %d. %s is still looking for a 1-free roll.", input.WinnerName, input.WinnerScore, input.LoserScore, input.LoserName),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s brings home the bacon, %d to %d!", input.WinnerName, input.WinnerScore, input.LoserScore),
			fmt.Sprintf("%s is the top hog with %d! %s finishes on %d.", input.WinnerName, input.WinnerScore, input.LoserName, input.LoserScore),
			fmt.Sprintf("That's a wrap. %s beats %s %d-%d.", input.WinnerName, input.LoserName, input.WinnerScore, input.LoserScore),
		}
	}

	return &GetGameOverMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetAdviceMessage returns a message recommending a number of dice
func (s *service) GetAdviceMessage(ctx context.Context, input *GetAdviceMessageInput) (*GetAdviceMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch {
	case input.NumRolls == 0:
		message = fmt.Sprintf("At %d to %d, take the free bacon. Expected margin change: %+.2f.",
			input.Score, input.OpponentScore, input.Value)
	case input.Dice == dice.FourSided:
		message = fmt.Sprintf("At %d to %d you're hog wild. Roll %d four-sided dice. Expected margin change: %+.2f.",
			input.Score, input.OpponentScore, input.NumRolls, input.Value)
	default:
		message = fmt.Sprintf("At %d to %d, roll %d dice. Expected margin change: %+.2f.",
			input.Score, input.OpponentScore, input.NumRolls, input.Value)
	}

	return &GetAdviceMessageOutput{
		Message: message,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeInvalidScore:
		messages = []string{
			"Scores have to be between 0 and 99. This isn't basketball.",
			"That score doesn't fit in the pigpen. Try 0 to 99.",
		}
	case ErrorTypeUnknownStrategy:
		messages = []string{
			"Never heard of that strategy. Try always_roll:N, bacon, swap, final, lookahead or hybrid.",
			"That strategy isn't on the menu. Pick a real one!",
		}
	case ErrorTypeInvalidRolls:
		messages = []string{
			"You can roll between 0 and 10 dice. No more, no less.",
			"Ten dice is the limit. The pigs can only count so high.",
		}
	case ErrorTypeGameOver:
		messages = []string{
			"Somebody already reached the goal. Start a new game!",
			"This game is over. The pigs have gone home.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again later.",
			"Oops! The dice got confused. Try again.",
			"The pigs knocked over the server. Try again later.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// pick returns one of options using the dice roller
func (s *service) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	i := s.diceRoller.Roll(len(options)) - 1
	if i < 0 || i >= len(options) {
		i = 0
	}
	return options[i]
}

func outcomes(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
