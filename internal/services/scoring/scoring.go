// Package scoring applies the Hog turn rules: pig out, free bacon, hog
// wild and swine swap.
package scoring

import (
	"fmt"

	"github.com/KirkDiggler/hog/internal/dice"
)

const (
	// GoalScore is the score needed to win a game of Hog
	GoalScore = 100

	// MaxRolls is the most dice a player may roll in one turn
	MaxRolls = 10

	// PigOutScore is the turn score when any die shows a 1
	PigOutScore = 1

	// hogWildModulus selects four-sided dice when the combined score divides by it
	hogWildModulus = 7
)

// RollResult is the outcome of rolling a set of dice
type RollResult struct {
	// Outcomes holds every face rolled, in order
	Outcomes []int

	// Score is the turn score for those outcomes
	Score int

	// PigOut is true when any outcome was a 1
	PigOut bool
}

// TurnResult is the outcome of a full turn
type TurnResult struct {
	RollResult

	// FreeBacon is true when the player rolled zero dice
	FreeBacon bool
}

// ScoreTurn returns 1 if any outcome is a 1 and the sum of the outcomes
// otherwise.
func ScoreTurn(outcomes []int) (int, error) {
	if len(outcomes) == 0 {
		return 0, fmt.Errorf("%w: at least one outcome is required", ErrInvalidOutcome)
	}

	sum := 0
	pigOut := false
	for _, outcome := range outcomes {
		if outcome < 1 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidOutcome, outcome)
		}
		if outcome == 1 {
			pigOut = true
		}
		sum += outcome
	}

	if pigOut {
		return PigOutScore, nil
	}
	return sum, nil
}

// FreeBacon returns the score for rolling zero dice: one more than the
// largest digit of the opponent's score.
func FreeBacon(opponentScore int) int {
	if opponentScore < 0 {
		opponentScore = -opponentScore
	}
	largest := opponentScore % 10
	for n := opponentScore / 10; n > 0; n /= 10 {
		if d := n % 10; d > largest {
			largest = d
		}
	}
	return largest + 1
}

// IsHogWild reports whether the combined score forces four-sided dice
func IsHogWild(score, opponentScore int) bool {
	return (score+opponentScore)%hogWildModulus == 0
}

// SelectDice returns four sides when hog wild is in effect and six
// otherwise.
func SelectDice(score, opponentScore int) int {
	if IsHogWild(score, opponentScore) {
		return dice.FourSided
	}
	return dice.SixSided
}

// IsSwap reports whether one score is exactly double the other
func IsSwap(a, b int) bool {
	return max(a, b) == 2*min(a, b)
}

// RollDice rolls numRolls dice of the given sides and scores them. The
// roller is always called exactly numRolls times, even after a 1.
func RollDice(roller dice.Roller, numRolls, sides int) (*RollResult, error) {
	if roller == nil {
		return nil, ErrNilRoller
	}
	if numRolls < 1 {
		return nil, fmt.Errorf("%w: must roll at least once, got %d", ErrInvalidNumRolls, numRolls)
	}

	outcomes := make([]int, numRolls)
	for i := range outcomes {
		outcomes[i] = roller.Roll(sides)
	}

	score, err := ScoreTurn(outcomes)
	if err != nil {
		return nil, err
	}

	return &RollResult{
		Outcomes: outcomes,
		Score:    score,
		PigOut:   containsOne(outcomes),
	}, nil
}

// TakeTurn simulates a turn of numRolls dice, which may be zero for free
// bacon.
func TakeTurn(roller dice.Roller, numRolls, opponentScore, sides, goal int) (*TurnResult, error) {
	if numRolls < 0 {
		return nil, fmt.Errorf("%w: cannot roll a negative number of dice, got %d", ErrInvalidNumRolls, numRolls)
	}
	if numRolls > MaxRolls {
		return nil, fmt.Errorf("%w: cannot roll more than %d dice, got %d", ErrInvalidNumRolls, MaxRolls, numRolls)
	}
	if goal > 0 && opponentScore >= goal {
		return nil, ErrGameOver
	}

	if numRolls == 0 {
		return &TurnResult{
			RollResult: RollResult{
				Score: FreeBacon(opponentScore),
			},
			FreeBacon: true,
		}, nil
	}

	roll, err := RollDice(roller, numRolls, sides)
	if err != nil {
		return nil, err
	}
	return &TurnResult{RollResult: *roll}, nil
}

func containsOne(outcomes []int) bool {
	for _, o := range outcomes {
		if o == 1 {
			return true
		}
	}
	return false
}
