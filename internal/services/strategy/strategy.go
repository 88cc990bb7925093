// Package strategy provides Hog strategies. A strategy takes the current
// player's score and the opponent's score and returns how many dice to
// roll, where zero means free bacon.
package strategy

import (
	"log"

	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/probability"
	"github.com/KirkDiggler/hog/internal/services/scoring"
)

// Strategy chooses a number of dice for the given scores
type Strategy func(score, opponentScore int) int

const (
	// DefaultMargin is the free bacon score worth taking in bacon and swap
	DefaultMargin = 8

	// DefaultNumRolls is the fallback number of dice
	DefaultNumRolls = 5
)

// AlwaysRoll returns a strategy that always rolls n dice
func AlwaysRoll(n int) Strategy {
	return func(score, opponentScore int) int {
		return n
	}
}

// Bacon rolls 0 dice if that gives at least margin points, and numRolls
// otherwise.
func Bacon(margin, numRolls int) Strategy {
	return func(score, opponentScore int) int {
		if scoring.FreeBacon(opponentScore) >= margin {
			return 0
		}
		return numRolls
	}
}

// SwapCheck returns the score the player would end with if free bacon
// triggered a swine swap.
func SwapCheck(score, opponentScore int) (int, bool) {
	after := score + scoring.FreeBacon(opponentScore)
	if scoring.IsSwap(after, opponentScore) {
		return opponentScore, true
	}
	return 0, false
}

// goodSwap reports whether free bacon would swap into a higher score
func goodSwap(score, opponentScore int) bool {
	swapped, ok := SwapCheck(score, opponentScore)
	return ok && swapped > score+scoring.FreeBacon(opponentScore)
}

// Swap rolls 0 dice when that causes a beneficial swap, rolls numRolls
// when it would cause a harmful one, and otherwise behaves like Bacon with
// a strict margin.
func Swap(margin, numRolls int, trace *log.Logger) Strategy {
	return func(score, opponentScore int) int {
		bacon := scoring.FreeBacon(opponentScore)
		swapped, swaps := SwapCheck(score, opponentScore)
		tracef(trace, "swap: bacon=%d swapped=%d swaps=%t", bacon, swapped, swaps)

		switch {
		case swaps && swapped > score+bacon:
			tracef(trace, "swap: free bacon swaps into the lead")
			return 0
		case !swaps && bacon > margin:
			tracef(trace, "swap: free bacon beats margin %d", margin)
			return 0
		default:
			tracef(trace, "swap: rolling %d", numRolls)
			return numRolls
		}
	}
}

// Final takes the expected-value-maximizing roll for the current die and
// switches to free bacon when it swaps into the lead, hands the opponent
// four-sided dice, or beats the expected roll by a margin that shrinks as
// the player falls behind.
func Final(cache *probability.Cache, trace *log.Logger) (Strategy, error) {
	if cache == nil {
		cache = probability.NewCache()
	}
	fourRolls, fourValue, err := BestRoll(cache, dice.FourSided)
	if err != nil {
		return nil, err
	}
	sixRolls, sixValue, err := BestRoll(cache, dice.SixSided)
	if err != nil {
		return nil, err
	}

	return func(score, opponentScore int) int {
		threshold := 0
		if score < opponentScore {
			threshold = 1 + (opponentScore-score)/10
		}

		defaultRoll, defaultValue := sixRolls, sixValue
		if scoring.IsHogWild(score, opponentScore) {
			defaultRoll, defaultValue = fourRolls, fourValue
		}

		bacon := scoring.FreeBacon(opponentScore)
		after := score + bacon
		if goodSwap(score, opponentScore) ||
			scoring.IsHogWild(after, opponentScore) ||
			float64(bacon) > defaultValue+float64(threshold) {
			tracef(trace, "final: free bacon for %d (default %d dice worth %.2f)", bacon, defaultRoll, defaultValue)
			return 0
		}
		return defaultRoll
	}, nil
}

// Lookahead rolls whichever number of dice maximizes the margin gained
// this turn less the opponent's expected reply.
func Lookahead(evaluator *Evaluator, trace *log.Logger) Strategy {
	return func(score, opponentScore int) int {
		sides := scoring.SelectDice(score, opponentScore)
		n, v, err := evaluator.BestFutureRoll(sides, score, opponentScore)
		if err != nil {
			tracef(trace, "lookahead: %v, rolling %d", err, DefaultNumRolls)
			return DefaultNumRolls
		}
		tracef(trace, "lookahead: %d dice worth %.3f at %d-%d", n, v, score, opponentScore)
		return n
	}
}

// Hybrid follows Lookahead but takes free bacon when it swaps into the
// lead, forces hog wild on the opponent, or beats the chosen roll's
// expected value.
func Hybrid(evaluator *Evaluator, trace *log.Logger) Strategy {
	lookahead := Lookahead(evaluator, trace)
	return func(score, opponentScore int) int {
		n := lookahead(score, opponentScore)
		if n == 0 {
			return 0
		}

		expected, err := evaluator.AverageValue(n, scoring.SelectDice(score, opponentScore), score, opponentScore)
		if err != nil {
			tracef(trace, "hybrid: %v", err)
			return n
		}

		threshold := 0.0
		if opponentScore >= score {
			threshold = -2
		}

		bacon := scoring.FreeBacon(opponentScore)
		if goodSwap(score, opponentScore) ||
			scoring.IsHogWild(score+bacon, opponentScore) ||
			float64(bacon) > expected+threshold {
			tracef(trace, "hybrid: free bacon for %d over %d dice worth %.2f", bacon, n, expected)
			return 0
		}
		return n
	}
}

func tracef(trace *log.Logger, format string, args ...any) {
	if trace == nil {
		return
	}
	trace.Printf(format, args...)
}
