package strategy

import (
	"sync"

	"github.com/KirkDiggler/hog/internal/probability"
	"github.com/KirkDiggler/hog/internal/services/scoring"
)

// responseRolls is the number of dice the opponent is assumed to roll
// when estimating their reply to a turn.
const responseRolls = 5

// ValueKey identifies an expected-value table entry
type ValueKey struct {
	NumRolls      int
	Dice          int
	Score         int
	OpponentScore int
}

// Evaluator values turn outcomes by the change they make to the score
// margin, folding exact turn-total distributions from a probability cache.
// AverageFutureValue results are memoized.
type Evaluator struct {
	cache *probability.Cache

	mu     sync.RWMutex
	values map[ValueKey]float64
}

// NewEvaluator creates an evaluator backed by cache
func NewEvaluator(cache *probability.Cache) *Evaluator {
	if cache == nil {
		cache = probability.NewCache()
	}
	return &Evaluator{
		cache:  cache,
		values: make(map[ValueKey]float64),
	}
}

// Cache returns the distribution cache backing the evaluator
func (e *Evaluator) Cache() *probability.Cache {
	return e.cache
}

// Apply returns both scores after adding points to score, with the swine
// swap applied.
func Apply(points, score, opponentScore int) (int, int) {
	mine := score + points
	if scoring.IsSwap(mine, opponentScore) {
		return opponentScore, mine
	}
	return mine, opponentScore
}

// Value returns how much scoring points moves the margin between score
// and opponentScore. Without a swap this is just points.
func (e *Evaluator) Value(points, score, opponentScore int) float64 {
	mine, theirs := Apply(points, score, opponentScore)
	return float64((mine - theirs) - (score - opponentScore))
}

// AverageValue returns the expected Value of rolling numRolls dice
func (e *Evaluator) AverageValue(numRolls, dice, score, opponentScore int) (float64, error) {
	if numRolls == 0 {
		return e.Value(scoring.FreeBacon(opponentScore), score, opponentScore), nil
	}

	dist, err := e.cache.Get(numRolls, dice)
	if err != nil {
		return 0, err
	}
	return dist.Fold(func(total int) float64 {
		return e.Value(total, score, opponentScore)
	}), nil
}

// FutureValue returns the margin gained by scoring points, less the
// opponent's expected reply with five dice.
func (e *Evaluator) FutureValue(points, score, opponentScore int) (float64, error) {
	present := e.Value(points, score, opponentScore)
	mine, theirs := Apply(points, score, opponentScore)

	reply, err := e.AverageValue(responseRolls, scoring.SelectDice(theirs, mine), theirs, mine)
	if err != nil {
		return 0, err
	}
	return present - reply, nil
}

// AverageFutureValue returns the expected FutureValue of rolling numRolls
// dice.
func (e *Evaluator) AverageFutureValue(numRolls, dice, score, opponentScore int) (float64, error) {
	key := ValueKey{NumRolls: numRolls, Dice: dice, Score: score, OpponentScore: opponentScore}

	e.mu.RLock()
	v, ok := e.values[key]
	e.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err := e.averageFutureValue(numRolls, dice, score, opponentScore)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	e.values[key] = v
	e.mu.Unlock()
	return v, nil
}

func (e *Evaluator) averageFutureValue(numRolls, dice, score, opponentScore int) (float64, error) {
	if numRolls == 0 {
		return e.FutureValue(scoring.FreeBacon(opponentScore), score, opponentScore)
	}

	dist, err := e.cache.Get(numRolls, dice)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, total := range dist.Totals() {
		p := dist[total]
		if p == 0 {
			continue
		}
		fv, err := e.FutureValue(total, score, opponentScore)
		if err != nil {
			return 0, err
		}
		sum += fv * p
	}
	return sum, nil
}

// BestFutureRoll returns the number of dice in 0..scoring.MaxRolls with the
// highest AverageFutureValue. Ties go to fewer dice.
func (e *Evaluator) BestFutureRoll(dice, score, opponentScore int) (int, float64, error) {
	best, bestValue := 0, 0.0
	for n := 0; n <= scoring.MaxRolls; n++ {
		v, err := e.AverageFutureValue(n, dice, score, opponentScore)
		if err != nil {
			return 0, 0, err
		}
		if n == 0 || v > bestValue {
			best, bestValue = n, v
		}
	}
	return best, bestValue, nil
}

// Len returns the number of memoized table entries
func (e *Evaluator) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.values)
}

// Values returns a copy of the memoized table
func (e *Evaluator) Values() map[ValueKey]float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[ValueKey]float64, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// LoadValues adds previously computed table entries
func (e *Evaluator) LoadValues(values map[ValueKey]float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for k, v := range values {
		e.values[k] = v
	}
}

// BestRoll returns the number of dice in 1..scoring.MaxRolls with the
// highest expected turn total for the given die, and that total.
func BestRoll(cache *probability.Cache, dice int) (int, float64, error) {
	best, bestExpected := 0, 0.0
	for n := 1; n <= scoring.MaxRolls; n++ {
		dist, err := cache.Get(n, dice)
		if err != nil {
			return 0, 0, err
		}
		if expected := dist.Expected(); expected > bestExpected {
			best, bestExpected = n, expected
		}
	}
	return best, bestExpected, nil
}
