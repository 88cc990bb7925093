package probability

import (
	"fmt"
	"math/big"
	"sort"
)

// BustTotal is the turn total awarded when any die shows a 1
const BustTotal = 1

// Distribution maps each achievable turn total to its probability.
// Distributions handed out by Calculate and Cache must not be modified.
type Distribution map[int]float64

// Calculate returns the probability of every turn total in 1..rolls*dice
// when rolling rolls dice with the given number of sides. Totals that
// cannot occur are present with probability zero.
func Calculate(rolls, dice int) (Distribution, error) {
	if dice < 2 {
		return nil, fmt.Errorf("%w: dice must have at least 2 sides, got %d", ErrInvalidArgument, dice)
	}
	if rolls < 0 {
		return nil, fmt.Errorf("%w: rolls cannot be negative, got %d", ErrInvalidArgument, rolls)
	}

	top := rolls * dice
	dist := make(Distribution, top)
	for total := 1; total <= top; total++ {
		dist[total] = 0
	}
	if rolls == 0 {
		return dist, nil
	}

	dist[BustTotal] = BustProbability(rolls, dice)

	// Faces 2..dice shifted down by one give a triangle of width dice-1
	triangle, err := Build(dice-1, rolls)
	if err != nil {
		return nil, err
	}
	outcomes := new(big.Int).Exp(big.NewInt(int64(dice)), big.NewInt(int64(rolls)), nil)
	for k, count := range triangle.LastRow() {
		p, _ := new(big.Rat).SetFrac(count, outcomes).Float64()
		dist[top-k] = p
	}

	return dist, nil
}

// BustProbability returns the chance that at least one of rolls dice
// shows a 1. Each extra roll busts if it shows a 1 or an earlier roll
// already did.
func BustProbability(rolls, dice int) float64 {
	if rolls < 1 || dice < 1 {
		return 0
	}
	d := float64(dice)
	w := 1 / d
	for i := 1; i < rolls; i++ {
		w = ((d-1)*w + 1) / d
	}
	return w
}

// Totals returns the keys in ascending order
func (d Distribution) Totals() []int {
	totals := make([]int, 0, len(d))
	for total := range d {
		totals = append(totals, total)
	}
	sort.Ints(totals)
	return totals
}

// Sum returns the total probability mass
func (d Distribution) Sum() float64 {
	var sum float64
	for _, total := range d.Totals() {
		sum += d[total]
	}
	return sum
}

// Expected returns the expected turn total
func (d Distribution) Expected() float64 {
	var expected float64
	for _, total := range d.Totals() {
		expected += float64(total) * d[total]
	}
	return expected
}

// Fold returns the expectation of value over the distribution
func (d Distribution) Fold(value func(total int) float64) float64 {
	var sum float64
	for _, total := range d.Totals() {
		p := d[total]
		if p == 0 {
			continue
		}
		sum += value(total) * p
	}
	return sum
}
