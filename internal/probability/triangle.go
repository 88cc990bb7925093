// Package probability computes exact turn-total distributions for Hog.
//
// Non-busting rolls are counted with a generalized Pascal's triangle in
// which every entry is the sum of the width entries above it. Busting
// rolls (any face of 1) are folded into the total 1.
package probability

import (
	"fmt"
	"math/big"
)

// Triangle is a generalized Pascal's triangle. Row 0 holds width ones and
// each following row is width-1 entries longer than the one above it.
// Entries are exact; they pass 2^63 after a few dozen rows.
type Triangle struct {
	width int
	rows  [][]*big.Int
}

// Build generates rowCount rows of a generalized Pascal's triangle whose
// first row is width ones. Each entry is the sum of the width entries
// above it.
func Build(width, rowCount int) (*Triangle, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalidArgument, width)
	}
	if rowCount < 1 {
		return nil, fmt.Errorf("%w: row count must be at least 1, got %d", ErrInvalidArgument, rowCount)
	}

	first := make([]*big.Int, width)
	for i := range first {
		first[i] = big.NewInt(1)
	}

	rows := make([][]*big.Int, 0, rowCount)
	rows = append(rows, first)
	for i := 1; i < rowCount; i++ {
		rows = append(rows, nextRow(rows[i-1], width))
	}

	return &Triangle{
		width: width,
		rows:  rows,
	}, nil
}

// nextRow derives the row below prev
func nextRow(prev []*big.Int, width int) []*big.Int {
	row := make([]*big.Int, len(prev)+width-1)
	for j := range row {
		sum := new(big.Int)
		for k := 0; k < width; k++ {
			if v := entry(prev, j-k); v != nil {
				sum.Add(sum, v)
			}
		}
		row[j] = sum
	}
	return row
}

// entry reads row[index], or nil when index is out of range
func entry(row []*big.Int, index int) *big.Int {
	if index < 0 || index >= len(row) {
		return nil
	}
	return row[index]
}

// Width returns the width of the first row
func (t *Triangle) Width() int {
	return t.width
}

// Len returns the number of rows
func (t *Triangle) Len() int {
	return len(t.rows)
}

// Entry returns a copy of the value at (row, index), or zero when either
// index is out of range.
func (t *Triangle) Entry(row, index int) *big.Int {
	if row < 0 || row >= len(t.rows) {
		return new(big.Int)
	}
	v := entry(t.rows[row], index)
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// Row returns a copy of row i, or nil when i is out of range
func (t *Triangle) Row(i int) []*big.Int {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	out := make([]*big.Int, len(t.rows[i]))
	for j, v := range t.rows[i] {
		out[j] = new(big.Int).Set(v)
	}
	return out
}

// LastRow returns a copy of the final row
func (t *Triangle) LastRow() []*big.Int {
	return t.Row(len(t.rows) - 1)
}
