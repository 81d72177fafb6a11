package treemap

import (
	"golang.org/x/exp/constraints"

	"github.com/matzehuels/treemap/pkg/errors"
	"github.com/matzehuels/treemap/pkg/geom"
)

// Squarify partitions rect with the squarified treemap algorithm of Bruls,
// Huizing and van Wijk. Items are consumed front to back into rows laid out
// along the shorter side of the remaining rectangle; a row keeps growing while
// the worst aspect ratio in it does not get worse, and is flushed otherwise.
//
// Precondition: items sorted descending by weight. The function does not check
// this (sorting is the caller's call); [CheckDescending] provides an opt-in
// verification.
//
// The grow-or-flush boundary is strict: a candidate item that leaves the worst
// ratio exactly unchanged still joins the current row.
func Squarify[T any, N constraints.Float](rect geom.Rect[N], items []T, size func(*T) N, setRect func(*T, geom.Rect[N])) error {
	return instrument(algSquarify, len(items), func() error {
		if len(items) == 0 {
			return nil
		}
		total, err := validateWeights(items, size)
		if err != nil {
			return err
		}
		if total == 0 || rect.Area() == 0 {
			assignZero(rect, items, setRect)
			return nil
		}
		k := rect.Area() / total
		squarifyRows(rect, items, func(it *T) N { return size(it) * k }, setRect)
		return nil
	})
}

// squarifyRows is the row loop. Sizes are assumed scaled to the rect area.
func squarifyRows[T any, N constraints.Float](rect geom.Rect[N], items []T, size func(*T) N, setRect func(*T, geom.Rect[N])) {
	for len(items) > 0 {
		isWide := rect.W > rect.H
		var side, splitSide N
		if isWide {
			side, splitSide = rect.H, rect.W
		} else {
			side, splitSide = rect.W, rect.H
		}
		sideSq := side * side

		// Grow the row until adding the next item would worsen its worst
		// aspect ratio. Ratios are compared by cross-multiplication; the
		// initial (1, 0) pair compares as +Inf, so the first item always
		// joins. If the loop runs out of items, the row takes the whole
		// remaining rectangle.
		var sizeTotal0, denom0 N
		numer0 := N(1)
		splitIdx := len(items)
		for i := range items {
			sizeItem := size(&items[i])
			sizeTotal1 := sizeTotal0 + sizeItem
			numer1, denom1 := ratio(sideSq, sizeTotal1, sizeItem)
			if numer1*denom0 > numer0*denom1 {
				splitSide = sizeTotal0 / side
				splitIdx = i
				break
			}
			sizeTotal0, numer0, denom0 = sizeTotal1, numer1, denom1
		}

		row := items[:splitIdx]
		items = items[splitIdx:]
		var strip geom.Rect[N]
		if isWide {
			strip, rect = rect.SplitX(splitSide)
			sliceStrips(strip, row, size, setRect)
		} else {
			strip, rect = rect.SplitY(splitSide)
			diceStrips(strip, row, size, setRect)
		}
	}
}

// CheckDescending verifies the Squarify input precondition: weights must not
// increase along the slice. It returns a structured UNSORTED_INPUT error
// naming the first offending position, or nil.
func CheckDescending[T any, N constraints.Float](items []T, size func(*T) N) error {
	for i := 1; i < len(items); i++ {
		if size(&items[i]) > size(&items[i-1]) {
			return errors.New(errors.ErrCodeUnsortedInput,
				"item %d outweighs item %d; squarify expects weights sorted descending", i, i-1)
		}
	}
	return nil
}
