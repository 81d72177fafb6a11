package treemap

import (
	"golang.org/x/exp/constraints"

	"github.com/matzehuels/treemap/pkg/geom"
)

// Slice partitions rect vertically: items become full-width horizontal bands
// stacked top to bottom in input order, each band's height proportional to the
// item's share of the total weight.
//
// This is one half of the classic slice-and-dice layout. Callers that want
// the alternating variant call Slice at even recursion depths and [Dice] at
// odd ones (or vice versa). Skewed weights produce arbitrarily thin bands;
// that is inherent to the algorithm, not a defect.
func Slice[T any, N constraints.Float](rect geom.Rect[N], items []T, size func(*T) N, setRect func(*T, geom.Rect[N])) error {
	return instrument(algSlice, len(items), func() error {
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
		sliceStrips(rect, items, func(it *T) N { return size(it) * k }, setRect)
		return nil
	})
}

// Dice partitions rect horizontally: items become full-height vertical bands
// laid out left to right in input order, each band's width proportional to the
// item's share of the total weight.
func Dice[T any, N constraints.Float](rect geom.Rect[N], items []T, size func(*T) N, setRect func(*T, geom.Rect[N])) error {
	return instrument(algDice, len(items), func() error {
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
		diceStrips(rect, items, func(it *T) N { return size(it) * k }, setRect)
		return nil
	})
}
