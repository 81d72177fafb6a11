package treemap

import (
	"time"

	"golang.org/x/exp/constraints"

	"github.com/matzehuels/treemap/pkg/errors"
	"github.com/matzehuels/treemap/pkg/geom"
	"github.com/matzehuels/treemap/pkg/observability"
)

// Algorithm names reported through observability hooks.
const (
	algSlice    = "slice"
	algDice     = "dice"
	algBinary   = "binary"
	algSquarify = "squarify"
	algOrdered  = "ordered"
)

// instrument runs fn between OnLayoutStart and OnLayoutComplete hook calls.
func instrument(algorithm string, itemCount int, fn func() error) error {
	start := time.Now()
	observability.Layout().OnLayoutStart(algorithm, itemCount)
	err := fn()
	observability.Layout().OnLayoutComplete(algorithm, itemCount, time.Since(start), err)
	return err
}

// validateWeights checks the weight precondition for every item: non-negative
// and finite. It returns the total weight alongside so callers scan only once.
func validateWeights[T any, N constraints.Float](items []T, size func(*T) N) (N, error) {
	var total N
	for i := range items {
		w := size(&items[i])
		if err := errors.ValidateWeight(i, float64(w)); err != nil {
			return 0, err
		}
		total += w
	}
	return total, nil
}

// assignZero assigns a zero-area rectangle at the container origin to every
// item. Used for the degenerate cases: total weight zero or zero-area
// container.
func assignZero[T any, N constraints.Float](rect geom.Rect[N], items []T, setRect func(*T, geom.Rect[N])) {
	zero := geom.Rect[N]{X: rect.X, Y: rect.Y}
	for i := range items {
		setRect(&items[i], zero)
	}
}

// ratio computes the aspect ratio of an item laid out in a row, as the
// ordered pair (numerator, denominator) with numerator >= denominator.
// Keeping the ratio as a pair lets callers compare two ratios by
// cross-multiplication, avoiding divisions in the hot loop.
//
// sizeItem is the item weight, sizeTotal the cumulative row weight, and
// sideSq the squared length of the row's fixed side.
func ratio[N constraints.Float](sideSq, sizeTotal, sizeItem N) (N, N) {
	a := sizeTotal * sizeTotal
	b := sideSq * sizeItem
	if a >= b {
		return a, b
	}
	return b, a
}

// sliceStrips stacks items vertically inside rect, each item's height
// proportional to its size over the rect width. Sizes are assumed already
// scaled so that they sum to the rect area; the last item absorbs the
// remaining height so the strip is covered exactly.
func sliceStrips[T any, N constraints.Float](rect geom.Rect[N], items []T, size func(*T) N, setRect func(*T, geom.Rect[N])) {
	y := rect.Y
	for i := range items {
		var h N
		if i < len(items)-1 {
			if rect.W > 0 {
				h = size(&items[i]) / rect.W
			}
		} else {
			h = rect.H - (y - rect.Y)
		}
		r := geom.Rect[N]{X: rect.X, Y: y, W: rect.W, H: h}
		y += r.H
		setRect(&items[i], r)
	}
}

// diceStrips lays items out left to right inside rect, each item's width
// proportional to its size over the rect height. The last item absorbs the
// remaining width.
func diceStrips[T any, N constraints.Float](rect geom.Rect[N], items []T, size func(*T) N, setRect func(*T, geom.Rect[N])) {
	x := rect.X
	for i := range items {
		var w N
		if i < len(items)-1 {
			if rect.H > 0 {
				w = size(&items[i]) / rect.H
			}
		} else {
			w = rect.W - (x - rect.X)
		}
		r := geom.Rect[N]{X: x, Y: rect.Y, W: w, H: rect.H}
		x += r.W
		setRect(&items[i], r)
	}
}
