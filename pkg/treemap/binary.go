package treemap

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/matzehuels/treemap/pkg/geom"
)

// Binary partitions rect by recursive bisection: the item range is split into
// two contiguous sub-ranges of near-equal weight, rect is cut along its longer
// axis with each side's area proportional to its sub-range weight, and both
// sides recurse. Single-item ranges receive the remaining rectangle whole.
//
// The split index is the first position whose cumulative weight exceeds half
// the range total (clamped to at least one item per side). Output quality is
// best when items are sorted descending by weight, but any order is accepted.
func Binary[T any, N constraints.Float](rect geom.Rect[N], items []T, size func(*T) N, setRect func(*T, geom.Rect[N])) error {
	return instrument(algBinary, len(items), func() error {
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
		sums := make([]N, len(items))
		var acc N
		for i := range items {
			acc += size(&items[i])
			sums[i] = acc
		}
		binaryRange(rect, items, setRect, sums, 0, total)
		return nil
	})
}

// binaryRange lays out items[0:len] inside rect. sums holds cumulative weights
// over the original slice; offset is the cumulative weight before this range
// and value the weight of the range itself.
func binaryRange[T any, N constraints.Float](rect geom.Rect[N], items []T, setRect func(*T, geom.Rect[N]), sums []N, offset, value N) {
	if len(items) == 0 {
		return
	}
	if value == 0 {
		// A weightless range still owns its (degenerate) rectangle; hand it
		// to every item so zero-weight items end up with zero-area output.
		for i := range items {
			setRect(&items[i], rect)
		}
		return
	}
	if len(items) == 1 {
		setRect(&items[0], rect)
		return
	}

	target := value/2 + offset
	mid := sort.Search(len(sums), func(i int) bool { return sums[i] > target })
	if mid == 0 {
		mid = 1
	}
	left := sums[mid-1] - offset
	right := value - left

	var lrect, rrect geom.Rect[N]
	if rect.W > rect.H {
		xe := rect.X + rect.W
		xm := (rect.X*right + xe*left) / value
		lrect, rrect = rect.CutX(xm)
	} else {
		ye := rect.Y + rect.H
		ym := (rect.Y*right + ye*left) / value
		lrect, rrect = rect.CutY(ym)
	}

	if mid == 1 {
		setRect(&items[0], lrect)
	} else {
		binaryRange(lrect, items[:mid], setRect, sums[:mid], offset, left)
	}
	ritems := items[mid:]
	if len(ritems) == 1 {
		setRect(&ritems[0], rrect)
	} else if len(ritems) > 0 {
		binaryRange(rrect, ritems, setRect, sums[mid:], sums[mid-1], right)
	}
}
