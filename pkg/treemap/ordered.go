package treemap

import (
	"golang.org/x/exp/constraints"

	"github.com/matzehuels/treemap/pkg/geom"
)

// PivotStrategy selects how OrderedPivot picks the pivot item of a range.
type PivotStrategy int

const (
	// PivotByMiddle picks the item at which the cumulative weight of the
	// range first reaches half the range total.
	PivotByMiddle PivotStrategy = iota

	// PivotBySize picks the first item of maximum weight in the range.
	PivotBySize
)

// String returns the strategy name.
func (s PivotStrategy) String() string {
	switch s {
	case PivotByMiddle:
		return "middle"
	case PivotBySize:
		return "size"
	}
	return "unknown"
}

// OrderedPivot partitions rect while preserving the caller's item order,
// approximating squarified aspect-ratio quality. Each range is anchored on a
// pivot item chosen by strategy: the items before the pivot form one strip,
// the pivot plus a best-ratio prefix of the items after it share a second
// strip (pivot on top), and the rest of the items take the remainder. Each
// group recurses.
//
// Because groups keep their relative order, item rectangles stay visually
// stable when weights change between layouts.
func OrderedPivot[T any, N constraints.Float](rect geom.Rect[N], items []T, size func(*T) N, setRect func(*T, geom.Rect[N]), strategy PivotStrategy) error {
	return instrument(algOrdered, len(items), func() error {
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
		scaled := func(it *T) N { return size(it) * k }

		var pivot func([]T) int
		switch strategy {
		case PivotBySize:
			pivot = func(rng []T) int {
				best, bestSize := 0, N(0)
				for i := range rng {
					if s := scaled(&rng[i]); s > bestSize {
						best, bestSize = i, s
					}
				}
				return best
			}
		default: // PivotByMiddle
			pivot = func(rng []T) int {
				var rngTotal N
				for i := range rng {
					rngTotal += scaled(&rng[i])
				}
				half := rngTotal / 2
				var cum N
				for i := range rng {
					cum += scaled(&rng[i])
					if cum >= half {
						return i
					}
				}
				return len(rng) - 1
			}
		}

		orderedRange(rect, items, scaled, setRect, pivot)
		return nil
	})
}

// orderedRange lays out one range. The pivot splits items into l1 (before),
// the pivot itself, and the rest; the rest is split again at the index giving
// the pivot rectangle its best aspect ratio, yielding regions
//
//	+----+---------+----+
//	|    |  pivot  |    |      (wide case; the tall case is transposed)
//	| l1 +---------+ l3 |
//	|    |   l2    |    |
//	+----+---------+----+
//
// sized by the respective weight sums.
func orderedRange[T any, N constraints.Float](rect geom.Rect[N], items []T, size func(*T) N, setRect func(*T, geom.Rect[N]), pivot func([]T) int) {
	var total N
	for i := range items {
		total += size(&items[i])
	}
	// A zero-weight group arrives with a zero-sized strip; recursing into it
	// would divide by its zero side.
	if total == 0 {
		assignZero(rect, items, setRect)
		return
	}

	p0 := pivot(items)
	l1, lrem := items[:p0], items[p0:]

	isWide := rect.W >= rect.H
	var side N
	if isWide {
		side = rect.H
	} else {
		side = rect.W
	}
	sideSq := side * side

	if len(l1) > 0 {
		var l1Size N
		for i := range l1 {
			l1Size += size(&l1[i])
		}
		r1Oside := l1Size / side
		var r1 geom.Rect[N]
		if isWide {
			r1, rect = rect.SplitX(r1Oside)
		} else {
			r1, rect = rect.SplitY(r1Oside)
		}
		if len(l1) == 1 {
			setRect(&l1[0], r1)
		} else {
			orderedRange(r1, l1, size, setRect, pivot)
		}
	}

	p := &lrem[0]
	rest := lrem[1:]
	pSize := size(p)
	if len(rest) == 0 {
		setRect(p, rect)
		return
	}

	// Find the prefix of rest that, sharing a strip with the pivot, gives the
	// pivot rectangle its best (lowest) aspect ratio.
	tSize := pSize
	p1Idx := 0
	pl2Size := tSize
	var denomB N
	numerB := N(1)
	for idx := range rest {
		tSize += size(&rest[idx])
		numer, denom := ratio(sideSq, tSize, size(&rest[idx]))
		if numer*denomB < numerB*denom {
			numerB, denomB = numer, denom
			p1Idx = idx
			pl2Size = tSize
		}
	}
	l2, l3 := rest[:p1Idx+1], rest[p1Idx+1:]

	pr2Oside := pl2Size / side
	var pSide N
	if pr2Oside > 0 {
		pSide = pSize / pr2Oside
	}
	var rp, r2, r3, strip geom.Rect[N]
	if isWide {
		strip, r3 = rect.SplitX(pr2Oside)
		rp, r2 = strip.SplitY(pSide)
	} else {
		strip, r3 = rect.SplitY(pr2Oside)
		rp, r2 = strip.SplitX(pSide)
	}
	setRect(p, rp)
	if len(l2) == 1 {
		setRect(&l2[0], r2)
	} else if len(l2) > 0 {
		orderedRange(r2, l2, size, setRect, pivot)
	}
	if len(l3) == 1 {
		setRect(&l3[0], r3)
	} else if len(l3) > 0 {
		orderedRange(r3, l3, size, setRect, pivot)
	}
}
