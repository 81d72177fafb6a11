// Package treemap computes treemap layouts: given a weighted, ordered slice of
// items and a container rectangle, it partitions the rectangle into
// non-overlapping sub-rectangles whose areas are proportional to the item
// weights.
//
// # Algorithms
//
// Four partitioning strategies are provided, each trading off aspect-ratio
// quality, order stability, and simplicity:
//
//   - [Slice] and [Dice]: single-axis proportional partition in input order.
//     Deliberately naive; skewed weight distributions produce arbitrarily thin
//     rectangles. The caller controls the axis (and may alternate it by
//     recursion depth) by choosing between the two functions.
//   - [Binary]: recursive bisection of the item range into two contiguous
//     halves of near-equal weight. Materially better aspect ratios than
//     slice-and-dice on skewed inputs.
//   - [Squarify]: the squarified treemap of Bruls, Huizing and van Wijk
//     (2000). Grows rows greedily while the worst aspect ratio improves.
//     Expects items sorted descending by weight; this is a documented
//     precondition, checkable on demand with [CheckDescending].
//   - [OrderedPivot]: order-preserving pivot layout. Keeps the caller's item
//     order stable across layouts (useful when visual identity must survive
//     data updates) while approximating squarified quality. The pivot
//     selection rule is a [PivotStrategy] parameter.
//
// # Item Handling
//
// Items are opaque. Each function is generic over the item type T and the
// float type N and touches items only through two caller-supplied functions:
// a weight extractor and a rectangle setter. The setter is called exactly once
// per item, in slice order, writing results back into caller-owned storage:
//
//	type node struct {
//	    weight float64
//	    rect   geom.Rect[float64]
//	}
//
//	items := []node{{weight: 6}, {weight: 6}, {weight: 4}}
//	err := treemap.Squarify(geom.FromSize(6.0, 4.0), items,
//	    func(n *node) float64 { return n.weight },
//	    func(n *node, r geom.Rect[float64]) { n.rect = r })
//
// # Preconditions and Degenerate Inputs
//
// Weights must be non-negative and finite. A negative, NaN or infinite weight
// makes the layout function return a structured error (pkg/errors,
// INVALID_WEIGHT) before any rectangle is assigned.
//
// Degenerate-but-valid inputs never fail: an empty slice is a no-op, and a
// total weight of zero or a zero-area container assigns a zero-area rectangle
// to every item. An item of weight zero among positive-weight items receives a
// zero-area rectangle.
//
// # Determinism and Concurrency
//
// Every function is total, synchronous and free of shared state: given the
// same container, weights and float type, output is bit-for-bit reproducible.
// Calls on disjoint slices may run concurrently without synchronization.
// Recursion in Binary and OrderedPivot works over index ranges of the original
// slice; no sub-slices are copied.
package treemap
