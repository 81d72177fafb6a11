// Package geom provides the axis-aligned rectangle primitives shared by all
// treemap layout algorithms.
//
// Rect is generic over the floating-point type so that callers can run the
// layout math in either single or double precision. Geometry and weights share
// the same numeric type throughout the library.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Rect is an axis-aligned rectangle. W and H are extents, not far edges.
// Layout output always satisfies W >= 0 and H >= 0; container rects supplied
// by callers are assumed well-formed.
type Rect[N constraints.Float] struct {
	X, Y, W, H N
}

// FromSize returns a rectangle of the given size anchored at the origin.
func FromSize[N constraints.Float](w, h N) Rect[N] {
	return Rect[N]{W: w, H: h}
}

// Area returns W * H.
func (r Rect[N]) Area() N { return r.W * r.H }

// AspectRatio returns max(W/H, H/W).
//
// Degenerate rectangles follow a fixed convention: a rect with both extents
// zero has ratio 1, a rect with exactly one zero extent has ratio +Inf.
func (r Rect[N]) AspectRatio() N {
	if r.W == 0 && r.H == 0 {
		return 1
	}
	if r.W == 0 || r.H == 0 {
		return N(math.Inf(1))
	}
	if a := r.W / r.H; a >= 1 {
		return a
	}
	return r.H / r.W
}

// SplitX splits r into two adjacent rectangles along the vertical line at
// offset w from the left edge. The left half has width w, the right half keeps
// the remaining width W-w. Together the halves cover r with no gap or overlap.
func (r Rect[N]) SplitX(w N) (left, right Rect[N]) {
	left = Rect[N]{X: r.X, Y: r.Y, W: w, H: r.H}
	right = Rect[N]{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H}
	return left, right
}

// SplitY splits r into two adjacent rectangles along the horizontal line at
// offset h from the top edge. The top half has height h, the bottom half keeps
// the remaining height H-h.
func (r Rect[N]) SplitY(h N) (top, bottom Rect[N]) {
	top = Rect[N]{X: r.X, Y: r.Y, W: r.W, H: h}
	bottom = Rect[N]{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
	return top, bottom
}

// CutX splits r at the absolute coordinate x. Unlike SplitX, the far edge
// X+W is computed once and the right half is sized against it, so the outer
// boundary of the two halves is bit-identical to the boundary of r.
func (r Rect[N]) CutX(x N) (left, right Rect[N]) {
	xe := r.X + r.W
	left = Rect[N]{X: r.X, Y: r.Y, W: x - r.X, H: r.H}
	right = Rect[N]{X: x, Y: r.Y, W: xe - x, H: r.H}
	return left, right
}

// CutY splits r at the absolute coordinate y, pinning the far edge Y+H.
func (r Rect[N]) CutY(y N) (top, bottom Rect[N]) {
	ye := r.Y + r.H
	top = Rect[N]{X: r.X, Y: r.Y, W: r.W, H: y - r.Y}
	bottom = Rect[N]{X: r.X, Y: y, W: r.W, H: ye - y}
	return top, bottom
}

// FlipH mirrors r horizontally within a container of width containerW whose
// left edge is at x=0.
func (r *Rect[N]) FlipH(containerW N) {
	r.X = containerW - r.X - r.W
}

// FlipV mirrors r vertically within a container of height containerH whose
// top edge is at y=0.
func (r *Rect[N]) FlipV(containerH N) {
	r.Y = containerH - r.Y - r.H
}
