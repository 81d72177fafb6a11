package treemap_test

import (
	"math"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/treemap/pkg/geom"
)

// node32 and node64 are the item fixtures used across the layout tests. The
// algorithms never see these types directly; they only go through the size
// and set functions below.
type node32 struct {
	weight float32
	rect   geom.Rect[float32]
}

type node64 struct {
	weight float64
	rect   geom.Rect[float64]
}

func nodes32(weights ...float32) []node32 {
	items := make([]node32, len(weights))
	for i, w := range weights {
		items[i] = node32{weight: w}
	}
	return items
}

func nodes64(weights ...float64) []node64 {
	items := make([]node64, len(weights))
	for i, w := range weights {
		items[i] = node64{weight: w}
	}
	return items
}

func size32(n *node32) float32              { return n.weight }
func set32(n *node32, r geom.Rect[float32]) { n.rect = r }
func size64(n *node64) float64              { return n.weight }
func set64(n *node64, r geom.Rect[float64]) { n.rect = r }

func rects32(items []node32) []geom.Rect[float32] {
	rs := make([]geom.Rect[float32], len(items))
	for i := range items {
		rs[i] = items[i].rect
	}
	return rs
}

// approx32 compares float32 fields within an absolute tolerance.
func approx32(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b float32) bool {
		return math.Abs(float64(a)-float64(b)) <= tol
	})
}

// overlapArea returns the area of the intersection of two rectangles.
func overlapArea(a, b geom.Rect[float64]) float64 {
	w := math.Min(a.X+a.W, b.X+b.W) - math.Max(a.X, b.X)
	h := math.Min(a.Y+a.H, b.Y+b.H) - math.Max(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}
