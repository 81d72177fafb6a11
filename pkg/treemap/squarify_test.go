package treemap_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/treemap/pkg/errors"
	"github.com/matzehuels/treemap/pkg/geom"
	"github.com/matzehuels/treemap/pkg/treemap"
)

func TestSquarifyPaperExample(t *testing.T) {
	// The worked example from Bruls, Huizing, van Wijk (2000): weights
	// 6,6,4,3,2,2,1 in a 6x4 container. These values pin the grow-or-flush
	// tie-break and the rounding conventions, single precision.
	items := nodes32(6, 6, 4, 3, 2, 2, 1)
	err := treemap.Squarify(geom.Rect[float32]{W: 6, H: 4}, items, size32, set32)
	if err != nil {
		t.Fatalf("Squarify() error = %v", err)
	}
	want := []geom.Rect[float32]{
		{X: 0, Y: 0, W: 3, H: 2},
		{X: 0, Y: 2, W: 3, H: 2},
		{X: 3, Y: 0, W: 1.7142857, H: 2.3333333},
		{X: 4.714286, Y: 0, W: 1.2857141, H: 2.3333333},
		{X: 3, Y: 2.3333333, W: 1.1999999, H: 1.6666667},
		{X: 4.2, Y: 2.3333333, W: 1.1999999, H: 1.6666667},
		{X: 5.3999996, Y: 2.3333333, W: 0.60000014, H: 1.6666667},
	}
	if diff := cmp.Diff(want, rects32(items), approx32(1e-5)); diff != "" {
		t.Errorf("Squarify() mismatch (-want +got):\n%s", diff)
	}
}

func TestSquarifyScaledContainer(t *testing.T) {
	// Same weights in a 12x8 container: weights no longer sum to the
	// container area, so the internal normalization has to kick in.
	items := nodes32(6, 6, 4, 3, 2, 2, 1)
	err := treemap.Squarify(geom.Rect[float32]{W: 12, H: 8}, items, size32, set32)
	if err != nil {
		t.Fatalf("Squarify() error = %v", err)
	}
	want := []geom.Rect[float32]{
		{X: 0, Y: 0, W: 6, H: 4},
		{X: 0, Y: 4, W: 6, H: 4},
		{X: 6, Y: 0, W: 3.4285715, H: 4.6666665},
		{X: 9.428572, Y: 0, W: 2.5714283, H: 4.6666665},
		{X: 6, Y: 4.6666665, W: 2.3999999, H: 3.3333335},
		{X: 8.4, Y: 4.6666665, W: 2.3999999, H: 3.3333335},
		{X: 10.799999, Y: 4.6666665, W: 1.2000003, H: 3.3333335},
	}
	if diff := cmp.Diff(want, rects32(items), approx32(1e-5)); diff != "" {
		t.Errorf("Squarify() mismatch (-want +got):\n%s", diff)
	}
}

func TestSquarifyOffsetContainer(t *testing.T) {
	// A container anchored away from the origin shifts every output rect
	// without changing sizes.
	items := nodes32(6, 6, 4, 3, 2, 2, 1)
	err := treemap.Squarify(geom.Rect[float32]{X: 1, Y: 2, W: 12, H: 8}, items, size32, set32)
	if err != nil {
		t.Fatalf("Squarify() error = %v", err)
	}
	want := []geom.Rect[float32]{
		{X: 1, Y: 2, W: 6, H: 4},
		{X: 1, Y: 6, W: 6, H: 4},
		{X: 7, Y: 2, W: 3.4285715, H: 4.6666665},
		{X: 10.428572, Y: 2, W: 2.5714283, H: 4.6666665},
		{X: 7, Y: 6.6666665, W: 2.3999999, H: 3.3333335},
		{X: 9.4, Y: 6.6666665, W: 2.3999999, H: 3.3333335},
		{X: 11.799999, Y: 6.6666665, W: 1.2000003, H: 3.3333335},
	}
	if diff := cmp.Diff(want, rects32(items), approx32(1e-5)); diff != "" {
		t.Errorf("Squarify() mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckDescending(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		wantErr bool
	}{
		{name: "descending", weights: []float64{6, 6, 4, 3, 2, 2, 1}},
		{name: "equal run", weights: []float64{3, 3, 3}},
		{name: "single", weights: []float64{1}},
		{name: "empty", weights: nil},
		{name: "ascending tail", weights: []float64{5, 2, 3}, wantErr: true},
		{name: "ascending", weights: []float64{1, 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := treemap.CheckDescending(nodes64(tt.weights...), size64)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckDescending() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeUnsortedInput) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsortedInput)
			}
		})
	}
}
