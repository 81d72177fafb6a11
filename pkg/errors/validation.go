package errors

import "math"

// ValidateWeight validates a single item weight against the layout
// precondition: weights must be non-negative and finite. The item index is
// included in the message so callers can pinpoint the offending input.
func ValidateWeight(index int, w float64) error {
	switch {
	case math.IsNaN(w):
		return New(ErrCodeInvalidWeight, "item %d has weight NaN", index)
	case math.IsInf(w, 0):
		return New(ErrCodeInvalidWeight, "item %d has infinite weight", index)
	case w < 0:
		return New(ErrCodeInvalidWeight, "item %d has negative weight %v", index, w)
	}
	return nil
}

// ValidateRect validates a container rectangle: extents must be non-negative
// and all fields finite. Zero-area containers are valid (the layout functions
// degrade to zero-area outputs).
func ValidateRect(x, y, w, h float64) error {
	for _, v := range [...]float64{x, y, w, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidRect, "rect {%v %v %v %v} has non-finite field", x, y, w, h)
		}
	}
	if w < 0 || h < 0 {
		return New(ErrCodeInvalidRect, "rect {%v %v %v %v} has negative extent", x, y, w, h)
	}
	return nil
}
