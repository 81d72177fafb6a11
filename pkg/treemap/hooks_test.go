package treemap_test

import (
	"testing"
	"time"

	"github.com/matzehuels/treemap/pkg/geom"
	"github.com/matzehuels/treemap/pkg/observability"
	"github.com/matzehuels/treemap/pkg/treemap"
)

type recordingHooks struct {
	starts    []string
	completes []string
	errs      []error
}

func (h *recordingHooks) OnLayoutStart(algorithm string, itemCount int) {
	h.starts = append(h.starts, algorithm)
}

func (h *recordingHooks) OnLayoutComplete(algorithm string, itemCount int, d time.Duration, err error) {
	h.completes = append(h.completes, algorithm)
	h.errs = append(h.errs, err)
}

func TestLayoutHooksFire(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetLayoutHooks(rec)
	t.Cleanup(observability.Reset)

	items := nodes64(6, 4, 2)
	if err := treemap.Squarify(geom.Rect[float64]{W: 6, H: 4}, items, size64, set64); err != nil {
		t.Fatalf("Squarify() error = %v", err)
	}
	if err := treemap.Binary(geom.Rect[float64]{W: 6, H: 4}, items, size64, set64); err != nil {
		t.Fatalf("Binary() error = %v", err)
	}

	wantOrder := []string{"squarify", "binary"}
	for i, want := range wantOrder {
		if rec.starts[i] != want || rec.completes[i] != want {
			t.Errorf("hook %d = start %q / complete %q, want %q", i, rec.starts[i], rec.completes[i], want)
		}
		if rec.errs[i] != nil {
			t.Errorf("hook %d reported error %v", i, rec.errs[i])
		}
	}
}

func TestLayoutHooksSeeValidationError(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetLayoutHooks(rec)
	t.Cleanup(observability.Reset)

	items := nodes64(6, -1)
	if err := treemap.Slice(geom.Rect[float64]{W: 6, H: 4}, items, size64, set64); err == nil {
		t.Fatal("Slice() with negative weight returned nil error")
	}
	if len(rec.errs) != 1 || rec.errs[0] == nil {
		t.Errorf("completion hook errs = %v, want one non-nil error", rec.errs)
	}
}
