// Package observability provides hooks for instrumenting layout runs.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks at
// startup to receive events about layout invocations; the layout functions
// themselves stay pure and dependency-free.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for layout events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// Hooks deliberately take no context.Context: the layout functions are total,
// synchronous, and never block, so there is nothing to cancel or trace across.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(observability.NewLogHooks(logger))
//	    // ... run layouts
//	}
package observability

import (
	"sync"
	"time"
)

// LayoutHooks receives events from layout function invocations.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a layout run.
	// algorithm is the name of the layout function ("squarify", "binary", ...).
	OnLayoutStart(algorithm string, itemCount int)

	// OnLayoutComplete records the end of a layout run, including validation
	// failures surfaced as err.
	OnLayoutComplete(algorithm string, itemCount int, duration time.Duration, err error)
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(string, int)                          {}
func (NoopLayoutHooks) OnLayoutComplete(string, int, time.Duration, error) {}

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout runs.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores the hooks to their no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
}
