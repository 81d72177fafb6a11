package observability

import (
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks is a LayoutHooks implementation that emits structured log records
// through a charmbracelet/log logger. Start events log at debug level,
// completions at debug on success and error level on validation failure.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks creates LogHooks around logger. A nil logger uses the package
// default logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

// OnLayoutStart implements LayoutHooks.
func (h *LogHooks) OnLayoutStart(algorithm string, itemCount int) {
	h.logger.Debug("layout start", "algorithm", algorithm, "items", itemCount)
}

// OnLayoutComplete implements LayoutHooks.
func (h *LogHooks) OnLayoutComplete(algorithm string, itemCount int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Error("layout failed", "algorithm", algorithm, "items", itemCount, "err", err)
		return
	}
	h.logger.Debug("layout done",
		"algorithm", algorithm,
		"items", itemCount,
		"duration", duration.Round(time.Microsecond))
}
