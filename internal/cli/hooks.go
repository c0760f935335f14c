package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spangrid/pkg/grid/engine"
)

// logHooks forwards engine diagnostics to the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnLayoutStart(itemCount int) {
	h.logger.Debug("layout start", "items", itemCount)
}

func (h *logHooks) OnLayoutComplete(itemCount, placed int, elapsed time.Duration, err error) {
	if err != nil {
		h.logger.Error("layout failed", "items", itemCount, "err", err)
		return
	}
	h.logger.Debug("layout complete", "items", itemCount, "placed", placed, "elapsed", elapsed.Round(time.Microsecond))
}

func (h *logHooks) OnScroll(delta, consumed int) {
	h.logger.Debug("scroll", "delta", delta, "consumed", consumed)
}

func (h *logHooks) OnFill(dir engine.Direction, materialized int) {
	h.logger.Debug("fill", "dir", dir, "materialized", materialized)
}

func (h *logHooks) OnRecycle(count int) {
	h.logger.Debug("recycle", "count", count)
}

var _ engine.Hooks = (*logHooks)(nil)
