package engine

import "time"

// Hooks receives diagnostic events from an engine.
//
// Hooks are advisory only: they carry timing and counts for logging or
// metrics and have no behavioral effect on layout. The engine calls them
// synchronously, so implementations should return quickly and must not
// call back into the engine.
//
// Inject hooks per engine with [WithHooks]; the default is [NoopHooks].
type Hooks interface {
	// OnLayoutStart fires at the beginning of a full layout pass.
	OnLayoutStart(itemCount int)

	// OnLayoutComplete fires when a full layout pass finishes, with the
	// number of items placed and the elapsed wall-clock time. err is
	// non-nil when the pass failed.
	OnLayoutComplete(itemCount, placed int, elapsed time.Duration, err error)

	// OnScroll fires after every scroll attempt with the requested delta
	// and the amount actually consumed.
	OnScroll(delta, consumed int)

	// OnFill fires after a fill cycle with the direction and the number
	// of items newly materialized.
	OnFill(dir Direction, materialized int)

	// OnRecycle fires when items are returned to the pool.
	OnRecycle(count int)
}

// NoopHooks is a no-op implementation of Hooks.
type NoopHooks struct{}

func (NoopHooks) OnLayoutStart(int)                                {}
func (NoopHooks) OnLayoutComplete(int, int, time.Duration, error)  {}
func (NoopHooks) OnScroll(int, int)                                {}
func (NoopHooks) OnFill(Direction, int)                            {}
func (NoopHooks) OnRecycle(int)                                    {}

var _ Hooks = NoopHooks{}
