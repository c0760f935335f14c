package engine

// ScrollBy moves the viewport by delta pixels along the scroll axis and
// returns the amount actually consumed. Positive deltas scroll toward
// End, negative toward Start.
//
// The consumed amount is clamped so the viewport never moves before the
// content start or past the content end; callers feed it back into
// their momentum or overscroll handling. Scrolling never re-packs:
// materialized items are translated, items that left the extended
// viewport are recycled, and the exposed gap is filled from the
// placement caches.
//
// A zero delta, an unscrollable direction, or an engine with no
// completed layout pass consumes nothing.
func (e *Engine) ScrollBy(delta int) int {
	if delta == 0 || !e.laidOut {
		return 0
	}

	canScrollBack := e.scroll > 0
	canScrollForward := e.contentEnd > e.scroll+e.viewportPrimary()
	if (delta < 0 && !canScrollBack) || (delta > 0 && !canScrollForward) {
		e.hooks.OnScroll(delta, 0)
		return 0
	}

	consumed := delta
	if delta < 0 && e.scroll+delta < 0 {
		consumed = -e.scroll
	}
	if delta > 0 {
		if max := e.contentEnd - e.viewportPrimary() - e.scroll; consumed > max {
			consumed = max
		}
	}

	// Translating the viewport is the whole move; frames stay in layout
	// space and visible bounds apply the offset on read.
	e.scroll += consumed

	dir := End
	if consumed < 0 {
		dir = Start
	}
	e.recycleOutOfBounds(dir)
	e.fill(dir)

	e.hooks.OnScroll(delta, consumed)
	return consumed
}

// Scroll returns the accumulated scroll offset in pixels.
func (e *Engine) Scroll() int { return e.scroll }

// ContentEnd returns the farthest pixel extent reached by placed
// content, as of the last full layout pass.
func (e *Engine) ContentEnd() int { return e.contentEnd }
