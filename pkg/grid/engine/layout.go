package engine

import (
	"fmt"
	"time"

	"github.com/matzehuels/spangrid/pkg/grid"
)

// FullLayout runs a complete layout pass: it resets all layout state,
// recycles every materialized item, places every item of the data set
// through the free-space tracker, resolves any pending scroll-to-index
// request, fills the viewport from the current scroll position, and
// corrects the scroll offset if it overshoots the content end.
//
// Placement order is item order: indexes are packed ascending, each into
// the first free region that fits, so later items may fill gaps earlier
// spans left behind. An item whose span exceeds the lane count or is
// below one cell aborts the pass with a [grid.InvalidSpanError].
func (e *Engine) FullLayout() error {
	start := time.Now()
	n := e.mat.Count()
	e.hooks.OnLayoutStart(n)

	err := e.layoutAll(n)
	e.hooks.OnLayoutComplete(n, len(e.placements), time.Since(start), err)
	if err != nil {
		return err
	}
	e.laidOut = true
	return nil
}

// layoutAll is the body of the full layout pass, split out so
// FullLayout can report timing around it.
func (e *Engine) layoutAll(n int) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	e.reset()

	lanes := e.cfg.Lanes()
	cell := e.cellSize()
	for i := 0; i < n; i++ {
		span := e.spans.SpanAt(i)
		laneSpan, scrollSpan := e.cfg.SpanCells(span)
		if laneSpan < 1 || scrollSpan < 1 || laneSpan > lanes {
			return &grid.InvalidSpanError{Index: i, Span: span, Max: lanes}
		}
		rect, err := e.tracker.Find(laneSpan, scrollSpan)
		if err != nil {
			return fmt.Errorf("place item %d (%s): %w", i, span, err)
		}
		e.tracker.Place(rect)
		e.placements[i] = rect
		e.frames[i] = rect.Scale(cell)
		e.rowsByStart[rect.Top] = append(e.rowsByStart[rect.Top], i)
		e.rowsByEnd[rect.Bottom-1] = append(e.rowsByEnd[rect.Bottom-1], i)
	}

	// A pending scroll target anchors the fill: its whole row goes live
	// first, then both directions fill outward from it. Spans crossing
	// the landing row started above it, so the row scan is what finds
	// them.
	jumped := false
	if e.pending >= 0 {
		if e.pending < n {
			e.scroll = e.frames[e.pending].Top
			e.materializeRow(e.placements[e.pending].Top)
			jumped = true
		}
		e.pending = -1
	}

	e.fill(End)
	if jumped {
		e.fill(Start)
	}
	e.recycleOutOfBounds(End)
	e.contentEnd = e.computeContentEnd(n)

	// Overscroll correction: when the viewport is under-filled at the
	// end of content and we are scrolled past it, pull the offset back
	// and refill toward Start. At offset zero there is nothing to
	// correct; content shorter than the viewport simply ends early.
	if n > 0 && e.scroll > 0 {
		over := e.viewportPrimary() - (e.contentEnd - e.scroll)
		if over > 0 {
			e.scroll -= over
			if e.scroll < 0 {
				e.scroll = 0
			}
			e.fill(Start)
			e.recycleOutOfBounds(Start)
		}
	}
	return nil
}

// fill materializes the items newly exposed on the given side of the
// viewport, using only the placement caches populated by the layout
// pass; the span source and the tracker are never consulted again.
//
// Toward End it walks rows forward from the last materialized row to the
// last row inside the extended viewport. Toward Start it walks rows
// backward from the first materialized row down to the first row inside
// it, in reverse per-row order. Each walked row consults both the start
// and the end bucket: a span crossing into the walked range from
// outside has only one of its two rows there.
//
// When nothing is materialized there is no row to anchor the walk, and
// a span can cross the whole extended viewport without either of its
// rows inside it. Every placement is scanned instead.
func (e *Engine) fill(dir Direction) {
	cell := e.cellSize()
	lower := e.scroll - e.extraPx()
	if lower < 0 {
		lower = 0
	}
	upper := e.scroll + e.viewportPrimary() + e.extraPx()
	added := 0

	if len(e.items) == 0 {
		for idx, frame := range e.frames {
			if frame.Top >= upper || frame.Bottom <= lower {
				continue
			}
			e.materialize(idx)
			added++
		}
		if added > 0 {
			e.hooks.OnFill(dir, added)
		}
		return
	}

	switch dir {
	case End:
		row := e.lastMaterializedRow()
		lastRow := (upper - 1) / cell
		for ; row <= lastRow; row++ {
			for _, bucket := range [2][]int{e.rowsByStart[row], e.rowsByEnd[row]} {
				for _, idx := range bucket {
					if _, ok := e.items[idx]; ok {
						continue
					}
					frame := e.frames[idx]
					if frame.Top >= upper || frame.Bottom <= lower {
						continue
					}
					e.materialize(idx)
					added++
				}
			}
		}
	case Start:
		row := e.firstMaterializedRow()
		firstRow := lower / cell
		for ; row >= firstRow; row-- {
			for _, bucket := range [2][]int{e.rowsByEnd[row], e.rowsByStart[row]} {
				for i := len(bucket) - 1; i >= 0; i-- {
					idx := bucket[i]
					if _, ok := e.items[idx]; ok {
						continue
					}
					frame := e.frames[idx]
					if frame.Top >= upper || frame.Bottom <= lower {
						continue
					}
					e.materialize(idx)
					added++
				}
			}
		}
	}
	if added > 0 {
		e.hooks.OnFill(dir, added)
	}
}

// materializeRow materializes every item whose placement crosses the
// given row, scanning all placements.
func (e *Engine) materializeRow(row int) {
	for idx, rect := range e.placements {
		if _, ok := e.items[idx]; ok {
			continue
		}
		if rect.Top <= row && row < rect.Bottom {
			e.materialize(idx)
		}
	}
}

// recycleOutOfBounds returns to the pool every materialized item left
// behind by a move toward dir: items entirely before the extended
// viewport when filling End, entirely after it when filling Start.
func (e *Engine) recycleOutOfBounds(dir Direction) {
	lower := e.scroll - e.extraPx()
	upper := e.scroll + e.viewportPrimary() + e.extraPx()

	var drop []int
	for idx := range e.items {
		frame := e.frames[idx]
		switch dir {
		case End:
			if frame.Bottom <= lower {
				drop = append(drop, idx)
			}
		case Start:
			if frame.Top >= upper {
				drop = append(drop, idx)
			}
		}
	}
	e.recycle(drop)
}

// lastMaterializedRow returns the greatest start row among materialized
// items. At least one item must be materialized.
func (e *Engine) lastMaterializedRow() int {
	last := 0
	first := true
	for idx := range e.items {
		row := e.placements[idx].Top
		if first || row > last {
			last = row
			first = false
		}
	}
	return last
}

// firstMaterializedRow returns the least start row among materialized
// items. At least one item must be materialized.
func (e *Engine) firstMaterializedRow() int {
	first := 0
	initial := true
	for idx := range e.items {
		row := e.placements[idx].Top
		if initial || row < first {
			first = row
			initial = false
		}
	}
	return first
}

// computeContentEnd returns the farthest pixel end among the trailing
// lane-count items. A lane-width window is required because item order
// does not imply pixel order: later-indexed items may have packed into
// free space above the last one.
func (e *Engine) computeContentEnd(n int) int {
	end := 0
	window := e.cfg.Lanes()
	for i := n - 1; i >= 0 && i > n-1-window; i-- {
		if frame, ok := e.frames[i]; ok && frame.Bottom > end {
			end = frame.Bottom
		}
	}
	return end
}
