package engine

import (
	"github.com/matzehuels/spangrid/pkg/grid"
)

// ItemCount returns the size of the data set, for scrollbar proportion.
func (e *Engine) ItemCount() int { return e.mat.Count() }

// FirstVisible returns the least materialized index whose frame
// intersects the viewport, or -1 when nothing is visible.
func (e *Engine) FirstVisible() int {
	return e.selectVisible(func(frame grid.Rect) bool {
		return frame.Bottom > e.scroll && frame.Top < e.scroll+e.viewportPrimary()
	}, true)
}

// LastVisible returns the greatest materialized index whose frame
// intersects the viewport, or -1 when nothing is visible.
func (e *Engine) LastVisible() int {
	return e.selectVisible(func(frame grid.Rect) bool {
		return frame.Bottom > e.scroll && frame.Top < e.scroll+e.viewportPrimary()
	}, false)
}

// FirstFullyVisible returns the least materialized index whose full
// primary-axis extent lies within the viewport, or -1 when none does.
func (e *Engine) FirstFullyVisible() int {
	return e.selectVisible(e.fullyVisible, true)
}

// LastFullyVisible returns the greatest materialized index whose full
// primary-axis extent lies within the viewport, or -1 when none does.
func (e *Engine) LastFullyVisible() int {
	return e.selectVisible(e.fullyVisible, false)
}

// fullyVisible reports whether frame lies entirely within
// [0, viewport extent] in view space, boundaries included.
func (e *Engine) fullyVisible(frame grid.Rect) bool {
	return frame.Top >= e.scroll && frame.Bottom <= e.scroll+e.viewportPrimary()
}

// selectVisible returns the least (or greatest) materialized index whose
// frame satisfies pred.
func (e *Engine) selectVisible(pred func(grid.Rect) bool, least bool) int {
	best := -1
	for idx := range e.items {
		if !pred(e.frames[idx]) {
			continue
		}
		if best == -1 || (least && idx < best) || (!least && idx > best) {
			best = idx
		}
	}
	return best
}

// Bounds returns the decorated bounding box of a materialized item in
// viewport pixel space, already adjusted for the current scroll offset
// and mapped to the active orientation. The second return is false when
// the index is not materialized.
func (e *Engine) Bounds(index int) (grid.Rect, bool) {
	if _, ok := e.items[index]; !ok {
		return grid.Rect{}, false
	}
	frame := e.frames[index].Offset(0, -e.scroll)
	if e.cfg.Orientation == grid.Horizontal {
		frame = frame.Transpose()
	}
	return frame, true
}

// ItemAt returns the materialized handle for index, if any. Hosts use
// this to position the concrete views the engine laid out.
func (e *Engine) ItemAt(index int) (Item, bool) {
	item, ok := e.items[index]
	return item, ok
}

// MaterializedCount returns the number of currently materialized items.
func (e *Engine) MaterializedCount() int { return len(e.items) }

// Placement returns an item's assigned cell-space rect and its pixel
// frame in layout space (not scroll-adjusted). The third return is
// false when the index was not placed by the last layout pass.
func (e *Engine) Placement(index int) (cell, pixel grid.Rect, ok bool) {
	cell, ok = e.placements[index]
	if !ok {
		return grid.Rect{}, grid.Rect{}, false
	}
	return cell, e.frames[index], true
}
