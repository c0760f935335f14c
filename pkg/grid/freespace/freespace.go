// Package freespace tracks the unoccupied regions of a spanned grid and
// performs the rectangle-split packing used to place variable-span items
// without overlap.
//
// A [Tracker] starts with a single free region spanning all lanes and
// extending indefinitely along the scroll axis. [Tracker.Find] locates
// the first free region, in canonical order, whose origin can anchor a
// requested span; [Tracker.Place] then subtracts the placed rectangle,
// replacing every intersected region with up to four clipped fragments
// (the classic free-rectangle split from 2D bin packing) and pruning
// redundant fragments so the free set stays minimal.
//
// The tracker works purely in cell space and knows nothing about item
// identity or pixel geometry; those belong to the layout engine.
package freespace

import (
	"math"
	"sort"

	"github.com/matzehuels/spangrid/pkg/grid"
)

// maxExtent stands in for infinity along the scroll axis. Free regions
// that reach it are open-ended.
const maxExtent = math.MaxInt32

// Tracker maintains the set of unoccupied grid regions.
//
// Invariant: the union of free regions plus the union of placed rects
// equals the full lanes × ∞ strip, no free region is contained in
// another, and the set is sorted by scroll-axis start and then by
// cross-axis start.
//
// A Tracker is not safe for concurrent use. The layout engine owns
// exactly one tracker and mutates it on a single goroutine.
type Tracker struct {
	lanes int
	free  []grid.Rect
}

// New creates a tracker for a grid with the given lane count. The lane
// count must already be validated; New does not reject invalid values.
func New(lanes int) *Tracker {
	t := &Tracker{lanes: lanes}
	t.Reset()
	return t
}

// Lanes returns the lane count the tracker was created with.
func (t *Tracker) Lanes() int { return t.lanes }

// Reset restores the tracker to a fully free grid.
func (t *Tracker) Reset() {
	t.free = t.free[:0]
	t.free = append(t.free, grid.Rect{Left: 0, Top: 0, Right: t.lanes, Bottom: maxExtent})
}

// Find returns the placement rect for a span of laneSpan × scrollSpan
// cells: the first free region, scanning in canonical order, that can
// contain the span anchored at the region's origin.
//
// Find does not mutate the free set; call [Tracker.Place] with the
// returned rect to commit the placement. It returns
// [grid.ErrUnsatisfiable] when no region fits, which only happens when
// laneSpan exceeds the lane count, a caller-side misconfiguration the
// engine rejects before asking.
func (t *Tracker) Find(laneSpan, scrollSpan int) (grid.Rect, error) {
	for _, f := range t.free {
		if f.Width() >= laneSpan && f.Height() >= scrollSpan {
			return grid.NewRect(f.Left, f.Top, laneSpan, scrollSpan), nil
		}
	}
	return grid.Rect{}, grid.ErrUnsatisfiable
}

// Place removes rect from the free space.
//
// Every free region intersecting rect is replaced by its up-to-four
// remainders (left of, right of, above, below the subtracted rect, each
// clipped to the region). Regions that only touch rect along an edge are
// kept unchanged; they border the hole but contain nothing to subtract.
// Fragments fully contained in a kept adjacent region, or in another
// fragment, are discarded to keep the set minimal and duplicate-free.
func (t *Tracker) Place(rect grid.Rect) {
	var kept, adjacent, fragments []grid.Rect

	for _, f := range t.free {
		if !f.Intersects(rect) {
			kept = append(kept, f)
			if f.Adjacent(rect) {
				adjacent = append(adjacent, f)
			}
			continue
		}
		fragments = appendRemainders(fragments, f, rect)
	}

	surviving := make([]grid.Rect, 0, len(fragments))
	for i, frag := range fragments {
		if containedInAny(frag, adjacent) || containedInOther(frag, fragments, i) {
			continue
		}
		surviving = append(surviving, frag)
	}

	t.free = append(kept, surviving...)
	sort.SliceStable(t.free, func(i, j int) bool {
		if t.free[i].Top != t.free[j].Top {
			return t.free[i].Top < t.free[j].Top
		}
		return t.free[i].Left < t.free[j].Left
	})
}

// Regions returns a copy of the current free set in canonical order.
// Intended for diagnostics and tests.
func (t *Tracker) Regions() []grid.Rect {
	out := make([]grid.Rect, len(t.free))
	copy(out, t.free)
	return out
}

// FreeArea returns the free area within the probe window, counting each
// cell once even when free regions overlap.
func (t *Tracker) FreeArea(probe grid.Rect) int {
	area := 0
	for y := probe.Top; y < probe.Bottom; y++ {
		for x := probe.Left; x < probe.Right; x++ {
			cell := grid.NewRect(x, y, 1, 1)
			for _, f := range t.free {
				if f.Intersects(cell) {
					area++
					break
				}
			}
		}
	}
	return area
}

// appendRemainders splits region around hole and appends the non-empty
// clipped remainders to dst.
func appendRemainders(dst []grid.Rect, region, hole grid.Rect) []grid.Rect {
	if region.Left < hole.Left {
		dst = append(dst, grid.Rect{Left: region.Left, Top: region.Top, Right: hole.Left, Bottom: region.Bottom})
	}
	if hole.Right < region.Right {
		dst = append(dst, grid.Rect{Left: hole.Right, Top: region.Top, Right: region.Right, Bottom: region.Bottom})
	}
	if region.Top < hole.Top {
		dst = append(dst, grid.Rect{Left: region.Left, Top: region.Top, Right: region.Right, Bottom: hole.Top})
	}
	if hole.Bottom < region.Bottom {
		dst = append(dst, grid.Rect{Left: region.Left, Top: hole.Bottom, Right: region.Right, Bottom: region.Bottom})
	}
	return dst
}

// containedInAny reports whether r lies entirely within any rect in set.
func containedInAny(r grid.Rect, set []grid.Rect) bool {
	for _, s := range set {
		if s.Contains(r) {
			return true
		}
	}
	return false
}

// containedInOther reports whether fragments[i] is redundant with some
// other fragment. Equal fragments keep only their first occurrence.
func containedInOther(r grid.Rect, fragments []grid.Rect, i int) bool {
	for j, other := range fragments {
		if j == i {
			continue
		}
		if !other.Contains(r) {
			continue
		}
		if other == r && j > i {
			continue // duplicate; the earlier copy survives
		}
		return true
	}
	return false
}
