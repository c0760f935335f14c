// Package grid provides the shared vocabulary for spanned-grid layouts:
// cell-space geometry, item spans, and grid configuration.
//
// # Overview
//
// Spangrid virtualizes a scrollable grid whose items may occupy several
// grid cells along each axis. This package defines the value types the
// rest of the module is built on:
//
//   - [Span]: how many cells an item occupies (columns × rows)
//   - [Rect]: an axis-aligned integer rectangle, in cell or pixel space
//   - [Config]: lane counts, orientation, and per-cell pixel size
//   - [Source]: resolves the span for an item index, optionally cached
//
// # Coordinate Spaces
//
// Cell space is the grid itself: x runs across the lanes (the fixed,
// non-scrolling axis), y runs along the scroll axis and is unbounded.
// Pixel space is cell space multiplied by the per-cell size. Rects are
// half-open: Right and Bottom are exclusive, and a valid rect always has
// positive area.
//
// # Validation
//
// Span values are not validated at resolution time. A span that is below
// one cell or wider than the lane count is a caller-side contract
// violation and surfaces as an [InvalidSpanError] when the layout engine
// consumes it, never here.
//
// # Related Packages
//
// The [freespace] subpackage tracks unoccupied grid regions and performs
// the rectangle-split packing. The [engine] subpackage orchestrates
// layout passes, scrolling, and recycling on top of both.
//
// [freespace]: github.com/matzehuels/spangrid/pkg/grid/freespace
// [engine]: github.com/matzehuels/spangrid/pkg/grid/engine
package grid
