package engine

import (
	"fmt"

	"github.com/matzehuels/spangrid/pkg/grid"
	"github.com/matzehuels/spangrid/pkg/grid/freespace"
)

// Direction identifies which end of the scroll axis a fill or recycle
// cycle works toward. It is a parameter, not persistent engine state.
type Direction int

const (
	// Start is the edge the user scrolls back toward (top or left).
	Start Direction = iota
	// End is the edge the user scrolls forward toward (bottom or right).
	End
)

// String returns "start" or "end".
func (d Direction) String() string {
	if d == End {
		return "end"
	}
	return "start"
}

// Engine lays out a virtualized spanned grid.
//
// The engine exclusively owns its free-space tracker, placement caches,
// row index, pixel frames, and scroll offset. They are reset wholesale
// by [Engine.FullLayout] and mutated incrementally by [Engine.ScrollBy].
// The span [grid.Source] and the [Materializer] are supplied externally
// and referenced, never owned.
type Engine struct {
	mat   Materializer
	cfg   grid.Config
	spans *grid.Source
	hooks Hooks

	viewportW   int
	viewportH   int
	extraRows   int
	stableOrder bool

	tracker     *freespace.Tracker
	placements  map[int]grid.Rect // item index → cell-space rect
	frames      map[int]grid.Rect // item index → pixel-space rect
	rowsByStart map[int][]int     // start row → item indexes, ascending
	rowsByEnd   map[int][]int     // end row (inclusive) → item indexes, ascending
	items       map[int]Item      // materialized handles

	scroll      int // accumulated scroll offset along the primary axis
	layoutStart int // least pixel start among materialized items
	layoutEnd   int // greatest pixel end among materialized items
	contentEnd  int // farthest pixel end of placed content
	pending     int // deferred scroll-to-index target, -1 when none
	laidOut     bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the grid configuration.
func WithConfig(cfg grid.Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithSpanSource sets the span source. The default resolves every index
// to a single cell.
func WithSpanSource(s *grid.Source) Option {
	return func(e *Engine) { e.spans = s }
}

// WithHooks injects a diagnostics sink. The default is [NoopHooks].
func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		if h != nil {
			e.hooks = h
		}
	}
}

// WithLookahead keeps rows of extra layout space materialized beyond the
// viewport on the fill side, trading pool pressure for smoother fills.
func WithLookahead(rows int) Option {
	return func(e *Engine) {
		if rows > 0 {
			e.extraRows = rows
		}
	}
}

// WithStableOrder declares that item order is stable across data-set
// changes, enabling scroll position save/restore.
func WithStableOrder() Option {
	return func(e *Engine) { e.stableOrder = true }
}

// New creates an engine backed by mat. The configuration is validated
// up front; an invalid lane count is rejected before any state exists.
func New(mat Materializer, opts ...Option) (*Engine, error) {
	if mat == nil {
		return nil, fmt.Errorf("engine: nil materializer")
	}
	e := &Engine{
		mat:     mat,
		cfg:     grid.DefaultConfig(),
		hooks:   NoopHooks{},
		pending: -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.spans == nil {
		e.spans = grid.NewSource()
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Config returns the current grid configuration.
func (e *Engine) Config() grid.Config { return e.cfg }

// SetViewport sets the viewport size in pixels. Width is the horizontal
// extent, height the vertical one, regardless of orientation.
func (e *Engine) SetViewport(width, height int) {
	if width == e.viewportW && height == e.viewportH {
		return
	}
	e.viewportW = width
	e.viewportH = height
	e.laidOut = false
}

// SetLanes updates both lane counts. Mutating either invalidates the
// span cache and forces a full layout pass on next use.
func (e *Engine) SetLanes(vertical, horizontal int) error {
	next := e.cfg
	next.VerticalLanes = vertical
	next.HorizontalLanes = horizontal
	if err := next.Validate(); err != nil {
		return err
	}
	if next == e.cfg {
		return nil
	}
	e.cfg = next
	e.spans.InvalidateCache()
	e.laidOut = false
	return nil
}

// ScrollToIndex requests that the item at index be positioned at the
// viewport start. The request is deferred until the next full layout
// pass and silently dropped if the index is out of range when resolved.
func (e *Engine) ScrollToIndex(index int) {
	e.pending = index
}

// cellSize returns the per-cell pixel size: the explicit override when
// set, otherwise the viewport's cross extent divided by the lane count.
// Clamped to at least one pixel so row arithmetic stays total.
func (e *Engine) cellSize() int {
	if e.cfg.CellSize > 0 {
		return e.cfg.CellSize
	}
	cross := e.viewportW
	if e.cfg.Orientation == grid.Horizontal {
		cross = e.viewportH
	}
	size := cross / e.cfg.Lanes()
	if size < 1 {
		size = 1
	}
	return size
}

// viewportPrimary returns the viewport extent along the scroll axis.
func (e *Engine) viewportPrimary() int {
	if e.cfg.Orientation == grid.Horizontal {
		return e.viewportW
	}
	return e.viewportH
}

// extraPx returns the lookahead extent in pixels.
func (e *Engine) extraPx() int {
	return e.extraRows * e.cellSize()
}

// reset clears all layout state for a fresh pass, returning every
// materialized item to the pool. The scroll offset survives; a full
// layout pass corrects it lazily when it overshoots content.
func (e *Engine) reset() {
	if len(e.items) > 0 {
		for _, item := range e.items {
			e.mat.Recycle(item)
		}
		e.hooks.OnRecycle(len(e.items))
	}
	e.items = make(map[int]Item)
	e.placements = make(map[int]grid.Rect)
	e.frames = make(map[int]grid.Rect)
	e.rowsByStart = make(map[int][]int)
	e.rowsByEnd = make(map[int][]int)
	e.layoutStart = 0
	e.layoutEnd = 0
	e.contentEnd = 0
	if e.tracker == nil || e.tracker.Lanes() != e.cfg.Lanes() {
		e.tracker = freespace.New(e.cfg.Lanes())
	} else {
		e.tracker.Reset()
	}
}

// materialize acquires the handle for index, sizes its content net of
// insets, and records it. The index must have a placement and must not
// already be materialized.
func (e *Engine) materialize(index int) {
	item := e.mat.Acquire(index)
	frame := e.frames[index]
	in := e.mat.Insets(item)
	e.mat.SetSize(item, frame.Width()-in.Left-in.Right, frame.Height()-in.Top-in.Bottom)
	e.items[index] = item

	if len(e.items) == 1 {
		e.layoutStart = frame.Top
		e.layoutEnd = frame.Bottom
		return
	}
	if frame.Top < e.layoutStart {
		e.layoutStart = frame.Top
	}
	if frame.Bottom > e.layoutEnd {
		e.layoutEnd = frame.Bottom
	}
}

// recycle returns the materialized items in indexes to the pool and
// recomputes the layout edges.
func (e *Engine) recycle(indexes []int) {
	if len(indexes) == 0 {
		return
	}
	for _, idx := range indexes {
		e.mat.Recycle(e.items[idx])
		delete(e.items, idx)
	}
	e.recomputeEdges()
	e.hooks.OnRecycle(len(indexes))
}

// recomputeEdges rescans the materialized set for the pixel extents it
// spans. Called after removals; additions update the edges in place.
func (e *Engine) recomputeEdges() {
	e.layoutStart = 0
	e.layoutEnd = 0
	first := true
	for idx := range e.items {
		frame := e.frames[idx]
		if first {
			e.layoutStart = frame.Top
			e.layoutEnd = frame.Bottom
			first = false
			continue
		}
		if frame.Top < e.layoutStart {
			e.layoutStart = frame.Top
		}
		if frame.Bottom > e.layoutEnd {
			e.layoutEnd = frame.Bottom
		}
	}
}
