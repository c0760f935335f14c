package engine

// Item is an opaque handle to a materialized view, owned by the
// Materializer. The engine only stores and passes handles back; it never
// inspects them.
type Item any

// Insets are per-edge decoration offsets around an item's content, in
// pixels. The engine subtracts them when sizing content and reports
// decorated bounds inclusive of them.
type Insets struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Materializer supplies concrete item handles for the engine.
//
// Implementations are typically backed by a view pool: Acquire fetches
// or builds the handle for an index, Recycle returns it for reuse. The
// engine guarantees it never acquires an index it already holds and
// never references a handle after recycling it; calling Acquire twice
// for the same un-recycled index from outside the engine is a usage
// error the implementation may reject.
//
// Materializer methods must not call back into the engine.
type Materializer interface {
	// Count returns the number of items in the data set.
	Count() int

	// Acquire returns the handle for index. Acquisition is a pure,
	// pool-backed fetch and cannot fail for a valid index;
	// implementations should panic on contract violations such as a
	// second Acquire for an index that was never recycled.
	Acquire(index int) Item

	// Recycle returns a handle to the pool. The handle must not be
	// referenced afterwards.
	Recycle(item Item)

	// SetSize fixes the content size of a materialized item in pixels,
	// already net of its insets.
	SetSize(item Item, width, height int)

	// Insets returns the decoration offsets for a materialized item.
	Insets(item Item) Insets
}

// Layouter is the capability interface hosts consume. An [Engine]
// implements it; host-specific adapters (a TUI, an HTTP surface, a
// widget toolkit binding) drive layout through it without any
// inheritance chain.
type Layouter interface {
	FullLayout() error
	ScrollBy(delta int) int
	FirstVisible() int
	LastVisible() int
}

var _ Layouter = (*Engine)(nil)
