// Package pool provides a reference, pool-backed implementation of the
// engine's Materializer contract.
//
// Hosts embedding spangrid in a real UI supply their own materializer
// over their view system; the pool here materializes plain [Handle]
// values and recycles them through a free list. It is what the CLI, the
// HTTP packing service, and the engine tests run against, and doubles
// as executable documentation of the acquire/recycle contract.
package pool

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/spangrid/pkg/grid/engine"
)

// Handle is a materialized item: a measurable, positionable stand-in
// for a host view. Each handle carries a stable unique ID so diagnostics
// can follow one handle through acquire/recycle churn.
type Handle struct {
	ID     uuid.UUID
	Index  int
	Width  int
	Height int
	insets engine.Insets
}

// Pool is a Materializer backed by a free list of handles.
//
// Acquire pops a recycled handle when one is available and allocates
// otherwise. Acquiring an index that is already live panics: the engine
// never does this, so it always indicates a host bug (see the
// Materializer contract).
type Pool struct {
	count  int
	insets engine.Insets
	free   []*Handle
	live   map[int]*Handle

	acquired  int // total acquires, for tests and diagnostics
	recycled  int // total recycles
	allocated int // handles ever allocated
}

// Option configures a Pool.
type Option func(*Pool)

// WithInsets gives every handle fixed decoration insets.
func WithInsets(in engine.Insets) Option {
	return func(p *Pool) { p.insets = in }
}

// New creates a pool representing a data set of count items.
func New(count int, opts ...Option) *Pool {
	p := &Pool{count: count, live: make(map[int]*Handle)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetCount changes the data-set size. Live handles are unaffected; the
// engine re-runs a full layout pass after data-set changes anyway.
func (p *Pool) SetCount(count int) { p.count = count }

// Count returns the data-set size.
func (p *Pool) Count() int { return p.count }

// Acquire returns the handle for index, reusing a recycled handle when
// one is available.
func (p *Pool) Acquire(index int) engine.Item {
	if _, ok := p.live[index]; ok {
		panic(fmt.Sprintf("pool: acquire for live index %d without recycle", index))
	}
	var h *Handle
	if n := len(p.free); n > 0 {
		h = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		h = &Handle{ID: uuid.New()}
		p.allocated++
	}
	h.Index = index
	h.Width, h.Height = 0, 0
	h.insets = p.insets
	p.live[index] = h
	p.acquired++
	return h
}

// Recycle returns a handle to the free list.
func (p *Pool) Recycle(item engine.Item) {
	h := item.(*Handle)
	delete(p.live, h.Index)
	h.Index = -1
	p.free = append(p.free, h)
	p.recycled++
}

// SetSize records the content size of a handle.
func (p *Pool) SetSize(item engine.Item, width, height int) {
	h := item.(*Handle)
	h.Width, h.Height = width, height
}

// Insets returns the handle's decoration insets.
func (p *Pool) Insets(item engine.Item) engine.Insets {
	return item.(*Handle).insets
}

// Live returns the number of currently acquired handles.
func (p *Pool) Live() int { return len(p.live) }

// Stats returns total acquires, recycles, and allocations since the
// pool was created.
func (p *Pool) Stats() (acquired, recycled, allocated int) {
	return p.acquired, p.recycled, p.allocated
}

var _ engine.Materializer = (*Pool)(nil)
