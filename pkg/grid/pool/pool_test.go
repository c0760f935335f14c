package pool

import (
	"testing"

	"github.com/matzehuels/spangrid/pkg/grid/engine"
)

func TestAcquireRecycleReuse(t *testing.T) {
	p := New(5)

	a := p.Acquire(0).(*Handle)
	b := p.Acquire(1).(*Handle)
	if a.ID == b.ID {
		t.Fatal("distinct handles share an ID")
	}
	if got := p.Live(); got != 2 {
		t.Fatalf("Live() = %d, want 2", got)
	}

	p.Recycle(a)
	c := p.Acquire(2).(*Handle)
	if c.ID != a.ID {
		t.Error("free handle not reused on next acquire")
	}
	if c.Index != 2 {
		t.Errorf("reused handle index = %d, want 2", c.Index)
	}
	if c.Width != 0 || c.Height != 0 {
		t.Errorf("reused handle size = %dx%d, want 0x0", c.Width, c.Height)
	}

	acquired, recycled, allocated := p.Stats()
	if acquired != 3 || recycled != 1 || allocated != 2 {
		t.Errorf("Stats() = (%d, %d, %d), want (3, 1, 2)", acquired, recycled, allocated)
	}
}

func TestAcquireLiveIndexPanics(t *testing.T) {
	p := New(3)
	p.Acquire(1)

	defer func() {
		if recover() == nil {
			t.Error("acquiring a live index did not panic")
		}
	}()
	p.Acquire(1)
}

func TestSetSizeAndInsets(t *testing.T) {
	in := engine.Insets{Left: 4, Top: 2, Right: 4, Bottom: 2}
	p := New(1, WithInsets(in))

	item := p.Acquire(0)
	p.SetSize(item, 92, 96)

	h := item.(*Handle)
	if h.Width != 92 || h.Height != 96 {
		t.Errorf("handle size = %dx%d, want 92x96", h.Width, h.Height)
	}
	if got := p.Insets(item); got != in {
		t.Errorf("Insets() = %v, want %v", got, in)
	}
}

func TestSetCount(t *testing.T) {
	p := New(10)
	h := p.Acquire(7)

	p.SetCount(4)
	if got := p.Count(); got != 4 {
		t.Fatalf("Count() = %d, want 4", got)
	}

	// Shrinking never touches live handles; the engine recycles them on
	// its next layout pass.
	if got := p.Live(); got != 1 {
		t.Errorf("Live() = %d after shrink, want 1", got)
	}
	p.Recycle(h)
	if got := p.Live(); got != 0 {
		t.Errorf("Live() = %d after recycle, want 0", got)
	}
}
