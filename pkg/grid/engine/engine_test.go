package engine_test

import (
	"errors"
	"testing"

	"github.com/matzehuels/spangrid/pkg/grid"
	"github.com/matzehuels/spangrid/pkg/grid/engine"
	"github.com/matzehuels/spangrid/pkg/grid/pool"
)

// newEngine builds an engine over a fresh pool with a 3-lane vertical
// grid, 100px cells via a 300px viewport, unless overridden by opts.
func newEngine(t *testing.T, count int, opts ...engine.Option) (*engine.Engine, *pool.Pool) {
	t.Helper()
	p := pool.New(count)
	base := []engine.Option{
		engine.WithConfig(grid.Config{
			Orientation:     grid.Vertical,
			VerticalLanes:   3,
			HorizontalLanes: 1,
		}),
	}
	eng, err := engine.New(p, append(base, opts...)...)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	eng.SetViewport(300, 300)
	return eng, p
}

func TestNewRejectsInvalidLaneCount(t *testing.T) {
	p := pool.New(0)
	_, err := engine.New(p, engine.WithConfig(grid.Config{
		Orientation:     grid.Vertical,
		VerticalLanes:   0,
		HorizontalLanes: 1,
	}))
	if !errors.Is(err, grid.ErrInvalidLaneCount) {
		t.Fatalf("New with 0 lanes: error = %v, want ErrInvalidLaneCount", err)
	}
}

func TestFullLayoutRowMajor(t *testing.T) {
	// 3 lanes, 10 uniform items, 100px cells, 300x300 viewport:
	// items 0-8 sit row-major in rows 0-2, item 9 alone in row 3.
	eng, p := newEngine(t, 10)
	if err := eng.FullLayout(); err != nil {
		t.Fatalf("FullLayout: %v", err)
	}

	for i := 0; i < 10; i++ {
		cell, pixel, ok := eng.Placement(i)
		if !ok {
			t.Fatalf("item %d has no placement", i)
		}
		wantCell := grid.NewRect(i%3, i/3, 1, 1)
		if cell != wantCell {
			t.Errorf("item %d cell = %v, want %v", i, cell, wantCell)
		}
		if want := wantCell.Scale(100); pixel != want {
			t.Errorf("item %d pixel = %v, want %v", i, pixel, want)
		}
	}

	if got := eng.FirstVisible(); got != 0 {
		t.Errorf("FirstVisible = %d, want 0", got)
	}
	if got := eng.LastVisible(); got != 8 {
		t.Errorf("LastVisible = %d, want 8", got)
	}
	if got := eng.ContentEnd(); got != 400 {
		t.Errorf("ContentEnd = %d, want 400 (row 3 partially below viewport)", got)
	}
	if got := eng.MaterializedCount(); got != 9 {
		t.Errorf("MaterializedCount = %d, want 9", got)
	}
	if got := p.Live(); got != 9 {
		t.Errorf("pool live handles = %d, want 9", got)
	}
}

func TestFullLayoutGapReuse(t *testing.T) {
	// 2 lanes; item 0 spans both, items 1 and 2 are single cells.
	// Item 2 must land in row 1 lane 1, not open row 2.
	spans := map[int]grid.Span{0: {Cols: 2, Rows: 1}}
	eng, _ := newEngine(t, 3,
		engine.WithConfig(grid.Config{
			Orientation:     grid.Vertical,
			VerticalLanes:   2,
			HorizontalLanes: 1,
		}),
		engine.WithSpanSource(grid.NewSource(grid.WithSpanFunc(func(i int) grid.Span {
			if s, ok := spans[i]; ok {
				return s
			}
			return grid.OneCell
		}))),
	)
	if err := eng.FullLayout(); err != nil {
		t.Fatalf("FullLayout: %v", err)
	}

	cell, _, _ := eng.Placement(2)
	if want := grid.NewRect(1, 1, 1, 1); cell != want {
		t.Errorf("item 2 cell = %v, want %v (free-region reuse)", cell, want)
	}
}

func TestFullLayoutInvalidSpan(t *testing.T) {
	eng, _ := newEngine(t, 3,
		engine.WithConfig(grid.Config{
			Orientation:     grid.Vertical,
			VerticalLanes:   2,
			HorizontalLanes: 1,
		}),
		engine.WithSpanSource(grid.NewSource(grid.WithSpanFunc(func(i int) grid.Span {
			if i == 1 {
				return grid.Span{Cols: 3, Rows: 1}
			}
			return grid.OneCell
		}))),
	)

	err := eng.FullLayout()
	if !errors.Is(err, grid.ErrInvalidSpan) {
		t.Fatalf("FullLayout error = %v, want ErrInvalidSpan", err)
	}
	var spanErr *grid.InvalidSpanError
	if !errors.As(err, &spanErr) {
		t.Fatalf("error %v is not an InvalidSpanError", err)
	}
	if spanErr.Span.Cols != 3 || spanErr.Max != 2 {
		t.Errorf("InvalidSpanError = span %v max %d, want span 3x1 max 2", spanErr.Span, spanErr.Max)
	}
	if spanErr.Index != 1 {
		t.Errorf("InvalidSpanError index = %d, want 1", spanErr.Index)
	}
}

func TestFullLayoutIdempotent(t *testing.T) {
	spanFn := func(i int) grid.Span {
		if i%4 == 0 {
			return grid.Span{Cols: 2, Rows: 2}
		}
		return grid.OneCell
	}
	eng, _ := newEngine(t, 20,
		engine.WithSpanSource(grid.NewSource(grid.WithSpanFunc(spanFn))))

	if err := eng.FullLayout(); err != nil {
		t.Fatalf("first FullLayout: %v", err)
	}
	first := make(map[int]grid.Rect)
	for i := 0; i < 20; i++ {
		_, pixel, ok := eng.Placement(i)
		if !ok {
			t.Fatalf("item %d unplaced after first pass", i)
		}
		first[i] = pixel
	}

	if err := eng.FullLayout(); err != nil {
		t.Fatalf("second FullLayout: %v", err)
	}
	for i := 0; i < 20; i++ {
		if _, pixel, _ := eng.Placement(i); pixel != first[i] {
			t.Errorf("item %d pixel frame changed across identical passes: %v != %v", i, pixel, first[i])
		}
	}
}

func TestPlacementsDisjoint(t *testing.T) {
	eng, _ := newEngine(t, 15,
		engine.WithSpanSource(grid.NewSource(grid.WithSpanFunc(func(i int) grid.Span {
			switch i % 5 {
			case 0:
				return grid.Span{Cols: 2, Rows: 1}
			case 3:
				return grid.Span{Cols: 1, Rows: 2}
			default:
				return grid.OneCell
			}
		}))))
	if err := eng.FullLayout(); err != nil {
		t.Fatalf("FullLayout: %v", err)
	}

	for i := 0; i < 15; i++ {
		ci, _, _ := eng.Placement(i)
		for j := i + 1; j < 15; j++ {
			cj, _, _ := eng.Placement(j)
			if ci.Intersects(cj) {
				t.Errorf("items %d and %d overlap: %v, %v", i, j, ci, cj)
			}
		}
	}
}

func TestEmptyDataSet(t *testing.T) {
	eng, _ := newEngine(t, 0)
	if err := eng.FullLayout(); err != nil {
		t.Fatalf("FullLayout on empty set: %v", err)
	}
	if got := eng.FirstVisible(); got != -1 {
		t.Errorf("FirstVisible = %d, want -1", got)
	}
	if got := eng.ScrollBy(100); got != 0 {
		t.Errorf("ScrollBy on empty set consumed %d, want 0", got)
	}
}

func TestHorizontalOrientation(t *testing.T) {
	p := pool.New(6)
	eng, err := engine.New(p, engine.WithConfig(grid.Config{
		Orientation:     grid.Horizontal,
		VerticalLanes:   1,
		HorizontalLanes: 2,
	}))
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	eng.SetViewport(300, 200) // cross extent 200 → 100px cells

	if err := eng.FullLayout(); err != nil {
		t.Fatalf("FullLayout: %v", err)
	}

	// Item 2 occupies the second column of the scroll axis, first lane:
	// in view space that is x ∈ [100,200), y ∈ [0,100).
	bounds, ok := eng.Bounds(2)
	if !ok {
		t.Fatal("item 2 not materialized")
	}
	if want := (grid.Rect{Left: 100, Top: 0, Right: 200, Bottom: 100}); bounds != want {
		t.Errorf("Bounds(2) = %v, want %v", bounds, want)
	}
}

func TestInsetsShrinkContentSize(t *testing.T) {
	p := pool.New(3, pool.WithInsets(engine.Insets{Left: 5, Top: 5, Right: 5, Bottom: 5}))
	eng, err := engine.New(p, engine.WithConfig(grid.Config{
		Orientation:     grid.Vertical,
		VerticalLanes:   3,
		HorizontalLanes: 1,
	}))
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	eng.SetViewport(300, 300)
	if err := eng.FullLayout(); err != nil {
		t.Fatalf("FullLayout: %v", err)
	}

	item, ok := eng.ItemAt(0)
	if !ok {
		t.Fatal("item 0 not materialized")
	}
	h := item.(*pool.Handle)
	if h.Width != 90 || h.Height != 90 {
		t.Errorf("content size = %dx%d, want 90x90 (100px cell minus 5px insets)", h.Width, h.Height)
	}
}
