package grid

import "testing"

func TestSourceDefaults(t *testing.T) {
	src := NewSource()
	for _, idx := range []int{0, 1, 7, 1000} {
		if got := src.SpanAt(idx); got != OneCell {
			t.Errorf("SpanAt(%d) = %v, want %v", idx, got, OneCell)
		}
	}
}

func TestSourceCustomDefault(t *testing.T) {
	src := NewSource(WithDefaultSpan(Span{Cols: 2, Rows: 1}))
	if got := src.SpanAt(3); got != (Span{Cols: 2, Rows: 1}) {
		t.Errorf("SpanAt(3) = %v, want 2x1", got)
	}
}

func TestSourceSpanFunc(t *testing.T) {
	src := NewSource(WithSpanFunc(func(index int) Span {
		if index%2 == 0 {
			return Span{Cols: 2, Rows: 2}
		}
		return OneCell
	}))

	tests := []struct {
		index int
		want  Span
	}{
		{index: 0, want: Span{Cols: 2, Rows: 2}},
		{index: 1, want: OneCell},
		{index: 4, want: Span{Cols: 2, Rows: 2}},
	}
	for _, tt := range tests {
		if got := src.SpanAt(tt.index); got != tt.want {
			t.Errorf("SpanAt(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestSourceCaching(t *testing.T) {
	calls := 0
	src := NewSource(WithCaching(), WithSpanFunc(func(index int) Span {
		calls++
		return Span{Cols: 1, Rows: index + 1}
	}))

	for i := 0; i < 3; i++ {
		if got := src.SpanAt(5); got != (Span{Cols: 1, Rows: 6}) {
			t.Fatalf("SpanAt(5) = %v, want 1x6", got)
		}
	}
	if calls != 1 {
		t.Errorf("span func called %d times, want 1 (cached)", calls)
	}

	src.InvalidateCache()
	src.SpanAt(5)
	if calls != 2 {
		t.Errorf("span func called %d times after invalidation, want 2", calls)
	}
}

func TestSourceInvalidateWithoutCaching(t *testing.T) {
	src := NewSource(WithSpanFunc(func(int) Span { return OneCell }))
	src.InvalidateCache() // must not panic or allocate a cache
	if got := src.SpanAt(0); got != OneCell {
		t.Errorf("SpanAt(0) = %v, want 1x1", got)
	}
}
