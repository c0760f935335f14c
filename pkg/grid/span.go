package grid

// SpanFunc resolves the span for an item index. It is called once per
// index per layout pass (or once ever, when caching is enabled) and must
// be pure: same index, same span, for the lifetime of a layout
// generation.
type SpanFunc func(index int) Span

// Source resolves item spans for the layout engine.
//
// A Source combines a default span with an optional SpanFunc. Indexes
// the function does not cover (or all indexes, when no function is set)
// resolve to the default. The zero value is not usable; construct with
// [NewSource].
//
// When the span function is expensive, enable the per-index cache with
// [WithCaching]. The engine invalidates the cache whenever the lane
// counts change, since spans are only meaningful relative to a lane
// configuration.
type Source struct {
	def     Span
	fn      SpanFunc
	caching bool
	cache   map[int]Span
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithDefaultSpan overrides the default span returned for indexes the
// span function does not cover. The default is a single cell.
func WithDefaultSpan(s Span) SourceOption {
	return func(src *Source) { src.def = s }
}

// WithSpanFunc sets the per-index span function.
func WithSpanFunc(fn SpanFunc) SourceOption {
	return func(src *Source) { src.fn = fn }
}

// WithCaching enables the per-index span cache.
func WithCaching() SourceOption {
	return func(src *Source) { src.caching = true }
}

// NewSource creates a span source. With no options every index resolves
// to a single cell.
func NewSource(opts ...SourceOption) *Source {
	src := &Source{def: OneCell}
	for _, opt := range opts {
		opt(src)
	}
	if src.caching {
		src.cache = make(map[int]Span)
	}
	return src
}

// SpanAt returns the span for index. Invalid spans are returned as-is;
// validation happens where spans are consumed, at placement time.
func (s *Source) SpanAt(index int) Span {
	if s.fn == nil {
		return s.def
	}
	if s.caching {
		if sp, ok := s.cache[index]; ok {
			return sp
		}
	}
	sp := s.fn(index)
	if s.caching {
		s.cache[index] = sp
	}
	return sp
}

// InvalidateCache drops all cached spans. Call whenever the grid's lane
// counts change; a no-op when caching is disabled.
func (s *Source) InvalidateCache() {
	if s.caching {
		s.cache = make(map[int]Span)
	}
}
