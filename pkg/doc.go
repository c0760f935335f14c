// Package pkg provides the core libraries for spangrid layout computation.
//
// # Overview
//
// Spangrid packs items spanning multiple grid cells into an infinite
// scrollable strip and materializes only the visible window, the way
// virtualized list containers do. The pkg directory is organized into
// three main areas:
//
//  1. [grid] - Domain logic (geometry, spans, free-space tracking, the
//     layout engine)
//  2. [grid/pool], [grid/state], [grid/export] - Host support
//     (materialization, persistence, serialization)
//  3. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow through spangrid:
//
//	Span source (per-item spans)
//	         ↓
//	    [grid/freespace] package (first-fit free-region packing)
//	         ↓
//	    [grid/engine] package (fill, scroll, recycle)
//	         ↓
//	    Materializer (host views or [grid/pool] handles)
//
// # Quick Start
//
// Lay out a three lane grid and scroll it:
//
//	import (
//	    "github.com/matzehuels/spangrid/pkg/grid"
//	    "github.com/matzehuels/spangrid/pkg/grid/engine"
//	    "github.com/matzehuels/spangrid/pkg/grid/pool"
//	)
//
//	p := pool.New(100)
//	eng, _ := engine.New(p,
//	    engine.WithConfig(grid.Config{
//	        Orientation:     grid.Vertical,
//	        VerticalLanes:   3,
//	        HorizontalLanes: 1,
//	    }),
//	    engine.WithSpanSource(grid.NewSource(grid.WithDefaultSpan(grid.OneCell))),
//	)
//	eng.SetViewport(300, 600)
//	_ = eng.FullLayout()
//	consumed := eng.ScrollBy(120)
//
// # Main Packages
//
// [grid] - Shared geometry and configuration: cell rectangles, spans,
// orientation handling, and the span Source with optional caching.
//
// [grid/freespace] - The free-region tracker. Maintains the minimal set
// of maximal free rectangles over an infinite strip and answers first-fit
// queries for spanned placements.
//
// [grid/engine] - The layout engine. Runs full layout passes, fills the
// viewport, recycles offscreen items, clamps scrolling against the
// content end, and answers visibility queries. Diagnostics flow through
// an injectable [engine.Hooks] sink.
//
// [grid/pool] - A reference pool-backed Materializer with handle reuse
// accounting, used by the CLI and the tests.
//
// [grid/state] - Persisted scroll position with memory, file, and Redis
// backends.
//
// [grid/export] - Versioned layout documents: JSON files for tooling and
// a MongoDB archive for services.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/grid/engine/... # Specific package
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/spangrid/pkg/grid
// [grid/freespace]: https://pkg.go.dev/github.com/matzehuels/spangrid/pkg/grid/freespace
// [grid/engine]: https://pkg.go.dev/github.com/matzehuels/spangrid/pkg/grid/engine
// [grid/pool]: https://pkg.go.dev/github.com/matzehuels/spangrid/pkg/grid/pool
// [grid/state]: https://pkg.go.dev/github.com/matzehuels/spangrid/pkg/grid/state
// [grid/export]: https://pkg.go.dev/github.com/matzehuels/spangrid/pkg/grid/export
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/spangrid/pkg/buildinfo
package pkg
