// Package engine orchestrates virtualized spanned-grid layout: full
// layout passes, incremental scrolling, gap filling, and recycling of
// offscreen items.
//
// # Overview
//
// An [Engine] owns the free-space tracker, the per-generation placement
// caches, and the table of currently materialized items. Item handles
// come from an external [Materializer], typically a view pool, which
// the engine asks to acquire, size, and recycle items as the viewport
// moves. The engine itself never renders anything.
//
// # Layout Passes
//
// A full layout pass places every item: it resolves each index's span,
// asks the tracker for a placement, records the cell- and pixel-space
// rects, then materializes the items intersecting the viewport and
// recycles the rest. Once a pass has completed, scrolling is purely
// incremental: the engine translates materialized items, recycles the
// side the viewport moved away from, and fills the newly exposed rows
// from the placement caches, with no re-packing and no span re-resolution.
//
// # Usage
//
//	eng, err := engine.New(pool,
//	    engine.WithConfig(grid.Config{
//	        Orientation:     grid.Vertical,
//	        VerticalLanes:   3,
//	        HorizontalLanes: 1,
//	    }),
//	    engine.WithSpanSource(spans),
//	)
//	if err != nil {
//	    return err
//	}
//	eng.SetViewport(300, 300)
//	if err := eng.FullLayout(); err != nil {
//	    return err
//	}
//	consumed := eng.ScrollBy(120)
//
// # Concurrency
//
// Engines are single-threaded and synchronous: every operation runs to
// completion on the caller's goroutine before returning. Re-entrant
// calls into the engine from a materializer callback are a usage error;
// materialization is assumed to be a quick, pool-backed fetch with no
// side effects on the engine's own state.
package engine
