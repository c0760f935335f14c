package engine

import "github.com/matzehuels/spangrid/pkg/grid/state"

// SaveState captures the restorable scroll position: the first visible
// item index. It reports false, nothing worth saving, unless the
// engine was built with [WithStableOrder] and at least one item is
// materialized. No other layout state persists across save/restore;
// the next full layout pass recomputes everything else.
func (e *Engine) SaveState() (state.SavedState, bool) {
	if !e.stableOrder {
		return state.SavedState{}, false
	}
	first := e.FirstVisible()
	if first < 0 {
		return state.SavedState{}, false
	}
	return state.SavedState{FirstVisible: first}, true
}

// RestoreState re-issues the saved first visible index as a
// scroll-to-index request, resolved by the next full layout pass and
// silently dropped if it is out of range by then.
func (e *Engine) RestoreState(s state.SavedState) {
	e.ScrollToIndex(s.FirstVisible)
}
