package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid layout.
var (
	// ErrInvalidLaneCount is wrapped by InvalidLaneCountError and
	// reported when a grid is configured with fewer than one lane.
	ErrInvalidLaneCount = errors.New("lane count must be at least 1")

	// ErrInvalidSpan is wrapped by InvalidSpanError and reported when an
	// item's span cannot fit the configured grid.
	ErrInvalidSpan = errors.New("invalid span size")

	// ErrUnsatisfiable is returned when no free region can host a
	// requested span. With validated lane counts the infinite trailing
	// region always fits, so this indicates a broken internal invariant
	// rather than a recoverable condition.
	ErrUnsatisfiable = errors.New("no free region can satisfy span")
)

// InvalidLaneCountError reports a lane count below one. It is rejected
// at configuration time, before any layout state is mutated.
type InvalidLaneCountError struct {
	Lanes       int
	Orientation Orientation
}

// Error returns a message naming the offending count and orientation.
func (e *InvalidLaneCountError) Error() string {
	return fmt.Sprintf("%s lanes: %v (got %d)", e.Orientation, ErrInvalidLaneCount, e.Lanes)
}

// Unwrap returns ErrInvalidLaneCount so errors.Is matches.
func (e *InvalidLaneCountError) Unwrap() error { return ErrInvalidLaneCount }

// InvalidSpanError reports an item span that exceeds the lane count or
// is below one cell along either axis. It is fatal for the layout pass
// that encountered it; the engine never guesses a fallback span.
type InvalidSpanError struct {
	Index int  // item index whose span was rejected
	Span  Span // the offending span
	Max   int  // current lane count, the maximum cross-axis extent
}

// Error identifies the offending span and the maximum allowed.
func (e *InvalidSpanError) Error() string {
	return fmt.Sprintf("item %d: %v %s: spans must be at least 1x1 and at most %d lanes across", e.Index, ErrInvalidSpan, e.Span, e.Max)
}

// Unwrap returns ErrInvalidSpan so errors.Is matches.
func (e *InvalidSpanError) Unwrap() error { return ErrInvalidSpan }
