package grid

// Orientation selects which axis of the grid scrolls.
type Orientation int

const (
	// Vertical scrolls along the y axis; columns are the lanes.
	Vertical Orientation = iota
	// Horizontal scrolls along the x axis; rows are the lanes.
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Config describes the fixed shape of a spanned grid.
//
// The grid has a fixed number of lanes along the cross (non-scrolling)
// axis and extends indefinitely along the scroll axis. VerticalLanes is
// the column count used when scrolling vertically, HorizontalLanes the
// row count used when scrolling horizontally; only the count matching
// the active orientation is consulted.
//
// CellSize optionally fixes the per-cell pixel size. When zero, cells
// are sized so the lanes exactly fill the viewport's cross extent.
type Config struct {
	Orientation     Orientation
	VerticalLanes   int
	HorizontalLanes int
	CellSize        int
}

// DefaultConfig returns a vertically scrolling single-lane grid with
// derived cell sizing.
func DefaultConfig() Config {
	return Config{Orientation: Vertical, VerticalLanes: 1, HorizontalLanes: 1}
}

// Lanes returns the lane count for the active orientation.
func (c Config) Lanes() int {
	if c.Orientation == Horizontal {
		return c.HorizontalLanes
	}
	return c.VerticalLanes
}

// SpanCells maps a span onto the cell grid for the active orientation,
// returning the extent across the lanes and along the scroll axis.
func (c Config) SpanCells(s Span) (lanes, scroll int) {
	if c.Orientation == Horizontal {
		return s.Rows, s.Cols
	}
	return s.Cols, s.Rows
}

// Validate checks the lane counts. Both must be positive regardless of
// the active orientation, so that switching orientations can never
// activate an invalid count.
func (c Config) Validate() error {
	if c.VerticalLanes < 1 {
		return &InvalidLaneCountError{Lanes: c.VerticalLanes, Orientation: Vertical}
	}
	if c.HorizontalLanes < 1 {
		return &InvalidLaneCountError{Lanes: c.HorizontalLanes, Orientation: Horizontal}
	}
	return nil
}
