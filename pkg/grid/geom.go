package grid

import "fmt"

// Span is the number of grid cells an item occupies along each axis.
// Cols counts cells across the columns of the grid, Rows across the rows.
// Which of the two runs along the scroll axis depends on the orientation
// (see [Config.SpanCells]). Both components must be at least one.
type Span struct {
	Cols int
	Rows int
}

// OneCell is the default span: a single grid cell.
var OneCell = Span{Cols: 1, Rows: 1}

// String returns the span as "ColsxRows", e.g. "2x1".
func (s Span) String() string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}

// Rect is an axis-aligned integer rectangle with exclusive Right and
// Bottom edges. Depending on context it is either in cell space (grid
// units, x across the lanes, y along the scroll axis) or in pixel space
// (cell units multiplied by the per-cell size).
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewRect constructs a rect from an origin and a size.
func NewRect(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent of the rect.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Area returns Width × Height.
func (r Rect) Area() int { return r.Width() * r.Height() }

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether o lies entirely within r.
// A rect contains itself.
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Top >= r.Top && o.Right <= r.Right && o.Bottom <= r.Bottom
}

// Intersects reports whether r and o share at least one cell.
// Rects that merely touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// Adjacent reports whether r and o share a boundary without overlapping.
func (r Rect) Adjacent(o Rect) bool {
	if r.Intersects(o) {
		return false
	}
	return r.Left <= o.Right && o.Left <= r.Right && r.Top <= o.Bottom && o.Top <= r.Bottom
}

// Scale multiplies all four edges by f, converting a cell-space rect
// into pixel space for a per-cell size of f.
func (r Rect) Scale(f int) Rect {
	return Rect{Left: r.Left * f, Top: r.Top * f, Right: r.Right * f, Bottom: r.Bottom * f}
}

// Offset returns the rect translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Transpose swaps the axes of the rect. Used to map layout coordinates
// (x across lanes, y along the scroll axis) into view coordinates for
// horizontally scrolling grids.
func (r Rect) Transpose() Rect {
	return Rect{Left: r.Top, Top: r.Left, Right: r.Bottom, Bottom: r.Right}
}

// String returns the rect as "(left,top)-(right,bottom)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}
