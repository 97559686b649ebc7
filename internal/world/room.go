package world

// Rect is an axis-aligned room footprint used during generation.
// The outer ring (x == X1, x == X2, y == Y1, y == Y2) stays wall; the
// interior is carved.
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // X1+width, Y1+height
}

// NewRect creates a rect from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{
		X1: x,
		Y1: y,
		X2: x + w,
		Y2: y + h,
	}
}

// Center returns the truncated midpoint of the bounding box.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the point is inside the carved interior.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// Intersects reports whether the two rects overlap on both axes.
// The test is inclusive, so rects that share an edge intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}
