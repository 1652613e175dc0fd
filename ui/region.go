package ui

// hitMargin is how far past each edge a pointer still counts as inside.
const hitMargin = 1

// Region is an axis-aligned rectangle in GUI units. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Region struct {
	Left, Top     int
	Width, Height int
}

// Right returns the exclusive right edge.
func (r Region) Right() int {
	return r.Left + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Region) Bottom() int {
	return r.Top + r.Height
}

// Valid reports whether the region has a non-negative size.
func (r Region) Valid() bool {
	return r.Width >= 0 && r.Height >= 0
}

// Contains reports whether (x, y) lies inside the region grown by one unit on
// every side, so points on the border of adjacent modules never fall in a gap.
func (r Region) Contains(x, y int) bool {
	return r.ContainsMargin(x, y, hitMargin)
}

// ContainsMargin is Contains with a caller supplied margin.
func (r Region) ContainsMargin(x, y, margin int) bool {
	return x >= r.Left-margin && x < r.Right()+margin &&
		y >= r.Top-margin && y < r.Bottom()+margin
}

// Overlaps reports whether r and other share any interior area.
// Adjacent regions are not overlapping.
func (r Region) Overlaps(other Region) bool {
	return r.Left < other.Right() && r.Right() > other.Left &&
		r.Top < other.Bottom() && r.Bottom() > other.Top
}

// Translate returns the region moved by (dx, dy).
func (r Region) Translate(dx, dy int) Region {
	r.Left += dx
	r.Top += dy
	return r
}

// ExtendToInclude grows r until it covers other.
//
// Left and top growth move the anchor outward and enlarge the size; right and
// bottom growth only enlarge the size. The order is fixed: anchor moves first.
func (r *Region) ExtendToInclude(other Region) {
	if other.Left < r.Left {
		r.Width += r.Left - other.Left
		r.Left = other.Left
	}
	if other.Top < r.Top {
		r.Height += r.Top - other.Top
		r.Top = other.Top
	}
	if other.Right() > r.Right() {
		r.Width = other.Right() - r.Left
	}
	if other.Bottom() > r.Bottom() {
		r.Height = other.Bottom() - r.Top
	}
}
