package scale

import "math"

// Minimum scaled size the GUI scale factor may shrink the screen to.
const (
	minScaledWidth  = 320
	minScaledHeight = 240
)

// Resolution maps display pixels onto GUI units.
type Resolution struct {
	DisplayWidth, DisplayHeight int
	ScaledWidth, ScaledHeight   int
	Factor                      int
}

// New computes the GUI scale for a display of the given size.
//
// Parameters:
//   - displayWidth, displayHeight: framebuffer size in pixels
//   - guiScale: requested scale factor, 0 picks the largest that fits
//   - forceUnicode: rounds odd factors down so unicode glyphs stay crisp
//
// The factor grows while the scaled screen stays at least 320x240 units.
func New(displayWidth, displayHeight, guiScale int, forceUnicode bool) Resolution {
	if guiScale <= 0 {
		guiScale = 1000
	}

	factor := 1
	for factor < guiScale &&
		displayWidth/(factor+1) >= minScaledWidth &&
		displayHeight/(factor+1) >= minScaledHeight {
		factor++
	}

	if forceUnicode && factor%2 != 0 && factor != 1 {
		factor--
	}

	return Resolution{
		DisplayWidth:  displayWidth,
		DisplayHeight: displayHeight,
		ScaledWidth:   int(math.Ceil(float64(displayWidth) / float64(factor))),
		ScaledHeight:  int(math.Ceil(float64(displayHeight) / float64(factor))),
		Factor:        factor,
	}
}

// ToGUI converts a display pixel position to GUI units.
func (r Resolution) ToGUI(x, y int) (int, int) {
	return x / r.Factor, y / r.Factor
}

// ToDisplay converts a GUI position to display pixels.
func (r Resolution) ToDisplay(x, y int) (int, int) {
	return x * r.Factor, y * r.Factor
}

// Changed reports whether other differs in scaled size or factor.
func (r Resolution) Changed(other Resolution) bool {
	return r.ScaledWidth != other.ScaledWidth ||
		r.ScaledHeight != other.ScaledHeight ||
		r.Factor != other.Factor
}
