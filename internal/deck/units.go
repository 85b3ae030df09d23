package deck

import "math"

// EMU is an English Metric Unit, the layout unit used for every position and
// size in a deck.
type EMU int64

const (
	// EMUPerInch is the number of EMU in one inch.
	EMUPerInch = 914400
	// EMUPerPoint is the number of EMU in one typographic point.
	EMUPerPoint = 12700
)

// Slide dimensions of every rendered deck (16:9).
var (
	SlideWidth  = Inches(16)
	SlideHeight = Inches(9)
)

// Inches converts a length in inches to EMU.
func Inches(in float64) EMU {
	return EMU(math.Round(in * EMUPerInch))
}

// Pt converts a length in points to EMU.
func Pt(pt float64) EMU {
	return EMU(math.Round(pt * EMUPerPoint))
}

// Rect is an axis-aligned frame on a slide.
type Rect struct {
	X, Y, W, H EMU
}

// Box builds a Rect from inch coordinates.
func Box(x, y, w, h float64) Rect {
	return Rect{X: Inches(x), Y: Inches(y), W: Inches(w), H: Inches(h)}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() EMU { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() EMU { return r.Y + r.H }

// Union returns the smallest Rect containing both r and o. The zero Rect is
// treated as empty.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	if o == (Rect{}) {
		return r
	}
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.Right(), o.Right()) - x,
		H: max(r.Bottom(), o.Bottom()) - y,
	}
}

// Within reports whether r has a positive size and lies inside a w by h
// surface anchored at the origin.
func (r Rect) Within(w, h EMU) bool {
	return r.W > 0 && r.H > 0 &&
		r.X >= 0 && r.Y >= 0 &&
		r.Right() <= w && r.Bottom() <= h
}
