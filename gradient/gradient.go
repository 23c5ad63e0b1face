// Package gradient provides linear color gradients and the age palette used
// to render cell age.
package gradient

import "sort"

// Color is a 4-channel color with float32 channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB8 builds an opaque Color from 8-bit channel values.
func RGB8(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// Lerp linearly interpolates between c and other by t, componentwise
// including alpha.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Stop is a sampling point on a gradient.
type Stop struct {
	At    float32
	Color Color
}

// NewStop creates a sampling point. At is clamped to [0, 1].
func NewStop(at float32, color Color) Stop {
	return Stop{At: clamp01(at), Color: color}
}

// Gradient is an ordered set of sampling points with linear interpolation
// between them. Stops are kept sorted ascending by position on every insert.
type Gradient struct {
	stops []Stop
}

// New returns a gradient without any sampling points.
func New() *Gradient {
	return &Gradient{}
}

// Default returns an opaque black to opaque white gradient.
func Default() *Gradient {
	return &Gradient{stops: []Stop{
		{At: 0.0, Color: Color{0, 0, 0, 1}},
		{At: 1.0, Color: Color{1, 1, 1, 1}},
	}}
}

// Insert adds a sampling point and re-sorts the stop list. Two stops at the
// same position are both kept; Sample then resolves an exact match to
// whichever of them the search lands on.
func (g *Gradient) Insert(s Stop) {
	g.stops = append(g.stops, s)
	sort.SliceStable(g.stops, func(i, j int) bool {
		return g.stops[i].At < g.stops[j].At
	})
}

// Len returns the number of sampling points.
func (g *Gradient) Len() int { return len(g.stops) }

// Sample evaluates the gradient at q, clamped to [0, 1]. A query left of the
// first stop or right of the last returns that stop's color unchanged;
// between two stops the colors are interpolated linearly. Panics if the
// gradient has fewer than 2 sampling points.
func (g *Gradient) Sample(q float32) Color {
	if len(g.stops) < 2 {
		panic("gradient: sample requires at least 2 stops")
	}

	q = clamp01(q)

	// First stop at or right of q.
	i := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].At >= q
	})

	switch {
	case i == len(g.stops):
		return g.stops[len(g.stops)-1].Color
	case g.stops[i].At == q:
		return g.stops[i].Color
	case i == 0:
		return g.stops[0].Color
	default:
		left := g.stops[i-1]
		right := g.stops[i]
		t := (q - left.At) / (right.At - left.At)
		return left.Color.Lerp(right.Color, t)
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
