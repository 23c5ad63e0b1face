package gradient

// Palette maps cell age to a render color by sampling a gradient at
// age/normalizer. Cells absent from the store get the flat dead color,
// bypassing the gradient entirely.
type Palette struct {
	gradient   *Gradient
	normalizer float32
	dead       Color
}

// DefaultDeadColor is the flat color for dead (absent) cells.
var DefaultDeadColor = Color{R: 0.5, G: 0.5, B: 0.5, A: 1.0}

// DefaultAgeStops is the stock green-to-yellow age ramp.
var DefaultAgeStops = []Stop{
	{At: 0.0, Color: RGB8(139, 190, 28)},
	{At: 0.2, Color: RGB8(162, 201, 38)},
	{At: 0.4, Color: RGB8(185, 212, 47)},
	{At: 0.6, Color: RGB8(209, 222, 57)},
	{At: 0.8, Color: RGB8(232, 233, 66)},
	{At: 1.0, Color: RGB8(255, 244, 76)},
}

// NewPalette builds a palette from the given stops. The normalizer is the
// age at which the ramp saturates; it must be positive.
func NewPalette(stops []Stop, normalizer float32, dead Color) *Palette {
	if normalizer <= 0 {
		panic("gradient: palette normalizer must be positive")
	}
	g := New()
	for _, s := range stops {
		g.Insert(s)
	}
	return &Palette{gradient: g, normalizer: normalizer, dead: dead}
}

// DefaultPalette returns the stock age palette: 6 stops, saturation at age 10.
func DefaultPalette() *Palette {
	return NewPalette(DefaultAgeStops, 10, DefaultDeadColor)
}

// ColorFor returns the render color for a live cell of the given age.
func (p *Palette) ColorFor(age uint64) Color {
	return p.gradient.Sample(float32(age) / p.normalizer)
}

// DeadColor returns the flat color for absent cells.
func (p *Palette) DeadColor() Color { return p.dead }
