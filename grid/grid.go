// Package grid provides the toroidal coordinate domain for the simulation.
package grid

import "fmt"

// Point is an integer 2-vector. It is comparable and used as a map key.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Bounds is an axis-aligned half-open rectangle [Min, Max) centered at the
// origin. It is derived once at construction and never mutated.
type Bounds struct {
	Min, Max Point
}

// NewBounds derives symmetric bounds from grid dimensions:
// Max = (width/2, height/2), Min = -Max. Panics on non-positive dimensions.
func NewBounds(width, height int) Bounds {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: non-positive dimensions %dx%d", width, height))
	}
	max := Point{X: width / 2, Y: height / 2}
	return Bounds{
		Min: Point{X: -max.X, Y: -max.Y},
		Max: max,
	}
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() int { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() int { return b.Max.Y - b.Min.Y }

// Area returns the number of grid cells inside the bounds.
func (b Bounds) Area() int { return b.Width() * b.Height() }

// Contains reports whether p lies inside the half-open rectangle.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Wrap maps any integer coordinate into [Min, Max) per axis, identifying
// opposite edges of the grid. Max wraps to Min because iteration ranges
// min..max never include max itself. Correct for inputs arbitrarily far
// outside the bounds, not just one period away.
func (b Bounds) Wrap(p Point) Point {
	return Point{
		X: wrap1(p.X, b.Min.X, b.Max.X),
		Y: wrap1(p.Y, b.Min.Y, b.Max.Y),
	}
}

func wrap1(v, min, max int) int {
	period := max - min
	return min + ((v-min)%period+period)%period
}
