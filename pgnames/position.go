package pgnames

import "math"

// Position is a point in galactic space, in light years.
type Position struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Sub returns the component-wise difference of two positions.
func (p Position) Sub(o Position) Position {
	return Position{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Distance returns the Euclidean distance between two positions.
func (p Position) Distance(o Position) float64 {
	d := p.Sub(o)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}
