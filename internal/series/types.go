package series

import "math"

// Position is a body's location in simulation units.
type Position struct {
	X, Y, Z float64
}

func (p Position) Sub(o Position) Position  { return Position{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Position) Scale(s float64) Position { return Position{p.X * s, p.Y * s, p.Z * s} }
func (p Position) Add(o Position) Position  { return Position{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Position) Length() float64          { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }
func (p Position) IsFinite() bool           { return finite(p.X) && finite(p.Y) && finite(p.Z) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Frame holds one position per body for a single time step, indexed by
// body order.
type Frame []Position

func (f Frame) Clone() Frame {
	c := make(Frame, len(f))
	copy(c, f)
	return c
}

// Centroid returns the unweighted mean position of the frame.
func (f Frame) Centroid() Position {
	if len(f) == 0 {
		return Position{}
	}
	var c Position
	for _, p := range f {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(f)))
}

// Spread is the RMS distance of the bodies from their centroid.
func (f Frame) Spread() float64 {
	if len(f) == 0 {
		return 0
	}
	c := f.Centroid()
	sum := 0.0
	for _, p := range f {
		d := p.Sub(c)
		sum += d.X*d.X + d.Y*d.Y + d.Z*d.Z
	}
	return math.Sqrt(sum / float64(len(f)))
}
