package series

import (
	"fmt"
	"math"
)

// Store is the immutable, fully decoded time series plus per-body radii.
// Accessors hand out copies so callers can never mutate the series.
type Store struct {
	frames []Frame
	radii  []float64
}

// NewStore deep-copies frames and radii into a Store. Every frame must hold
// exactly len(radii) positions.
func NewStore(frames []Frame, radii []float64) (*Store, error) {
	s := &Store{
		frames: make([]Frame, len(frames)),
		radii:  make([]float64, len(radii)),
	}
	copy(s.radii, radii)
	for i, f := range frames {
		if len(f) != len(radii) {
			return nil, fmt.Errorf("frame %d has %d bodies, want %d: %w", i, len(f), len(radii), ErrShapeMismatch)
		}
		s.frames[i] = f.Clone()
	}
	return s, nil
}

func (s *Store) FrameCount() int { return len(s.frames) }
func (s *Store) BodyCount() int  { return len(s.radii) }

// Frame returns a copy of frame i.
func (s *Store) Frame(i int) (Frame, error) {
	if i < 0 || i >= len(s.frames) {
		return nil, fmt.Errorf("frame %d of %d: %w", i, len(s.frames), ErrIndexOutOfRange)
	}
	return s.frames[i].Clone(), nil
}

// Radius returns the radius captured for body i.
func (s *Store) Radius(i int) (float64, error) {
	if i < 0 || i >= len(s.radii) {
		return 0, fmt.Errorf("body %d of %d: %w", i, len(s.radii), ErrIndexOutOfRange)
	}
	return s.radii[i], nil
}

func (s *Store) Radii() []float64 {
	r := make([]float64, len(s.radii))
	copy(r, s.radii)
	return r
}

// Spread returns the RMS distance from the centroid for frame i, or 0 when
// i is out of range.
func (s *Store) Spread(i int) float64 {
	if i < 0 || i >= len(s.frames) {
		return 0
	}
	return s.frames[i].Spread()
}

// Bounds returns the axis-aligned extent of every finite position in the
// series. Both corners are zero for an empty series.
func (s *Store) Bounds() (lo, hi Position) {
	lo = Position{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = Position{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	seen := false
	for _, f := range s.frames {
		for _, p := range f {
			if !p.IsFinite() {
				continue
			}
			seen = true
			lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
			lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
			lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
		}
	}
	if !seen {
		return Position{}, Position{}
	}
	return lo, hi
}
