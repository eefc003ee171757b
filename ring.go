package chord

import (
	"fmt"
	"math"
)

// Segment is one angular slice of the ring. Start and End are in the
// diagram's angular unit; End = Start + length, so End can exceed one full
// turn when the segment wraps past the starting angle of the layout.
type Segment struct {
	Index int
	Start float64
	End   float64
}

// Length returns the angular length of the segment.
func (s Segment) Length() float64 {
	return s.End - s.Start
}

// ring is the computed segment table plus the parameters that produced it.
type ring struct {
	unit     Unit
	segments []Segment
	gap      float64
	segLen   float64
}

// buildRing lays out n equal segments separated by gap, the first one
// starting at start. All angles are in unit u.
func buildRing(n int, gap, start float64, u Unit) (*ring, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: segment count %d, need at least 1", ErrInvalidConfiguration, n)
	}
	full := u.FullTurn()
	segLen := (full - float64(n)*gap) / float64(n)
	if segLen <= 0 {
		return nil, fmt.Errorf("%w: %d gaps of %v %s leave no room for segments",
			ErrInvalidConfiguration, n, gap, u)
	}
	segments := make([]Segment, n)
	for i := range segments {
		s := start + float64(i)*(segLen+gap)
		segments[i] = Segment{Index: i, Start: s, End: s + segLen}
	}
	return &ring{unit: u, segments: segments, gap: gap, segLen: segLen}, nil
}

// locate returns the index of the segment whose span contains the angle.
// Both edges are inclusive. Containment is modular, so angles that differ
// from a segment's span by whole turns still match.
func (r *ring) locate(angle float64) (int, bool) {
	full := r.unit.FullTurn()
	for i, seg := range r.segments {
		d := math.Mod(angle-seg.Start, full)
		if d < 0 {
			d += full
		}
		if d <= seg.Length() {
			return i, true
		}
	}
	return 0, false
}
