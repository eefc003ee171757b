package chord

import "github.com/gogpu/gg"

// ColorMode selects how a path batch picks its colors when no literal
// colors are supplied.
type ColorMode int

const (
	// ColorByStart colors each path like the segment containing its start
	// angle. The default.
	ColorByStart ColorMode = iota
	// ColorByEnd colors each path like the segment containing its end angle.
	ColorByEnd
	// ColorFixed colors every path black. Supply literal colors in the
	// batch to override.
	ColorFixed
)

// String returns the mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorByStart:
		return "by start"
	case ColorByEnd:
		return "by end"
	case ColorFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// pathColors resolves one color per path. Literal colors win when given.
// Otherwise the anchor angle chosen by the mode is located on the ring and
// the owning segment's color is used; angles that fall in a gap get black.
func (d *Diagram) pathColors(starts, ends []float64, literals []gg.RGBA, mode ColorMode) []gg.RGBA {
	if literals != nil {
		return literals
	}
	colors := make([]gg.RGBA, len(starts))
	for i := range colors {
		colors[i] = gg.Black
		if mode == ColorFixed {
			continue
		}
		anchor := starts[i]
		if mode == ColorByEnd {
			anchor = ends[i]
		}
		if seg, ok := d.ring.locate(anchor); ok {
			colors[i] = d.SegmentColor(seg)
		}
	}
	return colors
}
