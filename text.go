package chord

import (
	"fmt"

	"github.com/gogpu/gg"
	"honnef.co/go/curve"
)

// DefaultLabelSize is the font size in pixels used by AddLabel unless
// overridden with LabelSize.
const DefaultLabelSize = 16

// LabelOption adjusts one label drawn with AddLabel.
type LabelOption func(*Label)

// LabelSize sets the label's font size in pixels.
func LabelSize(px float64) LabelOption {
	return func(l *Label) { l.Size = px }
}

// LabelColor sets the label's text color.
func LabelColor(c gg.RGBA) LabelOption {
	return func(l *Label) { l.Color = c }
}

// LabelAnchor positions the label relative to its point: 0 aligns the
// left/top edge to it, 0.5 centers, 1 aligns the right/bottom edge.
func LabelAnchor(ax, ay float64) LabelOption {
	return func(l *Label) {
		l.AnchorX = ax
		l.AnchorY = ay
	}
}

// AddLabel draws text at a position given in fractions of the surface
// size, centered there by default. Label positions are plain surface
// coordinates: they do not mirror when the diagram runs counter-clockwise.
func (d *Diagram) AddLabel(text string, x, y float64, opts ...LabelOption) error {
	w, h := d.surface.Size()
	label := Label{
		Text:    text,
		At:      curve.Pt(x*float64(w), y*float64(h)),
		Size:    DefaultLabelSize,
		Color:   gg.Black,
		AnchorX: 0.5,
		AnchorY: 0.5,
	}
	for _, opt := range opts {
		opt(&label)
	}
	return d.surface.DrawLabel(label)
}

// AddLegend draws a legend mapping segment colors to labels. Pass nil to
// label segments "Segment 1" through "Segment N"; otherwise there must be
// exactly one label per segment or the call fails with ErrInvalidArgument.
// Placement is up to the surface.
func (d *Diagram) AddLegend(title string, labels []string) error {
	n := len(d.ring.segments)
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprintf("Segment %d", i+1)
		}
	}
	if len(labels) != n {
		return fmt.Errorf("%w: %d labels for %d segments", ErrInvalidArgument, len(labels), n)
	}
	entries := make([]LegendEntry, n)
	for i := range entries {
		entries[i] = LegendEntry{Label: labels[i], Color: d.SegmentColor(i)}
	}
	return d.surface.DrawLegend(Legend{Title: title, Entries: entries})
}
