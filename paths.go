package chord

import (
	"fmt"

	"github.com/gogpu/gg"
	"honnef.co/go/curve"
)

// PathBatch describes a set of connection paths by ring angle. Starts and
// Ends are required and must be the same length; everything else is
// optional.
//
// StartWidths and EndWidths turn the batch into filled ribbons: both must
// be set together, one angular width per path. Leaving both nil draws plain
// stroked lines. Setting only one is an error.
//
// Controls bends each path toward a control point given in fractions of the
// surface size; nil bends every path toward the ring center. Colors
// overrides the ColorBy rule with one literal color per path.
type PathBatch struct {
	Starts []float64
	Ends   []float64

	StartWidths []float64
	EndWidths   []float64

	Controls []curve.Point
	Colors   []gg.RGBA
	ColorBy  ColorMode

	// LineWidth strokes plain lines, in pixels. Zero means the default of
	// 2; values outside (0, 20] are replaced by it with a warning.
	LineWidth float64

	// Alpha is the opacity of the batch. Zero means the default of 0.5;
	// values outside (0, 1] are replaced by it with a warning.
	Alpha float64
}

// AddPaths draws a batch of connection paths between ring angles. Angles
// and widths are in the diagram's unit and may point anywhere, gaps
// included; paths attach to the ring's inner edge.
//
// Ribbon widths are floored at the diagram's minimum ribbon width so thin
// ribbons stay visible. The batch is validated before anything is drawn;
// shape errors wrap ErrInvalidArgument and leave the surface untouched.
func (d *Diagram) AddPaths(b PathBatch) error {
	n := len(b.Starts)
	if len(b.Ends) != n {
		return fmt.Errorf("%w: %d start angles but %d end angles", ErrInvalidArgument, n, len(b.Ends))
	}
	if (b.StartWidths == nil) != (b.EndWidths == nil) {
		return fmt.Errorf("%w: ribbon widths must be given for both ends or neither", ErrInvalidArgument)
	}
	ribbons := b.StartWidths != nil
	if ribbons && (len(b.StartWidths) != n || len(b.EndWidths) != n) {
		return fmt.Errorf("%w: %d paths but %d start widths and %d end widths",
			ErrInvalidArgument, n, len(b.StartWidths), len(b.EndWidths))
	}
	if b.Controls != nil && len(b.Controls) != n {
		return fmt.Errorf("%w: %d paths but %d control points", ErrInvalidArgument, n, len(b.Controls))
	}
	if b.Colors != nil && len(b.Colors) != n {
		return fmt.Errorf("%w: %d paths but %d colors", ErrInvalidArgument, n, len(b.Colors))
	}
	if n == 0 {
		return nil
	}

	lineWidth := b.LineWidth
	if lineWidth <= 0 || lineWidth > 20 {
		if lineWidth != 0 {
			Logger().Warn("chord: line width out of range (0, 20], using default", "width", lineWidth, "default", 2.0)
		}
		lineWidth = 2
	}
	alpha := b.Alpha
	if alpha <= 0 || alpha > 1 {
		if alpha != 0 {
			Logger().Warn("chord: alpha out of range (0, 1], using default", "alpha", alpha, "default", 0.5)
		}
		alpha = 0.5
	}

	colors := d.pathColors(b.Starts, b.Ends, b.Colors, b.ColorBy)
	w, h := d.surface.Size()

	paths := make([]Path, n)
	for i := range paths {
		ctrl := d.geom.center
		if b.Controls != nil {
			ctrl = curve.Pt(b.Controls[i].X*float64(w), b.Controls[i].Y*float64(h))
		}
		if ribbons {
			paths[i] = Path{
				Path: d.ribbonPath(b.Starts[i], b.Ends[i],
					max(b.StartWidths[i], d.cfg.minRibbonWidth),
					max(b.EndWidths[i], d.cfg.minRibbonWidth),
					ctrl, d.cfg.arcSplines),
				Fill:    colors[i],
				Opacity: alpha,
			}
		} else {
			paths[i] = Path{
				Path:      d.linePath(b.Starts[i], b.Ends[i], ctrl),
				Stroke:    colors[i],
				LineWidth: lineWidth,
				Opacity:   alpha,
			}
		}
	}

	if err := d.surface.DrawPaths(paths); err != nil {
		return err
	}
	d.totalPaths += n
	Logger().Debug("chord: paths drawn", "count", n, "ribbons", ribbons, "total", d.totalPaths)
	return nil
}

// PositionOrigin selects which segment edge the position fractions in a
// SegmentPathBatch are measured from.
type PositionOrigin int

const (
	// FromSegmentEnd measures fractions backward from the segment's end:
	// 0 is the end edge, 1 the start edge. The default, matching rings
	// whose positions count down along each segment.
	FromSegmentEnd PositionOrigin = iota
	// FromSegmentStart measures fractions forward from the segment's
	// start: 0 is the start edge, 1 the end edge.
	FromSegmentStart
)

// String returns the origin name.
func (o PositionOrigin) String() string {
	switch o {
	case FromSegmentEnd:
		return "segment end"
	case FromSegmentStart:
		return "segment start"
	default:
		return "unknown"
	}
}

// SegmentPathBatch describes connection paths by segment index and a
// position inside each segment instead of by raw angle. From, To, FromPos
// and ToPos are required and must be the same length.
//
// Positions are fractions of the segment's angular length, measured from
// the edge chosen by Origin. FromWidth and ToWidth are fractions of the
// owning segment's length and follow the same both-or-neither rule as
// PathBatch widths; a ribbon's mouth extends from its position toward the
// segment's interior and is recentered when it would cross the far edge.
type SegmentPathBatch struct {
	From []int
	To   []int

	FromPos []float64
	ToPos   []float64

	FromWidth []float64
	ToWidth   []float64

	Origin PositionOrigin

	Controls []curve.Point
	Colors   []gg.RGBA
	ColorBy  ColorMode

	LineWidth float64
	Alpha     float64
}

// AddPathsBySegment resolves a segment-relative batch to ring angles and
// draws it like AddPaths. Segment indexes outside the ring and fractions
// outside [0, 1] wrap ErrValueOutOfRange; shape errors wrap
// ErrInvalidArgument. Nothing is drawn unless the whole batch is valid.
func (d *Diagram) AddPathsBySegment(b SegmentPathBatch) error {
	n := len(b.From)
	if len(b.To) != n || len(b.FromPos) != n || len(b.ToPos) != n {
		return fmt.Errorf("%w: segment batch slices differ in length: %d from, %d to, %d from positions, %d to positions",
			ErrInvalidArgument, n, len(b.To), len(b.FromPos), len(b.ToPos))
	}
	if (b.FromWidth == nil) != (b.ToWidth == nil) {
		return fmt.Errorf("%w: ribbon widths must be given for both ends or neither", ErrInvalidArgument)
	}
	ribbons := b.FromWidth != nil
	if ribbons && (len(b.FromWidth) != n || len(b.ToWidth) != n) {
		return fmt.Errorf("%w: %d paths but %d from widths and %d to widths",
			ErrInvalidArgument, n, len(b.FromWidth), len(b.ToWidth))
	}

	segments := d.ring.segments
	for i := 0; i < n; i++ {
		if b.From[i] < 0 || b.From[i] >= len(segments) {
			return fmt.Errorf("%w: from segment %d of path %d, ring has %d segments",
				ErrValueOutOfRange, b.From[i], i, len(segments))
		}
		if b.To[i] < 0 || b.To[i] >= len(segments) {
			return fmt.Errorf("%w: to segment %d of path %d, ring has %d segments",
				ErrValueOutOfRange, b.To[i], i, len(segments))
		}
		if b.FromPos[i] < 0 || b.FromPos[i] > 1 {
			return fmt.Errorf("%w: from position %v of path %d, want 0 to 1", ErrValueOutOfRange, b.FromPos[i], i)
		}
		if b.ToPos[i] < 0 || b.ToPos[i] > 1 {
			return fmt.Errorf("%w: to position %v of path %d, want 0 to 1", ErrValueOutOfRange, b.ToPos[i], i)
		}
		if ribbons {
			if b.FromWidth[i] < 0 || b.FromWidth[i] > 1 {
				return fmt.Errorf("%w: from width %v of path %d, want 0 to 1", ErrValueOutOfRange, b.FromWidth[i], i)
			}
			if b.ToWidth[i] < 0 || b.ToWidth[i] > 1 {
				return fmt.Errorf("%w: to width %v of path %d, want 0 to 1", ErrValueOutOfRange, b.ToWidth[i], i)
			}
		}
	}

	batch := PathBatch{
		Starts:   make([]float64, n),
		Ends:     make([]float64, n),
		Controls: b.Controls,
		Colors:   b.Colors,
		ColorBy:  b.ColorBy,

		LineWidth: b.LineWidth,
		Alpha:     b.Alpha,
	}
	if ribbons {
		batch.StartWidths = make([]float64, n)
		batch.EndWidths = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		from, to := segments[b.From[i]], segments[b.To[i]]
		fp, tp := b.FromPos[i], b.ToPos[i]
		if b.Origin == FromSegmentEnd {
			fp, tp = 1-fp, 1-tp
		}
		if ribbons {
			sw := b.FromWidth[i] * from.Length()
			ew := b.ToWidth[i] * to.Length()
			batch.Starts[i] = mouthCenter(from, fp, sw)
			batch.Ends[i] = mouthCenter(to, tp, ew)
			batch.StartWidths[i] = sw
			batch.EndWidths[i] = ew
		} else {
			batch.Starts[i] = from.Start + fp*from.Length()
			batch.Ends[i] = to.Start + tp*to.Length()
		}
	}
	return d.AddPaths(batch)
}

// mouthCenter places a ribbon mouth of angular width inside the segment:
// the mouth grows from the position toward increasing angle, so its center
// sits half a width past it, pulled back when it would cross the segment's
// end edge.
func mouthCenter(seg Segment, pos, width float64) float64 {
	at := seg.Start + pos*seg.Length()
	if at+width > seg.End {
		return seg.End - width/2
	}
	return at + width/2
}
