package chord

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gogpu/gg"
	"honnef.co/go/curve"
)

// Diagram is a chord diagram under construction: a segmented ring drawn
// onto a Surface, ready to accept connection paths, labels and a legend.
//
// A Diagram is not safe for concurrent use.
type Diagram struct {
	surface Surface
	cfg     config
	ring    *ring
	geom    geometry

	outerRadius float64
	innerRadius float64

	totalPaths int
}

// New creates a diagram with the given number of ring segments and draws
// the ring onto the surface immediately.
//
// The surface fixes the pixel size; radii and the center scale with it.
// Invalid option values fall back to defaults with a logged warning, with
// two exceptions that fail instead: WithArcSplines below 1 returns
// ErrInvalidArgument, and a gap layout that leaves no angular room for
// segments returns ErrInvalidConfiguration.
func New(surface Surface, segments int, opts ...Option) (*Diagram, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: surface must not be nil", ErrInvalidArgument)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.sanitize(Logger())
	if cfg.arcSplines < 1 {
		return nil, fmt.Errorf("%w: arc splines %d, need at least 1", ErrInvalidArgument, cfg.arcSplines)
	}

	ring, err := buildRing(segments, cfg.gap, cfg.start(), cfg.unit)
	if err != nil {
		return nil, err
	}

	w, h := surface.Size()
	scale := float64(min(w, h))
	d := &Diagram{
		surface: surface,
		cfg:     cfg,
		ring:    ring,
		geom: geometry{
			unit:      cfg.unit,
			center:    curve.Pt(cfg.centerX*float64(w), cfg.centerY*float64(h)),
			clockwise: cfg.clockwise,
		},
		outerRadius: cfg.radius * scale,
		innerRadius: (cfg.radius - cfg.ringWidth) * scale,
	}

	if err := d.drawRing(); err != nil {
		return nil, err
	}
	Logger().Debug("chord: diagram created",
		"segments", segments, "segmentLength", ring.segLen, "gap", cfg.gap, "unit", cfg.unit)
	return d, nil
}

// drawRing emits the segment wedges: outlines first, then either the fade
// slices or solid fills, so fills sit on top of the outline's inner edge.
func (d *Diagram) drawRing() error {
	n := len(d.ring.segments)
	wedges := make([]Wedge, 0, d.ringWedgeCount(n))

	if d.cfg.outline {
		for i, seg := range d.ring.segments {
			stroke := d.SegmentColor(i)
			if d.cfg.outlineBlack {
				stroke = gg.Black
			}
			wedges = append(wedges, Wedge{
				Center:      d.geom.center,
				OuterRadius: d.outerRadius,
				InnerRadius: d.innerRadius,
				StartAngle:  d.geom.ScreenAngle(seg.Start),
				SweepAngle:  d.geom.ScreenSweep(seg.Length()),
				Stroke:      stroke,
				StrokeWidth: 1,
				Opacity:     1,
			})
		}
	}

	if d.cfg.fade {
		sliceLen := d.ring.segLen / float64(d.cfg.fadeSteps)
		fadeStep := (1 - d.cfg.minAlpha) / float64(d.cfg.fadeSteps)
		for i, seg := range d.ring.segments {
			fill := d.SegmentColor(i)
			opacity := 1.0
			angle := seg.Start
			for s := 0; s < d.cfg.fadeSteps; s++ {
				wedges = append(wedges, Wedge{
					Center:      d.geom.center,
					OuterRadius: d.outerRadius,
					InnerRadius: d.innerRadius,
					StartAngle:  d.geom.ScreenAngle(angle),
					SweepAngle:  d.geom.ScreenSweep(sliceLen),
					Fill:        fill,
					Opacity:     opacity,
				})
				angle += sliceLen
				opacity -= fadeStep
			}
		}
	} else {
		for i, seg := range d.ring.segments {
			wedges = append(wedges, Wedge{
				Center:      d.geom.center,
				OuterRadius: d.outerRadius,
				InnerRadius: d.innerRadius,
				StartAngle:  d.geom.ScreenAngle(seg.Start),
				SweepAngle:  d.geom.ScreenSweep(seg.Length()),
				Fill:        d.SegmentColor(i),
				Opacity:     1,
			})
		}
	}

	return d.surface.DrawWedges(wedges)
}

// ringWedgeCount returns how many wedges drawRing will emit.
func (d *Diagram) ringWedgeCount(segments int) int {
	n := segments
	if d.cfg.fade {
		n = segments * d.cfg.fadeSteps
	}
	if d.cfg.outline {
		n += segments
	}
	return n
}

// Segments returns a copy of the ring's segment table, in index order.
// Angles are in the diagram's unit.
func (d *Diagram) Segments() []Segment {
	out := make([]Segment, len(d.ring.segments))
	copy(out, d.ring.segments)
	return out
}

// Unit returns the angular unit the diagram was built with.
func (d *Diagram) Unit() Unit {
	return d.cfg.unit
}

// SegmentColor returns the palette color assigned to segment i, cycling
// through the palette when the ring is larger than it.
func (d *Diagram) SegmentColor(i int) gg.RGBA {
	return d.cfg.palette.Color(i)
}

// TotalPaths returns how many connection paths have been drawn so far.
func (d *Diagram) TotalPaths() int {
	return d.totalPaths
}

// Surface returns the surface the diagram draws on.
func (d *Diagram) Surface() Surface {
	return d.surface
}

// Save writes the diagram to a file. The surface must implement
// FileSurface; surfaces that cannot persist return ErrInvalidArgument.
//
// The file extension selects the encoding. A missing extension, or one
// the surface does not list in Formats, is rewritten to the surface's
// native format by appending that extension to path.
func (d *Diagram) Save(path string) error {
	fs, ok := d.surface.(FileSurface)
	if !ok {
		return fmt.Errorf("%w: surface %T cannot save to files", ErrInvalidArgument, d.surface)
	}
	formats := fs.Formats()
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if len(formats) > 0 && !slices.Contains(formats, ext) {
		Logger().Warn("chord: unsupported file extension, using surface default",
			"path", path, "extension", ext, "format", formats[0])
		path += "." + formats[0]
	}
	return fs.Save(path)
}
