package chord

import (
	"github.com/gogpu/gg"
	"honnef.co/go/curve"
)

// Wedge is an annular sector: the area between two radii of a circle, cut
// by two concentric arcs. The ring's segments and their fade slices are
// drawn as wedges.
//
// StartAngle and SweepAngle are screen radians: measured from the +x axis,
// positive toward +y (downward on screen). Coordinates and radii are device
// pixels.
type Wedge struct {
	Center      curve.Point
	OuterRadius float64
	InnerRadius float64
	StartAngle  float64
	SweepAngle  float64

	Fill        gg.RGBA
	Stroke      gg.RGBA
	StrokeWidth float64
	Opacity     float64
}

// Path is a finished Bezier path in device coordinates. A color with zero
// alpha disables the corresponding paint: connection lines carry only
// Stroke, ribbons only Fill.
type Path struct {
	Path      curve.BezPath
	Fill      gg.RGBA
	Stroke    gg.RGBA
	LineWidth float64
	Opacity   float64
}

// Label is a run of text anchored at a device point. AnchorX and AnchorY
// position the text relative to At: 0 aligns the left/top edge, 0.5 centers,
// 1 aligns the right/bottom edge. Size is the font size in pixels.
type Label struct {
	Text    string
	At      curve.Point
	Size    float64
	Color   gg.RGBA
	AnchorX float64
	AnchorY float64
}

// LegendEntry is one row of a legend: a color swatch and its label.
type LegendEntry struct {
	Label string
	Color gg.RGBA
}

// Legend is a titled list of color swatches. Where and how it is drawn is
// up to the surface.
type Legend struct {
	Title   string
	Entries []LegendEntry
}

// Surface consumes finished drawing primitives. The diagram resolves all
// angular layout into device coordinates before calling a Surface, so
// implementations only draw; they never see segments or angular units.
//
// Calls arrive in paint order: primitives from a later call are drawn over
// primitives from an earlier one.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (width, height int)

	// DrawWedges draws annular sectors in slice order.
	DrawWedges(wedges []Wedge) error

	// DrawPaths draws Bezier paths in slice order.
	DrawPaths(paths []Path) error

	// DrawLabel draws one anchored text run.
	DrawLabel(label Label) error

	// DrawLegend draws a legend box.
	DrawLegend(legend Legend) error
}

// FileSurface is a Surface that can persist the drawn diagram to a file.
type FileSurface interface {
	Surface

	// Save writes the diagram to path. If the path's extension is not one
	// of Formats, implementations fall back to their native format and
	// append its extension.
	Save(path string) error

	// Formats returns the supported file extensions, lowercase, without
	// the dot. The first entry is the native format.
	Formats() []string
}
