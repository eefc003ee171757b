// Package svgsurface exports chord diagrams as SVG documents.
//
// The surface records every primitive it receives and replays them into an
// SVG document on Save, so one diagram can be written repeatedly:
//
//	surface := svgsurface.New(1000, 1000)
//	d, _ := chord.New(surface, 6)
//	...
//	d.Save("out.svg")   // plain SVG
//	d.Save("out.svgz")  // gzip-compressed SVG
package svgsurface

import (
	"compress/gzip"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/ajstarks/svgo"
	"github.com/gogpu/gg"
	"honnef.co/go/curve"

	"github.com/gogpu/chord"
)

type opKind int

const (
	opWedges opKind = iota
	opPaths
	opLabel
	opLegend
)

// op is one recorded drawing call, replayed in order on save.
type op struct {
	kind   opKind
	wedges []chord.Wedge
	paths  []chord.Path
	label  chord.Label
	legend chord.Legend
}

// Option configures a Surface during creation.
type Option func(*Surface)

// WithBackground draws a full-size rectangle of the given color behind the
// diagram. The default background is white.
func WithBackground(c gg.RGBA) Option {
	return func(s *Surface) { s.background = c }
}

// WithTransparentBackground omits the background rectangle.
func WithTransparentBackground() Option {
	return func(s *Surface) { s.background = gg.Transparent }
}

// Surface renders chord primitives into SVG. It implements
// chord.FileSurface.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	width      int
	height     int
	background gg.RGBA
	ops        []op
}

var (
	_ chord.FileSurface = (*Surface)(nil)
	_ io.WriterTo       = (*Surface)(nil)
)

// New creates an SVG surface. Non-positive dimensions fall back to
// 1000x1000 with a logged warning.
func New(width, height int, opts ...Option) *Surface {
	if width <= 0 || height <= 0 {
		chord.Logger().Warn("svgsurface: dimensions must be positive, using default",
			"width", width, "height", height, "default", 1000)
		width, height = 1000, 1000
	}
	s := &Surface{
		width:      width,
		height:     height,
		background: gg.White,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// DrawWedges implements chord.Surface.
func (s *Surface) DrawWedges(wedges []chord.Wedge) error {
	s.ops = append(s.ops, op{kind: opWedges, wedges: slices.Clone(wedges)})
	return nil
}

// DrawPaths implements chord.Surface.
func (s *Surface) DrawPaths(paths []chord.Path) error {
	out := slices.Clone(paths)
	for i := range out {
		out[i].Path = slices.Clone(out[i].Path)
	}
	s.ops = append(s.ops, op{kind: opPaths, paths: out})
	return nil
}

// DrawLabel implements chord.Surface.
func (s *Surface) DrawLabel(label chord.Label) error {
	s.ops = append(s.ops, op{kind: opLabel, label: label})
	return nil
}

// DrawLegend implements chord.Surface.
func (s *Surface) DrawLegend(legend chord.Legend) error {
	legend.Entries = slices.Clone(legend.Entries)
	s.ops = append(s.ops, op{kind: opLegend, legend: legend})
	return nil
}

// Formats implements chord.FileSurface.
func (s *Surface) Formats() []string {
	return []string{"svg", "svgz"}
}

// Save implements chord.FileSurface. ".svg" writes a plain document,
// ".svgz" a gzip-compressed one; any other extension falls back to plain
// SVG and appends ".svg" to the path.
func (s *Surface) Save(path string) error {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "svg":
		return s.writeFile(path, false)
	case "svgz":
		return s.writeFile(path, true)
	default:
		chord.Logger().Warn("svgsurface: unsupported extension, saving SVG", "path", path, "extension", ext)
		return s.writeFile(path+".svg", false)
	}
}

func (s *Surface) writeFile(path string, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if compress {
		zw := gzip.NewWriter(f)
		s.render(zw)
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
	} else {
		s.render(f)
	}
	return f.Close()
}

// String renders the current document as plain SVG, mainly for tests and
// embedding.
func (s *Surface) String() string {
	var sb strings.Builder
	s.render(&sb)
	return sb.String()
}

// WriteTo renders the current document as plain SVG to w.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// render replays the recorded operations into an SVG document.
func (s *Surface) render(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(s.width, s.height)
	if s.background.A > 0 {
		canvas.Rect(0, 0, s.width, s.height, "fill:"+rgbString(s.background))
	}
	for _, o := range s.ops {
		switch o.kind {
		case opWedges:
			for _, wd := range o.wedges {
				canvas.Path(wedgePathData(wd), styleOf(wd.Fill, wd.Stroke, wd.StrokeWidth, wd.Opacity))
			}
		case opPaths:
			for _, p := range o.paths {
				canvas.Path(pathData(p.Path), styleOf(p.Fill, p.Stroke, p.LineWidth, p.Opacity))
			}
		case opLabel:
			s.renderLabel(canvas, o.label)
		case opLegend:
			s.renderLegend(canvas, o.legend)
		}
	}
	canvas.End()
}

func f64s(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func rgbString(c gg.RGBA) string {
	to255 := func(v float64) string {
		return strconv.Itoa(int(math.Round(math.Min(math.Max(v, 0), 1) * 255)))
	}
	return "rgb(" + to255(c.R) + "," + to255(c.G) + "," + to255(c.B) + ")"
}

// styleOf builds the inline style for a filled and/or stroked shape.
// Opacity multiplies into the color alphas.
func styleOf(fill, stroke gg.RGBA, lineWidth, opacity float64) string {
	var parts []string
	if fill.A > 0 && opacity > 0 {
		parts = append(parts, "fill:"+rgbString(fill), "fill-opacity:"+f64s(fill.A*opacity))
	} else {
		parts = append(parts, "fill:none")
	}
	if stroke.A > 0 && opacity > 0 && lineWidth > 0 {
		parts = append(parts,
			"stroke:"+rgbString(stroke),
			"stroke-opacity:"+f64s(stroke.A*opacity),
			"stroke-width:"+f64s(lineWidth))
	}
	return strings.Join(parts, ";")
}

// wedgePathData builds the path data for an annular sector: move to the
// inner start corner, out along the radius, along the outer arc, in along
// the far radius and back along the inner arc.
func wedgePathData(w chord.Wedge) string {
	a0 := w.StartAngle
	a1 := w.StartAngle + w.SweepAngle
	at := func(radius, angle float64) (float64, float64) {
		return w.Center.X + radius*math.Cos(angle), w.Center.Y + radius*math.Sin(angle)
	}
	ox0, oy0 := at(w.OuterRadius, a0)
	ox1, oy1 := at(w.OuterRadius, a1)
	ix0, iy0 := at(w.InnerRadius, a0)
	ix1, iy1 := at(w.InnerRadius, a1)

	large := "0"
	if math.Abs(w.SweepAngle) > math.Pi {
		large = "1"
	}
	// SVG's sweep flag 1 follows increasing angle in a y-down coordinate
	// system; the inner arc runs back the other way.
	sweepOut, sweepBack := "1", "0"
	if w.SweepAngle < 0 {
		sweepOut, sweepBack = "0", "1"
	}

	parts := []string{
		"M", f64s(ix0), f64s(iy0),
		"L", f64s(ox0), f64s(oy0),
		"A", f64s(w.OuterRadius), f64s(w.OuterRadius), "0", large, sweepOut, f64s(ox1), f64s(oy1),
		"L", f64s(ix1), f64s(iy1),
		"A", f64s(w.InnerRadius), f64s(w.InnerRadius), "0", large, sweepBack, f64s(ix0), f64s(iy0),
		"Z",
	}
	return strings.Join(parts, " ")
}

// pathData serializes a Bezier path.
func pathData(path curve.BezPath) string {
	parts := make([]string, 0, len(path)*7)
	for _, el := range path {
		switch el.Kind {
		case curve.MoveToKind:
			parts = append(parts, "M", f64s(el.P0.X), f64s(el.P0.Y))
		case curve.LineToKind:
			parts = append(parts, "L", f64s(el.P0.X), f64s(el.P0.Y))
		case curve.QuadToKind:
			parts = append(parts, "Q", f64s(el.P0.X), f64s(el.P0.Y), f64s(el.P1.X), f64s(el.P1.Y))
		case curve.CubicToKind:
			parts = append(parts, "C", f64s(el.P0.X), f64s(el.P0.Y), f64s(el.P1.X), f64s(el.P1.Y), f64s(el.P2.X), f64s(el.P2.Y))
		case curve.ClosePathKind:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

// anchorStyle maps fractional anchors onto SVG text alignment.
func anchorStyle(ax, ay float64) string {
	anchor := "middle"
	switch {
	case ax < 0.25:
		anchor = "start"
	case ax > 0.75:
		anchor = "end"
	}
	baseline := "central"
	switch {
	case ay < 0.25:
		baseline = "hanging"
	case ay > 0.75:
		baseline = "auto"
	}
	return "text-anchor:" + anchor + ";dominant-baseline:" + baseline
}

func (s *Surface) renderLabel(canvas *svg.SVG, l chord.Label) {
	style := "font-family:sans-serif;font-size:" + f64s(l.Size) + "px" +
		";fill:" + rgbString(l.Color) +
		";fill-opacity:" + f64s(l.Color.A) +
		";" + anchorStyle(l.AnchorX, l.AnchorY)
	canvas.Text(round(l.At.X), round(l.At.Y), l.Text, style)
}

// Legend layout constants, in pixels.
const (
	legendPad      = 10
	legendSwatch   = 14
	legendRowH     = 22
	legendTitleH   = 26
	legendMargin   = 16
	legendFontSize = 14

	// Rough sans-serif advance per rune; SVG gives no text metrics.
	legendCharW = 0.6 * legendFontSize
)

func (s *Surface) renderLegend(canvas *svg.SVG, legend chord.Legend) {
	boxW := 0.0
	for _, e := range legend.Entries {
		boxW = max(boxW, legendSwatch+6+legendCharW*float64(len([]rune(e.Label))))
	}
	titleH := 0.0
	if legend.Title != "" {
		boxW = max(boxW, legendCharW*float64(len([]rune(legend.Title))))
		titleH = legendTitleH
	}
	boxW += 2 * legendPad
	boxH := titleH + float64(len(legend.Entries))*legendRowH + 2*legendPad

	x := float64(s.width) - boxW - legendMargin
	y := float64(legendMargin)

	canvas.Rect(round(x), round(y), round(boxW), round(boxH),
		"fill:rgb(255,255,255);fill-opacity:0.9;stroke:rgb(153,153,153);stroke-width:1")

	textStyle := "font-family:sans-serif;font-size:" + f64s(legendFontSize) + "px;fill:rgb(0,0,0);text-anchor:start;dominant-baseline:central"

	cursorY := y + legendPad
	if legend.Title != "" {
		canvas.Text(round(x+legendPad), round(cursorY+legendTitleH/2), legend.Title, textStyle)
		cursorY += titleH
	}
	for _, e := range legend.Entries {
		canvas.Rect(round(x+legendPad), round(cursorY+(legendRowH-legendSwatch)/2),
			legendSwatch, legendSwatch, "fill:"+rgbString(e.Color))
		canvas.Text(round(x+legendPad+legendSwatch+6), round(cursorY+legendRowH/2), e.Label, textStyle)
		cursorY += legendRowH
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
