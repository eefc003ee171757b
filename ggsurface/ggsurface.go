// Package ggsurface rasterizes chord diagrams with the gg software canvas.
//
// Rendering happens into an in-memory image, so PNG and JPEG export works
// headless:
//
//	surface := ggsurface.New(1000, 1000)
//	d, _ := chord.New(surface, 6)
//	...
//	d.Save("out.png")
package ggsurface

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"honnef.co/go/curve"

	"github.com/gogpu/chord"
)

// Flattening tolerance for wedge arcs, in device pixels.
const wedgeTolerance = 0.1

const jpegQuality = 90

// Option configures a Surface during creation.
type Option func(*Surface)

// WithBackground fills the surface with the given color before anything is
// drawn. The default background is white.
func WithBackground(c gg.RGBA) Option {
	return func(s *Surface) { s.background = c }
}

// WithTransparentBackground leaves the surface fully transparent. JPEG
// output composites transparent pixels onto black, so prefer an opaque
// background when saving JPEGs.
func WithTransparentBackground() Option {
	return func(s *Surface) { s.background = gg.Transparent }
}

// Surface renders chord primitives onto an in-memory raster image using the
// gg drawing context. It implements chord.FileSurface.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	ctx        *gg.Context
	width      int
	height     int
	background gg.RGBA

	fontOnce sync.Once
	font     *text.FontSource
	fontErr  error
}

var _ chord.FileSurface = (*Surface)(nil)

// New creates a raster surface. Non-positive dimensions fall back to
// 1000x1000 with a logged warning.
func New(width, height int, opts ...Option) *Surface {
	if width <= 0 || height <= 0 {
		chord.Logger().Warn("ggsurface: dimensions must be positive, using default",
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
	s.ctx = gg.NewContext(width, height)
	if s.background.A > 0 {
		s.ctx.ClearWithColor(s.background)
	}
	return s
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Context exposes the underlying drawing context for callers that want to
// draw on top of the finished diagram.
func (s *Surface) Context() *gg.Context {
	return s.ctx
}

// DrawWedges implements chord.Surface.
func (s *Surface) DrawWedges(wedges []chord.Wedge) error {
	for i, w := range wedges {
		cs := curve.CircleSegment{
			Center:      w.Center,
			OuterRadius: w.OuterRadius,
			InnerRadius: w.InnerRadius,
			StartAngle:  w.StartAngle,
			SweepAngle:  w.SweepAngle,
		}
		s.trace(cs.Path(wedgeTolerance))
		s.ctx.ClosePath()
		if err := s.paint(w.Fill, w.Stroke, w.StrokeWidth, w.Opacity); err != nil {
			return fmt.Errorf("wedge %d: %w", i, err)
		}
	}
	return nil
}

// DrawPaths implements chord.Surface.
func (s *Surface) DrawPaths(paths []chord.Path) error {
	for i, p := range paths {
		s.trace(p.Path)
		if err := s.paint(p.Fill, p.Stroke, p.LineWidth, p.Opacity); err != nil {
			return fmt.Errorf("path %d: %w", i, err)
		}
	}
	return nil
}

// trace replays a Bezier path into the context's current path.
func (s *Surface) trace(path curve.BezPath) {
	for _, el := range path {
		switch el.Kind {
		case curve.MoveToKind:
			s.ctx.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			s.ctx.LineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			s.ctx.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case curve.CubicToKind:
			s.ctx.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case curve.ClosePathKind:
			s.ctx.ClosePath()
		}
	}
}

// paint fills and strokes the context's current path. Zero-alpha colors
// disable the corresponding paint; opacity scales both.
func (s *Surface) paint(fill, stroke gg.RGBA, lineWidth, opacity float64) error {
	doFill := fill.A > 0 && opacity > 0
	doStroke := stroke.A > 0 && opacity > 0 && lineWidth > 0

	if doFill {
		s.setColor(fill, opacity)
		if doStroke {
			if err := s.ctx.FillPreserve(); err != nil {
				return err
			}
		} else if err := s.ctx.Fill(); err != nil {
			return err
		}
	}
	if doStroke {
		s.setColor(stroke, opacity)
		s.ctx.SetLineWidth(lineWidth)
		return s.ctx.Stroke()
	}
	if !doFill {
		// Nothing to paint; drop the traced path.
		s.ctx.ClearPath()
	}
	return nil
}

func (s *Surface) setColor(c gg.RGBA, opacity float64) {
	s.ctx.SetRGBA(c.R, c.G, c.B, c.A*opacity)
}

// face returns a font face at the given size, loading the bundled Go
// Regular font on first use.
func (s *Surface) face(size float64) (text.Face, error) {
	s.fontOnce.Do(func() {
		s.font, s.fontErr = text.NewFontSource(goregular.TTF)
	})
	if s.fontErr != nil {
		return nil, fmt.Errorf("ggsurface: loading bundled font: %w", s.fontErr)
	}
	return s.font.Face(size), nil
}

// DrawLabel implements chord.Surface.
func (s *Surface) DrawLabel(label chord.Label) error {
	face, err := s.face(label.Size)
	if err != nil {
		return err
	}
	s.ctx.SetFont(face)
	s.setColor(label.Color, 1)
	s.ctx.DrawStringAnchored(label.Text, label.At.X, label.At.Y, label.AnchorX, label.AnchorY)
	return nil
}

// Legend layout constants, in pixels.
const (
	legendPad      = 10
	legendSwatch   = 14
	legendRowH     = 22
	legendTitleH   = 26
	legendMargin   = 16
	legendFontSize = 14
)

// DrawLegend implements chord.Surface. The legend is laid out as a boxed
// column of swatches in the top-right corner.
func (s *Surface) DrawLegend(legend chord.Legend) error {
	face, err := s.face(legendFontSize)
	if err != nil {
		return err
	}
	s.ctx.SetFont(face)

	boxW := 0.0
	for _, e := range legend.Entries {
		w, _ := s.ctx.MeasureString(e.Label)
		boxW = max(boxW, legendSwatch+6+w)
	}
	titleH := 0.0
	if legend.Title != "" {
		w, _ := s.ctx.MeasureString(legend.Title)
		boxW = max(boxW, w)
		titleH = legendTitleH
	}
	boxW += 2 * legendPad
	boxH := titleH + float64(len(legend.Entries))*legendRowH + 2*legendPad

	x := float64(s.width) - boxW - legendMargin
	y := float64(legendMargin)

	s.ctx.DrawRectangle(x, y, boxW, boxH)
	s.setColor(gg.White, 0.9)
	if err := s.ctx.FillPreserve(); err != nil {
		return err
	}
	s.setColor(gg.RGBA{R: 0.6, G: 0.6, B: 0.6, A: 1}, 1)
	s.ctx.SetLineWidth(1)
	if err := s.ctx.Stroke(); err != nil {
		return err
	}

	cursorY := y + legendPad
	if legend.Title != "" {
		s.setColor(gg.Black, 1)
		s.ctx.DrawStringAnchored(legend.Title, x+legendPad, cursorY+legendTitleH/2, 0, 0.5)
		cursorY += titleH
	}
	for _, e := range legend.Entries {
		s.ctx.DrawRectangle(x+legendPad, cursorY+(legendRowH-legendSwatch)/2, legendSwatch, legendSwatch)
		s.setColor(e.Color, 1)
		if err := s.ctx.Fill(); err != nil {
			return err
		}
		s.setColor(gg.Black, 1)
		s.ctx.DrawStringAnchored(e.Label, x+legendPad+legendSwatch+6, cursorY+legendRowH/2, 0, 0.5)
		cursorY += legendRowH
	}
	return nil
}

// Formats implements chord.FileSurface.
func (s *Surface) Formats() []string {
	return []string{"png", "jpg", "jpeg"}
}

// Save implements chord.FileSurface. The format follows the file extension;
// unsupported extensions fall back to PNG and append ".png" to the path.
func (s *Surface) Save(path string) error {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "png":
		return s.ctx.SavePNG(path)
	case "jpg", "jpeg":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := s.ctx.EncodeJPEG(f, jpegQuality); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		chord.Logger().Warn("ggsurface: unsupported extension, saving PNG", "path", path, "extension", ext)
		return s.ctx.SavePNG(path + ".png")
	}
}
