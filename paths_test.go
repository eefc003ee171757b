package chord

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"honnef.co/go/curve"
)

func TestAddPathsValidation(t *testing.T) {
	tests := []struct {
		name  string
		batch PathBatch
	}{
		{
			"mismatched ends",
			PathBatch{Starts: []float64{10, 20}, Ends: []float64{200}},
		},
		{
			"start widths only",
			PathBatch{Starts: []float64{10}, Ends: []float64{200}, StartWidths: []float64{5}},
		},
		{
			"end widths only",
			PathBatch{Starts: []float64{10}, Ends: []float64{200}, EndWidths: []float64{5}},
		},
		{
			"width length mismatch",
			PathBatch{Starts: []float64{10, 20}, Ends: []float64{200, 210},
				StartWidths: []float64{5}, EndWidths: []float64{5, 5}},
		},
		{
			"control length mismatch",
			PathBatch{Starts: []float64{10}, Ends: []float64{200}, Controls: []curve.Point{{}, {}}},
		},
		{
			"color length mismatch",
			PathBatch{Starts: []float64{10}, Ends: []float64{200}, Colors: []gg.RGBA{gg.Red, gg.Blue}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newFakeSurface()
			d, err := New(surface, 4)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if err := d.AddPaths(tt.batch); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("AddPaths() error = %v, want ErrInvalidArgument", err)
			}
			if len(surface.paths) != 0 {
				t.Errorf("invalid batch still drew %d paths", len(surface.paths))
			}
			if d.TotalPaths() != 0 {
				t.Errorf("TotalPaths() = %d after invalid batch, want 0", d.TotalPaths())
			}
		})
	}
}

func TestAddPathsEmptyBatch(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := d.AddPaths(PathBatch{}); err != nil {
		t.Fatalf("AddPaths(empty) error = %v", err)
	}
	if len(surface.paths) != 0 || d.TotalPaths() != 0 {
		t.Errorf("empty batch drew %d paths, total %d", len(surface.paths), d.TotalPaths())
	}
}

func TestAddPathsLines(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Both angles inside segments: 40 in segment 0, 200 in segment 2.
	if err := d.AddPaths(PathBatch{Starts: []float64{40}, Ends: []float64{200}}); err != nil {
		t.Fatalf("AddPaths() error = %v", err)
	}
	if len(surface.paths) != 1 {
		t.Fatalf("drew %d paths, want 1", len(surface.paths))
	}

	p := surface.paths[0]
	if len(p.Path) != 2 {
		t.Errorf("line path has %d elements, want 2", len(p.Path))
	}
	if p.Stroke != Set1.Color(0) {
		t.Errorf("stroke = %v, want segment 0 color %v", p.Stroke, Set1.Color(0))
	}
	if p.Fill.A != 0 {
		t.Errorf("line has fill %v, want none", p.Fill)
	}
	if p.LineWidth != 2 {
		t.Errorf("line width = %v, want default 2", p.LineWidth)
	}
	if p.Opacity != 0.5 {
		t.Errorf("opacity = %v, want default 0.5", p.Opacity)
	}
	// Default control point is the ring center.
	if want := curve.Pt(500, 500); !approxPt(p.Path[1].P0, want) {
		t.Errorf("control = %v, want ring center %v", p.Path[1].P0, want)
	}
	if d.TotalPaths() != 1 {
		t.Errorf("TotalPaths() = %d, want 1", d.TotalPaths())
	}
}

func TestAddPathsRibbons(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = d.AddPaths(PathBatch{
		Starts:      []float64{40},
		Ends:        []float64{200},
		StartWidths: []float64{8},
		EndWidths:   []float64{4},
		Alpha:       0.8,
	})
	if err != nil {
		t.Fatalf("AddPaths() error = %v", err)
	}

	p := surface.paths[0]
	// Default 10 arc splines per mouth.
	if got, want := len(p.Path), 2*10+4; got != want {
		t.Errorf("ribbon has %d elements, want %d", got, want)
	}
	if p.Fill != Set1.Color(0) {
		t.Errorf("fill = %v, want segment 0 color %v", p.Fill, Set1.Color(0))
	}
	if p.Stroke.A != 0 {
		t.Errorf("ribbon has stroke %v, want none", p.Stroke)
	}
	if p.Opacity != 0.8 {
		t.Errorf("opacity = %v, want 0.8", p.Opacity)
	}
	if want := d.geom.XY(40-4, d.innerRadius); !approxPt(p.Path[0].P0, want) {
		t.Errorf("ribbon starts at %v, want %v", p.Path[0].P0, want)
	}
}

func TestAddPathsRibbonWidthFloor(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = d.AddPaths(PathBatch{
		Starts:      []float64{40},
		Ends:        []float64{200},
		StartWidths: []float64{0.001}, // far below the 0.1 degree floor
		EndWidths:   []float64{4},
	})
	if err != nil {
		t.Fatalf("AddPaths() error = %v", err)
	}

	p := surface.paths[0]
	if want := d.geom.XY(40-0.05, d.innerRadius); !approxPt(p.Path[0].P0, want) {
		t.Errorf("floored ribbon starts at %v, want %v", p.Path[0].P0, want)
	}
}

func TestAddPathsRibbonBatch(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = d.AddPaths(PathBatch{
		Starts:      []float64{40, 130, 220},
		Ends:        []float64{200, 290, 20},
		StartWidths: []float64{10, 11, 22},
		EndWidths:   []float64{10, 5, 15},
	})
	if err != nil {
		t.Fatalf("AddPaths() error = %v", err)
	}
	if len(surface.paths) != 3 {
		t.Fatalf("drew %d paths, want 3", len(surface.paths))
	}

	seen := make(map[curve.Point]bool)
	for i, p := range surface.paths {
		if got, want := len(p.Path), 2*10+4; got != want {
			t.Errorf("ribbon %d has %d elements, want %d", i, got, want)
		}
		if p.Path[len(p.Path)-1].Kind != curve.ClosePathKind {
			t.Errorf("ribbon %d does not close", i)
		}
		if last := p.Path[len(p.Path)-2]; !approxPt(last.P2, p.Path[0].P0) {
			t.Errorf("ribbon %d outline ends at %v, want start %v", i, last.P2, p.Path[0].P0)
		}
		if seen[p.Path[0].P0] {
			t.Errorf("ribbon %d duplicates another ribbon's start point", i)
		}
		seen[p.Path[0].P0] = true
	}

	// Starts 40, 130 and 220 sit in segments 0, 1 and 2.
	for i, want := range []gg.RGBA{Set1.Color(0), Set1.Color(1), Set1.Color(2)} {
		if surface.paths[i].Fill != want {
			t.Errorf("ribbon %d fill = %v, want %v", i, surface.paths[i].Fill, want)
		}
	}
}

func TestAddPathsLiteralColors(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = d.AddPaths(PathBatch{
		Starts: []float64{40, 120},
		Ends:   []float64{200, 300},
		Colors: []gg.RGBA{gg.Red, gg.Blue},
	})
	if err != nil {
		t.Fatalf("AddPaths() error = %v", err)
	}
	if surface.paths[0].Stroke != gg.Red || surface.paths[1].Stroke != gg.Blue {
		t.Errorf("strokes = %v, %v, want literal red, blue", surface.paths[0].Stroke, surface.paths[1].Stroke)
	}
}

func TestAddPathsColorModes(t *testing.T) {
	tests := []struct {
		name string
		mode ColorMode
		want gg.RGBA
	}{
		{"by start", ColorByStart, Set1.Color(0)}, // 40 is in segment 0
		{"by end", ColorByEnd, Set1.Color(2)},     // 200 is in segment 2
		{"fixed", ColorFixed, gg.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newFakeSurface()
			d, err := New(surface, 4)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			err = d.AddPaths(PathBatch{Starts: []float64{40}, Ends: []float64{200}, ColorBy: tt.mode})
			if err != nil {
				t.Fatalf("AddPaths() error = %v", err)
			}
			if got := surface.paths[0].Stroke; got != tt.want {
				t.Errorf("stroke = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddPathsGapAnchorsAreBlack(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	// 90 degrees falls in the gap between segments 0 and 1.
	if err := d.AddPaths(PathBatch{Starts: []float64{90}, Ends: []float64{200}}); err != nil {
		t.Fatalf("AddPaths() error = %v", err)
	}
	if got := surface.paths[0].Stroke; got != gg.Black {
		t.Errorf("gap-anchored stroke = %v, want black", got)
	}
}

func TestAddPathsLineWidthAndAlphaFallback(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = d.AddPaths(PathBatch{
		Starts:    []float64{40, 40},
		Ends:      []float64{200, 300},
		LineWidth: 25,  // above the (0, 20] range
		Alpha:     1.5, // above the (0, 1] range
	})
	if err != nil {
		t.Fatalf("AddPaths() error = %v", err)
	}
	p := surface.paths[0]
	if p.LineWidth != 2 || p.Opacity != 0.5 {
		t.Errorf("line width, opacity = %v, %v, want defaults 2, 0.5", p.LineWidth, p.Opacity)
	}
}

func TestAddPathsCustomControls(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = d.AddPaths(PathBatch{
		Starts:   []float64{40},
		Ends:     []float64{200},
		Controls: []curve.Point{curve.Pt(0.25, 0.75)},
	})
	if err != nil {
		t.Fatalf("AddPaths() error = %v", err)
	}
	// Control points are fractions of the 1000px surface.
	if want := curve.Pt(250, 750); !approxPt(surface.paths[0].Path[1].P0, want) {
		t.Errorf("control = %v, want %v", surface.paths[0].Path[1].P0, want)
	}
}

func TestAddPathsSurfaceFailure(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	surface.drawErr = errors.New("boom")
	if err := d.AddPaths(PathBatch{Starts: []float64{40}, Ends: []float64{200}}); !errors.Is(err, surface.drawErr) {
		t.Errorf("AddPaths() error = %v, want the surface's error", err)
	}
	if d.TotalPaths() != 0 {
		t.Errorf("TotalPaths() = %d after failed draw, want 0", d.TotalPaths())
	}
}

func TestTotalPathsAccumulates(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := d.AddPaths(PathBatch{Starts: []float64{40}, Ends: []float64{200}}); err != nil {
		t.Fatalf("AddPaths() error = %v", err)
	}
	if err := d.AddPaths(PathBatch{Starts: []float64{50, 60}, Ends: []float64{210, 220}}); err != nil {
		t.Fatalf("AddPaths() error = %v", err)
	}
	if d.TotalPaths() != 3 {
		t.Errorf("TotalPaths() = %d, want 3", d.TotalPaths())
	}
}

func TestAddPathsBySegmentValidation(t *testing.T) {
	tests := []struct {
		name    string
		batch   SegmentPathBatch
		wantErr error
	}{
		{
			"length mismatch",
			SegmentPathBatch{From: []int{0, 1}, To: []int{2}, FromPos: []float64{0.5, 0.5}, ToPos: []float64{0.5, 0.5}},
			ErrInvalidArgument,
		},
		{
			"one-sided widths",
			SegmentPathBatch{From: []int{0}, To: []int{2}, FromPos: []float64{0.5}, ToPos: []float64{0.5},
				FromWidth: []float64{0.1}},
			ErrInvalidArgument,
		},
		{
			"from segment out of range",
			SegmentPathBatch{From: []int{4}, To: []int{2}, FromPos: []float64{0.5}, ToPos: []float64{0.5}},
			ErrValueOutOfRange,
		},
		{
			"negative to segment",
			SegmentPathBatch{From: []int{0}, To: []int{-1}, FromPos: []float64{0.5}, ToPos: []float64{0.5}},
			ErrValueOutOfRange,
		},
		{
			"position above 1",
			SegmentPathBatch{From: []int{0}, To: []int{2}, FromPos: []float64{1.2}, ToPos: []float64{0.5}},
			ErrValueOutOfRange,
		},
		{
			"negative position",
			SegmentPathBatch{From: []int{0}, To: []int{2}, FromPos: []float64{0.5}, ToPos: []float64{-0.1}},
			ErrValueOutOfRange,
		},
		{
			"width above 1",
			SegmentPathBatch{From: []int{0}, To: []int{2}, FromPos: []float64{0.5}, ToPos: []float64{0.5},
				FromWidth: []float64{1.5}, ToWidth: []float64{0.1}},
			ErrValueOutOfRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newFakeSurface()
			d, err := New(surface, 4)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if err := d.AddPathsBySegment(tt.batch); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddPathsBySegment() error = %v, want %v", err, tt.wantErr)
			}
			if len(surface.paths) != 0 {
				t.Errorf("invalid batch still drew %d paths", len(surface.paths))
			}
		})
	}
}

func TestAddPathsBySegmentFromStart(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Segment 0 spans [5, 85]: a quarter in is 25 degrees.
	err = d.AddPathsBySegment(SegmentPathBatch{
		From:    []int{0},
		To:      []int{2},
		FromPos: []float64{0.25},
		ToPos:   []float64{0},
		Origin:  FromSegmentStart,
	})
	if err != nil {
		t.Fatalf("AddPathsBySegment() error = %v", err)
	}

	p := surface.paths[0]
	if want := d.geom.XY(25, d.innerRadius); !approxPt(p.Path[0].P0, want) {
		t.Errorf("path starts at %v, want the point at 25 degrees %v", p.Path[0].P0, want)
	}
	// Segment 2 spans [185, 265]: position 0 is its start edge.
	if want := d.geom.XY(185, d.innerRadius); !approxPt(p.Path[1].P1, want) {
		t.Errorf("path ends at %v, want the point at 185 degrees %v", p.Path[1].P1, want)
	}
}

func TestAddPathsBySegmentDefaultOriginInverts(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// With the default origin, fractions measure from the segment's end:
	// 0.25 into segment 0 [5, 85] is 5 + 0.75*80 = 65 degrees.
	err = d.AddPathsBySegment(SegmentPathBatch{
		From:    []int{0},
		To:      []int{2},
		FromPos: []float64{0.25},
		ToPos:   []float64{0},
	})
	if err != nil {
		t.Fatalf("AddPathsBySegment() error = %v", err)
	}

	p := surface.paths[0]
	if want := d.geom.XY(65, d.innerRadius); !approxPt(p.Path[0].P0, want) {
		t.Errorf("path starts at %v, want the point at 65 degrees %v", p.Path[0].P0, want)
	}
	// Position 0 from the end of segment 2 [185, 265] is its end edge.
	if want := d.geom.XY(265, d.innerRadius); !approxPt(p.Path[1].P1, want) {
		t.Errorf("path ends at %v, want the point at 265 degrees %v", p.Path[1].P1, want)
	}
}

func TestAddPathsBySegmentRibbons(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Width 0.1 of segment 0's 80 degrees is 8 degrees of mouth. From
	// position 0 the mouth spans [5, 13], so the outline's first point sits
	// on the segment's start edge.
	err = d.AddPathsBySegment(SegmentPathBatch{
		From:      []int{0},
		To:        []int{2},
		FromPos:   []float64{0},
		ToPos:     []float64{0.5},
		FromWidth: []float64{0.1},
		ToWidth:   []float64{0.05},
		Origin:    FromSegmentStart,
	})
	if err != nil {
		t.Fatalf("AddPathsBySegment() error = %v", err)
	}

	p := surface.paths[0]
	if p.Fill.A == 0 {
		t.Fatal("segment batch with widths should draw ribbons")
	}
	if want := d.geom.XY(5, d.innerRadius); !approxPt(p.Path[0].P0, want) {
		t.Errorf("ribbon mouth starts at %v, want the segment edge %v", p.Path[0].P0, want)
	}
}

func TestAddPathsBySegmentMouthClamped(t *testing.T) {
	surface := newFakeSurface()
	d, err := New(surface, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// A mouth at position 1 would leave the segment; it is pulled back so
	// it ends exactly on the end edge [85].
	err = d.AddPathsBySegment(SegmentPathBatch{
		From:      []int{0},
		To:        []int{2},
		FromPos:   []float64{1},
		ToPos:     []float64{1},
		FromWidth: []float64{0.1}, // 8 degrees
		ToWidth:   []float64{0.1},
		Origin:    FromSegmentStart,
	})
	if err != nil {
		t.Fatalf("AddPathsBySegment() error = %v", err)
	}

	p := surface.paths[0]
	if want := d.geom.XY(85-8, d.innerRadius); !approxPt(p.Path[0].P0, want) {
		t.Errorf("clamped mouth starts at %v, want %v", p.Path[0].P0, want)
	}
	// The to-side mouth is clamped with its own width, landing on segment
	// 2's end edge [265].
	endArcLast := p.Path[1+d.cfg.arcSplines]
	if want := d.geom.XY(265-8, d.innerRadius); !approxPt(endArcLast.P2, want) {
		t.Errorf("clamped to-mouth lands at %v, want %v", endArcLast.P2, want)
	}
}
