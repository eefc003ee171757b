package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"honnef.co/go/curve"

	"github.com/gogpu/chord"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdWedges, "Wedges"},
		{CmdPaths, "Paths"},
		{CmdLabel, "Label"},
		{CmdLegend, "Legend"},
		{CommandType(254), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandInterface(t *testing.T) {
	commands := []Command{
		WedgesCommand{},
		PathsCommand{},
		LabelCommand{},
		LegendCommand{},
	}
	expectedTypes := []CommandType{CmdWedges, CmdPaths, CmdLabel, CmdLegend}

	for i, cmd := range commands {
		if got := cmd.Type(); got != expectedTypes[i] {
			t.Errorf("command[%d].Type() = %v, want %v", i, got, expectedTypes[i])
		}
	}
}

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)
	w, h := rec.Size()
	if w != 800 || h != 600 {
		t.Errorf("Size() = (%d, %d), want (800, 600)", w, h)
	}
	if len(rec.Commands()) != 0 {
		t.Errorf("new recorder has %d commands, want 0", len(rec.Commands()))
	}
}

func TestNewRecorderInvalidDimensions(t *testing.T) {
	rec := NewRecorder(-1, 0)
	w, h := rec.Size()
	if w != 1000 || h != 1000 {
		t.Errorf("Size() = (%d, %d), want fallback (1000, 1000)", w, h)
	}
}

func TestRecorderCapturesInOrder(t *testing.T) {
	rec := NewRecorder(100, 100)

	wedge := chord.Wedge{Center: curve.Pt(50, 50), OuterRadius: 40, InnerRadius: 30, SweepAngle: 1, Fill: gg.Red, Opacity: 1}
	path := chord.Path{
		Path:      curve.BezPath{curve.MoveTo(curve.Pt(0, 0)), curve.LineTo(curve.Pt(10, 10))},
		Stroke:    gg.Blue,
		LineWidth: 2,
		Opacity:   1,
	}
	label := chord.Label{Text: "hi", At: curve.Pt(5, 5), Size: 12, Color: gg.Black}
	legend := chord.Legend{Title: "t", Entries: []chord.LegendEntry{{Label: "a", Color: gg.Green}}}

	if err := rec.DrawWedges([]chord.Wedge{wedge}); err != nil {
		t.Fatal(err)
	}
	if err := rec.DrawPaths([]chord.Path{path}); err != nil {
		t.Fatal(err)
	}
	if err := rec.DrawLabel(label); err != nil {
		t.Fatal(err)
	}
	if err := rec.DrawLegend(legend); err != nil {
		t.Fatal(err)
	}

	cmds := rec.Commands()
	if len(cmds) != 4 {
		t.Fatalf("recorded %d commands, want 4", len(cmds))
	}
	wantTypes := []CommandType{CmdWedges, CmdPaths, CmdLabel, CmdLegend}
	for i, want := range wantTypes {
		if cmds[i].Type() != want {
			t.Errorf("command[%d].Type() = %v, want %v", i, cmds[i].Type(), want)
		}
	}

	wc := cmds[0].(WedgesCommand)
	if len(wc.Wedges) != 1 || wc.Wedges[0].Fill != gg.Red {
		t.Errorf("WedgesCommand = %+v, want one red wedge", wc)
	}
	pc := cmds[1].(PathsCommand)
	if len(pc.Paths) != 1 || len(pc.Paths[0].Path) != 2 {
		t.Errorf("PathsCommand = %+v, want one two-element path", pc)
	}
	if lc := cmds[2].(LabelCommand); lc.Label.Text != "hi" {
		t.Errorf("LabelCommand.Label.Text = %q, want %q", lc.Label.Text, "hi")
	}
	if gc := cmds[3].(LegendCommand); gc.Legend.Title != "t" || len(gc.Legend.Entries) != 1 {
		t.Errorf("LegendCommand = %+v, want title %q with one entry", gc, "t")
	}
}

func TestRecorderCopiesInput(t *testing.T) {
	rec := NewRecorder(100, 100)

	wedges := []chord.Wedge{{Fill: gg.Red, Opacity: 1}}
	if err := rec.DrawWedges(wedges); err != nil {
		t.Fatal(err)
	}
	wedges[0].Fill = gg.Blue
	if got := rec.Commands()[0].(WedgesCommand).Wedges[0].Fill; got != gg.Red {
		t.Errorf("recorded wedge fill = %v, want %v", got, gg.Red)
	}

	bez := curve.BezPath{curve.MoveTo(curve.Pt(0, 0)), curve.LineTo(curve.Pt(10, 10))}
	if err := rec.DrawPaths([]chord.Path{{Path: bez, Stroke: gg.Black, LineWidth: 1, Opacity: 1}}); err != nil {
		t.Fatal(err)
	}
	bez[1] = curve.LineTo(curve.Pt(99, 99))
	if got := rec.Commands()[1].(PathsCommand).Paths[0].Path[1].P0; got != curve.Pt(10, 10) {
		t.Errorf("recorded path point = %v, want (10, 10)", got)
	}

	entries := []chord.LegendEntry{{Label: "a", Color: gg.Red}}
	if err := rec.DrawLegend(chord.Legend{Entries: entries}); err != nil {
		t.Fatal(err)
	}
	entries[0].Label = "mutated"
	if got := rec.Commands()[2].(LegendCommand).Legend.Entries[0].Label; got != "a" {
		t.Errorf("recorded legend entry = %q, want %q", got, "a")
	}
}

func TestFinish(t *testing.T) {
	rec := NewRecorder(320, 240)
	if err := rec.DrawLabel(chord.Label{Text: "x", Size: 10, Color: gg.Black}); err != nil {
		t.Fatal(err)
	}

	r := rec.Finish()
	if r.Width() != 320 || r.Height() != 240 {
		t.Errorf("Recording size = (%d, %d), want (320, 240)", r.Width(), r.Height())
	}
	if len(r.Commands()) != 1 {
		t.Errorf("Recording has %d commands, want 1", len(r.Commands()))
	}
}

func TestPlayback(t *testing.T) {
	rec := NewRecorder(100, 100)
	if err := rec.DrawWedges([]chord.Wedge{{Fill: gg.Red, Opacity: 1}}); err != nil {
		t.Fatal(err)
	}
	if err := rec.DrawLabel(chord.Label{Text: "hi", Size: 10, Color: gg.Black}); err != nil {
		t.Fatal(err)
	}
	r := rec.Finish()

	// A second recorder works as a playback destination too.
	dst := NewRecorder(100, 100)
	if err := r.Playback(dst); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}
	cmds := dst.Commands()
	if len(cmds) != 2 {
		t.Fatalf("destination has %d commands, want 2", len(cmds))
	}
	if cmds[0].Type() != CmdWedges || cmds[1].Type() != CmdLabel {
		t.Errorf("destination order = [%v, %v], want [Wedges, Label]", cmds[0].Type(), cmds[1].Type())
	}

	// Replays are repeatable.
	dst2 := NewRecorder(100, 100)
	if err := r.Playback(dst2); err != nil {
		t.Fatalf("second Playback() error = %v", err)
	}
	if len(dst2.Commands()) != 2 {
		t.Errorf("second destination has %d commands, want 2", len(dst2.Commands()))
	}
}

// failSurface fails every drawing call with a fixed error.
type failSurface struct{ err error }

func (s failSurface) Size() (int, int)               { return 100, 100 }
func (s failSurface) DrawWedges([]chord.Wedge) error { return s.err }
func (s failSurface) DrawPaths([]chord.Path) error   { return s.err }
func (s failSurface) DrawLabel(chord.Label) error    { return s.err }
func (s failSurface) DrawLegend(chord.Legend) error  { return s.err }

func TestPlaybackSurfaceError(t *testing.T) {
	rec := NewRecorder(100, 100)
	if err := rec.DrawLabel(chord.Label{Text: "x", Size: 10, Color: gg.Black}); err != nil {
		t.Fatal(err)
	}
	r := rec.Finish()

	sentinel := errors.New("boom")
	err := r.Playback(failSurface{err: sentinel})
	if !errors.Is(err, sentinel) {
		t.Errorf("Playback() error = %v, want wrapped %v", err, sentinel)
	}
}

func TestPlaybackSizeMismatchIsNotAnError(t *testing.T) {
	rec := NewRecorder(100, 100)
	r := rec.Finish()
	if err := r.Playback(NewRecorder(50, 50)); err != nil {
		t.Errorf("Playback() with mismatched size error = %v, want nil", err)
	}
}

func TestDiagramIntegration(t *testing.T) {
	rec := NewRecorder(500, 500)
	d, err := chord.New(rec, 4, chord.WithoutFade())
	if err != nil {
		t.Fatalf("chord.New() error = %v", err)
	}
	err = d.AddPathsBySegment(chord.SegmentPathBatch{
		From:    []int{0},
		To:      []int{2},
		FromPos: []float64{0.5},
		ToPos:   []float64{0.5},
	})
	if err != nil {
		t.Fatalf("AddPathsBySegment() error = %v", err)
	}
	if err := d.AddLegend("", nil); err != nil {
		t.Fatalf("AddLegend() error = %v", err)
	}

	cmds := rec.Commands()
	if len(cmds) != 3 {
		t.Fatalf("recorded %d commands, want 3", len(cmds))
	}
	if cmds[0].Type() != CmdWedges || cmds[1].Type() != CmdPaths || cmds[2].Type() != CmdLegend {
		t.Errorf("order = [%v, %v, %v], want [Wedges, Paths, Legend]",
			cmds[0].Type(), cmds[1].Type(), cmds[2].Type())
	}
	// Four outlined and four filled segments.
	if got := len(cmds[0].(WedgesCommand).Wedges); got != 8 {
		t.Errorf("ring recorded %d wedges, want 8", got)
	}
	if got := len(cmds[2].(LegendCommand).Legend.Entries); got != 4 {
		t.Errorf("legend recorded %d entries, want 4", got)
	}
}
