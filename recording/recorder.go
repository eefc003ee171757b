package recording

import (
	"fmt"
	"slices"

	"github.com/gogpu/chord"
)

// Recorder implements chord.Surface by storing every drawing call as a
// typed command. Input slices are copied, so callers may reuse them.
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ chord.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder for the given canvas dimensions.
// Non-positive dimensions fall back to 1000x1000.
func NewRecorder(width, height int) *Recorder {
	if width <= 0 || height <= 0 {
		chord.Logger().Warn("recording: dimensions must be positive, using default",
			"width", width, "height", height)
		width, height = 1000, 1000
	}
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
	}
}

// Size returns the recording canvas dimensions in pixels.
func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// DrawWedges records a wedge batch.
func (r *Recorder) DrawWedges(wedges []chord.Wedge) error {
	r.commands = append(r.commands, WedgesCommand{Wedges: slices.Clone(wedges)})
	return nil
}

// DrawPaths records a path batch. The path geometry is copied as well,
// so later mutation of the caller's curves cannot alter the recording.
func (r *Recorder) DrawPaths(paths []chord.Path) error {
	out := slices.Clone(paths)
	for i := range out {
		out[i].Path = slices.Clone(out[i].Path)
	}
	r.commands = append(r.commands, PathsCommand{Paths: out})
	return nil
}

// DrawLabel records a label.
func (r *Recorder) DrawLabel(label chord.Label) error {
	r.commands = append(r.commands, LabelCommand{Label: label})
	return nil
}

// DrawLegend records a legend.
func (r *Recorder) DrawLegend(legend chord.Legend) error {
	legend.Entries = slices.Clone(legend.Entries)
	r.commands = append(r.commands, LegendCommand{Legend: legend})
	return nil
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Finish returns an immutable Recording of the commands captured so far.
// The Recorder should not be used after Finish.
func (r *Recorder) Finish() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Recording is an immutable container for recorded surface operations.
// It can be replayed to any chord.Surface implementation.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recording onto dst in the original order.
// Command coordinates are device pixels of the recording canvas, so dst
// should have the same dimensions; a mismatch is logged, not rescaled.
// Playback stops at the first surface error.
func (r *Recording) Playback(dst chord.Surface) error {
	w, h := dst.Size()
	if w != r.width || h != r.height {
		chord.Logger().Warn("recording: playback surface size differs from recording",
			"recordingWidth", r.width, "recordingHeight", r.height,
			"surfaceWidth", w, "surfaceHeight", h)
	}
	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case WedgesCommand:
			err = dst.DrawWedges(c.Wedges)
		case PathsCommand:
			err = dst.DrawPaths(c.Paths)
		case LabelCommand:
			err = dst.DrawLabel(c.Label)
		case LegendCommand:
			err = dst.DrawLegend(c.Legend)
		}
		if err != nil {
			return fmt.Errorf("replaying command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
