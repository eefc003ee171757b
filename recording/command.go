// Package recording captures surface operations for deferred playback.
//
// A Recorder implements chord.Surface and stores every drawing call as a
// typed command instead of rendering it. The resulting Recording can be
// replayed to any number of real surfaces, so one diagram can be laid out
// once and exported in several formats:
//
//	rec := recording.NewRecorder(1000, 1000)
//	d, _ := chord.New(rec, 12)
//	_ = d.AddPathsBySegment(batch)
//	r := rec.Finish()
//
//	_ = r.Playback(ggsurface.New(1000, 1000))  // raster
//	_ = r.Playback(svgsurface.New(1000, 1000)) // vector
//
// Commands are plain structs and can be inspected directly, which also
// makes the Recorder a convenient test double for code that draws.
package recording

import "github.com/gogpu/chord"

// CommandType identifies the kind of a recorded command.
type CommandType uint8

const (
	CmdWedges CommandType = iota // ring wedge batch
	CmdPaths                     // connection path batch
	CmdLabel                     // single text label
	CmdLegend                    // legend box
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdWedges: "Wedges",
	CmdPaths:  "Paths",
	CmdLabel:  "Label",
	CmdLegend: "Legend",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded operations.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// WedgesCommand records a DrawWedges call.
type WedgesCommand struct {
	// Wedges is the recorded batch.
	Wedges []chord.Wedge
}

// Type implements Command.
func (WedgesCommand) Type() CommandType { return CmdWedges }

// PathsCommand records a DrawPaths call.
type PathsCommand struct {
	// Paths is the recorded batch.
	Paths []chord.Path
}

// Type implements Command.
func (PathsCommand) Type() CommandType { return CmdPaths }

// LabelCommand records a DrawLabel call.
type LabelCommand struct {
	// Label is the recorded label.
	Label chord.Label
}

// Type implements Command.
func (LabelCommand) Type() CommandType { return CmdLabel }

// LegendCommand records a DrawLegend call.
type LegendCommand struct {
	// Legend is the recorded legend.
	Legend chord.Legend
}

// Type implements Command.
func (LegendCommand) Type() CommandType { return CmdLegend }
