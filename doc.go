// Package chord renders Circos-style chord diagrams: a ring of colored
// segments with Bezier paths and ribbons connecting points on it.
//
// # Overview
//
// chord is a Pure Go chord-diagram library built on the GoGPU ecosystem.
// It computes the angular layout of the ring, builds the Bezier geometry
// for connection paths, and hands finished drawing primitives to a Surface
// implementation for rasterization or vector export.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/chord"
//	    "github.com/gogpu/chord/ggsurface"
//	)
//
//	// Create a raster surface and a diagram with 4 ring segments.
//	surface := ggsurface.New(1000, 1000)
//	d, err := chord.New(surface, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Connect positions on the ring with translucent ribbons.
//	err = d.AddPathsBySegment(chord.SegmentPathBatch{
//	    From:      []int{0, 1},
//	    To:        []int{2, 3},
//	    FromPos:   []float64{0.25, 0.5},
//	    ToPos:     []float64{0.75, 0.1},
//	    FromWidth: []float64{0.1, 0.2},
//	    ToWidth:   []float64{0.1, 0.05},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Save to PNG.
//	d.Save("diagram.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Diagram, PathBatch, SegmentPathBatch, Palette, Surface
//   - Geometry: ring layout and Bezier construction on honnef.co/go/curve
//   - Surfaces: ggsurface (raster via gogpu/gg), svgsurface (SVG export),
//     recording (capture and replay)
//
// A Surface receives resolved primitives (wedges, paths, labels, legends)
// in device pixels; it never needs to know about segments or angular units.
//
// # Coordinate System
//
// Ring angles use a compass convention:
//   - Angle 0 points up (twelve o'clock)
//   - Angles grow clockwise on screen by default
//   - WithCounterClockwise mirrors the direction
//   - Degrees by default, WithRadians switches the whole diagram
//
// Device coordinates follow standard computer graphics convention: origin
// at top-left, y down.
package chord

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
