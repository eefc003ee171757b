// Command chorddemo renders a chord diagram with randomized ribbons.
//
// The output format follows the file extension: .svg and .svgz produce
// vector output, everything else is rasterized.
package main

import (
	"flag"
	"log"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/gogpu/chord"
	"github.com/gogpu/chord/ggsurface"
	"github.com/gogpu/chord/svgsurface"
)

func main() {
	var (
		width    = flag.Int("width", 1000, "canvas width")
		height   = flag.Int("height", 1000, "canvas height")
		output   = flag.String("output", "chord.png", "output file (.png, .jpg, .svg, .svgz)")
		segments = flag.Int("segments", 12, "number of ring segments")
		paths    = flag.Int("paths", 24, "number of random ribbons")
		gap      = flag.Float64("gap", 10, "gap between segments in degrees")
		palette  = flag.String("palette", "set1", "color palette name")
		fade     = flag.Bool("fade", true, "fade the ring toward the center")
		legend   = flag.Bool("legend", true, "draw a legend")
		title    = flag.String("title", "", "title label at the top of the canvas")
		seed     = flag.Int64("seed", 42, "random seed for ribbon placement")
	)
	flag.Parse()

	surface := newSurface(*output, *width, *height)

	opts := []chord.Option{
		chord.WithGap(*gap),
		chord.WithPaletteName(*palette),
	}
	if !*fade {
		opts = append(opts, chord.WithoutFade())
	}

	d, err := chord.New(surface, *segments, opts...)
	if err != nil {
		log.Fatalf("Failed to build diagram: %v", err)
	}

	if err := d.AddPathsBySegment(randomRibbons(*segments, *paths, *seed)); err != nil {
		log.Fatalf("Failed to add ribbons: %v", err)
	}

	if *legend {
		if err := d.AddLegend("Segments", nil); err != nil {
			log.Fatalf("Failed to add legend: %v", err)
		}
	}
	if *title != "" {
		if err := d.AddLabel(*title, 0.5, 0.04, chord.LabelSize(28)); err != nil {
			log.Fatalf("Failed to add title: %v", err)
		}
	}

	if err := d.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Diagram saved to %s (%dx%d, %d paths)\n", *output, *width, *height, d.TotalPaths())
}

// newSurface picks the surface implementation from the output extension.
func newSurface(output string, width, height int) chord.FileSurface {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(output), ".")) {
	case "svg", "svgz":
		return svgsurface.New(width, height)
	default:
		return ggsurface.New(width, height)
	}
}

// randomRibbons builds a reproducible batch of ribbons between random
// segment positions.
func randomRibbons(segments, count int, seed int64) chord.SegmentPathBatch {
	rng := rand.New(rand.NewSource(seed))

	batch := chord.SegmentPathBatch{
		From:      make([]int, count),
		To:        make([]int, count),
		FromPos:   make([]float64, count),
		ToPos:     make([]float64, count),
		FromWidth: make([]float64, count),
		ToWidth:   make([]float64, count),
		Alpha:     0.6,
	}
	for i := 0; i < count; i++ {
		batch.From[i] = rng.Intn(segments)
		batch.To[i] = rng.Intn(segments)
		batch.FromPos[i] = rng.Float64()
		batch.ToPos[i] = rng.Float64()
		batch.FromWidth[i] = 0.02 + 0.1*rng.Float64()
		batch.ToWidth[i] = 0.02 + 0.1*rng.Float64()
	}
	return batch
}
