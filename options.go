package chord

import (
	"log/slog"
	"math"
)

// Option configures a Diagram during creation.
//
// Out-of-range values do not fail New; they are replaced by the documented
// default and reported through the package logger at warn level. Use
// SetLogger to see what was rewritten.
//
// Example:
//
//	// Default layout
//	d, err := chord.New(surface, 8)
//
//	// Narrow ring, no fade, radians everywhere
//	d, err := chord.New(surface, 8,
//	    chord.WithRingWidth(0.02),
//	    chord.WithoutFade(),
//	    chord.WithRadians(),
//	)
type Option func(*config)

// config holds the resolved diagram configuration.
type config struct {
	unit      Unit
	clockwise bool

	radius    float64
	ringWidth float64
	centerX   float64
	centerY   float64

	gap    float64
	gapSet bool

	startPosition StartPosition
	startAngle    float64
	startAngleSet bool

	palette Palette

	fade      bool
	fadeSteps int
	minAlpha  float64

	outline      bool
	outlineBlack bool

	minRibbonWidth    float64
	minRibbonWidthSet bool
	arcSplines        int
}

// defaultConfig returns the default diagram configuration: a degree-based
// clockwise ring at the figure center, radius 0.45, ring width 0.04, 10
// degree gaps starting at the top gap, Set1 colors, faded fills with
// outlines.
func defaultConfig() config {
	return config{
		unit:       Degrees,
		clockwise:  true,
		radius:     0.45,
		ringWidth:  0.04,
		centerX:    0.5,
		centerY:    0.5,
		palette:    Set1,
		fade:       true,
		fadeSteps:  1000,
		minAlpha:   0.00005,
		outline:    true,
		arcSplines: 10,
	}
}

// WithRadians switches the diagram to radians. Every angle the diagram
// accepts afterwards (gaps, path endpoints, ribbon widths, start angles)
// is read as radians.
func WithRadians() Option {
	return func(c *config) { c.unit = Radians }
}

// WithCounterClockwise makes angles grow counter-clockwise on screen.
// Angle 0 still points up.
func WithCounterClockwise() Option {
	return func(c *config) { c.clockwise = false }
}

// WithRadius sets the outer ring radius as a fraction of the smaller
// surface dimension. Valid range (0.1, 0.5); default 0.45.
func WithRadius(r float64) Option {
	return func(c *config) { c.radius = r }
}

// WithRingWidth sets the radial thickness of the ring as a fraction of the
// smaller surface dimension. Valid range (0.01, radius); default 0.04.
func WithRingWidth(w float64) Option {
	return func(c *config) { c.ringWidth = w }
}

// WithCenter positions the ring center as fractions of the surface size.
// Valid range (0, 1) per coordinate; default (0.5, 0.5).
func WithCenter(x, y float64) Option {
	return func(c *config) {
		c.centerX = x
		c.centerY = y
	}
}

// WithGap sets the angular gap between adjacent segments, in the diagram's
// unit. Valid range 0 to one sixth of a turn (60 degrees); default one
// thirty-sixth of a turn (10 degrees).
func WithGap(gap float64) Option {
	return func(c *config) {
		c.gap = gap
		c.gapSet = true
	}
}

// WithStartPosition anchors segment 0 at a named compass position.
// Default StartTopGap. Overrides any earlier WithStartAngle.
func WithStartPosition(p StartPosition) Option {
	return func(c *config) {
		c.startPosition = p
		c.startAngleSet = false
	}
}

// WithStartAngle starts segment 0 at an explicit ring angle in the
// diagram's unit. The angle is normalized to one turn. Overrides any
// earlier WithStartPosition.
func WithStartAngle(angle float64) Option {
	return func(c *config) {
		c.startAngle = angle
		c.startAngleSet = true
	}
}

// WithPalette sets the segment color palette. Colors cycle when the ring
// has more segments than the palette has entries. Default Set1.
func WithPalette(p Palette) Option {
	return func(c *config) { c.palette = p }
}

// WithPaletteName selects a built-in palette by name, case-insensitively.
// Unknown names keep Set1 and log a warning.
func WithPaletteName(name string) Option {
	return func(c *config) {
		p, ok := PaletteByName(name)
		if !ok {
			Logger().Warn("chord: unknown palette, using Set1", "name", name)
		}
		c.palette = p
	}
}

// WithoutFade fills segments with solid color instead of the default fade
// from opaque at the start edge to transparent at the end edge.
func WithoutFade() Option {
	return func(c *config) { c.fade = false }
}

// WithFadeSteps sets how many constant-opacity slices each faded segment is
// cut into. More steps give a smoother fade. Minimum 1; default 1000.
func WithFadeSteps(n int) Option {
	return func(c *config) { c.fadeSteps = n }
}

// WithMinAlpha sets the opacity the fade reaches at a segment's end edge.
// Valid range 0 to 1 exclusive; default 0.00005.
func WithMinAlpha(a float64) Option {
	return func(c *config) { c.minAlpha = a }
}

// WithoutOutline disables the thin arc outlining each segment.
func WithoutOutline() Option {
	return func(c *config) { c.outline = false }
}

// WithBlackOutline outlines segments in black instead of their own color.
func WithBlackOutline() Option {
	return func(c *config) { c.outlineBlack = true }
}

// WithMinRibbonWidth sets the floor for ribbon end widths, in the diagram's
// unit. Narrower ribbons are widened to this so they stay visible. Must be
// positive; default one 3600th of a turn (0.1 degrees).
func WithMinRibbonWidth(w float64) Option {
	return func(c *config) {
		c.minRibbonWidth = w
		c.minRibbonWidthSet = true
	}
}

// WithArcSplines sets how many cubic segments approximate each ribbon
// endpoint arc. Must be at least 1 or New fails; default 10.
func WithArcSplines(n int) Option {
	return func(c *config) { c.arcSplines = n }
}

// sanitize replaces out-of-range values with defaults, logging each
// replacement. Called once by New after all options are applied, so the
// checks see the final unit.
func (c *config) sanitize(log *slog.Logger) {
	full := c.unit.FullTurn()

	if c.radius <= 0.1 || c.radius >= 0.5 {
		log.Warn("chord: radius out of range (0.1, 0.5), using default", "radius", c.radius, "default", 0.45)
		c.radius = 0.45
	}
	if c.ringWidth <= 0.01 || c.ringWidth >= c.radius {
		log.Warn("chord: ring width out of range (0.01, radius), using default", "width", c.ringWidth, "default", 0.04)
		c.ringWidth = 0.04
	}
	if c.centerX <= 0 || c.centerX >= 1 {
		log.Warn("chord: center x out of range (0, 1), using default", "x", c.centerX, "default", 0.5)
		c.centerX = 0.5
	}
	if c.centerY <= 0 || c.centerY >= 1 {
		log.Warn("chord: center y out of range (0, 1), using default", "y", c.centerY, "default", 0.5)
		c.centerY = 0.5
	}

	defaultGap := full / 36
	if !c.gapSet {
		c.gap = defaultGap
	} else if c.gap < 0 || c.gap > full/6 {
		log.Warn("chord: gap out of range [0, sixth of a turn], using default", "gap", c.gap, "default", defaultGap)
		c.gap = defaultGap
	}

	if c.startAngleSet {
		c.startAngle = math.Mod(c.startAngle, full)
		if c.startAngle < 0 {
			c.startAngle += full
		}
	}

	if c.fadeSteps < 1 {
		log.Warn("chord: fade steps below 1, using default", "steps", c.fadeSteps, "default", 1000)
		c.fadeSteps = 1000
	}
	if c.minAlpha < 0 || c.minAlpha >= 1 {
		log.Warn("chord: minimum alpha out of range [0, 1), using default", "alpha", c.minAlpha, "default", 0.00005)
		c.minAlpha = 0.00005
	}

	defaultMinWidth := full / 3600
	if !c.minRibbonWidthSet {
		c.minRibbonWidth = defaultMinWidth
	} else if c.minRibbonWidth <= 0 {
		log.Warn("chord: minimum ribbon width not positive, using default", "width", c.minRibbonWidth, "default", defaultMinWidth)
		c.minRibbonWidth = defaultMinWidth
	}
}

// start resolves the ring angle of segment 0's starting edge.
func (c *config) start() float64 {
	if c.startAngleSet {
		return c.startAngle
	}
	anchor, gapCentered := c.startPosition.anchor(c.unit)
	if gapCentered {
		return anchor + c.gap/2
	}
	return anchor
}
