package chord

import (
	"math"

	"honnef.co/go/curve"
)

// Unit is the angular unit a diagram works in. Every angle the diagram
// accepts (gaps, path endpoints, ribbon widths, explicit start angles) is
// interpreted in this unit.
type Unit int

const (
	// Degrees measures angles in degrees, 360 per revolution. The default.
	Degrees Unit = iota
	// Radians measures angles in radians, 2*pi per revolution.
	Radians
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return "unknown"
	}
}

// FullTurn returns one complete revolution in the unit.
func (u Unit) FullTurn() float64 {
	if u == Radians {
		return 2 * math.Pi
	}
	return 360
}

// Radians converts an angle in the unit to radians.
func (u Unit) Radians(angle float64) float64 {
	if u == Radians {
		return angle
	}
	return angle * math.Pi / 180
}

// StartPosition anchors segment 0 on the ring. The plain variants place the
// starting edge of segment 0 exactly on the anchor; the *Gap variants center
// the gap that precedes segment 0 on the anchor instead, so the ring looks
// symmetric around it.
type StartPosition int

const (
	// StartTopGap centers the leading gap at twelve o'clock. The default.
	StartTopGap StartPosition = iota
	// StartTop places segment 0's starting edge at twelve o'clock.
	StartTop
	// StartRightGap centers the leading gap at three o'clock.
	StartRightGap
	// StartRight places segment 0's starting edge at three o'clock.
	StartRight
	// StartBottomGap centers the leading gap at six o'clock.
	StartBottomGap
	// StartBottom places segment 0's starting edge at six o'clock.
	StartBottom
	// StartLeftGap centers the leading gap at nine o'clock.
	StartLeftGap
	// StartLeft places segment 0's starting edge at nine o'clock.
	StartLeft
)

// String returns the position name.
func (p StartPosition) String() string {
	switch p {
	case StartTopGap:
		return "top gap"
	case StartTop:
		return "top"
	case StartRightGap:
		return "right gap"
	case StartRight:
		return "right"
	case StartBottomGap:
		return "bottom gap"
	case StartBottom:
		return "bottom"
	case StartLeftGap:
		return "left gap"
	case StartLeft:
		return "left"
	default:
		return "unknown"
	}
}

// anchor returns the anchor angle in the given unit and whether the leading
// gap is centered on it.
func (p StartPosition) anchor(u Unit) (angle float64, gapCentered bool) {
	quarter := u.FullTurn() / 4
	switch p {
	case StartTop:
		return 0, false
	case StartTopGap:
		return 0, true
	case StartRight:
		return quarter, false
	case StartRightGap:
		return quarter, true
	case StartBottom:
		return 2 * quarter, false
	case StartBottomGap:
		return 2 * quarter, true
	case StartLeft:
		return 3 * quarter, false
	case StartLeftGap:
		return 3 * quarter, true
	default:
		return 0, true
	}
}

// geometry maps ring angles to device coordinates. It is the single
// conversion primitive in the package; wedges and paths both go through it
// so the winding direction stays consistent everywhere.
//
// Ring angle 0 points up and angles grow clockwise on screen. The
// counter-clockwise variant mirrors the x axis, which keeps 0 pointing up.
type geometry struct {
	unit      Unit
	center    curve.Point
	clockwise bool
}

// XY returns the device point at the given ring angle and radius from the
// ring center. Device y grows downward.
func (g geometry) XY(angle, radius float64) curve.Point {
	sin, cos := math.Sincos(g.unit.Radians(angle))
	if !g.clockwise {
		sin = -sin
	}
	return curve.Pt(g.center.X+radius*sin, g.center.Y-radius*cos)
}

// ScreenAngle converts a ring angle to the polar convention wedge primitives
// use: radians from the +x axis, growing toward +y (downward on screen).
func (g geometry) ScreenAngle(angle float64) float64 {
	rad := g.unit.Radians(angle)
	if !g.clockwise {
		rad = -rad
	}
	return rad - math.Pi/2
}

// ScreenSweep converts an angular width to a screen sweep for wedges.
func (g geometry) ScreenSweep(width float64) float64 {
	rad := g.unit.Radians(width)
	if !g.clockwise {
		rad = -rad
	}
	return rad
}
