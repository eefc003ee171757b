package chord

import "honnef.co/go/curve"

// Paths attach to the ring's inner edge. A plain connection is a single
// quadratic from start to end bending toward a control point; a ribbon is a
// closed outline built from two such quadratics offset by half a width on
// each side, joined by arcs that hug the inner edge.

// linePath builds the open quadratic for a plain connection line.
func (d *Diagram) linePath(start, end float64, ctrl curve.Point) curve.BezPath {
	return curve.BezPath{
		curve.MoveTo(d.geom.XY(start, d.innerRadius)),
		curve.QuadTo(ctrl, d.geom.XY(end, d.innerRadius)),
	}
}

// ribbonPath builds the closed ribbon outline. Widths are angular, in the
// diagram's unit; the outline runs start-startWidth/2 -> end+endWidth/2
// along one quadratic, arcs across the end mouth, returns on the second
// quadratic and arcs across the start mouth before closing. The element
// count is always 2*splines+4.
func (d *Diagram) ribbonPath(start, end, startWidth, endWidth float64, ctrl curve.Point, splines int) curve.BezPath {
	sHalf := startWidth / 2
	eHalf := endWidth / 2
	path := make(curve.BezPath, 0, 2*splines+4)
	path = append(path,
		curve.MoveTo(d.geom.XY(start-sHalf, d.innerRadius)),
		curve.QuadTo(ctrl, d.geom.XY(end+eHalf, d.innerRadius)),
	)
	path = d.appendMouthArc(path, end+eHalf, end-eHalf, splines)
	path = append(path, curve.QuadTo(ctrl, d.geom.XY(start+sHalf, d.innerRadius)))
	path = d.appendMouthArc(path, start+sHalf, start-sHalf, splines)
	path = append(path, curve.ClosePath())
	return path
}

// appendMouthArc traces the ribbon mouth from ring angle from to ring angle
// to as `splines` cubics. Control and end points are sampled every third of
// a spline along the arc; the last cubic lands exactly on `to` so the
// outline closes without a seam.
func (d *Diagram) appendMouthArc(path curve.BezPath, from, to float64, splines int) curve.BezPath {
	step := (to - from) / float64(3*splines)
	a := from + step
	for i := 0; i < splines; i++ {
		end := d.geom.XY(a+2*step, d.innerRadius)
		if i == splines-1 {
			end = d.geom.XY(to, d.innerRadius)
		}
		path = append(path, curve.CubicTo(
			d.geom.XY(a, d.innerRadius),
			d.geom.XY(a+step, d.innerRadius),
			end,
		))
		a += 3 * step
	}
	return path
}
