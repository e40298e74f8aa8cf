package raster

import (
	"math"

	"github.com/sjamesr/goclock/pkg/graphics"
)

// cubicSegments bounds how finely cubic beziers are flattened.
const (
	minCubicSegments = 8
	maxCubicSegments = 64
)

// capSegments is the polygon resolution for round caps and joins.
const capSegments = 16

// flattenPath converts a path into closed-enough device-space polylines,
// one per subpath, applying the transform as it goes.
func flattenPath(p *graphics.Path, tf matrix) [][]point {
	var subpaths [][]point
	var current []point
	var cursor point

	flush := func() {
		if len(current) > 1 {
			subpaths = append(subpaths, current)
		}
		current = nil
	}

	for _, cmd := range p.Commands {
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			flush()
			cursor = tf.apply(cmd.Args[0], cmd.Args[1])
			current = []point{cursor}
		case graphics.PathOpLineTo:
			cursor = tf.apply(cmd.Args[0], cmd.Args[1])
			current = append(current, cursor)
		case graphics.PathOpCubicTo:
			p1 := tf.apply(cmd.Args[0], cmd.Args[1])
			p2 := tf.apply(cmd.Args[2], cmd.Args[3])
			p3 := tf.apply(cmd.Args[4], cmd.Args[5])
			current = append(current, flattenCubic(cursor, p1, p2, p3)...)
			cursor = p3
		case graphics.PathOpClose:
			if len(current) > 1 {
				current = append(current, current[0])
			}
			flush()
		}
	}
	flush()
	return subpaths
}

// flattenPathSingle flattens a path expected to hold exactly one subpath,
// such as an ellipse outline.
func flattenPathSingle(p *graphics.Path, tf matrix) []point {
	subpaths := flattenPath(p, tf)
	if len(subpaths) == 0 {
		return nil
	}
	return subpaths[0]
}

// flattenCubic subdivides a cubic bezier into line segments, excluding the
// start point (the caller already holds it). Segment count adapts to the
// control polygon length.
func flattenCubic(p0, p1, p2, p3 point) []point {
	length := dist(p0, p1) + dist(p1, p2) + dist(p2, p3)
	segments := int(length / 3)
	if segments < minCubicSegments {
		segments = minCubicSegments
	}
	if segments > maxCubicSegments {
		segments = maxCubicSegments
	}
	pts := make([]point, 0, segments)
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		u := 1 - t
		pts = append(pts, point{
			x: u*u*u*p0.x + 3*u*u*t*p1.x + 3*u*t*t*p2.x + t*t*t*p3.x,
			y: u*u*u*p0.y + 3*u*u*t*p1.y + 3*u*t*t*p2.y + t*t*t*p3.y,
		})
	}
	return pts
}

// strokePolyline expands a device-space polyline into fill polygons: one
// quad per segment plus round discs at the joints, and at the endpoints
// when the cap is round. Joints are always rounded; at the stroke widths
// the clock uses this is indistinguishable from miter.
func strokePolyline(pts []point, width float64, lineCap graphics.StrokeCap, closed bool) [][]point {
	if len(pts) < 2 || width <= 0 {
		return nil
	}
	if closed && pts[0] != pts[len(pts)-1] {
		pts = closePolyline(pts)
	}
	half := width / 2
	var polys [][]point

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dx, dy := b.x-a.x, b.y-a.y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Perpendicular offset of half the stroke width.
		px, py := -dy/length*half, dx/length*half
		polys = append(polys, []point{
			{a.x + px, a.y + py},
			{b.x + px, b.y + py},
			{b.x - px, b.y - py},
			{a.x - px, a.y - py},
		})
	}
	if polys == nil {
		return nil
	}

	for i := 1; i+1 < len(pts); i++ {
		polys = append(polys, disc(pts[i], half))
	}
	if closed {
		polys = append(polys, disc(pts[0], half))
	} else if lineCap == graphics.CapRound {
		polys = append(polys, disc(pts[0], half), disc(pts[len(pts)-1], half))
	}
	return polys
}

// dashPolyline splits a polyline into the "on" runs of a dash pattern.
// Interval lengths are given in user space and scaled into device space.
func dashPolyline(pts []point, closed bool, dash *graphics.DashPattern, scale float64) [][]point {
	if len(dash.Intervals) < 2 || len(pts) < 2 {
		return [][]point{pts}
	}
	if closed && pts[0] != pts[len(pts)-1] {
		pts = closePolyline(pts)
	}

	intervals := make([]float64, len(dash.Intervals))
	total := 0.0
	for i, v := range dash.Intervals {
		intervals[i] = v * scale
		total += intervals[i]
	}
	if total <= 0 {
		return [][]point{pts}
	}

	// Resolve the starting position within the repeating pattern.
	phase := math.Mod(dash.Phase*scale, total)
	if phase < 0 {
		phase += total
	}
	index := 0
	remaining := intervals[0]
	for phase >= remaining {
		phase -= remaining
		index = (index + 1) % len(intervals)
		remaining = intervals[index]
	}
	remaining -= phase
	on := index%2 == 0

	var runs [][]point
	var run []point
	if on {
		run = []point{pts[0]}
	}

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := dist(a, b)
		travelled := 0.0
		for segLen-travelled > remaining {
			travelled += remaining
			t := travelled / segLen
			cut := point{x: a.x + (b.x-a.x)*t, y: a.y + (b.y-a.y)*t}
			if on {
				run = append(run, cut)
				runs = append(runs, run)
				run = nil
			} else {
				run = []point{cut}
			}
			on = !on
			index = (index + 1) % len(intervals)
			remaining = intervals[index]
		}
		remaining -= segLen - travelled
		if on {
			run = append(run, b)
		}
	}
	if len(run) > 1 {
		runs = append(runs, run)
	}
	return runs
}

// closePolyline returns a copy of pts with the first point appended,
// leaving the caller's slice untouched.
func closePolyline(pts []point) []point {
	closed := make([]point, 0, len(pts)+1)
	closed = append(closed, pts...)
	return append(closed, pts[0])
}

// disc approximates a filled circle as a polygon.
func disc(center point, radius float64) []point {
	pts := make([]point, capSegments)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / capSegments
		sin, cos := math.Sincos(angle)
		pts[i] = point{x: center.x + radius*cos, y: center.y + radius*sin}
	}
	return pts
}

func dist(a, b point) float64 {
	return math.Hypot(b.x-a.x, b.y-a.y)
}
