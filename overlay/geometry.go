// Package overlay builds, projects, and renders oriented 3D bounding boxes
// over camera imagery for perception debugging.
package overlay

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Ordered list of unit box corners. The index encodes the sign pattern
// (x slowest, z fastest), so the +X corners are indices 4 through 7. Edge
// tables, hull ordering, and rendering all assume this enumeration.
var boxCorners = [8]r3.Vector{
	{X: -1, Y: -1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: 1},
}

// The 12 edges of a box, as pairs of corner indices (corners differing in
// exactly one coordinate).
var boxEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4},
	{1, 3}, {1, 5},
	{2, 3}, {2, 6},
	{3, 7},
	{4, 5}, {4, 6},
	{5, 7},
	{6, 7},
}

// The 4 edges of the front (+X) face, redrawn over the wireframe to mark
// heading.
var frontEdges = [4][2]int{
	{4, 5}, {4, 6}, {5, 7}, {6, 7},
}

// cross2D returns the z component of (a-o) x (b-o). Positive means o->a->b
// turns counter-clockwise in standard coordinates.
func cross2D(o, a, b r2.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// convexHull computes the convex hull of the given points with Andrew's
// monotone chain, returned in boundary order. Collinear points interior to a
// hull edge are dropped. Inputs of fewer than three points are returned
// as-is.
func convexHull(points []r2.Point) []r2.Point {
	pts := make([]r2.Point, len(points))
	copy(pts, points)
	if len(pts) < 3 {
		return pts
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	hull := make([]r2.Point, 0, 2*len(pts))
	// lower chain
	for _, p := range pts {
		for len(hull) >= 2 && cross2D(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// upper chain
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross2D(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// scanlineSpan returns the horizontal extent of the polygon at row y, or
// ok=false if the row does not intersect the polygon.
func scanlineSpan(poly []r2.Point, y float64) (xl, xr float64, ok bool) {
	xl = math.Inf(1)
	xr = math.Inf(-1)
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		if a.Y == b.Y {
			if a.Y == y {
				xl = math.Min(xl, math.Min(a.X, b.X))
				xr = math.Max(xr, math.Max(a.X, b.X))
			}
			continue
		}
		if y < math.Min(a.Y, b.Y) || y > math.Max(a.Y, b.Y) {
			continue
		}
		x := a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		xl = math.Min(xl, x)
		xr = math.Max(xr, x)
	}
	return xl, xr, xl <= xr
}
