package geometry

import "sort"

// ConvexHull computes the convex hull of a point set using Andrew's
// monotone chain algorithm.
//
// Returns the hull vertices ordered clockwise in image coordinates
// (y axis pointing down), with collinear boundary points removed.
// Degenerate inputs collapse naturally: a single distinct point yields
// a one-point hull, collinear points yield the two extreme points.
func ConvexHull(points []Point) []Point {
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	// Remove duplicates so repeated contour pixels cannot stall the
	// chain construction.
	uniq := pts[:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			uniq = append(uniq, p)
		}
	}
	pts = uniq

	if len(pts) <= 2 {
		hull := make([]Point, len(pts))
		copy(hull, pts)
		return hull
	}

	var lower []Point
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []Point
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Last point of each half is the first point of the other.
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// cross returns the z component of the cross product (a-o) x (b-o).
// Positive means b lies counter-clockwise of a around o in a y-up
// frame.
func cross(o, a, b Point) int {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
