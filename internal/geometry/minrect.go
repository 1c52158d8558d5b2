package geometry

import "math"

// RotatedRect is a rectangle with arbitrary orientation, described by
// its center, side lengths and rotation angle in degrees. Angle 0 means
// Width runs along the x axis; positive angles rotate toward positive y
// (downward in image coordinates).
type RotatedRect struct {
	Center PointF  `json:"center"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Angle  float64 `json:"angle"`
}

// Area returns Width * Height.
func (r RotatedRect) Area() float64 { return r.Width * r.Height }

// Corners returns the four rectangle corners in order, forming a
// closed convex quadrilateral.
func (r RotatedRect) Corners() [4]PointF {
	rad := r.Angle * math.Pi / 180
	ux, uy := math.Cos(rad), math.Sin(rad)
	vx, vy := -uy, ux
	hw, hh := r.Width/2, r.Height/2

	var corners [4]PointF
	offsets := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	for i, o := range offsets {
		corners[i] = PointF{
			X: r.Center.X + o[0]*ux + o[1]*vx,
			Y: r.Center.Y + o[0]*uy + o[1]*vy,
		}
	}
	return corners
}

// MinAreaRect computes the minimum-area rectangle enclosing a point
// set, using the rotating calipers technique: the minimal rectangle has
// one side collinear with a convex hull edge, so testing each hull edge
// orientation is sufficient.
//
// The rectangle spans the points themselves, so an axis-aligned block
// of W x H pixels yields side lengths W-1 and H-1 (distances between
// extreme pixel centers, not pixel counts). Degenerate inputs produce
// degenerate rectangles: one point gives a zero-size rectangle at that
// point, collinear points give a zero-height rectangle along their
// direction.
func MinAreaRect(points []Point) RotatedRect {
	hull := ConvexHull(points)
	switch len(hull) {
	case 0:
		return RotatedRect{}
	case 1:
		return RotatedRect{Center: PointF{X: float64(hull[0].X), Y: float64(hull[0].Y)}}
	case 2:
		dx := float64(hull[1].X - hull[0].X)
		dy := float64(hull[1].Y - hull[0].Y)
		return RotatedRect{
			Center: PointF{
				X: float64(hull[0].X+hull[1].X) / 2,
				Y: float64(hull[0].Y+hull[1].Y) / 2,
			},
			Width: math.Sqrt(dx*dx + dy*dy),
			Angle: math.Atan2(dy, dx) * 180 / math.Pi,
		}
	}

	best := RotatedRect{}
	bestArea := math.Inf(1)

	for i := 0; i < len(hull); i++ {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		ex := float64(b.X - a.X)
		ey := float64(b.Y - a.Y)
		norm := math.Sqrt(ex*ex + ey*ey)
		if norm == 0 {
			continue
		}
		// Orthonormal frame aligned with this hull edge.
		ux, uy := ex/norm, ey/norm
		vx, vy := -uy, ux

		minU, maxU := math.Inf(1), math.Inf(-1)
		minV, maxV := math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			pu := float64(p.X)*ux + float64(p.Y)*uy
			pv := float64(p.X)*vx + float64(p.Y)*vy
			minU = math.Min(minU, pu)
			maxU = math.Max(maxU, pu)
			minV = math.Min(minV, pv)
			maxV = math.Max(maxV, pv)
		}

		w := maxU - minU
		h := maxV - minV
		if area := w * h; area < bestArea {
			cu := (minU + maxU) / 2
			cv := (minV + maxV) / 2
			best = RotatedRect{
				Center: PointF{X: cu*ux + cv*vx, Y: cu*uy + cv*vy},
				Width:  w,
				Height: h,
				Angle:  math.Atan2(uy, ux) * 180 / math.Pi,
			}
			bestArea = area
		}
	}

	return best
}
