// Package moments computes image moments of binary masks and derives
// shape statistics from them.
//
// Moments are computed by direct summation over foreground pixels, so
// unlike typical vision libraries the set includes the fourth-order
// central moment Mu22 needed for moment-based rectangularity.
package moments

import (
	"math"

	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
)

// Set holds the raw and central moments of a binary region, with
// m_pq summing x^p * y^q over foreground pixels. Raw moments M10 and
// M01 locate the centroid; the central moments are taken about it,
// making them translation invariant.
type Set struct {
	M00 float64 `json:"m00"`
	M10 float64 `json:"m10"`
	M01 float64 `json:"m01"`
	M20 float64 `json:"m20"`
	M11 float64 `json:"m11"`
	M02 float64 `json:"m02"`
	M21 float64 `json:"m21"`
	M12 float64 `json:"m12"`

	Mu20 float64 `json:"mu20"`
	Mu11 float64 `json:"mu11"`
	Mu02 float64 `json:"mu02"`
	Mu22 float64 `json:"mu22"`
}

// FromMask computes the moments of all foreground pixels in a mask.
//
// Two passes: the first accumulates raw moments and the centroid, the
// second accumulates central moments about it. Summing centered terms
// directly avoids the cancellation errors of converting raw moments of
// high order.
func FromMask(m *imaging.Mask) Set {
	var s Set
	for y := 0; y < m.Height; y++ {
		row := y * m.Width
		fy := float64(y)
		fy2 := fy * fy
		for x := 0; x < m.Width; x++ {
			if m.Pix[row+x] == 0 {
				continue
			}
			fx := float64(x)
			fx2 := fx * fx
			s.M00++
			s.M10 += fx
			s.M01 += fy
			s.M20 += fx2
			s.M11 += fx * fy
			s.M02 += fy2
			s.M21 += fx2 * fy
			s.M12 += fx * fy2
		}
	}
	if s.M00 == 0 {
		return s
	}

	cx := s.M10 / s.M00
	cy := s.M01 / s.M00
	for y := 0; y < m.Height; y++ {
		row := y * m.Width
		dy := float64(y) - cy
		dy2 := dy * dy
		for x := 0; x < m.Width; x++ {
			if m.Pix[row+x] == 0 {
				continue
			}
			dx := float64(x) - cx
			dx2 := dx * dx
			s.Mu20 += dx2
			s.Mu11 += dx * dy
			s.Mu02 += dy2
			s.Mu22 += dx2 * dy2
		}
	}
	return s
}

// Centroid returns the region's center of mass, or (0, 0) for an empty
// region.
func (s Set) Centroid() (x, y float64) {
	if s.M00 == 0 {
		return 0, 0
	}
	return s.M10 / s.M00, s.M01 / s.M00
}

// RectangleSides returns the side lengths (a, b) of the rectangle
// whose second-order central moments match the region's, with a >= b.
//
// For a rectangle of sides a x b centered at the origin and aligned
// with its principal axes, mu20 = a^3*b/12 and mu02 = a*b^3/12;
// solving that system for a general orientation gives
//
//	a = sqrt(6*(mu20 + mu02 + d) / m00)
//	b = sqrt(6*(mu20 + mu02 - d) / m00)
//	d = sqrt((mu20 - mu02)^2 + 4*mu11^2)
//
// An empty region returns (0, 0). Floating-point noise can push the
// radicand of b slightly negative for thin regions; it is clamped to
// zero.
func (s Set) RectangleSides() (a, b float64) {
	if s.M00 == 0 {
		return 0, 0
	}
	diff := s.Mu20 - s.Mu02
	d := math.Sqrt(diff*diff + 4*s.Mu11*s.Mu11)
	a = math.Sqrt(6 * (s.Mu20 + s.Mu02 + d) / s.M00)
	b = math.Sqrt(6 * math.Max(0, s.Mu20+s.Mu02-d) / s.M00)
	return a, b
}
