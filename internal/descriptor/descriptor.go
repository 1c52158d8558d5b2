package descriptor

import (
	"fmt"
	"math"

	"github.com/ironsheep/shape-metrics-mcp/internal/geometry"
	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
	"github.com/ironsheep/shape-metrics-mcp/internal/moments"
)

// Result holds one rectangularity score together with the component
// diagnostics gathered while computing it.
type Result struct {
	Method             string  `json:"method"`
	Name               string  `json:"name"`
	Score              float64 `json:"score"`
	Components         int     `json:"components"`
	MultipleComponents bool    `json:"multiple_components"`
}

// Compute scores the rectangularity of a binary mask with the given
// method using the build-selected default backend. See ComputeWith.
func Compute(m *imaging.Mask, method Method) (*Result, error) {
	return ComputeWith(DefaultBackend(), m, method)
}

// ComputeWith scores the rectangularity of a binary mask.
//
// Every method produces a score in [0, 1], where 1 means perfectly
// rectangular. Methods that compare against a reference rectangle use
// the first traced contour; masks with several components are scored
// anyway, with MultipleComponents set on the result so callers can
// decide whether the score is trustworthy.
//
// # Algorithm
//
//  1. Validate the method and reject empty masks with ErrEmptyRegion
//  2. Trace component contours once; all methods share them
//  3. Dispatch to the method-specific score. The discrepancy and
//     robust measures also score a 45-degree rotated copy of the mask
//     and keep the better orientation
//
// Parameters:
//   - b: geometric backend (pure Go or OpenCV)
//   - m: binary mask to score
//   - method: which rectangularity measure to apply
//
// Returns:
//   - *Result with the score and component diagnostics
//   - ErrEmptyRegion if the mask has no foreground
//   - ErrInvalidMethod if method is not one of the defined methods
func ComputeWith(b Backend, m *imaging.Mask, method Method) (*Result, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: code %d", ErrInvalidMethod, int(method))
	}
	if m == nil || m.Empty() {
		return nil, ErrEmptyRegion
	}
	contours := b.Contours(m)
	if len(contours) == 0 {
		return nil, ErrEmptyRegion
	}

	var score float64
	switch method {
	case MBR:
		score = mbrScore(b, m, contours)
	case Discrepancy:
		score = orientationMax(b, m, contours, discrepancyScore)
	case RobustMBR:
		score = orientationMax(b, m, contours, robustScore)
	case Agreement:
		score = agreementScore(b, m, contours)
	case Moments:
		score = momentsScore(m)
	}

	return &Result{
		Method:             method.Code(),
		Name:               method.Name(),
		Score:              score,
		Components:         len(contours),
		MultipleComponents: len(contours) > 1,
	}, nil
}

// ComputeAll scores a mask with every method in canonical order using
// the default backend.
func ComputeAll(m *imaging.Mask) ([]*Result, error) {
	return ComputeAllWith(DefaultBackend(), m)
}

// ComputeAllWith scores a mask with every method in canonical order.
// The first error aborts the run; with the shared empty-region check
// this means either all methods succeed or none do.
func ComputeAllWith(b Backend, m *imaging.Mask) ([]*Result, error) {
	results := make([]*Result, 0, methodCount)
	for _, method := range Methods() {
		r, err := ComputeWith(b, m, method)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// orientationFunc scores one fixed orientation of a mask.
type orientationFunc func(b Backend, m *imaging.Mask, contours []geometry.Contour) float64

// orientationMax scores the mask as-is and rotated by 45 degrees, and
// returns the larger score. Rotation clips corners against the fixed
// canvas; if the rotated foreground vanishes entirely, that
// orientation contributes 0.
func orientationMax(b Backend, m *imaging.Mask, contours []geometry.Contour, score orientationFunc) float64 {
	straight := score(b, m, contours)

	rotated := imaging.Rotate(m, 45)
	rotatedScore := 0.0
	if rc := b.Contours(rotated); len(rc) > 0 {
		rotatedScore = score(b, rotated, rc)
	}

	if straight > rotatedScore {
		return straight
	}
	return rotatedScore
}

// mbrScore is the ratio of total foreground area to the area of the
// foreground unioned with the first contour's minimum bounding
// rectangle. The union counting keeps the score at most 1 even when
// further components lie outside the rectangle.
func mbrScore(b Backend, m *imaging.Mask, contours []geometry.Contour) float64 {
	region, mbr := b.MBRAreas(m, contours[0])
	if mbr == 0 {
		return 0
	}
	return float64(region) / float64(mbr)
}

// discrepancyScore measures how far the mask is from a rectangle with
// the same second-order moments, at one orientation.
//
// With A1 the total foreground area, A2 the foreground inside the
// first contour's bounding box, and A3 = a*b the area of the moment
// rectangle, the score is |1 - ((A3-A2) + (A1-A2)) / A3|, clamped to
// 1. A degenerate moment rectangle (A3 == 0) scores 0.
func discrepancyScore(b Backend, m *imaging.Mask, contours []geometry.Contour) float64 {
	mom := b.RegionMoments(m, contours[0])
	sideA, sideB := mom.RectangleSides()
	a3 := sideA * sideB
	if a3 == 0 {
		return 0
	}

	box := geometry.BoundingBox(contours[0])
	a2 := float64(m.AreaRect(box.X1, box.Y1, box.X2, box.Y2))
	a1 := float64(m.Area())

	r := a3 - a2
	d := a1 - a2
	rd := math.Abs(1 - (r+d)/a3)
	if rd > 1 {
		return 1
	}
	return rd
}

// robustScore is the discrepancy measure with the first contour's
// minimum bounding rectangle area as denominator instead of the
// moment rectangle area, which keeps the score stable when the moment
// rectangle degenerates.
func robustScore(b Backend, m *imaging.Mask, contours []geometry.Contour) float64 {
	mom := b.RegionMoments(m, contours[0])
	sideA, sideB := mom.RectangleSides()
	a3 := sideA * sideB

	box := geometry.BoundingBox(contours[0])
	a2 := float64(m.AreaRect(box.X1, box.Y1, box.X2, box.Y2))
	a1 := float64(m.Area())

	_, mbr := b.MBRAreas(m, contours[0])
	if mbr == 0 {
		return 0
	}

	r := a3 - a2
	d := a1 - a2
	rr := math.Abs(1 - (r+d)/float64(mbr))
	if rr > 1 {
		return 1
	}
	return rr
}

// agreementScore compares two independent estimates of the region's
// rectangle sides: (a1, b1) from second-order moments, and (a2, b2)
// from solving perimeter = 2*(a+b), area = a*b for a rectangle with
// the region's perimeter P and area A.
//
// The quadratic root is a2 = (P + sqrt(|P^2 - 16A|))/4; when the
// smaller root is negative the two estimates cannot describe the same
// rectangle and the score is 0. Otherwise the per-side relative
// differences are averaged and inverted into [0, 1].
func agreementScore(b Backend, m *imaging.Mask, contours []geometry.Contour) float64 {
	mom := b.RegionMoments(m, contours[0])
	a1, b1 := mom.RectangleSides()

	area := float64(m.Area())
	perimeter := b.ArcLength(contours[0])

	disc := math.Sqrt(math.Abs(perimeter*perimeter - 16*area))
	root1 := (perimeter + disc) / 4
	root2 := (perimeter - disc) / 4
	if root1 < 0 || root2 < 0 {
		return 0
	}

	a2 := root1
	if root2 > a2 {
		a2 = root2
	}
	if a2 == 0 {
		return 0
	}
	b2 := area / a2

	if a1+a2 == 0 || b1+b2 == 0 {
		return 0
	}
	r := math.Abs(a1-a2)/(a1+a2) + math.Abs(b1-b2)/(b1+b2)
	return 1 - r/2
}

// momentsScore computes 144 * mu22 / m00^3 over the whole mask. The
// ratio is exactly 1 for an ideal continuous rectangle; values above 1
// are folded back by taking the reciprocal, keeping the score in
// [0, 1] on both sides of the ideal.
func momentsScore(m *imaging.Mask) float64 {
	ratio := momentsRatio(m)
	if ratio > 1 {
		return 1 / ratio
	}
	return ratio
}

// momentsRatio returns the raw unfolded moment ratio.
func momentsRatio(m *imaging.Mask) float64 {
	mom := moments.FromMask(m)
	if mom.M00 == 0 {
		return 0
	}
	return 144 * mom.Mu22 / (mom.M00 * mom.M00 * mom.M00)
}
