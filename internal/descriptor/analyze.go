package descriptor

import (
	"github.com/ironsheep/shape-metrics-mcp/internal/geometry"
	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
	"github.com/ironsheep/shape-metrics-mcp/internal/moments"
)

// ContourInfo summarizes one traced component boundary.
type ContourInfo struct {
	Points    int                  `json:"points"`
	Perimeter float64              `json:"perimeter"`
	Bounds    geometry.Bounds      `json:"bounds"`
	MinRect   geometry.RotatedRect `json:"min_rect"`
}

// Analysis collects the geometric quantities the rectangularity
// methods are built from, for inspection and debugging.
type Analysis struct {
	Width              int             `json:"width"`
	Height             int             `json:"height"`
	ForegroundArea     int             `json:"foreground_area"`
	Components         int             `json:"components"`
	MultipleComponents bool            `json:"multiple_components"`
	Centroid           geometry.PointF `json:"centroid"`
	Moments            moments.Set     `json:"moments"`
	MomentSideA        float64         `json:"moment_side_a"`
	MomentSideB        float64         `json:"moment_side_b"`
	MBRArea            int             `json:"mbr_area"`
	Contours           []ContourInfo   `json:"contours"`
}

// Analyze inspects a mask's geometry with the default backend. See
// AnalyzeWith.
func Analyze(m *imaging.Mask) (*Analysis, error) {
	return AnalyzeWith(DefaultBackend(), m)
}

// AnalyzeWith inspects a mask's geometry: per-contour perimeter,
// bounding box and minimum-area rectangle, plus the MBR area, moments
// and moment rectangle sides of the first component. Returns
// ErrEmptyRegion for masks with no foreground.
func AnalyzeWith(b Backend, m *imaging.Mask) (*Analysis, error) {
	if m == nil || m.Empty() {
		return nil, ErrEmptyRegion
	}
	contours := b.Contours(m)
	if len(contours) == 0 {
		return nil, ErrEmptyRegion
	}

	mom := b.RegionMoments(m, contours[0])
	cx, cy := mom.Centroid()
	sideA, sideB := mom.RectangleSides()
	_, mbr := b.MBRAreas(m, contours[0])

	infos := make([]ContourInfo, 0, len(contours))
	for _, c := range contours {
		infos = append(infos, ContourInfo{
			Points:    len(c),
			Perimeter: b.ArcLength(c),
			Bounds:    geometry.BoundingBox(c),
			MinRect:   b.MinAreaRect(c),
		})
	}

	return &Analysis{
		Width:              m.Width,
		Height:             m.Height,
		ForegroundArea:     m.Area(),
		Components:         len(contours),
		MultipleComponents: len(contours) > 1,
		Centroid:           geometry.PointF{X: cx, Y: cy},
		Moments:            mom,
		MomentSideA:        sideA,
		MomentSideB:        sideB,
		MBRArea:            mbr,
		Contours:           infos,
	}, nil
}
