package descriptor

import (
	"github.com/ironsheep/shape-metrics-mcp/internal/geometry"
	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
	"github.com/ironsheep/shape-metrics-mcp/internal/moments"
)

// nativeBackend implements Backend entirely in Go on top of the
// geometry and moments packages. It is stateless.
type nativeBackend struct{}

func (nativeBackend) Contours(m *imaging.Mask) []geometry.Contour {
	return geometry.TraceContours(m)
}

func (nativeBackend) RegionMoments(m *imaging.Mask, c geometry.Contour) moments.Set {
	region := imaging.NewMask(m.Width, m.Height)
	geometry.FillPolygon(region, c)
	return moments.FromMask(region)
}

func (nativeBackend) MBRAreas(m *imaging.Mask, c geometry.Contour) (region, mbr int) {
	canvas := m.Clone()
	rect := geometry.MinAreaRect(c)
	corners := rect.Corners()
	poly := make([]geometry.Point, len(corners))
	for i, p := range corners {
		// Truncation toward zero, matching integer box corners.
		poly[i] = geometry.Point{X: int(p.X), Y: int(p.Y)}
	}
	geometry.FillPolygon(canvas, poly)
	return m.Area(), canvas.Area()
}

func (nativeBackend) MinAreaRect(c geometry.Contour) geometry.RotatedRect {
	return geometry.MinAreaRect(c)
}

func (nativeBackend) ArcLength(c geometry.Contour) float64 {
	return geometry.ArcLength(c, true)
}
