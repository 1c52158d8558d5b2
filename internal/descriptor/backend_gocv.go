//go:build gocv

package descriptor

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ironsheep/shape-metrics-mcp/internal/geometry"
	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
	"github.com/ironsheep/shape-metrics-mcp/internal/moments"
)

// newDefaultBackend selects the OpenCV backend for builds with the
// "gocv" tag.
func newDefaultBackend() Backend {
	return opencvBackend{}
}

// opencvBackend implements Backend on OpenCV via gocv. Contour
// extraction, minimum-area rectangles, arc length and polygon filling
// come from OpenCV; moment summation stays in Go because OpenCV stops
// at third-order central moments and the moments method needs mu22.
type opencvBackend struct{}

var fillWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func (opencvBackend) Contours(m *imaging.Mask) []geometry.Contour {
	if m.Width == 0 || m.Height == 0 {
		return nil
	}
	mat := maskToMat(m)
	defer mat.Close()

	found := gocv.FindContours(mat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer found.Close()

	contours := make([]geometry.Contour, 0, found.Size())
	for i := 0; i < found.Size(); i++ {
		pv := found.At(i)
		c := make(geometry.Contour, pv.Size())
		for j := 0; j < pv.Size(); j++ {
			p := pv.At(j)
			c[j] = geometry.Point{X: p.X, Y: p.Y}
		}
		contours = append(contours, c)
	}
	// FindContours reports border-following order, not scan order.
	sortContours(contours)
	return contours
}

func (opencvBackend) RegionMoments(m *imaging.Mask, c geometry.Contour) moments.Set {
	canvas := gocv.NewMatWithSize(m.Height, m.Width, gocv.MatTypeCV8U)
	defer canvas.Close()

	pts := contoursToPointsVector([]geometry.Contour{c})
	defer pts.Close()
	gocv.FillPoly(&canvas, pts, fillWhite)

	region := matToMask(canvas)
	return moments.FromMask(region)
}

func (opencvBackend) MBRAreas(m *imaging.Mask, c geometry.Contour) (region, mbr int) {
	canvas := maskToMat(m)
	defer canvas.Close()

	pv := gocv.NewPointVectorFromPoints(contourToImagePoints(c))
	rect := gocv.MinAreaRect(pv)
	pv.Close()

	box := gocv.NewPointsVectorFromPoints([][]image.Point{rect.Points})
	gocv.FillPoly(&canvas, box, fillWhite)
	box.Close()

	return m.Area(), gocv.CountNonZero(canvas)
}

func (opencvBackend) MinAreaRect(c geometry.Contour) geometry.RotatedRect {
	pv := gocv.NewPointVectorFromPoints(contourToImagePoints(c))
	defer pv.Close()

	r := gocv.MinAreaRect(pv)
	return geometry.RotatedRect{
		Center: geometry.PointF{X: float64(r.Center.X), Y: float64(r.Center.Y)},
		Width:  float64(r.Width),
		Height: float64(r.Height),
		Angle:  r.Angle,
	}
}

func (opencvBackend) ArcLength(c geometry.Contour) float64 {
	pv := gocv.NewPointVectorFromPoints(contourToImagePoints(c))
	defer pv.Close()
	return gocv.ArcLength(pv, true)
}

// maskToMat copies a mask into a single-channel 8-bit Mat with
// foreground as 255. The caller owns the returned Mat.
func maskToMat(m *imaging.Mask) gocv.Mat {
	data := make([]byte, len(m.Pix))
	for i, v := range m.Pix {
		if v != 0 {
			data[i] = 255
		}
	}
	mat, err := gocv.NewMatFromBytes(m.Height, m.Width, gocv.MatTypeCV8U, data)
	if err != nil {
		return gocv.NewMatWithSize(m.Height, m.Width, gocv.MatTypeCV8U)
	}
	return mat
}

// matToMask converts a single-channel 8-bit Mat back into a mask,
// treating any nonzero byte as foreground.
func matToMask(mat gocv.Mat) *imaging.Mask {
	m := imaging.NewMask(mat.Cols(), mat.Rows())
	data := mat.ToBytes()
	for i, v := range data {
		if v != 0 {
			m.Pix[i] = 1
		}
	}
	return m
}

func contourToImagePoints(c geometry.Contour) []image.Point {
	pts := make([]image.Point, len(c))
	for i, p := range c {
		pts[i] = image.Point{X: p.X, Y: p.Y}
	}
	return pts
}

func contoursToPointsVector(contours []geometry.Contour) gocv.PointsVector {
	all := make([][]image.Point, len(contours))
	for i, c := range contours {
		all[i] = contourToImagePoints(c)
	}
	return gocv.NewPointsVectorFromPoints(all)
}
