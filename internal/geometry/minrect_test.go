package geometry

import (
	"math"
	"testing"
)

func inDelta(t *testing.T, name string, got, want, delta float64) {
	t.Helper()
	if math.Abs(got-want) > delta {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func TestMinAreaRect_AxisAlignedBlock(t *testing.T) {
	// Pixel corners of a 6x4 block, plus interior points that must not
	// affect the result.
	points := []Point{
		{0, 0}, {5, 0}, {5, 3}, {0, 3},
		{2, 1}, {3, 2}, {1, 1},
	}

	r := MinAreaRect(points)
	inDelta(t, "Width", r.Width, 5, 1e-9)
	inDelta(t, "Height", r.Height, 3, 1e-9)
	inDelta(t, "Area", r.Area(), 15, 1e-9)
	inDelta(t, "Center.X", r.Center.X, 2.5, 1e-9)
	inDelta(t, "Center.Y", r.Center.Y, 1.5, 1e-9)
	inDelta(t, "Angle", r.Angle, 0, 1e-9)
}

func TestMinAreaRect_Diamond(t *testing.T) {
	// A square rotated 45 degrees: vertices at the axis extremes.
	points := []Point{{2, 0}, {4, 2}, {2, 4}, {0, 2}}

	r := MinAreaRect(points)
	side := 2 * math.Sqrt2
	inDelta(t, "Width", r.Width, side, 1e-9)
	inDelta(t, "Height", r.Height, side, 1e-9)
	inDelta(t, "Area", r.Area(), 8, 1e-9)
	inDelta(t, "Center.X", r.Center.X, 2, 1e-9)
	inDelta(t, "Center.Y", r.Center.Y, 2, 1e-9)
	inDelta(t, "Angle", r.Angle, -45, 1e-9)
}

func TestMinAreaRect_Segment(t *testing.T) {
	r := MinAreaRect([]Point{{0, 0}, {3, 4}})

	inDelta(t, "Width", r.Width, 5, 1e-9)
	inDelta(t, "Height", r.Height, 0, 1e-9)
	inDelta(t, "Center.X", r.Center.X, 1.5, 1e-9)
	inDelta(t, "Center.Y", r.Center.Y, 2, 1e-9)
	inDelta(t, "Angle", r.Angle, math.Atan2(4, 3)*180/math.Pi, 1e-9)
}

func TestMinAreaRect_Degenerate(t *testing.T) {
	if r := MinAreaRect(nil); r != (RotatedRect{}) {
		t.Errorf("empty input: got %+v", r)
	}

	r := MinAreaRect([]Point{{3, 4}})
	if r.Width != 0 || r.Height != 0 {
		t.Errorf("single point: got size %vx%v", r.Width, r.Height)
	}
	inDelta(t, "Center.X", r.Center.X, 3, 1e-9)
	inDelta(t, "Center.Y", r.Center.Y, 4, 1e-9)

	// Collinear points reduce to a segment between the extremes.
	c := MinAreaRect([]Point{{0, 0}, {1, 0}, {2, 0}})
	inDelta(t, "collinear Width", c.Width, 2, 1e-9)
	inDelta(t, "collinear Height", c.Height, 0, 1e-9)
}

func TestRotatedRect_Corners(t *testing.T) {
	r := RotatedRect{Center: PointF{X: 1, Y: 1}, Width: 2, Height: 2, Angle: 0}

	want := [4]PointF{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	corners := r.Corners()
	for i := range want {
		inDelta(t, "corner X", corners[i].X, want[i].X, 1e-9)
		inDelta(t, "corner Y", corners[i].Y, want[i].Y, 1e-9)
	}
}

func TestRotatedRect_CornersRotated(t *testing.T) {
	// Rotating the rectangle spins the corner order but covers the
	// same square.
	r := RotatedRect{Center: PointF{X: 1, Y: 1}, Width: 2, Height: 2, Angle: 90}

	corners := r.Corners()
	for _, want := range []PointF{{0, 0}, {2, 0}, {2, 2}, {0, 2}} {
		found := false
		for _, c := range corners {
			if math.Abs(c.X-want.X) < 1e-9 && math.Abs(c.Y-want.Y) < 1e-9 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("corner %v missing from %v", want, corners)
		}
	}
}
