package geometry

import (
	"math"

	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
)

// FillPolygon sets every mask pixel covered by the polygon to
// foreground, boundary included. The polygon is closed implicitly from
// the last vertex back to the first. Pixels outside the mask are
// ignored, so clipping is free.
//
// Interior coverage uses even-odd scanline filling with a half-open
// edge rule, which on its own drops pixels that sit exactly on the
// boundary; a Bresenham pass over the outline puts them back. For a
// polygon with integer corners this fills exactly the pixels whose
// centers lie inside or on the polygon, matching the inclusive-corner
// convention used throughout this package: an axis-aligned box with
// corners (0,0) and (w-1,h-1) fills w*h pixels.
func FillPolygon(m *imaging.Mask, poly []Point) {
	if len(poly) == 0 {
		return
	}
	if len(poly) < 3 {
		drawOutline(m, poly)
		return
	}

	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= m.Height {
		maxY = m.Height - 1
	}

	xs := make([]float64, 0, len(poly))
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for i := 0; i < len(poly); i++ {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			if a.Y == b.Y {
				continue
			}
			if a.Y > b.Y {
				a, b = b, a
			}
			// Half-open in y so shared vertices count once.
			if y < a.Y || y >= b.Y {
				continue
			}
			t := float64(y-a.Y) / float64(b.Y-a.Y)
			xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x1 := int(math.Ceil(xs[i]))
			x2 := int(math.Floor(xs[i+1]))
			for x := x1; x <= x2; x++ {
				m.Set(x, y, 1)
			}
		}
	}

	drawOutline(m, poly)
}

// drawOutline draws the closed polygon boundary onto the mask.
func drawOutline(m *imaging.Mask, poly []Point) {
	if len(poly) == 1 {
		m.Set(poly[0].X, poly[0].Y, 1)
		return
	}
	for i := 0; i < len(poly); i++ {
		DrawLine(m, poly[i], poly[(i+1)%len(poly)])
	}
}

// DrawLine sets the mask pixels along the segment from a to b using
// Bresenham's algorithm. Out-of-bounds pixels are ignored.
func DrawLine(m *imaging.Mask, a, b Point) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy

	x, y := a.X, a.Y
	for {
		m.Set(x, y, 1)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// sortFloats sorts a small slice in place; intersection lists per
// scanline rarely exceed a handful of entries, so insertion sort wins
// over the generic sort.
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
