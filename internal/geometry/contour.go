package geometry

import (
	"math"

	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
)

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// PointF represents a 2D coordinate with sub-pixel precision.
type PointF struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Contour is the ordered exterior boundary of one connected foreground
// component: a closed polyline through the component's border pixels,
// walked clockwise. A single-pixel component yields a one-point contour.
type Contour []Point

// Bounds is an axis-aligned bounding box with inclusive corners:
// (X1,Y1) is the top-left pixel and (X2,Y2) the bottom-right pixel,
// both inside the box.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Width returns the box width in pixels.
func (b Bounds) Width() int { return b.X2 - b.X1 + 1 }

// Height returns the box height in pixels.
func (b Bounds) Height() int { return b.Y2 - b.Y1 + 1 }

// moore lists the 8 neighbors of a pixel in clockwise order starting
// east: E, SE, S, SW, W, NW, N, NE. Boundary tracing scans this ring.
var moore = [8]Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// mooreIndex returns the ring index of a unit offset between 8-adjacent
// pixels. Offsets outside the ring return -1.
func mooreIndex(dx, dy int) int {
	for i, d := range moore {
		if d.X == dx && d.Y == dy {
			return i
		}
	}
	return -1
}

// TraceContours finds the exterior boundaries of all connected
// foreground components of a mask.
//
// Components are 8-connected and discovered in row-major scan order, so
// the first contour belongs to the component whose topmost-leftmost
// pixel comes first. Only exterior boundaries are traced; holes inside
// a component are not tracked separately.
//
// Returns one contour per component, or an empty slice for a mask with
// no foreground. The mask is not modified.
//
// # Algorithm
//
//  1. Scan row-major for an unvisited foreground pixel; by construction
//     it is the topmost-leftmost pixel of a new component
//  2. Trace the component's exterior boundary with Moore-neighbor
//     tracing: a clockwise neighborhood walk with backtracking that
//     stops when it is about to repeat its first move. Thin spurs are
//     walked down one side and back up the other, so their pixels
//     appear twice
//  3. Flood-fill the component to mark every pixel visited, so interior
//     pixels and hole boundaries never start a second trace
func TraceContours(m *imaging.Mask) []Contour {
	if m.Width == 0 || m.Height == 0 {
		return nil
	}

	visited := make([]bool, len(m.Pix))
	contours := make([]Contour, 0, 1)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := y*m.Width + x
			if m.Pix[idx] == 0 || visited[idx] {
				continue
			}
			contours = append(contours, traceBoundary(m, Point{X: x, Y: y}))
			markComponent(m, visited, x, y)
		}
	}

	return contours
}

// traceBoundary walks the exterior boundary of the component containing
// start, which must be the component's topmost-leftmost pixel (its west
// and north neighbors are background).
func traceBoundary(m *imaging.Mask, start Point) Contour {
	contour := Contour{start}

	// The scan reached start moving rightward, so we treat its west
	// neighbor as the pixel we entered from.
	entry := Point{X: start.X - 1, Y: start.Y}
	p := start

	// A boundary pixel is revisited at most once per neighboring
	// background region, so 8 passes over the grid bounds any trace.
	for iter := 0; iter < 8*len(m.Pix)+8; iter++ {
		next, nextEntry, ok := boundaryStep(m, p, entry)
		if !ok {
			// Isolated pixel: no foreground neighbors at all.
			return contour
		}

		if next == start {
			// Back at the start pixel. The loop is closed only when
			// the walk is about to repeat its first move; otherwise
			// start is a thin-spur junction the boundary passes
			// through more than once.
			if peek, _, ok := boundaryStep(m, start, nextEntry); ok && peek == contour[1] {
				return contour
			}
		}
		p, entry = next, nextEntry
		contour = append(contour, p)
	}

	return contour
}

// boundaryStep advances one Moore-neighbor step. Scanning clockwise
// around p starting after the entry position, it returns the first
// foreground neighbor together with the background position examined
// just before it, which becomes the entry point of the following step.
// ok is false when p has no foreground neighbor at all.
func boundaryStep(m *imaging.Mask, p, entry Point) (next, nextEntry Point, ok bool) {
	base := mooreIndex(entry.X-p.X, entry.Y-p.Y)
	for i := 1; i <= 8; i++ {
		dir := (base + i) % 8
		q := Point{X: p.X + moore[dir].X, Y: p.Y + moore[dir].Y}
		if m.At(q.X, q.Y) != 0 {
			prev := (base + i - 1) % 8
			return q, Point{X: p.X + moore[prev].X, Y: p.Y + moore[prev].Y}, true
		}
	}
	return Point{}, Point{}, false
}

// markComponent flood-fills the 8-connected component containing
// (startX, startY), setting visited for every member pixel.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow
// on large components.
func markComponent(m *imaging.Mask, visited []bool, startX, startY int) {
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= m.Width || p.Y < 0 || p.Y >= m.Height {
			continue
		}
		idx := p.Y*m.Width + p.X
		if visited[idx] || m.Pix[idx] == 0 {
			continue
		}
		visited[idx] = true

		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
}

// ArcLength returns the length of the polyline through the contour
// points; with closed set, the edge from the last point back to the
// first is included. A contour with fewer than two points has length 0.
func ArcLength(c Contour, closed bool) float64 {
	if len(c) < 2 {
		return 0
	}
	length := 0.0
	for i := 0; i < len(c)-1; i++ {
		length += pointDistance(c[i], c[i+1])
	}
	if closed {
		length += pointDistance(c[len(c)-1], c[0])
	}
	return length
}

// pointDistance returns the Euclidean distance between two points.
func pointDistance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// BoundingBox returns the axis-aligned bounding box of a contour with
// inclusive corners. The zero Bounds is returned for an empty contour.
func BoundingBox(c Contour) Bounds {
	if len(c) == 0 {
		return Bounds{}
	}
	b := Bounds{X1: c[0].X, Y1: c[0].Y, X2: c[0].X, Y2: c[0].Y}
	for _, p := range c[1:] {
		if p.X < b.X1 {
			b.X1 = p.X
		}
		if p.X > b.X2 {
			b.X2 = p.X
		}
		if p.Y < b.Y1 {
			b.Y1 = p.Y
		}
		if p.Y > b.Y2 {
			b.Y2 = p.Y
		}
	}
	return b
}
