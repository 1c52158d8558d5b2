package descriptor

import (
	"sort"

	"github.com/ironsheep/shape-metrics-mcp/internal/geometry"
	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
	"github.com/ironsheep/shape-metrics-mcp/internal/moments"
)

// Backend supplies the geometric primitives the rectangularity methods
// are built from. Two implementations exist: a pure-Go backend with no
// external dependencies (always available, the default), and an OpenCV
// backend compiled in with the "gocv" build tag for parity with
// OpenCV-based pipelines.
//
// Implementations must treat masks as read-only and must be safe for
// concurrent use.
type Backend interface {
	// Contours returns the exterior boundary of every 8-connected
	// foreground component, ordered by the component's topmost-leftmost
	// pixel in row-major order.
	Contours(m *imaging.Mask) []geometry.Contour

	// RegionMoments computes the moments of the region enclosed by a
	// contour, boundary included. Holes inside the contour count as
	// part of the region.
	RegionMoments(m *imaging.Mask, c geometry.Contour) moments.Set

	// MBRAreas returns the total foreground pixel count of the mask
	// and the pixel area of the foreground unioned with the filled
	// minimum bounding rectangle of the given contour, rasterized
	// with truncated integer corners. Counting the union keeps
	// region <= mbr even when truncation nudges a rotated corner
	// inside the shape.
	MBRAreas(m *imaging.Mask, c geometry.Contour) (region, mbr int)

	// MinAreaRect computes the minimum-area rectangle enclosing a
	// contour.
	MinAreaRect(c geometry.Contour) geometry.RotatedRect

	// ArcLength returns the closed perimeter of a contour.
	ArcLength(c geometry.Contour) float64
}

// DefaultBackend returns the backend selected at build time: the
// OpenCV backend when built with the "gocv" tag, the pure-Go backend
// otherwise.
func DefaultBackend() Backend {
	return newDefaultBackend()
}

// sortContours orders contours by their topmost-leftmost vertex in
// row-major order, the order row-major tracing discovers components
// in. Backends whose underlying library reports contours differently
// normalize with it so the first contour names the same component
// everywhere.
func sortContours(contours []geometry.Contour) {
	sort.Slice(contours, func(i, j int) bool {
		a, b := contourAnchor(contours[i]), contourAnchor(contours[j])
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}

// contourAnchor returns the topmost-leftmost vertex of a contour.
func contourAnchor(c geometry.Contour) geometry.Point {
	best := c[0]
	for _, p := range c[1:] {
		if p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best = p
		}
	}
	return best
}
