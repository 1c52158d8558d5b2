// Package geometry provides the 2D primitives behind shape analysis:
// contour tracing, convex hulls, minimum-area rectangles and polygon
// rasterization.
//
// All functions operate on binary masks from the imaging package and
// use the same coordinate system: origin at the top-left, x growing
// right, y growing down, with inclusive bounding-box corners.
//
// # Connectivity
//
// Foreground components are 8-connected. TraceContours walks exterior
// boundaries only; holes inside a component do not produce contours of
// their own.
//
// # Thread Safety
//
// Functions that take a mask treat it as read-only unless documented
// otherwise (FillPolygon and DrawLine mutate their target). None of the
// functions keep internal state, so concurrent use on distinct masks is
// safe.
package geometry
