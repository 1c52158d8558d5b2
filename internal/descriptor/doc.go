// Package descriptor computes rectangularity descriptors of binary
// shape masks: scores in [0, 1] measuring how close a region is to a
// perfect rectangle.
//
// Five methods are provided, selectable by short code or full name via
// ParseMethod:
//
//   - r_b: region area over minimum bounding rectangle area
//   - r_d: discrepancy against a rectangle with matching second-order
//     moments, best of two orientations
//   - r_r: the discrepancy measure normalized by MBR area, best of two
//     orientations
//   - r_a: agreement between moment-based and perimeter-based side
//     estimates
//   - r_m: normalized fourth-order central moment of the whole mask
//
// All methods share one validation path: an empty mask is rejected
// with ErrEmptyRegion before any arithmetic runs, and masks with
// several components are scored with a diagnostic flag rather than
// rejected.
//
// Geometric primitives come from a Backend. The pure-Go backend is the
// default; building with the "gocv" tag swaps in OpenCV for contour
// extraction and rectangle fitting while keeping moment summation in
// Go.
package descriptor
