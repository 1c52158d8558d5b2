// Package imaging provides the binary mask type and mask I/O for the
// shape metrics server.
//
// The central type is Mask, a width×height grid of 0/1 bytes produced by
// thresholding a grayscale rendering of an input image. Every geometric
// and statistical computation in the repository consumes masks; nothing
// downstream ever re-reads pixels from the source image.
//
// # Coordinate System
//
// All pixel coordinates are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Mask.At returns 0 outside the grid, so neighbor probes need no
//     bounds checks
//
// # Thread Safety
//
// MaskCache is safe for concurrent use. Masks themselves are plain
// buffers with no locking: treat loaded masks as read-only and Clone
// before drawing on one.
//
// # Mutation Discipline
//
// Descriptor computations must not leave caller-visible side effects on
// their input. Operations that need a writable grid (rasterized fills,
// rotation) allocate their own copy; the package API enforces this by
// returning fresh masks from Rotate and by documenting Load results as
// shared.
//
// # Formats
//
// Loading supports PNG, JPEG, GIF, BMP, and TIFF. Preview rendering
// emits base64-encoded PNG suitable for MCP tool responses.
package imaging
