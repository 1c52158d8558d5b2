package imaging

import (
	"github.com/anthonynsimon/bild/transform"
)

// Rotate returns a new mask rotated by angle degrees about the mask
// center. The canvas keeps its original dimensions, so foreground
// extending close to the border may clip; pixels rotated in from
// outside the canvas are background.
//
// The rotated raster is re-binarized at DefaultThreshold, which keeps
// the result strictly 0/1 regardless of how the transform resamples.
//
// The input mask is never modified.
func Rotate(m *Mask, angle float64) *Mask {
	if m.Width == 0 || m.Height == 0 {
		return m.Clone()
	}
	rotated := transform.Rotate(m.ToGray(), angle, nil)
	return MaskFromImage(rotated, DefaultThreshold)
}
