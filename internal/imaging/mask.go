package imaging

import (
	"image"
)

// DefaultThreshold is the luminance cutoff used when binarizing images
// unless the caller specifies another one. Values at or above the
// threshold become foreground.
const DefaultThreshold uint8 = 128

// Mask is a binary image: a width×height grid where every pixel is
// either 0 (background) or 1 (foreground).
//
// The coordinate convention follows standard image bounds: (0,0) is the
// top-left pixel, X increases rightward, Y increases downward.
//
// All descriptor computations treat a Mask as read-only input. Code that
// needs to draw on a mask (rasterized fills, rotations) must work on a
// copy obtained via Clone so the caller never observes a mutation.
type Mask struct {
	// Width is the mask width in pixels.
	Width int

	// Height is the mask height in pixels.
	Height int

	// Pix holds Width*Height entries in row-major order, each 0 or 1.
	Pix []uint8
}

// NewMask creates an all-background mask of the given dimensions.
// Non-positive dimensions yield an empty 0×0 mask.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// MaskFromImage binarizes an image into a mask.
//
// Each pixel is converted to grayscale using ITU-R BT.601 luminance
// weights; pixels whose luminance is at or above threshold become
// foreground (1), everything else background (0).
//
// Parameters:
//   - img: Source image. Any color model supported by image.Image.
//   - threshold: Luminance cutoff (0-255). Pass DefaultThreshold for
//     typical white-on-black silhouettes; pass 1 to treat any non-black
//     pixel as foreground.
//
// Returns a new mask of the same dimensions as the image bounds.
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	bounds := img.Bounds()
	m := NewMask(bounds.Dx(), bounds.Dy())

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if grayValue(img, x+bounds.Min.X, y+bounds.Min.Y) >= threshold {
				m.Pix[y*m.Width+x] = 1
			}
		}
	}
	return m
}

// Clone returns an independent deep copy of the mask.
func (m *Mask) Clone() *Mask {
	dup := &Mask{
		Width:  m.Width,
		Height: m.Height,
		Pix:    make([]uint8, len(m.Pix)),
	}
	copy(dup.Pix, m.Pix)
	return dup
}

// At returns the pixel value at (x, y), or 0 for coordinates outside
// the mask. The out-of-bounds behavior lets boundary-walking code probe
// neighbors without its own bounds checks.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

// Set assigns v (normalized to 0 or 1) to the pixel at (x, y).
// Out-of-bounds coordinates are ignored.
func (m *Mask) Set(x, y int, v uint8) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	if v != 0 {
		v = 1
	}
	m.Pix[y*m.Width+x] = v
}

// Area returns the foreground pixel count. This is the "region area"
// every descriptor works with, and equals the raw moment m00.
func (m *Mask) Area() int {
	count := 0
	for _, v := range m.Pix {
		if v != 0 {
			count++
		}
	}
	return count
}

// AreaRect returns the foreground pixel count within the inclusive
// rectangle [x1,x2]×[y1,y2]. Coordinates are clamped to the mask, so a
// rectangle extending past the border counts only the in-bounds part.
func (m *Mask) AreaRect(x1, y1, x2, y2 int) int {
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 >= m.Width {
		x2 = m.Width - 1
	}
	if y2 >= m.Height {
		y2 = m.Height - 1
	}

	count := 0
	for y := y1; y <= y2; y++ {
		row := y * m.Width
		for x := x1; x <= x2; x++ {
			if m.Pix[row+x] != 0 {
				count++
			}
		}
	}
	return count
}

// Empty reports whether the mask has no foreground pixels at all.
func (m *Mask) Empty() bool {
	for _, v := range m.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

// ToGray renders the mask as an 8-bit grayscale image with foreground
// pixels at 255 and background at 0, suitable for the standard image
// transforms and encoders.
func (m *Mask) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for i, v := range m.Pix {
		if v != 0 {
			img.Pix[i] = 255
		}
	}
	return img
}

// grayValue converts a pixel to grayscale using ITU-R BT.601 luminance weights.
// Formula: Y = 0.299*R + 0.587*G + 0.114*B
func grayValue(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114)
}
