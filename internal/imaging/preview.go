package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Overlay is a polyline drawn on top of a mask preview, e.g. a traced
// contour or the corners of a bounding rectangle.
type Overlay struct {
	// Points are the polyline vertices in mask coordinates.
	Points []image.Point

	// Closed draws an edge from the last point back to the first.
	Closed bool

	// Color is the stroke color. A nil Color falls back to red.
	Color color.Color
}

// PreviewResult contains a rendered mask preview as base64-encoded PNG.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// OverlayPalette returns n visually distinct overlay colors, evenly
// spaced around the hue circle. Useful when rendering several overlays
// (contour, bounding rectangle, ...) on one preview.
func OverlayPalette(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	palette := make([]color.Color, n)
	for i := 0; i < n; i++ {
		palette[i] = colorful.Hsv(float64(i)*360.0/float64(n), 0.9, 0.95)
	}
	return palette
}

// RenderPreview renders a mask (foreground white on black) with the
// given overlays and returns it as base64-encoded PNG.
//
// Parameters:
//   - m: The mask to render.
//   - overlays: Polylines drawn on top of the mask, in mask coordinates.
//   - scale: Output scale factor; values <= 0 or == 1 keep the original
//     size. Scaling uses nearest-neighbor so mask pixels stay crisp.
//
// Returns:
//   - *PreviewResult: Rendered image dimensions and base64 PNG payload.
//   - error: Non-nil if the mask is zero-sized or encoding fails.
func RenderPreview(m *Mask, overlays []Overlay, scale float64) (*PreviewResult, error) {
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("cannot render preview of %dx%d mask", m.Width, m.Height)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Pix[y*m.Width+x] != 0 {
				canvas.Set(x, y, color.White)
			} else {
				canvas.Set(x, y, color.Black)
			}
		}
	}

	for _, ov := range overlays {
		strokeOverlay(canvas, ov)
	}

	var out image.Image = canvas
	if scale > 0 && scale != 1.0 {
		newWidth := int(float64(m.Width) * scale)
		newHeight := int(float64(m.Height) * scale)
		out = imaging.Resize(canvas, newWidth, newHeight, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// strokeOverlay draws one polyline onto the canvas.
func strokeOverlay(canvas *image.RGBA, ov Overlay) {
	if len(ov.Points) == 0 {
		return
	}
	c := ov.Color
	if c == nil {
		c = color.RGBA{R: 255, A: 255}
	}
	if len(ov.Points) == 1 {
		canvas.Set(ov.Points[0].X, ov.Points[0].Y, c)
		return
	}
	for i := 0; i < len(ov.Points)-1; i++ {
		strokeLine(canvas, ov.Points[i], ov.Points[i+1], c)
	}
	if ov.Closed {
		strokeLine(canvas, ov.Points[len(ov.Points)-1], ov.Points[0], c)
	}
}

// strokeLine draws a line segment using Bresenham's algorithm.
func strokeLine(canvas *image.RGBA, a, b image.Point, c color.Color) {
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
		canvas.Set(x, y, c)
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
