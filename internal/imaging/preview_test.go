package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// decodePreview decodes the base64 PNG payload of a preview result.
func decodePreview(t *testing.T, r *PreviewResult) image.Image {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return img
}

func TestRenderPreview(t *testing.T) {
	m := maskFromRows(t,
		"......",
		".####.",
		".####.",
		"......",
		"......",
	)

	result, err := RenderPreview(m, nil, 1.0)
	if err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
	if result.Width != 6 || result.Height != 5 {
		t.Errorf("dimensions: got %dx%d, want 6x5", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %q, want image/png", result.MimeType)
	}

	img := decodePreview(t, result)
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 5 {
		t.Errorf("decoded dimensions: got %dx%d, want 6x5", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Foreground renders white, background black
	r, g, b, _ := img.At(2, 1).RGBA()
	if r < 0xF000 || g < 0xF000 || b < 0xF000 {
		t.Errorf("foreground pixel not white: got (%d,%d,%d)", r, g, b)
	}
	r, g, b, _ = img.At(0, 0).RGBA()
	if r > 0x0F00 || g > 0x0F00 || b > 0x0F00 {
		t.Errorf("background pixel not black: got (%d,%d,%d)", r, g, b)
	}
}

func TestRenderPreview_Scale(t *testing.T) {
	m := maskFromRows(t,
		"....",
		".##.",
		"....",
	)

	result, err := RenderPreview(m, nil, 2.0)
	if err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
	if result.Width != 8 || result.Height != 6 {
		t.Errorf("scaled dimensions: got %dx%d, want 8x6", result.Width, result.Height)
	}

	img := decodePreview(t, result)
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("decoded dimensions: got %dx%d, want 8x6",
			img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRenderPreview_ScaleZeroKeepsSize(t *testing.T) {
	m := maskFromRows(t,
		"##",
		"##",
	)

	result, err := RenderPreview(m, nil, 0)
	if err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
	if result.Width != 2 || result.Height != 2 {
		t.Errorf("dimensions: got %dx%d, want 2x2", result.Width, result.Height)
	}
}

func TestRenderPreview_Overlay(t *testing.T) {
	m := NewMask(5, 5)

	overlays := []Overlay{
		{
			Points: []image.Point{{X: 0, Y: 0}},
			Color:  color.RGBA{G: 255, A: 255},
		},
		{
			// nil Color falls back to red
			Points: []image.Point{{X: 4, Y: 4}},
		},
	}

	result, err := RenderPreview(m, overlays, 1.0)
	if err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
	img := decodePreview(t, result)

	r, g, _, _ := img.At(0, 0).RGBA()
	if g < 0xF000 || r > 0x0F00 {
		t.Errorf("overlay pixel not green: got r=%d g=%d", r, g)
	}

	r, g, _, _ = img.At(4, 4).RGBA()
	if r < 0xF000 || g > 0x0F00 {
		t.Errorf("default overlay pixel not red: got r=%d g=%d", r, g)
	}
}

func TestRenderPreview_ClosedOverlay(t *testing.T) {
	m := NewMask(6, 6)

	// A closed triangle: the closing edge from (4,4) back to (1,1)
	// passes back through the diagonal.
	overlays := []Overlay{
		{
			Points: []image.Point{{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 4}},
			Closed: true,
			Color:  color.White,
		},
	}

	result, err := RenderPreview(m, overlays, 1.0)
	if err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
	img := decodePreview(t, result)

	for _, p := range []image.Point{{1, 1}, {4, 1}, {4, 4}, {2, 2}, {3, 3}} {
		r, _, _, _ := img.At(p.X, p.Y).RGBA()
		if r < 0xF000 {
			t.Errorf("pixel (%d,%d) not stroked", p.X, p.Y)
		}
	}
}

func TestRenderPreview_ZeroSize(t *testing.T) {
	if _, err := RenderPreview(NewMask(0, 0), nil, 1.0); err == nil {
		t.Error("expected error for zero-size mask, got nil")
	}
}

func TestOverlayPalette(t *testing.T) {
	if got := OverlayPalette(0); got != nil {
		t.Errorf("OverlayPalette(0): got %v, want nil", got)
	}
	if got := OverlayPalette(1); len(got) != 1 {
		t.Errorf("OverlayPalette(1): got %d colors, want 1", len(got))
	}

	palette := OverlayPalette(5)
	if len(palette) != 5 {
		t.Fatalf("OverlayPalette(5): got %d colors, want 5", len(palette))
	}
	seen := make(map[[4]uint32]bool)
	for _, c := range palette {
		r, g, b, a := c.RGBA()
		key := [4]uint32{r, g, b, a}
		if seen[key] {
			t.Errorf("palette color %v not distinct", key)
		}
		seen[key] = true
	}
}
