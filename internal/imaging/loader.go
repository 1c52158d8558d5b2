package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// MaskCache provides thread-safe caching of binarized masks to avoid
// redundant disk reads and re-thresholding.
//
// The cache stores decoded masks keyed by their file path. Once a mask
// is loaded, subsequent Load() calls for the same path return the cached
// copy without disk I/O. All cached masks are binarized with the
// threshold the cache was created with.
//
// MaskCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached masks remain in memory until explicitly removed via Evict() or
// Clear(). For long-running processes handling many masks, consider
// periodic cleanup to prevent unbounded memory growth.
type MaskCache struct {
	mu        sync.RWMutex
	threshold uint8
	masks     map[string]*Mask
}

// NewMaskCache creates an empty cache whose loads binarize at the given
// luminance threshold. A threshold of 0 selects DefaultThreshold.
func NewMaskCache(threshold uint8) *MaskCache {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	return &MaskCache{
		threshold: threshold,
		masks:     make(map[string]*Mask),
	}
}

// Threshold returns the luminance cutoff this cache binarizes with.
func (c *MaskCache) Threshold() uint8 {
	return c.threshold
}

// Load retrieves a mask from the cache or reads and binarizes the image
// file if not cached.
//
// Parameters:
//   - path: Absolute or relative file path. Supported formats are PNG,
//     JPEG, GIF, BMP, and TIFF.
//
// Returns:
//   - *Mask: The binarized mask. Cached masks are shared; callers must
//     not mutate the returned mask (Clone it first).
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The mask is cached using the exact path string provided. Different
// paths to the same file (relative vs absolute) result in separate
// cache entries.
func (c *MaskCache) Load(path string) (*Mask, error) {
	c.mu.RLock()
	if m, ok := c.masks[path]; ok {
		c.mu.RUnlock()
		return m, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mask image: %w", err)
	}

	m := MaskFromImage(img, c.threshold)

	c.mu.Lock()
	c.masks[path] = m
	c.mu.Unlock()

	return m, nil
}

// Clear removes all masks from the cache, freeing the associated memory.
func (c *MaskCache) Clear() {
	c.mu.Lock()
	c.masks = make(map[string]*Mask)
	c.mu.Unlock()
}

// Evict removes a specific mask from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *MaskCache) Evict(path string) {
	c.mu.Lock()
	delete(c.masks, path)
	c.mu.Unlock()
}

// MaskInfo contains metadata about a loaded mask file.
type MaskInfo struct {
	// Width is the mask width in pixels.
	Width int `json:"width"`

	// Height is the mask height in pixels.
	Height int `json:"height"`

	// Format is the detected image format, by file extension:
	// "png", "jpeg", "gif", "bmp", "tiff", or "unknown".
	Format string `json:"format"`

	// ForegroundArea is the number of foreground pixels after
	// binarization.
	ForegroundArea int `json:"foreground_area"`

	// Coverage is ForegroundArea divided by the total pixel count,
	// in [0,1]. Zero for an empty canvas.
	Coverage float64 `json:"coverage"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadMaskInfo loads a mask (through the cache) and returns metadata
// about it: dimensions, detected format, foreground pixel count and
// coverage, and file size.
func LoadMaskInfo(cache *MaskCache, path string) (*MaskInfo, error) {
	m, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	}

	area := m.Area()
	coverage := 0.0
	if total := m.Width * m.Height; total > 0 {
		coverage = float64(area) / float64(total)
	}

	return &MaskInfo{
		Width:          m.Width,
		Height:         m.Height,
		Format:         format,
		ForegroundArea: area,
		Coverage:       coverage,
		FileSizeBytes:  stat.Size(),
	}, nil
}
