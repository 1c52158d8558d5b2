// Package dataset reads collections of binary shape masks from disk.
//
// A dataset is a flat directory of image files named
// "<kind>-<index>.<ext>", for example "bottle-3.gif" or
// "cellular_phone-12.png". The kind groups samples of the same object
// class; the numeric index orders them. Kind names may themselves
// contain dashes, so the split happens at the last one.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
)

// maskExts lists the file extensions recognized as mask images.
var maskExts = map[string]bool{
	".gif":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// Sample is one mask in a dataset. Mask is nil until loaded.
type Sample struct {
	Kind  string        `json:"kind"`
	Name  string        `json:"name"`
	Index int           `json:"index"`
	Path  string        `json:"path"`
	Mask  *imaging.Mask `json:"-"`
}

// Loader lists and loads dataset samples, caching decoded masks so
// repeated scoring of the same kind does not re-read files.
type Loader struct {
	root  string
	cache *imaging.MaskCache
}

// NewLoader creates a loader rooted at the given directory. Threshold
// 0 selects the default binarization threshold.
func NewLoader(root string, threshold uint8) *Loader {
	return &Loader{
		root:  root,
		cache: imaging.NewMaskCache(threshold),
	}
}

// Root returns the dataset directory.
func (l *Loader) Root() string { return l.root }

// Kinds returns the sorted set of sample kinds present in the dataset
// directory. Files that do not follow the naming scheme are skipped.
func (l *Loader) Kinds() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset directory: %w", err)
	}

	seen := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		kind, _, ok := parseSampleName(e.Name())
		if !ok {
			continue
		}
		seen[kind] = true
	}

	kinds := make([]string, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds, nil
}

// Samples returns the metadata of every sample of a kind, ordered by
// numeric index. Masks are not loaded.
func (l *Loader) Samples(kind string) ([]*Sample, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset directory: %w", err)
	}

	var samples []*Sample
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		k, idx, ok := parseSampleName(e.Name())
		if !ok || k != kind {
			continue
		}
		samples = append(samples, &Sample{
			Kind:  k,
			Name:  e.Name(),
			Index: idx,
			Path:  filepath.Join(l.root, e.Name()),
		})
	}

	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Index != samples[j].Index {
			return samples[i].Index < samples[j].Index
		}
		return samples[i].Name < samples[j].Name
	})
	return samples, nil
}

// LoadKind returns every sample of a kind with its mask loaded through
// the cache. The first unreadable file aborts the load.
func (l *Loader) LoadKind(kind string) ([]*Sample, error) {
	samples, err := l.Samples(kind)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples of kind %q in %s", kind, l.root)
	}

	for _, s := range samples {
		mask, err := l.cache.Load(s.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load sample %s: %w", s.Name, err)
		}
		s.Mask = mask
	}
	return samples, nil
}

// parseSampleName splits "<kind>-<index>.<ext>" at the last dash.
func parseSampleName(name string) (kind string, index int, ok bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if !maskExts[ext] {
		return "", 0, false
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	i := strings.LastIndex(base, "-")
	if i <= 0 || i == len(base)-1 {
		return "", 0, false
	}
	index, err := strconv.Atoi(base[i+1:])
	if err != nil {
		return "", 0, false
	}
	return base[:i], index, true
}
