package listing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"imgindex/internal/imgmeta"
)

// Entry describes one image file headed for the listing.
type Entry struct {
	Name    string // base filename, used as the src attribute
	Path    string // location on disk
	Dims    imgmeta.Dimensions
	HasDims bool
	Alt     string
	Swatch  string // "#rrggbb" placeholder color, empty unless requested
	Thumb   string // relative path of the generated thumbnail, if any
}

// Scan enumerates the image files directly under dir (non-recursive) and
// resolves dimensions for the formats that support header decoding. Entries
// come back in name order. One undecodable file never fails the scan; a
// missing directory or an empty match set does.
func Scan(dir string, extensions []string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed["."+strings.TrimPrefix(strings.ToLower(ext), ".")] = true
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !allowed[strings.ToLower(filepath.Ext(de.Name()))] {
			continue
		}
		path := filepath.Join(dir, de.Name())
		dims, ok := imgmeta.DimensionsOf(path)
		entries = append(entries, Entry{
			Name:    de.Name(),
			Path:    path,
			Dims:    dims,
			HasDims: ok,
			Alt:     Label(de.Name()),
		})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no image files in %s", dir)
	}
	return entries, nil
}
