package listing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Thumbnail writes a preview of the entry's image into dir, scaled to fit
// within size x size while keeping aspect ratio, and returns the thumbnail's
// path for use as an src attribute. The output keeps the source format.
func Thumbnail(e Entry, dir string, size int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	img, err := imaging.Open(e.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", e.Name, err)
	}

	thumb := imaging.Fit(img, size, size, imaging.Lanczos)
	out := filepath.Join(dir, e.Name)
	if err := imaging.Save(thumb, out); err != nil {
		return "", fmt.Errorf("failed to save thumbnail for %s: %w", e.Name, err)
	}
	return out, nil
}
