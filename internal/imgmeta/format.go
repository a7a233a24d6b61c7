package imgmeta

import (
	"path/filepath"
	"strings"
)

// Format identifies one of the container formats this package can size.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatGIF
	FormatJPEG
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatGIF:
		return "gif"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// FormatForPath maps a file path to a decoder by its lowercase extension.
// The extension is authoritative; file contents are never inspected.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".gif":
		return FormatGIF
	case ".jpg", ".jpeg":
		return FormatJPEG
	default:
		return FormatUnknown
	}
}
