package imgmeta

// Dimensions holds an image's pixel width and height exactly as encoded in
// its file header.
type Dimensions struct {
	Width  uint32
	Height uint32
}

// DimensionsOf extracts the pixel dimensions of the image at path by parsing
// its header. The second return value reports whether dimensions were
// recovered; it is false for unsupported extensions, malformed or truncated
// headers, and any I/O failure. Unsupported extensions return without
// touching the filesystem.
func DimensionsOf(path string) (Dimensions, bool) {
	switch FormatForPath(path) {
	case FormatPNG:
		return pngDimensions(path)
	case FormatGIF:
		return gifDimensions(path)
	case FormatJPEG:
		return jpegDimensions(path)
	default:
		return Dimensions{}, false
	}
}
