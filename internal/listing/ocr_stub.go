//go:build !cgo || !linux

package listing

// OCRAlt is a no-op on builds without Tesseract support; callers fall back
// to the filename-derived label.
func OCRAlt(path string) string {
	return ""
}
