//go:build cgo && linux

package listing

import (
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// OCRAlt extracts text embedded in the image for use as alt text. It returns
// "" when the image carries no usable text, leaving the filename-derived
// label in place. Requires Tesseract; only built on Linux with CGO enabled.
func OCRAlt(path string) string {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(path); err != nil {
		return ""
	}
	text, err := client.Text()
	if err != nil {
		return ""
	}

	text = strings.Join(strings.Fields(text), " ")
	// Alt text wants a phrase, not a paragraph and not line noise.
	if len(text) < 3 || len(text) > 120 {
		return ""
	}
	return text
}
