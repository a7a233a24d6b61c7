package listing

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/chai2010/webp"
	"github.com/lucasb-eyer/go-colorful"
)

// swatchSampleBudget caps how many pixels Swatch inspects per image so large
// photos stay cheap.
const swatchSampleBudget = 65536

// Swatch returns the dominant color of the image at path as a CSS hex
// string, for use as a placeholder background while the image loads. Colors
// are quantized to 4 bits per channel before counting so near-identical
// shades pool together.
func Swatch(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	step := 1
	for (bounds.Dx()/step)*(bounds.Dy()/step) > swatchSampleBudget {
		step++
	}

	counts := make(map[uint16]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			key := uint16(r>>12)<<8 | uint16(g>>12)<<4 | uint16(b>>12)
			counts[key]++
		}
	}

	var best uint16
	bestCount := -1
	for key, count := range counts {
		if count > bestCount || (count == bestCount && key < best) {
			best, bestCount = key, count
		}
	}

	c := colorful.Color{
		R: float64(best>>8&0xF) / 15,
		G: float64(best>>4&0xF) / 15,
		B: float64(best&0xF) / 15,
	}
	return c.Hex(), nil
}

// TextColorFor picks black or white for text overlaid on the given swatch,
// whichever contrasts better.
func TextColorFor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	if _, _, l := c.Hsl(); l < 0.5 {
		return "#ffffff"
	}
	return "#000000"
}
