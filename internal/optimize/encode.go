package optimize

import (
	"fmt"
	"image"
	"image/gif"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/chai2010/webp"
)

const jpegQuality = 85

// reencode decodes src, optionally bounds its width, and writes a freshly
// encoded copy in the same format to dst. This is the fallback when no
// external optimizer is installed for the format.
func reencode(src, dst string, maxWidth int) error {
	img, err := imgio.Open(src)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", src, err)
	}
	img = bound(img, maxWidth)

	var encoder imgio.Encoder
	switch strings.ToLower(filepath.Ext(dst)) {
	case ".jpg", ".jpeg":
		encoder = imgio.JPEGEncoder(jpegQuality)
	case ".png":
		encoder = imgio.PNGEncoder()
	case ".gif":
		// bild has no GIF encoder.
		return encodeGIF(img, dst)
	default:
		return fmt.Errorf("no encoder for %s", dst)
	}
	if err := imgio.Save(dst, img, encoder); err != nil {
		return fmt.Errorf("failed to encode %s: %w", dst, err)
	}
	return nil
}

func encodeGIF(img image.Image, dst string) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gif.Encode(f, img, &gif.Options{NumColors: 256}); err != nil {
		return fmt.Errorf("failed to encode %s: %w", dst, err)
	}
	return nil
}

// webpCopy writes a WebP derivative of the image at src.
func webpCopy(src, dst string, opts Options) error {
	img, err := imgio.Open(src)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", src, err)
	}
	img = bound(img, opts.MaxWidth)

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	quality := opts.WebPQuality
	if quality <= 0 {
		quality = 80
	}
	if err := webp.Encode(f, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return fmt.Errorf("failed to encode %s: %w", dst, err)
	}
	return nil
}

// bound scales img down so its width is at most maxWidth, preserving aspect
// ratio. Zero disables resizing; images are never upscaled.
func bound(img image.Image, maxWidth int) image.Image {
	width := img.Bounds().Dx()
	if maxWidth <= 0 || width <= maxWidth {
		return img
	}
	height := img.Bounds().Dy() * maxWidth / width
	if height < 1 {
		height = 1
	}
	return transform.Resize(img, maxWidth, height, transform.Lanczos)
}
