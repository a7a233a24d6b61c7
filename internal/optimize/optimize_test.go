package optimize

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// gradientImage builds an image with enough detail that quality settings
// visibly change the encoded size.
func gradientImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 7), uint8(y * 5), uint8((x + y) * 3), 255})
		}
	}
	return img
}

func writeJPEG(t *testing.T, path string, width, height, quality int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, gradientImage(width, height), &jpeg.Options{Quality: quality}); err != nil {
		t.Fatalf("failed to encode jpeg: %v", err)
	}
}

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, gradientImage(width, height)); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}

func fileSize(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return info.Size()
}

func TestRun_Mirror(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeJPEG(t, filepath.Join(in, "photo.jpg"), 128, 128, 100)
	writePNG(t, filepath.Join(in, "sub", "chart.png"), 64, 64)
	if err := os.WriteFile(filepath.Join(in, "sub", "notes.txt"), []byte("keep me"), 0o644); err != nil {
		t.Fatalf("failed to write notes: %v", err)
	}

	stats, err := Run(Options{InputDir: in, OutputDir: out, NoExec: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if stats.Failed != 0 {
		t.Errorf("failed = %d, want 0", stats.Failed)
	}
	if stats.Optimized+stats.Copied != 3 {
		t.Errorf("optimized %d + copied %d, want 3 total", stats.Optimized, stats.Copied)
	}
	if stats.OutputBytes > stats.InputBytes {
		t.Errorf("mirror grew: %d in, %d out", stats.InputBytes, stats.OutputBytes)
	}

	// Directory structure is preserved and non-images survive untouched.
	notes, err := os.ReadFile(filepath.Join(out, "sub", "notes.txt"))
	if err != nil || !bytes.Equal(notes, []byte("keep me")) {
		t.Errorf("notes.txt not mirrored verbatim: %q, %v", notes, err)
	}
	if fileSize(t, filepath.Join(out, "sub", "chart.png")) > fileSize(t, filepath.Join(in, "sub", "chart.png")) {
		t.Error("png derivative grew past its source")
	}

	// A quality-100 JPEG re-encoded at the default quality must shrink.
	if fileSize(t, filepath.Join(out, "photo.jpg")) >= fileSize(t, filepath.Join(in, "photo.jpg")) {
		t.Error("jpeg derivative did not shrink")
	}
	if stats.Optimized < 1 {
		t.Errorf("optimized = %d, want at least the jpeg", stats.Optimized)
	}
}

func TestRun_NeverGrow(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	// A tiny PNG leaves the re-encoder no headroom; the result must degrade
	// to a plain copy instead of growing.
	writePNG(t, filepath.Join(in, "dot.png"), 2, 2)

	stats, err := Run(Options{InputDir: in, OutputDir: out, NoExec: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if fileSize(t, filepath.Join(out, "dot.png")) > fileSize(t, filepath.Join(in, "dot.png")) {
		t.Error("derivative larger than source was kept")
	}
	if stats.OutputBytes > stats.InputBytes {
		t.Error("stats report growth")
	}
}

func TestRun_MaxWidth(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeJPEG(t, filepath.Join(in, "wide.jpg"), 200, 100, 95)

	if _, err := Run(Options{InputDir: in, OutputDir: out, NoExec: true, MaxWidth: 50}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	f, err := os.Open(filepath.Join(out, "wide.jpg"))
	if err != nil {
		t.Fatalf("failed to open derivative: %v", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("failed to decode derivative: %v", err)
	}
	if cfg.Width != 50 || cfg.Height != 25 {
		t.Errorf("got %dx%d, want 50x25", cfg.Width, cfg.Height)
	}
}

func TestRun_WebPDerivative(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeJPEG(t, filepath.Join(in, "photo.jpg"), 64, 64, 90)

	if _, err := Run(Options{InputDir: in, OutputDir: out, NoExec: true, WebP: true}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "photo.webp")); err != nil {
		t.Errorf("webp derivative missing: %v", err)
	}
}

func TestRun_MissingInput(t *testing.T) {
	if _, err := Run(Options{InputDir: "/nonexistent/tree", OutputDir: t.TempDir()}); err == nil {
		t.Error("missing input directory should error")
	}
}

func TestRun_RequiresDirs(t *testing.T) {
	if _, err := Run(Options{}); err == nil {
		t.Error("empty options should error")
	}
}
