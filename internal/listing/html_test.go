package listing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imgindex/internal/imgmeta"
)

func TestTag_WithDimensions(t *testing.T) {
	e := Entry{
		Name:    "sunset.png",
		Dims:    imgmeta.Dimensions{Width: 640, Height: 480},
		HasDims: true,
		Alt:     "Sunset",
	}
	got := Tag(e)
	want := `<img src="sunset.png" width="640" height="480" alt="Sunset">`
	if got != want {
		t.Errorf("Tag = %q, want %q", got, want)
	}
}

func TestTag_WithoutDimensions(t *testing.T) {
	got := Tag(Entry{Name: "logo.svg", Alt: "Logo"})
	want := `<img src="logo.svg" alt="Logo">`
	if got != want {
		t.Errorf("Tag = %q, want %q", got, want)
	}
}

func TestTag_EscapesAttributes(t *testing.T) {
	got := Tag(Entry{Name: `a"b.svg`, Alt: `He said "hi" & left`})
	if strings.Contains(got, `said "hi"`) || strings.Contains(got, `a"b.svg`) {
		t.Errorf("attributes not escaped: %q", got)
	}
	if !strings.Contains(got, "&amp;") {
		t.Errorf("ampersand not escaped: %q", got)
	}
}

func TestTag_SwatchAndThumb(t *testing.T) {
	e := Entry{
		Name:    "pic.jpg",
		Dims:    imgmeta.Dimensions{Width: 3000, Height: 2000},
		HasDims: true,
		Alt:     "Pic",
		Swatch:  "#336699",
		Thumb:   "thumbs/pic.jpg",
	}
	got := Tag(e)
	if !strings.HasPrefix(got, `<a href="pic.jpg">`) || !strings.HasSuffix(got, "</a>") {
		t.Errorf("thumbnail entry should link to the original: %q", got)
	}
	if !strings.Contains(got, `src="thumbs/pic.jpg"`) {
		t.Errorf("thumbnail src missing: %q", got)
	}
	if strings.Contains(got, `width="3000"`) {
		t.Errorf("original dimensions leaked onto thumbnail tag: %q", got)
	}
	if !strings.Contains(got, `style="background-color:#336699"`) {
		t.Errorf("swatch missing: %q", got)
	}
}

func TestRender_Page(t *testing.T) {
	entries := []Entry{{Name: "a.png", Alt: "A"}, {Name: "b.png", Alt: "B"}}
	out := Render(entries, true)
	if !strings.HasPrefix(out, "<!DOCTYPE html>") || !strings.HasSuffix(out, "</html>\n") {
		t.Errorf("page wrapper missing:\n%s", out)
	}
	if strings.Count(out, "<img ") != 2 {
		t.Errorf("expected 2 img tags:\n%s", out)
	}
}

func TestWrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "images.html")
	entries := []Entry{{Name: "a.png", Alt: "A"}}
	if err := Write(out, entries, false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}
	if string(data) != Render(entries, false) {
		t.Error("artifact content does not match Render output")
	}
}
