package listing

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
)

const (
	pageHeader = "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>Images</title></head>\n<body>\n"
	pageFooter = "</body>\n</html>\n"
)

// Tag renders the markup fragment for a single entry. Width and height
// attributes appear only when the header decoder recovered dimensions.
func Tag(e Entry) string {
	var b strings.Builder
	b.WriteString(`<img src="`)
	b.WriteString(html.EscapeString(filepath.ToSlash(pick(e.Thumb, e.Name))))
	b.WriteByte('"')
	if e.HasDims && e.Thumb == "" {
		fmt.Fprintf(&b, ` width="%d" height="%d"`, e.Dims.Width, e.Dims.Height)
	}
	fmt.Fprintf(&b, ` alt="%s"`, html.EscapeString(e.Alt))
	if e.Swatch != "" {
		fmt.Fprintf(&b, ` style="background-color:%s"`, e.Swatch)
	}
	b.WriteByte('>')

	if e.Thumb != "" {
		// Thumbnails link through to the original.
		return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(filepath.ToSlash(e.Name)), b.String())
	}
	return b.String()
}

// Render concatenates one fragment per entry, newline-terminated. With page
// set, the fragments are wrapped in a minimal standalone document.
func Render(entries []Entry, page bool) string {
	var b strings.Builder
	if page {
		b.WriteString(pageHeader)
	}
	for _, e := range entries {
		b.WriteString(Tag(e))
		b.WriteByte('\n')
	}
	if page {
		b.WriteString(pageFooter)
	}
	return b.String()
}

// Write renders the listing and writes it to path.
func Write(path string, entries []Entry, page bool) error {
	if err := os.WriteFile(path, []byte(Render(entries, page)), 0o644); err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	return nil
}

func pick(preferred, fallback string) string {
	if preferred != "" {
		return preferred
	}
	return fallback
}
