package imgmeta

import (
	"bytes"
	"testing"
)

func TestReadHeader_ShortFile(t *testing.T) {
	path := writeFixture(t, "short.bin", []byte{1, 2, 3})
	got, err := readHeader(path, 24)
	if err != nil {
		t.Fatalf("short file should not error: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("got %v, want the file's 3 bytes", got)
	}
}

func TestReadHeader_Bounded(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 100)
	path := writeFixture(t, "long.bin", data)
	got, err := readHeader(path, 10)
	if err != nil {
		t.Fatalf("readHeader failed: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("got %d bytes, want 10", len(got))
	}
}

func TestReadHeader_MissingFile(t *testing.T) {
	if _, err := readHeader("/nonexistent/file.bin", 10); err == nil {
		t.Error("missing file should error")
	}
}
