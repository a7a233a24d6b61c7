package imgmeta

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
)

const (
	jpegMarkerPrefix = 0xFF // introduces every marker, also used as fill byte
	jpegSOS          = 0xDA // start of scan: entropy-coded data follows
)

// sofMarkers is the set of start-of-frame markers that carry dimensions:
// baseline, extended sequential, progressive and lossless frames in both
// Huffman and arithmetic variants. The reserved JPG extension marker (C8)
// and the arithmetic conditioning marker (CC) are not frame headers and
// stay excluded.
var sofMarkers = map[byte]bool{
	0xC0: true, 0xC1: true, 0xC2: true, 0xC3: true,
	0xC5: true, 0xC6: true, 0xC7: true,
	0xC9: true, 0xCA: true, 0xCB: true,
	0xCD: true, 0xCE: true, 0xCF: true,
}

// jpegDimensions walks the marker chain from the start of the stream until
// it finds a start-of-frame segment or reaches entropy-coded data. Unlike
// PNG and GIF the dimension-bearing segment sits at no fixed offset: any
// number of application and comment segments may precede it, each skipped by
// its declared length. Segment lengths include their own two bytes, so a
// value below 2 is corrupt and ends the scan.
func jpegDimensions(path string) (Dimensions, bool) {
	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, false
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var soi [2]byte
	if _, err := io.ReadFull(r, soi[:]); err != nil || soi[0] != 0xFF || soi[1] != 0xD8 {
		return Dimensions{}, false
	}

	for {
		prefix, err := r.ReadByte()
		if err != nil || prefix != jpegMarkerPrefix {
			return Dimensions{}, false
		}
		marker, err := r.ReadByte()
		for err == nil && marker == jpegMarkerPrefix {
			// fill bytes before the marker type
			marker, err = r.ReadByte()
		}
		if err != nil {
			return Dimensions{}, false
		}
		if marker == jpegSOS {
			// No frame header before the entropy-coded stream.
			return Dimensions{}, false
		}

		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return Dimensions{}, false
		}
		length := int(binary.BigEndian.Uint16(lenBuf[:]))
		if length < 2 {
			return Dimensions{}, false
		}
		body := length - 2

		if sofMarkers[marker] {
			// Frame header layout: precision byte, height, width, then the
			// per-component data we have no use for.
			if body < 6 {
				return Dimensions{}, false
			}
			sof := make([]byte, body)
			if _, err := io.ReadFull(r, sof); err != nil {
				return Dimensions{}, false
			}
			return Dimensions{
				Width:  uint32(binary.BigEndian.Uint16(sof[3:5])),
				Height: uint32(binary.BigEndian.Uint16(sof[1:3])),
			}, true
		}

		if _, err := io.CopyN(io.Discard, r, int64(body)); err != nil {
			return Dimensions{}, false
		}
	}
}
