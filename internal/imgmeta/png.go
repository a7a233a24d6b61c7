package imgmeta

import (
	"bytes"
	"encoding/binary"
)

// pngSignature is the fixed 8-byte header every PNG file starts with.
var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// pngDimensions reads the IHDR chunk, which the PNG format guarantees comes
// first: after the signature and the chunk's length and type fields, width
// and height sit at offsets 16 and 20 as big-endian uint32.
func pngDimensions(path string) (Dimensions, bool) {
	header, err := readHeader(path, 24)
	if err != nil || len(header) < 24 {
		return Dimensions{}, false
	}
	if !bytes.Equal(header[:8], pngSignature) {
		return Dimensions{}, false
	}
	return Dimensions{
		Width:  binary.BigEndian.Uint32(header[16:20]),
		Height: binary.BigEndian.Uint32(header[20:24]),
	}, true
}
