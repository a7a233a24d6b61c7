package imgmeta

import "encoding/binary"

// gifDimensions reads the logical screen descriptor that directly follows
// the 6-byte version literal: width then height, little-endian uint16 each.
func gifDimensions(path string) (Dimensions, bool) {
	header, err := readHeader(path, 10)
	if err != nil || len(header) < 10 {
		return Dimensions{}, false
	}
	if v := string(header[:6]); v != "GIF87a" && v != "GIF89a" {
		return Dimensions{}, false
	}
	return Dimensions{
		Width:  uint32(binary.LittleEndian.Uint16(header[6:8])),
		Height: uint32(binary.LittleEndian.Uint16(header[8:10])),
	}, true
}
