package imgmeta

import (
	"io"
	"os"
)

// readHeader returns up to n leading bytes of the file at path. A file
// shorter than n yields what exists without error. The file handle is closed
// on every return path.
func readHeader(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	if err != nil {
		return nil, err
	}
	return buf[:read], nil
}
