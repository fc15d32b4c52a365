package ncarray

import (
	"encoding/binary"
	"fmt"
	"os"
)

// meta file layout (little-endian):
// 0..7  : uint64 axis count
// 8..   : uint64 offset per axis

// SaveOffsetMeta writes an offset vector to path. A file-backed array (see
// MmapBuffer) persisted together with its meta file can be reopened through
// NewOffset with its rotation state intact.
func SaveOffsetMeta(path string, offset []int) error {
	buf := make([]byte, 8+8*len(offset))
	binary.LittleEndian.PutUint64(buf[0:8], uint64(len(offset)))
	for i, o := range offset {
		binary.LittleEndian.PutUint64(buf[8+8*i:], uint64(o))
	}
	return os.WriteFile(path, buf, 0o666)
}

// LoadOffsetMeta reads an offset vector written by SaveOffsetMeta.
func LoadOffsetMeta(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) < 8 {
		return nil, fmt.Errorf("meta file too small: %d bytes", len(data))
	}
	// The count is untrusted input: a huge value wraps negative through the
	// int conversion, so bound it by the bytes actually present.
	n := int(binary.LittleEndian.Uint64(data[0:8]))
	if n <= 0 || n > (len(data)-8)/8 {
		return nil, fmt.Errorf("meta file corrupt: %d axes in %d bytes", n, len(data))
	}
	offset := make([]int, n)
	for i := range offset {
		offset[i] = int(binary.LittleEndian.Uint64(data[8+8*i:]))
	}
	return offset, nil
}
