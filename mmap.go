package ncarray

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MmapBuffer is a Buffer[byte] over a memory-mapped file, letting a
// byte-element Array live on disk. Reads and writes go through the mapped
// region without syscall I/O; Flush forces dirty pages out. Pair it with
// SaveOffsetMeta/LoadOffsetMeta to reopen a persisted array with its
// rotation state intact.
type MmapBuffer struct {
	file *os.File
	mmap []byte
}

// OpenMmapBuffer maps size bytes of the file at path, creating the file and
// truncating it to size if needed.
func OpenMmapBuffer(path string, size int) (*MmapBuffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: buffer of %d bytes", ErrShape, size)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open buffer file: %w", err)
	}
	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, fmt.Errorf("allocate buffer file: %w", err)
	}
	mm, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap buffer file: %w", err)
	}
	return &MmapBuffer{file: f, mmap: mm}, nil
}

// Slice returns the mapped region.
func (b *MmapBuffer) Slice() []byte { return b.mmap }

// Flush forces mapped data to disk.
func (b *MmapBuffer) Flush() error {
	if err := unix.Msync(b.mmap, unix.MS_SYNC); err != nil {
		return fmt.Errorf("msync buffer: %w", err)
	}
	return nil
}

// Close unmaps the region and closes the file.
func (b *MmapBuffer) Close() error {
	var firstErr error
	if err := unix.Munmap(b.mmap); err != nil {
		firstErr = fmt.Errorf("munmap buffer: %w", err)
	}
	if err := b.file.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close buffer file: %w", err)
	}
	return firstErr
}
