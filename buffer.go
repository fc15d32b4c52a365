package ncarray

// Buffer is the storage capability consumed by NewFromBuffer: one flat
// contiguous row-major block of elements. Implementations must return the
// same backing slice for the lifetime of the buffer; the Array reads and
// writes through it in place and never resizes it.
type Buffer[T any] interface {
	Slice() []T
}

// SliceBuffer adapts a plain slice to the Buffer capability.
type SliceBuffer[T any] []T

// Slice returns the underlying slice.
func (b SliceBuffer[T]) Slice() []T { return b }
