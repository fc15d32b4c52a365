package ncarray

import "fmt"

// Array is a fixed-shape n-dimensional circular array of elements T, backed
// by one flat row-major buffer. The shape and element count are fixed at
// construction; insertion rotates per-axis offsets instead of moving data,
// so the oldest slice of an axis is evicted in place.
//
// Axis 0 is the innermost axis: elements adjacent on axis 0 are adjacent in
// the buffer.
type Array[T any] struct {
	data    []T
	shape   []int
	size    int
	strides strides
	off     offsetMap
}

// New creates an Array of the given shape from row-major initial data. The
// data length must equal the product of the shape entries. The slice is
// retained and mutated in place by insertion operations.
func New[T any](shape []int, data []T) (*Array[T], error) {
	return NewOffset(shape, make([]int, len(shape)), data)
}

// NewOffset creates an Array with a starting rotation on each axis. Offsets
// must satisfy 0 <= offset[axis] < shape[axis]; an array persisted together
// with its offset vector (see SaveOffsetMeta) can be reopened through here.
func NewOffset[T any](shape, offset []int, data []T) (*Array[T], error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: empty shape", ErrShape)
	}
	size := 1
	for i, s := range shape {
		if s <= 0 {
			return nil, fmt.Errorf("%w: axis %d has non-positive length %d", ErrShape, i, s)
		}
		size *= s
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: %d elements for shape of %d", ErrShape, len(data), size)
	}
	if len(offset) != len(shape) {
		return nil, fmt.Errorf("%w: offset of %d axes for shape of %d axes",
			ErrShape, len(offset), len(shape))
	}
	for i, o := range offset {
		if o < 0 || o >= shape[i] {
			return nil, fmt.Errorf("%w: offset %d out of bounds on axis %d of length %d",
				ErrShape, o, i, shape[i])
		}
	}

	shape = append([]int(nil), shape...)
	return &Array[T]{
		data:    data,
		shape:   shape,
		size:    size,
		strides: newStrides(shape),
		off:     newOffsetMap(shape, append([]int(nil), offset...)),
	}, nil
}

// NewFromBuffer creates an Array over an external buffer, for storage types
// the caller owns (a pooled slice, a memory-mapped file, shared memory).
// The buffer is written in place by insertion operations; the caller must
// not mutate it through other references while the Array is live.
func NewFromBuffer[T any](shape []int, buf Buffer[T]) (*Array[T], error) {
	return New(shape, buf.Slice())
}

// Shape returns a copy of the axis lengths.
func (a *Array[T]) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Offset returns a copy of the current per-axis offsets. An insertion that
// replaces every slice of an axis resets all offsets to zero rather than
// accumulating.
func (a *Array[T]) Offset() []int {
	return append([]int(nil), a.off.off...)
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int { return a.size }

// SliceLen returns the number of elements in a single slice of the given
// axis. Pushing n slices onto an axis requires exactly n*SliceLen(axis)
// elements.
func (a *Array[T]) SliceLen(axis int) (int, error) {
	if err := a.checkAxis(axis); err != nil {
		return 0, err
	}
	return a.sliceLen(axis), nil
}

func (a *Array[T]) sliceLen(axis int) int { return a.size / a.shape[axis] }

// Data returns the raw backing buffer in physical order. Useful for
// operations where element order is arbitrary; writing through it bypasses
// ring semantics.
func (a *Array[T]) Data() []T { return a.data }

// Get returns the element at the given logical coordinate.
func (a *Array[T]) Get(index []int) (T, error) {
	var zero T
	flat, err := a.flatAt(index)
	if err != nil {
		return zero, err
	}
	return a.data[flat], nil
}

// GetMut returns a pointer to the element at the given logical coordinate,
// for updating larger element types in place. The pointer stays valid for
// the life of the backing buffer but its logical position moves with
// subsequent insertions.
func (a *Array[T]) GetMut(index []int) (*T, error) {
	flat, err := a.flatAt(index)
	if err != nil {
		return nil, err
	}
	return &a.data[flat], nil
}

// Set overwrites the element at the given logical coordinate.
func (a *Array[T]) Set(index []int, v T) error {
	flat, err := a.flatAt(index)
	if err != nil {
		return err
	}
	a.data[flat] = v
	return nil
}

// flatAt resolves a logical coordinate to its physical flat index.
func (a *Array[T]) flatAt(index []int) (int, error) {
	if len(index) != len(a.shape) {
		return 0, fmt.Errorf("%w: index of %d axes for %d dimensional array",
			ErrSelection, len(index), len(a.shape))
	}
	flat := 0
	for i, idx := range index {
		if idx < 0 || idx >= a.shape[i] {
			return 0, fmt.Errorf("%w: index %d on axis %d of length %d",
				ErrSelection, idx, i, a.shape[i])
		}
		flat += a.off.physical(i, idx) * a.strides[i]
	}
	return flat, nil
}

// Iter iterates every element in logical row-major order.
func (a *Array[T]) Iter() *Iterator[T] {
	rs, _ := a.runs(a.fullSelection())
	return newIterator(a.data, rs)
}

// IterIndex iterates the single slice at index of the given axis.
func (a *Array[T]) IterIndex(axis, index int) (*Iterator[T], error) {
	if err := a.checkAxis(axis); err != nil {
		return nil, err
	}
	sel := a.fullSelection()
	sel[axis] = At(index)
	return a.IterSlice(sel)
}

// IterRange iterates the slices within r of the given axis.
func (a *Array[T]) IterRange(axis int, r Range) (*Iterator[T], error) {
	if err := a.checkAxis(axis); err != nil {
		return nil, err
	}
	sel := a.fullSelection()
	sel[axis] = r
	return a.IterSlice(sel)
}

// IterSlice iterates the sub-array denoted by a per-axis selection, in
// row-major order over the selected sub-shape. The selection must hold one
// Range per axis; collecting the iterator into New with the sub-shape
// produces a reshaped copy.
func (a *Array[T]) IterSlice(sel []Range) (*Iterator[T], error) {
	rs, err := a.runs(sel)
	if err != nil {
		return nil, err
	}
	return newIterator(a.data, rs), nil
}

func (a *Array[T]) checkAxis(axis int) error {
	if axis < 0 || axis >= len(a.shape) {
		return fmt.Errorf("%w: axis %d of %d dimensional array",
			ErrSelection, axis, len(a.shape))
	}
	return nil
}
