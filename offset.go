package ncarray

import "fmt"

// offsetMap tracks, per axis, the physical storage coordinate that currently
// holds logical coordinate 0. Reads never touch it; every insertion advances
// exactly one axis, after the accompanying storage write.
type offsetMap struct {
	off   []int
	shape []int
}

func newOffsetMap(shape, off []int) offsetMap {
	return offsetMap{off: off, shape: shape}
}

// physical maps a logical index on an axis to its physical coordinate.
func (o *offsetMap) physical(axis, logical int) int {
	return (logical + o.off[axis]) % o.shape[axis]
}

// advance rotates an axis by delta slots. delta may be negative; the stored
// offset always lands in [0, shape). A single call may never rotate further
// than one full axis length.
func (o *offsetMap) advance(axis, delta int) error {
	size := o.shape[axis]
	if delta > size || -delta > size {
		return fmt.Errorf("%w: advance of %d exceeds axis %d length %d",
			ErrOutOfRange, delta, axis, size)
	}
	o.off[axis] = ((o.off[axis]+delta)%size + size) % size
	return nil
}

// reset zeroes every axis. Used when an insertion replaces the whole window,
// making raw storage order equal logical order again.
func (o *offsetMap) reset() {
	for i := range o.off {
		o.off[i] = 0
	}
}
