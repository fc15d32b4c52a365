package ncarray

import "fmt"

// PushFront inserts n slices at the logical front (high end) of the given
// axis, evicting the n oldest slices at the low end. data must hold exactly
// n*SliceLen(axis) elements in row-major order. The visible window slides
// forward: iteration afterwards ends with the new slices.
//
// Validation happens before any write; a rejected call leaves the array
// unchanged. The storage write completes before the offset advances.
func (a *Array[T]) PushFront(axis, n int, data []T) error {
	return a.push(axis, n, data, true)
}

// PushBack is the symmetric opposite of PushFront: it evicts the n newest
// slices at the high end of the axis and surfaces data at the low end.
// Pushing back the slices a PushFront evicted restores the previous state.
func (a *Array[T]) PushBack(axis, n int, data []T) error {
	return a.push(axis, n, data, false)
}

func (a *Array[T]) push(axis, n int, data []T, front bool) error {
	if err := a.checkShift(axis, n); err != nil {
		return err
	}
	if len(data) != n*a.sliceLen(axis) {
		return fmt.Errorf("%w: %d elements for %d slices of %d on axis %d",
			ErrLengthMismatch, len(data), n, a.sliceLen(axis), axis)
	}
	if n == 0 {
		return nil
	}

	if n == a.shape[axis] {
		// Every slice of the axis is replaced, so the whole logical window
		// is new data: raw order equals logical order and all offsets clear.
		copy(a.data, data)
		a.off.reset()
		return nil
	}

	rs, _ := a.runs(a.shiftSelection(axis, n, front))
	for _, r := range rs {
		copy(a.data[r.flat:r.flat+r.n], data[:r.n])
		data = data[r.n:]
	}
	return a.off.advance(axis, shiftDelta(n, front))
}

// shiftSelection selects the slots an insertion overwrites: the logical low
// end of the axis for a front push, the high end for a back push.
func (a *Array[T]) shiftSelection(axis, n int, front bool) []Range {
	sel := a.fullSelection()
	if front {
		sel[axis] = Range{0, n}
	} else {
		sel[axis] = Range{a.shape[axis] - n, a.shape[axis]}
	}
	return sel
}

func (a *Array[T]) checkShift(axis, n int) error {
	if err := a.checkAxis(axis); err != nil {
		return err
	}
	if n < 0 || n > a.shape[axis] {
		return fmt.Errorf("%w: %d slices on axis %d of length %d",
			ErrOutOfRange, n, axis, a.shape[axis])
	}
	return nil
}

func shiftDelta(n int, front bool) int {
	if front {
		return n
	}
	return -n
}
