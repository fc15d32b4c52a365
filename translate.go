package ncarray

import "fmt"

// SourceFunc supplies row-major elements for one contiguous destination run
// during translation. The ranges are expressed per axis in the source
// array's coordinate space: the caller-tracked origin plus, on the shifted
// axis, the position within the inserted block. When a run spans a single
// source row the ranges are contiguous on axis 0 only and FlattenRange can
// turn them into one slice of the caller's own buffer.
type SourceFunc[T any] func(ranges []Range) []T

// TranslateFront behaves as PushFront, but obtains the inserted elements
// from src one run at a time instead of a flat payload. This lets the array
// slide incrementally across a much larger external dataset without
// materializing the union of the two up front: the caller tracks where its
// window sits in the source via origin and slices its own storage per run.
//
// Chunks are gathered and length-checked before any storage write, so a
// failed call leaves the array unchanged. Beyond length, returned chunks
// are trusted to be correctly shaped.
func (a *Array[T]) TranslateFront(axis, n int, origin []int, src SourceFunc[T]) error {
	return a.translate(axis, n, origin, src, true)
}

// TranslateBack is the symmetric opposite of TranslateFront: it evicts the
// high end of the axis and fills the low end from src.
func (a *Array[T]) TranslateBack(axis, n int, origin []int, src SourceFunc[T]) error {
	return a.translate(axis, n, origin, src, false)
}

func (a *Array[T]) translate(axis, n int, origin []int, src SourceFunc[T], front bool) error {
	if err := a.checkShift(axis, n); err != nil {
		return err
	}
	if len(origin) != len(a.shape) {
		return fmt.Errorf("%w: origin of %d axes for %d dimensional array",
			ErrSelection, len(origin), len(a.shape))
	}
	if n == 0 {
		return nil
	}

	rs, _ := a.runs(a.shiftSelection(axis, n, front))

	// On the shifted axis the selection sits at the high end for a back
	// push; rebase it so both directions hand the source block-relative
	// coordinates [0, n).
	base := 0
	if !front {
		base = a.shape[axis] - n
	}

	chunks := make([][]T, len(rs))
	for i, r := range rs {
		ranges := make([]Range, len(a.shape))
		for ax := range ranges {
			start := r.log[ax] + origin[ax]
			if ax == axis {
				start -= base
			}
			ranges[ax] = Range{start, start + r.lens[ax]}
		}
		chunk := src(ranges)
		if len(chunk) != r.n {
			return fmt.Errorf("%w: source returned %d elements for run of %d",
				ErrLengthMismatch, len(chunk), r.n)
		}
		chunks[i] = chunk
	}

	for i, r := range rs {
		copy(a.data[r.flat:r.flat+r.n], chunks[i])
	}
	return a.off.advance(axis, shiftDelta(n, front))
}
