package ncarray

import "fmt"

// strides holds, per axis, the number of contiguous elements spanned by the
// more-inner axes of a row-major buffer. Axis 0 is innermost: strides[0] == 1.
type strides []int

func newStrides(shape []int) strides {
	s := make(strides, len(shape))
	s[0] = 1
	for i := 1; i < len(shape); i++ {
		s[i] = s[i-1] * shape[i-1]
	}
	return s
}

// flatIndex multiplies an n-dimensional physical index by the strides.
func (s strides) flatIndex(index []int) int {
	flat := 0
	for i, idx := range index {
		flat += idx * s[i]
	}
	return flat
}

// FlattenRange flattens an n-dimensional index range of a row-major array of
// the given shape into a single contiguous flat range. The range must be
// contiguous on axis 0 only: every other axis must select exactly one index.
//
// This is a helper for mapping between a caller's own source array and a
// destination Array: the ranges handed to a SourceFunc during translation
// satisfy the contiguity requirement whenever the run does not span multiple
// source rows, so the returned range can slice the source directly.
func FlattenRange(shape []int, ranges []Range) (Range, error) {
	if len(ranges) != len(shape) {
		return Range{}, fmt.Errorf("%w: range of %d axes for shape of %d axes",
			ErrSelection, len(ranges), len(shape))
	}
	st := newStrides(shape)
	flat := 0
	for i, r := range ranges {
		if i > 0 && r.Len() != 1 {
			return Range{}, fmt.Errorf("%w: range %d..%d on axis %d; only axis 0 may span",
				ErrSelection, r.Start, r.End, i)
		}
		if r.Start < 0 || r.End > shape[i] {
			return Range{}, fmt.Errorf("%w: range %d..%d on axis %d of length %d",
				ErrSelection, r.Start, r.End, i, shape[i])
		}
		flat += r.Start * st[i]
	}
	return Range{flat, flat + ranges[0].Len()}, nil
}
