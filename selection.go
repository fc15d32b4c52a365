package ncarray

// Range is a half-open interval [Start, End) of logical indices on one axis.
// A zero-length range is permitted and selects no elements.
type Range struct {
	Start int
	End   int
}

// At returns the Range selecting the single index i.
func At(i int) Range { return Range{Start: i, End: i + 1} }

// Len returns the number of indices within the range.
func (r Range) Len() int { return r.End - r.Start }

// fullSelection selects every element of the array.
func (a *Array[T]) fullSelection() []Range {
	sel := make([]Range, len(a.shape))
	for i, s := range a.shape {
		sel[i] = Range{0, s}
	}
	return sel
}
