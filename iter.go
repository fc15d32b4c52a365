package ncarray

// Iterator is a lazy, restartable cursor over the elements a selection
// denotes, in row-major order over the selected sub-shape. It reads through
// the array's buffer without copying and never mutates the array; the same
// selection can be decomposed and iterated any number of times.
type Iterator[T any] struct {
	data []T
	runs []run
	ri   int // current run
	ei   int // element within the current run
}

func newIterator[T any](data []T, runs []run) *Iterator[T] {
	return &Iterator[T]{data: data, runs: runs}
}

// Next returns the next element. The second return is false once the
// iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	for it.ri < len(it.runs) {
		r := it.runs[it.ri]
		if it.ei < r.n {
			v := it.data[r.flat+it.ei]
			it.ei++
			return v, true
		}
		it.ri++
		it.ei = 0
	}
	var zero T
	return zero, false
}

// Len returns the exact number of elements remaining.
func (it *Iterator[T]) Len() int {
	total := 0
	for i := it.ri; i < len(it.runs); i++ {
		total += it.runs[i].n
	}
	if it.ri < len(it.runs) {
		total -= it.ei
	}
	return total
}

// Reset rewinds the iterator to its first element.
func (it *Iterator[T]) Reset() {
	it.ri, it.ei = 0, 0
}

// Collect drains the remaining elements into a freshly allocated slice.
func (it *Iterator[T]) Collect() []T {
	out := make([]T, 0, it.Len())
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
