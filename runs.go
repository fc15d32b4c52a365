package ncarray

import "fmt"

// run is one contiguous block of physical storage produced by decomposing a
// selection. Concatenating the runs of a decomposition, in order, yields the
// selected elements in row-major order over the selected sub-shape.
type run struct {
	flat int   // physical start within the flat buffer
	n    int   // number of elements
	log  []int // logical start per axis, in selection coordinates
	lens []int // logical extent per axis
}

// axisSeg is a contiguous physical arc on one axis, together with the
// logical index its first slot maps to.
type axisSeg struct {
	phys, log, n int
}

// axisSegs translates a logical range on one axis through the axis offset.
// A range whose physical image crosses the axis bound splits into two arcs,
// ordered so the arc holding the logical start of the range comes first.
func axisSegs(r Range, off, size int) []axisSeg {
	start := (r.Start + off) % size
	n := r.Len()
	if start+n <= size {
		return []axisSeg{{start, r.Start, n}}
	}
	head := size - start
	return []axisSeg{{start, r.Start, head}, {0, r.Start + head, n - head}}
}

// runs decomposes a per-axis selection into the minimal ordered set of
// contiguous runs, walking axes innermost-out. An axis merges into the run
// set when the set is a single run already covering every element spanned by
// the more-inner axes and the axis arc does not wrap; otherwise each logical
// index of the axis replicates the set, offset by its stride, and no outer
// axis can merge past it. A selection covering all inner axes without
// wrapping therefore degrades to a single bulk run; wrapping or inner-axis
// fragmentation raises the run count, at worst to one run per element.
func (a *Array[T]) runs(sel []Range) ([]run, error) {
	dims := len(a.shape)
	if len(sel) != dims {
		return nil, fmt.Errorf("%w: selection of %d axes for %d dimensional array",
			ErrSelection, len(sel), dims)
	}
	total := 1
	for i, r := range sel {
		if r.Start < 0 || r.Start > r.End || r.End > a.shape[i] {
			return nil, fmt.Errorf("%w: range %d..%d on axis %d of length %d",
				ErrSelection, r.Start, r.End, i, a.shape[i])
		}
		total *= r.Len()
	}
	if total == 0 {
		return nil, nil
	}

	blocks := make([]run, 0, 2)
	for _, s := range axisSegs(sel[0], a.off.off[0], a.shape[0]) {
		b := run{flat: s.phys, n: s.n, log: make([]int, dims), lens: make([]int, dims)}
		for i := range b.lens {
			b.lens[i] = 1
		}
		b.log[0], b.lens[0] = s.log, s.n
		blocks = append(blocks, b)
	}

	for axis := 1; axis < dims; axis++ {
		segs := axisSegs(sel[axis], a.off.off[axis], a.shape[axis])
		stride := a.strides[axis]

		if len(blocks) == 1 && len(segs) == 1 && blocks[0].n == stride {
			b := &blocks[0]
			b.flat += segs[0].phys * stride
			b.n *= segs[0].n
			b.log[axis], b.lens[axis] = segs[0].log, segs[0].n
			continue
		}

		next := make([]run, 0, len(blocks)*sel[axis].Len())
		for _, s := range segs {
			for i := 0; i < s.n; i++ {
				for _, b := range blocks {
					nb := run{
						flat: b.flat + (s.phys+i)*stride,
						n:    b.n,
						log:  append([]int(nil), b.log...),
						lens: append([]int(nil), b.lens...),
					}
					nb.log[axis], nb.lens[axis] = s.log+i, 1
					next = append(next, nb)
				}
			}
		}
		blocks = next
	}
	return blocks, nil
}
