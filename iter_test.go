package ncarray

import (
	"errors"
	"reflect"
	"testing"
)

func TestIter(t *testing.T) {
	m := fromSeq(t, []int{3, 3, 3})
	if got := m.Iter().Collect(); !reflect.DeepEqual(got, seq(0, 27)) {
		t.Fatalf("zero-offset iter: %v", got)
	}

	m = fromSeqOffset(t, []int{3, 3, 3}, []int{1, 1, 1})
	want := []int{
		13, 14, 12,
		16, 17, 15,
		10, 11, 9,

		22, 23, 21,
		25, 26, 24,
		19, 20, 18,

		4, 5, 3,
		7, 8, 6,
		1, 2, 0,
	}
	if got := m.Iter().Collect(); !reflect.DeepEqual(got, want) {
		t.Fatalf("offset iter:\ngot  %v\nwant %v", got, want)
	}
}

func TestIterIndex(t *testing.T) {
	shape := []int{3, 3, 3}
	cases := []struct {
		offset []int
		axis   int
		index  int
		want   []int
	}{
		{[]int{1, 0, 0}, 0, 1, []int{2, 5, 8, 11, 14, 17, 20, 23, 26}},
		{[]int{0, 1, 0}, 1, 1, []int{6, 7, 8, 15, 16, 17, 24, 25, 26}},
		{[]int{0, 0, 1}, 2, 1, []int{18, 19, 20, 21, 22, 23, 24, 25, 26}},
		{[]int{1, 1, 1}, 0, 0, []int{13, 16, 10, 22, 25, 19, 4, 7, 1}},
	}
	for _, c := range cases {
		m := fromSeqOffset(t, shape, c.offset)
		it49, err49 := m.IterIndex(c.axis, c.index)
		got := collect(t, it49, err49)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("offset %v IterIndex(%d, %d):\ngot  %v\nwant %v",
				c.offset, c.axis, c.index, got, c.want)
		}
	}
}

func TestIterRange(t *testing.T) {
	shape := []int{3, 3, 3}
	cases := []struct {
		offset []int
		axis   int
		r      Range
		want   []int
	}{
		{[]int{1, 0, 0}, 0, Range{0, 2}, []int{
			1, 2, 4, 5, 7, 8, 10, 11, 13, 14, 16, 17, 19, 20, 22, 23, 25, 26,
		}},
		{[]int{0, 1, 0}, 1, Range{1, 3}, []int{
			6, 7, 8, 0, 1, 2, 15, 16, 17, 9, 10, 11, 24, 25, 26, 18, 19, 20,
		}},
		{[]int{0, 0, 1}, 2, Range{1, 2}, []int{
			18, 19, 20, 21, 22, 23, 24, 25, 26,
		}},
	}
	for _, c := range cases {
		m := fromSeqOffset(t, shape, c.offset)
		it77, err77 := m.IterRange(c.axis, c.r)
		got := collect(t, it77, err77)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("offset %v IterRange(%d, %v):\ngot  %v\nwant %v",
				c.offset, c.axis, c.r, got, c.want)
		}
	}
}

func TestIterSlice(t *testing.T) {
	m := fromSeqOffset(t, []int{3, 3, 3}, []int{1, 1, 1})

	it88, err88 := m.IterSlice([]Range{{0, 1}, {0, 1}, {0, 1}})
	got := collect(t, it88, err88)
	if !reflect.DeepEqual(got, []int{13}) {
		t.Fatalf("single element slice: %v", got)
	}

	it93, err93 := m.IterSlice([]Range{{0, 3}, {0, 3}, {1, 2}})
	got = collect(t, it93, err93)
	want := []int{
		22, 23, 21,
		25, 26, 24,
		19, 20, 18,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("plane slice:\ngot  %v\nwant %v", got, want)
	}

	m = fromSeqOffset(t, []int{3, 3, 3}, []int{2, 2, 2})

	it105, err105 := m.IterSlice([]Range{{0, 1}, {0, 1}, {0, 1}})
	got = collect(t, it105, err105)
	if !reflect.DeepEqual(got, []int{26}) {
		t.Fatalf("single element slice: %v", got)
	}

	it110, err110 := m.IterSlice([]Range{{0, 3}, {0, 3}, {1, 2}})
	got = collect(t, it110, err110)
	want = []int{
		8, 6, 7,
		2, 0, 1,
		5, 3, 4,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("plane slice:\ngot  %v\nwant %v", got, want)
	}

	// Fixed middle row of the second plane of a 3*3*2 array.
	m = fromSeq(t, []int{3, 3, 2})
	it122, err122 := m.IterSlice([]Range{{1, 2}, {0, 3}, {1, 2}})
	got = collect(t, it122, err122)
	if !reflect.DeepEqual(got, []int{10, 13, 16}) {
		t.Fatalf("column slice: %v", got)
	}
}

func TestIterSliceFullMatchesIter(t *testing.T) {
	shape := []int{3, 4, 2}
	offsets := [][]int{
		{0, 0, 0},
		{1, 0, 0},
		{2, 3, 1},
		{1, 2, 0},
	}
	for _, offset := range offsets {
		m := fromSeqOffset(t, shape, offset)
		sel := m.fullSelection()
		it139, err139 := m.IterSlice(sel)
		got := collect(t, it139, err139)
		want := m.Iter().Collect()
		if !reflect.DeepEqual(got, want) {
			t.Errorf("offset %v: full IterSlice diverges from Iter", offset)
		}
	}
}

func TestIterSliceRoundTrip(t *testing.T) {
	m := fromSeqOffset(t, []int{3, 3, 2}, []int{1, 0, 1})
	sel := []Range{{0, 2}, {1, 3}, {0, 2}}

	it151, err151 := m.IterSlice(sel)
	drained := collect(t, it151, err151)
	sub, err := New([]int{2, 2, 2}, drained)
	if err != nil {
		t.Fatalf("New from slice: %v", err)
	}

	if got := sub.Iter().Collect(); !reflect.DeepEqual(got, drained) {
		t.Fatalf("round trip:\ngot  %v\nwant %v", got, drained)
	}
	if !reflect.DeepEqual(sub.Offset(), []int{0, 0, 0}) {
		t.Fatalf("fresh array offset: %v", sub.Offset())
	}
}

func TestIterEmptySelection(t *testing.T) {
	m := fromSeq(t, []int{3, 3})
	it, err := m.IterSlice([]Range{{1, 1}, {0, 3}})
	if err != nil {
		t.Fatalf("IterSlice: %v", err)
	}
	if it.Len() != 0 {
		t.Fatalf("empty selection Len = %d", it.Len())
	}
	if _, ok := it.Next(); ok {
		t.Fatal("empty selection produced an element")
	}
}

func TestIterLenReset(t *testing.T) {
	m := fromSeqOffset(t, []int{3, 3}, []int{2, 0})
	it, err := m.IterRange(0, Range{0, 3})
	if err != nil {
		t.Fatalf("IterRange: %v", err)
	}
	if it.Len() != 9 {
		t.Fatalf("Len = %d, want 9", it.Len())
	}

	first := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		v, ok := it.Next()
		if !ok {
			t.Fatal("iterator exhausted early")
		}
		first = append(first, v)
	}
	if it.Len() != 7 {
		t.Fatalf("Len after two = %d, want 7", it.Len())
	}

	it.Reset()
	if it.Len() != 9 {
		t.Fatalf("Len after reset = %d, want 9", it.Len())
	}
	again := it.Collect()
	if !reflect.DeepEqual(again[:2], first) {
		t.Fatalf("restart diverged: %v vs %v", again[:2], first)
	}
}

func TestIterSliceErrors(t *testing.T) {
	m := fromSeq(t, []int{3, 3})

	cases := [][]Range{
		{{0, 3}},                 // arity too low
		{{0, 3}, {0, 3}, {0, 3}}, // arity too high
		{{0, 4}, {0, 3}},         // end out of bounds
		{{-1, 2}, {0, 3}},        // negative start
		{{2, 1}, {0, 3}},         // inverted
	}
	for _, sel := range cases {
		if _, err := m.IterSlice(sel); !errors.Is(err, ErrSelection) {
			t.Errorf("IterSlice(%v): expected ErrSelection, got %v", sel, err)
		}
	}

	if _, err := m.IterIndex(2, 0); !errors.Is(err, ErrSelection) {
		t.Errorf("IterIndex bad axis: %v", err)
	}
	if _, err := m.IterIndex(0, 3); !errors.Is(err, ErrSelection) {
		t.Errorf("IterIndex bad index: %v", err)
	}
	if _, err := m.IterRange(-1, Range{0, 1}); !errors.Is(err, ErrSelection) {
		t.Errorf("IterRange bad axis: %v", err)
	}
}
