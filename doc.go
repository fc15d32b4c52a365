// Package ncarray provides a fixed-shape n-dimensional circular array: a
// ring buffer generalized to any number of axes, backed by one flat
// row-major block of storage. Slices can be pushed to the front or back of
// any axis (evicting the oldest slices on that axis), elements read and
// written by coordinate, and arbitrary sub-selections iterated or pulled in
// from an external source array, with contiguous runs of memory copied in
// bulk wherever the selection allows.
//
// The library is organised into several files for clarity:
//
//	errors.go    – error taxonomy (sentinel errors)
//	strides.go   – row-major strides & range flattening helper
//	offset.go    – per-axis rotation offsets
//	selection.go – per-axis range selections
//	runs.go      – decomposition of selections into contiguous runs
//	iter.go      – restartable element iterator over run sets
//	array.go     – constructors, accessors & element access
//	mutate.go    – push front/back insertion
//	translate.go – insertion sourced from an external array
//	buffer.go    – external storage capability
//	mmap.go      – memory-mapped file buffer
//	meta.go      – offset vector persistence
//	snapshot.go  – JSON state snapshots
//
// Axis 0 is the innermost axis: its elements are adjacent in storage and
// every iterator varies it fastest. An Array is a plain value with no
// internal locking; callers sharing one across goroutines must serialize
// writers externally.
package ncarray
