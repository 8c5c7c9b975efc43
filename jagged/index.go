package jagged

import "fmt"

// Index is a bounds-checked view over a borrowed integer buffer: a triple
// of (buffer, offset, length). All positions are interpreted relative to
// offset and must fall in [0, length); the implementation never reads
// outside that window.
//
// Index instances should not be constructed by copying the struct directly
// by field name from outside the package; use NewIndex or Slice.
type Index[T IndexInt] struct {
	buffer []T
	offset int
	length int
}

// NewIndex wraps buf as an Index spanning its entire length.
func NewIndex[T IndexInt](buf []T) Index[T] {
	return Index[T]{buffer: buf, offset: 0, length: len(buf)}
}

// NewIndexView wraps buf as an Index spanning [offset, offset+length).
func NewIndexView[T IndexInt](buf []T, offset, length int) (Index[T], error) {
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return Index[T]{}, fmt.Errorf("jagged: index view [%d:%d+%d] out of range for buffer of length %d", offset, offset, length, len(buf))
	}
	return Index[T]{buffer: buf, offset: offset, length: length}, nil
}

// Len returns the number of addressable elements in the view.
func (ix Index[T]) Len() int {
	return ix.length
}

// Get returns the element at position i relative to the view's offset.
// It panics if i is out of [0, Len()) — callers are expected to have
// validated structural bounds before indexing (out-of-range access
// is caught at the list-layer surface, never inside a kernel).
func (ix Index[T]) Get(i int) T {
	if i < 0 || i >= ix.length {
		panic(fmt.Sprintf("jagged: index %d out of range [0,%d)", i, ix.length))
	}
	return ix.buffer[ix.offset+i]
}

// Slice returns the sub-view [lo, hi) of the receiver, itself relative to
// the receiver's own window.
func (ix Index[T]) Slice(lo, hi int) (Index[T], error) {
	if lo < 0 || hi < lo || hi > ix.length {
		return Index[T]{}, fmt.Errorf("jagged: slice [%d:%d] out of range for index of length %d", lo, hi, ix.length)
	}
	return Index[T]{buffer: ix.buffer, offset: ix.offset + lo, length: hi - lo}, nil
}

// Raw returns the backing elements in [offset, offset+length) as a plain
// slice. The returned slice aliases the receiver's buffer and must be
// treated as read-only by the caller.
func (ix Index[T]) Raw() []T {
	return ix.buffer[ix.offset : ix.offset+ix.length]
}

// ToInt64 materializes the view as a fresh []int64, widening as needed.
// This is the canonicalization step required before any non-i64
// offsets array participates in the recursive orchestration.
func (ix Index[T]) ToInt64() []int64 {
	out := make([]int64, ix.length)
	for i := 0; i < ix.length; i++ {
		out[i] = int64(ix.buffer[ix.offset+i])
	}
	return out
}

// IndexI64 is the canonical offset-width Index used once orchestration has
// converted away from i32/u32 (see Index.ToInt64).
type IndexI64 = Index[int64]

// NewIndexI64 is a convenience constructor equivalent to NewIndex[int64].
func NewIndexI64(buf []int64) IndexI64 {
	return NewIndex(buf)
}
