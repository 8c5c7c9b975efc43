// Package jagged provides a columnar engine for jagged (variable-length
// nested) arrays of primitive numeric values, with a focus on segmented
// reductions: sum, product, count, min, max, argmin, and argmax computed
// per-group over a flat value buffer whose grouping is described by
// offset indices rather than by pointers.
//
// Basic usage:
//
//	offsets := jagged.NewIndexI64([]int64{0, 3, 3, 5, 6})
//	content := jagged.NewNumericArray([]int64{1, 2, 3, 4, 5, 6})
//	l := list.New(offsets, content)
//	sums, _ := l.ReduceNext(reduce.Sum{}, -1, nil, nil, 0, false, false)
package jagged

// Booleans is a constraint for the boolean element type.
type Booleans interface {
	~bool
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Floats is a constraint for the two native floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// Numeric is a constraint for every primitive element type a value buffer
// may hold: bool plus the eight integer widths/signs plus the two floats.
type Numeric interface {
	Booleans | Integers | Floats
}

// IndexInt is a constraint for the three integer widths an Index may be
// encoded in. Any non-i64 index is canonicalized to int64 before the
// recursive reduction orchestration runs.
type IndexInt interface {
	~int32 | ~uint32 | ~int64
}
