package jagged

// ElementType tags the eleven primitive element kinds a NumericArray may
// hold, and the accumulator kinds a Reducer may produce.
type ElementType uint8

const (
	Bool ElementType = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

// String names the element type, mostly for error messages and tests.
func (t ElementType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Content is the external-collaborator contract a jagged array layer implements
// this subsystem needs from the wider array ecosystem. List layers and
// leaf value arrays both implement it; Reducer implementations operate on
// concrete []T slices type-asserted out of the Content they are given.
type Content interface {
	// Length returns the number of top-level entries in this content.
	Length() int64

	// ReduceNext recurses a segmented reduction one level past this
	// content. starts is only consulted by argmin/argmax (to translate an
	// in-group relative index into a position in the enclosing list);
	// parents has length equal to the content's pre-reduction element
	// count and assigns each element to an output group in
	// [0, outlength). mask requests option-type (missing) output for
	// empty groups instead of the reducer's identity. keepdims wraps a
	// fully collapsed (non-local, depth-reducing) result in a length-1
	// regular list.
	ReduceNext(reducer Reducer, negaxis int, starts, parents []int64, outlength int64, mask, keepdims bool) (Content, error)

	// Carry selects entries by a length-k int64 index, returning a new
	// content of length k. Negative indices are not valid here; indirected
	// contents use -1 internally but resolve it before calling
	// Carry on their wrapped content.
	Carry(index []int64) (Content, error)

	// GetItemRangeNoWrap returns the sub-content [lo, hi), with lo/hi
	// already validated against Length() by the caller.
	GetItemRangeNoWrap(lo, hi int64) (Content, error)

	// BranchDepth reports whether any descendant has differing depths
	// across union-like variants (branches), and the maximum depth of
	// any descendant. A leaf NumericArray has depth 1 and never branches.
	BranchDepth() (branches bool, depth int64)

	// PurelistDepth is the nesting depth as a plain list-of-lists, with no
	// union branching. Equal to BranchDepth's depth when !branches.
	PurelistDepth() int64
}

// Reducer is the minimal trait external reducer implementations must
// satisfy. Because Go forbids type-parameterized interface methods, the
// element-type dispatch a generic `identity<T>()`/`apply<T>(acc, value)`
// pair would need is folded into ReduceTyped itself: implementations type-
// switch on the concrete element slice the way the teacher's own
// `Sort[T hwy.Lanes]` dispatches on `any(zero).(type)` in
// hwy/contrib/sort/sort.go.
type Reducer interface {
	// Name identifies the reducer for error messages ("sum", "argmax", ...).
	Name() string

	// Positional reports whether ReduceTyped's output values are indices
	// into in (argmin, argmax) rather than combined values (sum, min,
	// count, ...). NumericArray.ReduceNext uses it to add each group's
	// starts entry back into the kernel's starts-relative result, turning
	// it into a position within this call's own content window.
	Positional() bool

	// ReduceTyped combines in (a []T slice boxed as any, T one of the
	// eleven Numeric element types) grouped by parents into outlength
	// accumulator slots, and returns the result still boxed as any plus
	// the accumulator ElementType it chose. starts is used only by
	// argmin/argmax. When mask is true, groups with zero contributing
	// elements must be reported via present (present[j] == false), whose
	// backing array ReduceTyped allocates and returns; present is nil for
	// mask == false (every slot is defined, carrying the reducer's identity).
	ReduceTyped(in any, parents []int64, outlength int64, starts []int64, mask bool) (out any, outType ElementType, present []bool, err error)
}
