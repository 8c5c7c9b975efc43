package jagged

import "fmt"

// NumericArray is the flat, borrowed value buffer backing a leaf: a contiguous
// array of one of the eleven primitive element types. It is the leaf
// Content that elementwise reducers (contrib/reduce) ultimately operate
// on; every list layer bottoms out at one of these (or at an indirection
// layer wrapping one, see contrib/indirect).
type NumericArray[T Numeric] struct {
	data []T
}

// NewNumericArray borrows data (it is never copied or retained beyond the
// slice header) as a leaf Content.
func NewNumericArray[T Numeric](data []T) NumericArray[T] {
	return NumericArray[T]{data: data}
}

// Raw returns the backing slice. Callers must treat it as read-only:
// NumericArray does not own its buffer; callers control its lifetime.
func (a NumericArray[T]) Raw() []T {
	return a.data
}

// Length implements Content.
func (a NumericArray[T]) Length() int64 {
	return int64(len(a.data))
}

// BranchDepth implements Content: a leaf never branches and has depth 1.
func (a NumericArray[T]) BranchDepth() (bool, int64) {
	return false, 1
}

// PurelistDepth implements Content.
func (a NumericArray[T]) PurelistDepth() int64 {
	return 1
}

// Carry implements Content by gathering a.data[index[k]] for each k.
func (a NumericArray[T]) Carry(index []int64) (Content, error) {
	out := make([]T, len(index))
	n := int64(len(a.data))
	for k, i := range index {
		if i < 0 || i >= n {
			return nil, newStructuralErr("NumericArray.Carry", k, "carry index %d out of range [0,%d)", i, n)
		}
		out[k] = a.data[i]
	}
	return NewNumericArray(out), nil
}

// GetItemRangeNoWrap implements Content.
func (a NumericArray[T]) GetItemRangeNoWrap(lo, hi int64) (Content, error) {
	n := int64(len(a.data))
	if lo < 0 || hi < lo || hi > n {
		return nil, newStructuralErr("NumericArray.GetItemRangeNoWrap", -1, "range [%d:%d] out of bounds for length %d", lo, hi, n)
	}
	return NewNumericArray(a.data[lo:hi]), nil
}

// ReduceNext implements Content: a leaf array is always the base case of
// the recursion; it applies the elementwise kernel
// directly and wraps the (possibly masked) result as a new leaf.
func (a NumericArray[T]) ReduceNext(reducer Reducer, negaxis int, starts, parents []int64, outlength int64, mask, keepdims bool) (Content, error) {
	if int64(len(parents)) != int64(len(a.data)) {
		return nil, newStructuralErr(fmt.Sprintf("NumericArray[%s].ReduceNext", elementTypeOf[T]()), -1,
			"parents length %d does not match content length %d", len(parents), len(a.data))
	}
	out, _, present, err := reducer.ReduceTyped(a.data, parents, outlength, starts, mask)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", reducer.Name(), err)
	}
	if reducer.Positional() {
		rebasePositional(out, starts)
	}
	result, err := WrapAny(out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", reducer.Name(), err)
	}
	if mask && present != nil {
		result = maskMissing(result, present)
	}
	if keepdims {
		return wrapLength1(result), nil
	}
	return result, nil
}

// rebasePositional adds each group's starts entry back into a positional
// reducer's (argmin, argmax) starts-relative output, in place, turning an
// in-group offset into a position within this ReduceNext call's own content
// window. Sentinel -1 (empty group) entries are left untouched.
func rebasePositional(out any, starts []int64) {
	positions, ok := out.([]int64)
	if !ok {
		return
	}
	for j, p := range positions {
		if p < 0 {
			continue
		}
		positions[j] = p + starts[j]
	}
}

// elementTypeOf returns the ElementType tag of the zero value of T.
func elementTypeOf[T Numeric]() ElementType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case uint8:
		return Uint8
	case int16:
		return Int16
	case uint16:
		return Uint16
	case int32:
		return Int32
	case uint32:
		return Uint32
	case int64:
		return Int64
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic(fmt.Sprintf("jagged: unsupported element type %T", zero))
	}
}

// WrapAny boxes a concrete []T (T one of the eleven primitive element
// types) as a Content leaf. Reducer implementations return their output
// this way since Go interface methods cannot be themselves generic; this
// is the single place that type-switches it back into a typed
// NumericArray[T], mirroring the teacher's own `switch any(zero).(type)`
// dispatch idiom (hwy/contrib/sort/sort.go).
func WrapAny(data any) (Content, error) {
	switch d := data.(type) {
	case []bool:
		return NewNumericArray(d), nil
	case []int8:
		return NewNumericArray(d), nil
	case []uint8:
		return NewNumericArray(d), nil
	case []int16:
		return NewNumericArray(d), nil
	case []uint16:
		return NewNumericArray(d), nil
	case []int32:
		return NewNumericArray(d), nil
	case []uint32:
		return NewNumericArray(d), nil
	case []int64:
		return NewNumericArray(d), nil
	case []uint64:
		return NewNumericArray(d), nil
	case []float32:
		return NewNumericArray(d), nil
	case []float64:
		return NewNumericArray(d), nil
	default:
		return nil, fmt.Errorf("jagged: WrapAny: unsupported backing type %T", data)
	}
}

// wrapLength1 implements the keepdims contract: wraps content in a
// length-1 regular (uniform-offset) list so the reduced axis still shows
// up as a dimension of size 1 rather than disappearing.
func wrapLength1(content Content) Content {
	n := content.Length()
	offsets := NewIndexI64([]int64{0, n})
	return regularLength1{offsets: offsets, content: content}
}

// regularLength1 is the minimal length-1 list wrapper keepdims needs. It
// is not a full list.List (contrib/list) to avoid an import cycle; list.List
// itself satisfies the same Content contract for every other case.
type regularLength1 struct {
	offsets IndexI64
	content Content
}

func (r regularLength1) Length() int64 { return 1 }

func (r regularLength1) BranchDepth() (bool, int64) {
	_, d := r.content.BranchDepth()
	return false, d + 1
}

func (r regularLength1) PurelistDepth() int64 {
	return r.content.PurelistDepth() + 1
}

func (r regularLength1) Carry(index []int64) (Content, error) {
	return nil, newArgumentErr("regularLength1.Carry", "keepdims wrapper does not support carry")
}

func (r regularLength1) GetItemRangeNoWrap(lo, hi int64) (Content, error) {
	return nil, newArgumentErr("regularLength1.GetItemRangeNoWrap", "keepdims wrapper does not support slicing")
}

func (r regularLength1) ReduceNext(reducer Reducer, negaxis int, starts, parents []int64, outlength int64, mask, keepdims bool) (Content, error) {
	return nil, newArgumentErr("regularLength1.ReduceNext", "keepdims wrapper is terminal; reduce before wrapping")
}

// Offsets exposes the single-row offsets backing this keepdims wrapper.
func (r regularLength1) Offsets() IndexI64 { return r.offsets }

// Contained exposes the wrapped content.
func (r regularLength1) Contained() Content { return r.content }
