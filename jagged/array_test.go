package jagged

import (
	"reflect"
	"testing"

	"github.com/jagged-go/jagged/contrib/reduce"
)

func TestNumericArrayCarry(t *testing.T) {
	a := NewNumericArray([]int64{10, 20, 30, 40})
	out, err := a.Carry([]int64{3, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.(NumericArray[int64]).Raw()
	want := []int64{40, 10, 10}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNumericArrayCarryOutOfRange(t *testing.T) {
	a := NewNumericArray([]int64{1, 2, 3})
	if _, err := a.Carry([]int64{5}); err == nil {
		t.Fatalf("expected an out-of-range error")
	}
}

func TestNumericArrayGetItemRangeNoWrap(t *testing.T) {
	a := NewNumericArray([]float64{1, 2, 3, 4, 5})
	out, err := a.GetItemRangeNoWrap(1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.(NumericArray[float64]).Raw()
	if !reflect.DeepEqual(got, []float64{2, 3, 4}) {
		t.Fatalf("got %v", got)
	}
	if _, err := a.GetItemRangeNoWrap(3, 1); err == nil {
		t.Fatalf("expected an error for hi < lo")
	}
	if _, err := a.GetItemRangeNoWrap(0, 10); err == nil {
		t.Fatalf("expected an error for hi past the end")
	}
}

func TestNumericArrayBranchDepth(t *testing.T) {
	a := NewNumericArray([]int32{1, 2, 3})
	branches, depth := a.BranchDepth()
	if branches || depth != 1 {
		t.Fatalf("BranchDepth() = (%v, %d), want (false, 1)", branches, depth)
	}
	if a.PurelistDepth() != 1 {
		t.Fatalf("PurelistDepth() = %d, want 1", a.PurelistDepth())
	}
}

func TestNumericArrayReduceNextSum(t *testing.T) {
	a := NewNumericArray([]int64{1, 2, 3, 4})
	out, err := a.ReduceNext(reduce.Sum{}, -1, nil, []int64{0, 0, 1, 1}, 2, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.(NumericArray[int64]).Raw()
	if !reflect.DeepEqual(got, []int64{3, 7}) {
		t.Fatalf("got %v, want [3 7]", got)
	}
}

func TestNumericArrayReduceNextKeepdims(t *testing.T) {
	a := NewNumericArray([]int64{1, 2, 3})
	out, err := a.ReduceNext(reduce.Sum{}, -1, nil, []int64{0, 0, 0}, 1, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wrapped, ok := out.(regularLength1)
	if !ok {
		t.Fatalf("got %T, want regularLength1 (keepdims wrapper)", out)
	}
	if wrapped.Length() != 1 {
		t.Fatalf("Length() = %d, want 1", wrapped.Length())
	}
	leaf := wrapped.Contained().(NumericArray[int64]).Raw()
	if !reflect.DeepEqual(leaf, []int64{6}) {
		t.Fatalf("got %v, want [6]", leaf)
	}
}

func TestNumericArrayReduceNextRejectsMismatchedParents(t *testing.T) {
	a := NewNumericArray([]int64{1, 2, 3})
	_, err := a.ReduceNext(reduce.Sum{}, -1, nil, []int64{0, 0}, 1, false, false)
	if err == nil {
		t.Fatalf("expected a structural error for mismatched parents length")
	}
}

func TestNumericArrayReduceNextRebasesArgMax(t *testing.T) {
	// group 1 spans content[2:5]; its own argmax should report a position
	// within the full content slice, not relative to its own window.
	a := NewNumericArray([]int64{100, 100, 1, 5, 3})
	out, err := a.ReduceNext(reduce.ArgMax{}, -1, []int64{0, 2}, []int64{0, 0, 1, 1, 1}, 2, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.(NumericArray[int64]).Raw()
	if !reflect.DeepEqual(got, []int64{0, 3}) {
		t.Fatalf("got %v, want [0 3] (group 1's max rebased by starts[1]=2)", got)
	}
}

func TestWrapAnyRoundTrips(t *testing.T) {
	out, err := WrapAny([]float32{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out.(NumericArray[float32]); !ok {
		t.Fatalf("got %T, want NumericArray[float32]", out)
	}
}

func TestWrapAnyRejectsUnknownType(t *testing.T) {
	if _, err := WrapAny([]string{"x"}); err == nil {
		t.Fatalf("expected an error for an unsupported backing type")
	}
}

func TestRegularLength1RejectsCarryAndReduce(t *testing.T) {
	r := wrapLength1(NewNumericArray([]int64{1, 2})).(regularLength1)
	if _, err := r.Carry([]int64{0}); err == nil {
		t.Fatalf("expected an error: keepdims wrapper does not support carry")
	}
	if _, err := r.GetItemRangeNoWrap(0, 1); err == nil {
		t.Fatalf("expected an error: keepdims wrapper does not support slicing")
	}
	if _, err := r.ReduceNext(reduce.Sum{}, -1, nil, nil, 0, false, false); err == nil {
		t.Fatalf("expected an error: keepdims wrapper is terminal")
	}
}
