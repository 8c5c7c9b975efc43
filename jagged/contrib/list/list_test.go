package list

import (
	"math"
	"reflect"
	"testing"

	"github.com/jagged-go/jagged"
	"github.com/jagged-go/jagged/contrib/reduce"
)

// TestReduceNextLocalSum reproduces scenario 1: summing axis=-1 of a
// single-level jagged array preserves the outer (sublist) structure,
// including an empty sublist mapping to the identity.
func TestReduceNextLocalSum(t *testing.T) {
	offsets := jagged.NewIndexI64([]int64{0, 3, 3, 5, 6})
	content := jagged.NewNumericArray([]int64{1, 2, 3, 4, 5, 6})
	l := New(offsets, content)

	// negaxis=2 (one past the leaf's own depth of 1) forces the local
	// path to trigger at this single list level; parents/outlength are
	// this list's own identity grouping, matching a top-level call.
	result, err := l.ReduceNext(reduce.Sum{}, 2, nil, []int64{0, 1, 2, 3}, 4, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, ok := result.(List[int64])
	if !ok {
		t.Fatalf("result is %T, want List[int64]", result)
	}
	if out.Length() != 4 {
		t.Fatalf("output length = %d, want 4", out.Length())
	}
	leaf, ok := out.Contained().(jagged.NumericArray[int64])
	if !ok {
		t.Fatalf("output content is %T, want NumericArray[int64]", out.Contained())
	}
	got := leaf.Raw()
	want := []int64{6, 0, 9, 6}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestReduceNextNonLocalWithGap reproduces scenario 4: a non-local
// reduction across a gap-containing outer group, verifying the empty
// group contributes an empty row and the occupied group's values combine
// positionally into a flat row rather than a spuriously nested one.
func TestReduceNextNonLocalWithGap(t *testing.T) {
	inner := New(jagged.NewIndexI64([]int64{0, 1, 2}), jagged.NewNumericArray([]int64{7, 8}))
	outer := New(jagged.NewIndexI64([]int64{0, 0, 2}), inner)

	result, err := outer.ReduceNext(reduce.Sum{}, 2, nil, []int64{0, 1}, 2, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, ok := result.(List[int64])
	if !ok {
		t.Fatalf("result is %T, want List[int64]", result)
	}
	if out.Length() != 2 {
		t.Fatalf("output length = %d, want 2", out.Length())
	}

	group0, err := out.GetItemRangeNoWrap(0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o := group0.(List[int64]).Offsets().ToInt64()
	if o[1]-o[0] != 0 {
		t.Fatalf("group 0 should contribute no elements, row span = %d", o[1]-o[0])
	}

	leaf, ok := out.Contained().(jagged.NumericArray[int64])
	if !ok {
		t.Fatalf("output content is %T, want flat NumericArray[int64] (no spurious nesting)", out.Contained())
	}
	offsets := out.Offsets().ToInt64()
	row1 := leaf.Raw()[offsets[1]:offsets[2]]
	want := []int64{7, 8}
	if !reflect.DeepEqual(row1, want) {
		t.Fatalf("group 1 = %v, want %v", row1, want)
	}
}

// TestReduceNextLocalArgMax reproduces scenario 2: argmax over a single
// list with an empty sublist and a tie, checking that the kernel's
// starts-relative position is rebased back into an absolute position
// within the list's own content.
func TestReduceNextLocalArgMax(t *testing.T) {
	offsets := jagged.NewIndexI64([]int64{0, 4, 4, 6})
	content := jagged.NewNumericArray([]float64{0.1, 0.5, 0.2, math.NaN(), 3.0, 3.0})
	l := New(offsets, content)

	result, err := l.ReduceNext(reduce.ArgMax{}, 2, nil, []int64{0, 1, 2}, 3, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := result.(List[int64])
	leaf := out.Contained().(jagged.NumericArray[int64]).Raw()
	want := []int64{1, -1, 4}
	if !reflect.DeepEqual(leaf, want) {
		t.Fatalf("got %v, want %v", leaf, want)
	}
}

func TestCarrySelectsWholeSublists(t *testing.T) {
	offsets := jagged.NewIndexI64([]int64{0, 2, 2, 5})
	content := jagged.NewNumericArray([]int64{10, 20, 30, 40, 50})
	l := New(offsets, content)

	carried, err := l.Carry([]int64{2, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := carried.(List[int64])
	if out.Length() != 2 {
		t.Fatalf("carried length = %d, want 2", out.Length())
	}
	leaf := out.Contained().(jagged.NumericArray[int64]).Raw()
	want := []int64{30, 40, 50, 10, 20}
	if !reflect.DeepEqual(leaf, want) {
		t.Fatalf("carried content = %v, want %v", leaf, want)
	}
}

func TestGetItemRangeNoWrap(t *testing.T) {
	offsets := jagged.NewIndexI64([]int64{0, 2, 2, 5})
	content := jagged.NewNumericArray([]int64{10, 20, 30, 40, 50})
	l := New(offsets, content)

	sliced, err := l.GetItemRangeNoWrap(1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sliced.Length() != 2 {
		t.Fatalf("sliced length = %d, want 2", sliced.Length())
	}
}

func TestReduceNextRejectsMismatchedParents(t *testing.T) {
	offsets := jagged.NewIndexI64([]int64{0, 1, 2})
	content := jagged.NewNumericArray([]int64{1, 2})
	l := New(offsets, content)

	_, err := l.ReduceNext(reduce.Sum{}, 1, nil, []int64{0, 1, 2}, 3, false, false)
	if err == nil {
		t.Fatalf("expected a structural error for mismatched parents length")
	}
}
