package indirect

import (
	"reflect"
	"testing"

	"github.com/jagged-go/jagged"
	"github.com/jagged-go/jagged/contrib/reduce"
)

func TestIndexedArrayReduceNextDropsMissing(t *testing.T) {
	content := jagged.NewNumericArray([]int64{10, 20, 30, 40})
	// position 1 is missing; the rest point straight at content.
	index := []int64{0, -1, 2, 3}
	arr := NewIndexedArray(index, content)

	parents := []int64{0, 0, 1, 1}
	result, err := arr.ReduceNext(reduce.Sum{}, 1, nil, parents, 2, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leaf := result.(jagged.NumericArray[int64]).Raw()
	want := []int64{10, 70} // group0: just 10 (20 dropped); group1: 30+40
	if !reflect.DeepEqual(leaf, want) {
		t.Fatalf("got %v, want %v", leaf, want)
	}
}

func TestIndexedArrayOutIndex(t *testing.T) {
	content := jagged.NewNumericArray([]int64{10, 20, 30})
	arr := NewIndexedArray([]int64{0, -1, 1, -1, 2}, content)
	got := arr.OutIndex([]int64{0, 0, 0, 0, 0})
	want := []int64{0, -1, 1, -1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestByteMaskedArrayReduceNextDropsInvalid(t *testing.T) {
	content := jagged.NewNumericArray([]int64{1, 2, 3, 4})
	mask := []byte{1, 0, 1, 1} // validWhen=1: position 1 is invalid
	arr := NewByteMaskedArray(mask, 1, content)

	parents := []int64{0, 0, 1, 1}
	result, err := arr.ReduceNext(reduce.Count{}, 1, nil, parents, 2, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leaf := result.(jagged.NumericArray[int64]).Raw()
	want := []int64{1, 2} // group0: only position0 valid; group1: both valid
	if !reflect.DeepEqual(leaf, want) {
		t.Fatalf("got %v, want %v", leaf, want)
	}
}

func TestByteMaskedArrayInvertedConvention(t *testing.T) {
	content := jagged.NewNumericArray([]int64{1, 2, 3})
	mask := []byte{0, 1, 0} // validWhen=0: position 1 is invalid
	arr := NewByteMaskedArray(mask, 0, content)

	got := arr.OutIndex()
	want := []int64{0, -1, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

var (
	_ jagged.Content = IndexedArray{}
	_ jagged.Content = ByteMaskedArray{}
)
