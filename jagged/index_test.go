package jagged

import (
	"reflect"
	"testing"
)

func TestIndexGetAndSlice(t *testing.T) {
	ix := NewIndexI64([]int64{10, 20, 30, 40, 50})
	if ix.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", ix.Len())
	}
	if ix.Get(2) != 30 {
		t.Fatalf("Get(2) = %d, want 30", ix.Get(2))
	}
	sub, err := ix.Slice(1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(sub.Raw(), []int64{20, 30, 40}) {
		t.Fatalf("Raw() = %v, want [20 30 40]", sub.Raw())
	}
	// a slice of a slice is relative to the parent's own window.
	subsub, err := sub.Slice(1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subsub.Get(0) != 30 {
		t.Fatalf("Get(0) on nested slice = %d, want 30", subsub.Get(0))
	}
}

func TestIndexSliceOutOfRange(t *testing.T) {
	ix := NewIndexI64([]int64{1, 2, 3})
	if _, err := ix.Slice(2, 1); err == nil {
		t.Fatalf("expected an error for hi < lo")
	}
	if _, err := ix.Slice(0, 4); err == nil {
		t.Fatalf("expected an error for hi past the end")
	}
}

func TestIndexGetPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Get to panic for an out-of-range position")
		}
	}()
	NewIndexI64([]int64{1, 2}).Get(5)
}

func TestIndexViewWindow(t *testing.T) {
	buf := []int32{1, 2, 3, 4, 5}
	view, err := NewIndexView(buf, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(view.ToInt64(), []int64{2, 3, 4}) {
		t.Fatalf("ToInt64() = %v, want [2 3 4]", view.ToInt64())
	}
	if _, err := NewIndexView(buf, 3, 4); err == nil {
		t.Fatalf("expected an error: view runs past the end of buf")
	}
}

func TestIndexToInt64Widens(t *testing.T) {
	ix := NewIndex([]uint32{1, 2, 3})
	got := ix.ToInt64()
	want := []int64{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
