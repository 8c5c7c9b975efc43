package listprep

import (
	"reflect"
	"testing"
)

func TestRpadAxis1Length(t *testing.T) {
	got := RpadAxis1Length([]int64{0, 2, 3, 6}, 3)
	want := []int64{0, 3, 6, 9}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRpadAxis1(t *testing.T) {
	got := RpadAxis1([]int64{0, 2, 3}, 3)
	want := []int64{0, 1, -1, 2, -1, -1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRpadAxis1AndClip(t *testing.T) {
	got := RpadAxis1AndClip([]int64{0, 4, 5}, 2)
	want := []int64{0, 1, 4, -1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
