package list

import (
	"fmt"

	"github.com/jagged-go/jagged"
	"github.com/jagged-go/jagged/contrib/listprep"
	"github.com/jagged-go/jagged/contrib/sortkernel"
)

// SortNext sorts each sublist's own elements ascending (descending if
// ascending is false), leaving the outer offsets unchanged — a sort never
// changes how many elements belong to a sublist, only their order within
// it. This implements sort_next's orchestration at the leaf-adjacent axis:
// content must itself be a sortable leaf NumericArray; sorting through a
// further nested list level is not supported (unlike ReduceNext, sort has
// no non-local analog across sublists to fall back to).
func (l List[W]) SortNext(ascending, stable bool) (jagged.Content, error) {
	carry, err := l.sortCarry(stable, ascending)
	if err != nil {
		return nil, err
	}
	sorted, err := l.content.Carry(carry)
	if err != nil {
		return nil, fmt.Errorf("List.SortNext: %w", err)
	}
	return New(l.offsets, sorted), nil
}

// ArgSortNext is like SortNext but returns, per original position, the
// 0-based rank it would occupy within its own sublist after sorting —
// the local_preparenext/outcarry permutation itself, rather than content
// already reordered by it.
func (l List[W]) ArgSortNext(ascending, stable bool) (jagged.Content, error) {
	offsets := l.offsets.ToInt64()
	carry, err := l.sortCarry(stable, ascending)
	if err != nil {
		return nil, err
	}
	return New(l.offsets, jagged.NewNumericArray(outcarry(offsets, carry))), nil
}

// sortCarry builds, for every sublist, the source content positions in
// the order that sorts that sublist's own values. Carrying content by the
// concatenation of all sublists' orders reorders each sublist in place
// while leaving the shared offsets untouched.
func (l List[W]) sortCarry(stable, ascending bool) ([]int64, error) {
	offsets := l.offsets.ToInt64()
	if err := listprep.ValidateOffsets(offsets, l.content.Length()); err != nil {
		return nil, fmt.Errorf("List.SortNext: %w", err)
	}
	n := len(offsets) - 1
	carry := make([]int64, 0, l.content.Length())
	for i := 0; i < n; i++ {
		lo, hi := offsets[i], offsets[i+1]
		sub, err := l.content.GetItemRangeNoWrap(lo, hi)
		if err != nil {
			return nil, fmt.Errorf("List.SortNext: %w", err)
		}
		localOrder, err := argSortLeaf(sub, stable, ascending)
		if err != nil {
			return nil, fmt.Errorf("List.SortNext: %w", err)
		}
		for _, p := range localOrder {
			carry = append(carry, lo+p)
		}
	}
	return carry, nil
}

// outcarry inverts a sortCarry permutation into the rank each original
// position ends up at within its own sublist.
func outcarry(offsets, carry []int64) []int64 {
	out := make([]int64, len(carry))
	n := len(offsets) - 1
	for i := 0; i < n; i++ {
		lo, hi := offsets[i], offsets[i+1]
		for rank, srcPos := range carry[lo:hi] {
			out[srcPos] = int64(rank)
		}
	}
	return out
}

// argSortLeaf dispatches to sortkernel.ArgSort on content's concrete
// element type. content must be a leaf NumericArray.
func argSortLeaf(content jagged.Content, stable, ascending bool) ([]int64, error) {
	switch v := content.(type) {
	case jagged.NumericArray[int8]:
		return sortkernel.ArgSort(v.Raw(), stable, ascending), nil
	case jagged.NumericArray[int16]:
		return sortkernel.ArgSort(v.Raw(), stable, ascending), nil
	case jagged.NumericArray[int32]:
		return sortkernel.ArgSort(v.Raw(), stable, ascending), nil
	case jagged.NumericArray[int64]:
		return sortkernel.ArgSort(v.Raw(), stable, ascending), nil
	case jagged.NumericArray[uint8]:
		return sortkernel.ArgSort(v.Raw(), stable, ascending), nil
	case jagged.NumericArray[uint16]:
		return sortkernel.ArgSort(v.Raw(), stable, ascending), nil
	case jagged.NumericArray[uint32]:
		return sortkernel.ArgSort(v.Raw(), stable, ascending), nil
	case jagged.NumericArray[uint64]:
		return sortkernel.ArgSort(v.Raw(), stable, ascending), nil
	case jagged.NumericArray[float32]:
		return sortkernel.ArgSort(v.Raw(), stable, ascending), nil
	case jagged.NumericArray[float64]:
		return sortkernel.ArgSort(v.Raw(), stable, ascending), nil
	default:
		return nil, fmt.Errorf("element %T is not a sortable leaf", content)
	}
}
