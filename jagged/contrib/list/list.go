// Package list implements the offset-encoded jagged list container and its
// recursive reduction orchestration: selecting, at every level, between the
// local strategy (reduce within each sublist, preserving outer structure)
// and the non-local strategy (reduce across sublists grouped by an outer
// parent, producing a new jagged level keyed by within-sublist position).
//
// List is the one Content implementation with children; every other
// Content in this module (jagged.NumericArray, indirect.IndexedArray,
// indirect.ByteMaskedArray) is either a leaf or a single pass-through
// wrapper.
package list

import (
	"fmt"

	"github.com/jagged-go/jagged"
	"github.com/jagged-go/jagged/contrib/listprep"
)

// List is a jagged container: N sublists described by an (N+1)-length
// offsets index over a shared content. W is the offsets' integer width;
// any width other than int64 is canonicalized to int64 before a reduction
// proceeds, per the orchestration contract.
type List[W jagged.IndexInt] struct {
	offsets jagged.Index[W]
	content jagged.Content
}

// New wraps offsets and content as a List. It does not validate the
// offsets/content relationship; call listprep.ValidateOffsets or rely on ReduceNext's
// own precondition check to catch a malformed pairing.
func New[W jagged.IndexInt](offsets jagged.Index[W], content jagged.Content) List[W] {
	return List[W]{offsets: offsets, content: content}
}

// Offsets returns the backing offsets index.
func (l List[W]) Offsets() jagged.Index[W] { return l.offsets }

// Contained returns the wrapped content.
func (l List[W]) Contained() jagged.Content { return l.content }

// Length implements jagged.Content: the number of sublists.
func (l List[W]) Length() int64 {
	n := l.offsets.Len() - 1
	if n < 0 {
		n = 0
	}
	return int64(n)
}

// BranchDepth implements jagged.Content.
func (l List[W]) BranchDepth() (bool, int64) {
	branches, depth := l.content.BranchDepth()
	return branches, depth + 1
}

// PurelistDepth implements jagged.Content.
func (l List[W]) PurelistDepth() int64 {
	return l.content.PurelistDepth() + 1
}

// Carry implements jagged.Content by selecting whole sublists: each
// index[k] names a sublist of the receiver, and the result concatenates
// the selected sublists' elements under a freshly built offsets array.
func (l List[W]) Carry(index []int64) (jagged.Content, error) {
	n := l.Length()
	offsets := l.offsets.ToInt64()
	newOffsets := make([]int64, len(index)+1)
	var flat []int64
	for k, idx := range index {
		if idx < 0 || idx >= n {
			return nil, structuralErr("List.Carry", k, "carry index %d out of range [0,%d)", idx, n)
		}
		lo, hi := offsets[idx], offsets[idx+1]
		for p := lo; p < hi; p++ {
			flat = append(flat, p)
		}
		newOffsets[k+1] = newOffsets[k] + (hi - lo)
	}
	newContent, err := l.content.Carry(flat)
	if err != nil {
		return nil, err
	}
	return New(jagged.NewIndexI64(newOffsets), newContent), nil
}

// GetItemRangeNoWrap implements jagged.Content: a contiguous sub-range of
// sublists, sharing the same content.
func (l List[W]) GetItemRangeNoWrap(lo, hi int64) (jagged.Content, error) {
	view, err := l.offsets.Slice(int(lo), int(hi)+1)
	if err != nil {
		return nil, structuralErr("List.GetItemRangeNoWrap", -1, "%v", err)
	}
	return New(view, l.content), nil
}

// ReduceNext implements jagged.Content, dispatching between the local and
// non-local strategies per the orchestration contract: canonicalize
// offsets to int64 and compact them to start at zero, trim content to the
// referenced window, then compare negaxis against the trimmed content's
// own depth to choose a strategy.
func (l List[W]) ReduceNext(reducer jagged.Reducer, negaxis int, starts, parents []int64, outlength int64, mask, keepdims bool) (jagged.Content, error) {
	rawOffsets := l.offsets.ToInt64()
	if err := listprep.ValidateOffsets(rawOffsets, l.content.Length()); err != nil {
		return nil, fmt.Errorf("List.ReduceNext: %w", err)
	}

	start, stop := listprep.GlobalStartStop(rawOffsets)
	trimmed, err := l.content.GetItemRangeNoWrap(start, stop)
	if err != nil {
		return nil, fmt.Errorf("List.ReduceNext: trimming content: %w", err)
	}
	offsets := listprep.CompactOffsets(rawOffsets)

	branches, depth := trimmed.BranchDepth()
	if !branches && int64(negaxis) == depth {
		return l.reduceNonLocal(reducer, negaxis, offsets, trimmed, parents, outlength, mask, keepdims)
	}
	return l.reduceLocal(reducer, negaxis, offsets, trimmed, parents, outlength, mask)
}

// reduceLocal implements the local reduction preparation: every element
// of sublist i is assigned parent i, content reduces into N groups (one
// result per sublist), and those N results are wrapped under offsets built
// from this level's own parents, so sublist i's result lands in output
// group parents[i] of outlength.
func (l List[W]) reduceLocal(reducer jagged.Reducer, negaxis int, offsets []int64, trimmed jagged.Content, parents []int64, outlength int64, mask bool) (jagged.Content, error) {
	n := int64(len(offsets) - 1)
	nextparents := listprep.LocalNextParents(offsets)
	localStarts := listprep.MakeStarts(offsets)

	inner, err := trimmed.ReduceNext(reducer, negaxis, localStarts, nextparents, n, mask, false)
	if err != nil {
		return nil, err
	}
	outoffsets, err := listprep.LocalOutOffsets(parents, outlength)
	if err != nil {
		return nil, fmt.Errorf("List.ReduceNext: %w", err)
	}
	return New(jagged.NewIndexI64(outoffsets), inner), nil
}

// reduceNonLocal implements non-local reduction preparation: sublists are
// regrouped by position-within-sublist and outer parent, reduced one
// level deeper, then reassembled into a new jagged level keyed by
// distinct positional slot.
func (l List[W]) reduceNonLocal(reducer jagged.Reducer, negaxis int, offsets []int64, trimmed jagged.Content, parents []int64, outlength int64, mask, keepdims bool) (jagged.Content, error) {
	if int64(len(offsets)-1) != int64(len(parents)) {
		return nil, structuralErr("List.ReduceNext", -1,
			"offsets.length-1 (%d) does not match parents.length (%d) in non-local branch", len(offsets)-1, len(parents))
	}

	nextcarry, nextparents, distincts, maxcount, maxnextparents := listprep.PrepareNext(offsets, parents, outlength)
	nextstarts := listprep.NextStarts(nextparents, maxnextparents)

	carried, err := trimmed.Carry(nextcarry)
	if err != nil {
		return nil, fmt.Errorf("List.ReduceNext: %w", err)
	}
	inner, err := carried.ReduceNext(reducer, negaxis-1, nextstarts, nextparents, maxnextparents, mask, false)
	if err != nil {
		return nil, err
	}
	if reducer.Positional() {
		inner, err = remapPositional(inner, nextcarry)
		if err != nil {
			return nil, fmt.Errorf("List.ReduceNext: %w", err)
		}
	}

	padStarts, padStops := listprep.OutStartsStops(distincts, maxcount, outlength)
	finalOffsets := make([]int64, outlength+1)
	var finalCarry []int64
	for j := int64(0); j < outlength; j++ {
		count := padStops[j] - padStarts[j]
		finalOffsets[j+1] = finalOffsets[j] + count
		for p := padStarts[j]; p < padStops[j]; p++ {
			finalCarry = append(finalCarry, p)
		}
	}
	finalContent, err := gatherSlots(inner, finalCarry)
	if err != nil {
		return nil, fmt.Errorf("List.ReduceNext: compacting reduced slots: %w", err)
	}

	result := jagged.Content(New(jagged.NewIndexI64(finalOffsets), finalContent))
	if keepdims {
		result = New(jagged.NewIndexI64([]int64{0, result.Length()}), result)
	}
	return result, nil
}

// degenerateList is satisfied by a List[int64] that a nested non-local
// recursion produced purely to carry its own per-slot occupancy (every
// row length 0 or 1, one row per virtual (outer, position) slot). It is
// never a real extra axis of the output; gatherSlots dissolves it.
type degenerateList interface {
	Offsets() jagged.Index[int64]
	Contained() jagged.Content
}

// gatherSlots selects, from a one-level-deeper reduction result already
// indexed by virtual slot (inner), the scalar/sub-content actually
// occupying each of slots. When inner is itself a list.List[int64] left
// over from a nested non-local call recursing through a further list
// level, each of its rows holds at most one real entry (the remaining
// rows are the padding PrepareNext introduces at that level); selecting
// whole rows via Content.Carry would wrap every entry in a spurious
// extra singleton list, so this dereferences straight into the row's
// first (and only) element instead of carrying row-wise.
func gatherSlots(inner jagged.Content, slots []int64) (jagged.Content, error) {
	deg, ok := inner.(degenerateList)
	if !ok {
		return inner.Carry(slots)
	}
	offsets := deg.Offsets().ToInt64()
	flat := make([]int64, len(slots))
	for i, p := range slots {
		if p < 0 || int(p) >= len(offsets)-1 {
			return nil, &jagged.StructuralError{Class: "List.ReduceNext", Index: int(p), Message: "slot out of range while flattening a degenerate nested list level"}
		}
		flat[i] = offsets[p]
	}
	return deg.Contained().Carry(flat)
}

// remapPositional translates a positional reducer's (argmin, argmax) output
// from positions within the carried (reordered by nextcarry) content back
// to positions within this list level's own trimmed content, so an argmax
// result reports a position relative to this enclosing list rather than
// relative to the internal non-local reordering. content is either a flat
// NumericArray[int64] of positions, or a degenerate list wrapping one (when
// the recursive ReduceNext call itself dispatched non-locally); anything
// else is returned unchanged since it holds no positions to translate.
func remapPositional(content jagged.Content, nextcarry []int64) (jagged.Content, error) {
	switch c := content.(type) {
	case jagged.NumericArray[int64]:
		raw := c.Raw()
		out := make([]int64, len(raw))
		for i, p := range raw {
			if p < 0 {
				out[i] = -1
				continue
			}
			if int(p) >= len(nextcarry) {
				return nil, &jagged.StructuralError{Class: "List.ReduceNext", Index: int(p), Message: "positional reducer index out of range while remapping through the non-local carry"}
			}
			out[i] = nextcarry[p]
		}
		return jagged.NewNumericArray(out), nil
	case degenerateList:
		remapped, err := remapPositional(c.Contained(), nextcarry)
		if err != nil {
			return nil, err
		}
		return New(c.Offsets(), remapped), nil
	default:
		return content, nil
	}
}

func structuralErr(class string, index int, format string, args ...any) error {
	return &jagged.StructuralError{Class: class, Index: index, Message: fmt.Sprintf(format, args...)}
}

var _ jagged.Content = List[int64]{}
var _ jagged.Content = List[int32]{}
var _ jagged.Content = List[uint32]{}
