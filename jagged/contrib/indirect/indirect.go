// Package indirect implements the two minimal indirection layers a
// reduction can encounter between two list levels: an index array (each
// entry either a position in an underlying content or a dropped/missing
// marker) and a byte-masked array (a parallel byte vector of valid/invalid
// flags). Neither carries any semantics beyond what reduction needs —
// this is the "external collaborator" surface the wider array ecosystem
// (slicing, typed accessors, construction from Arrow buffers, ...) would
// build on, not a reimplementation of it.
package indirect

import (
	"fmt"

	"github.com/jagged-go/jagged"
)

// IndexedArray is an indirection layer: index[i] names the position in
// content that virtual position i refers to, or a negative value if i is
// missing. It never owns content; Carry/GetItemRangeNoWrap only ever
// touch the index, never content itself.
type IndexedArray struct {
	index   []int64
	content jagged.Content
}

// NewIndexedArray wraps content behind index. index is not copied.
func NewIndexedArray(index []int64, content jagged.Content) IndexedArray {
	return IndexedArray{index: index, content: content}
}

func (a IndexedArray) Length() int64 { return int64(len(a.index)) }

func (a IndexedArray) BranchDepth() (bool, int64) { return a.content.BranchDepth() }

func (a IndexedArray) PurelistDepth() int64 { return a.content.PurelistDepth() }

// Contained returns the wrapped content.
func (a IndexedArray) Contained() jagged.Content { return a.content }

// Carry implements Content by gathering the index (not content).
func (a IndexedArray) Carry(sel []int64) (jagged.Content, error) {
	out := make([]int64, len(sel))
	n := int64(len(a.index))
	for k, i := range sel {
		if i < 0 || i >= n {
			return nil, &jagged.StructuralError{Class: "IndexedArray.Carry", Index: k, Message: fmt.Sprintf("carry index %d out of range [0,%d)", i, n)}
		}
		out[k] = a.index[i]
	}
	return NewIndexedArray(out, a.content), nil
}

func (a IndexedArray) GetItemRangeNoWrap(lo, hi int64) (jagged.Content, error) {
	n := int64(len(a.index))
	if lo < 0 || hi < lo || hi > n {
		return nil, &jagged.StructuralError{Class: "IndexedArray.GetItemRangeNoWrap", Index: -1, Message: fmt.Sprintf("range [%d:%d] out of bounds for length %d", lo, hi, n)}
	}
	return NewIndexedArray(a.index[lo:hi], a.content), nil
}

// ReduceNext implements the indirection pass-through: drop every entry
// whose index is negative, forward the surviving entries (and their
// parents, renumbered to match) down the wrapped content, and return the
// content's own reduced result unchanged — a dropped entry never
// contributes to its group, which is already a correct accounting of its
// absence since group membership (outlength, the parent id space) is not
// itself affected by which individual elements survive.
//
// nextcarry/nextparents/outindex are built exactly as the pass-through
// contract names them; OutIndex (which reruns filter, see below) is
// the artifact library code needing the raw pre/post-filter correspondence
// can consult directly. ReduceNext itself does not re-wrap the collapsed
// reduction result with it: the kernel's output already has length
// outlength, a different space than outindex's domain (length(index)), so
// there is nothing well-typed left to re-wrap once the grouping the
// reducer performed has already discarded element-level positions.
func (a IndexedArray) ReduceNext(reducer jagged.Reducer, negaxis int, starts, parents []int64, outlength int64, mask, keepdims bool) (jagged.Content, error) {
	if int64(len(parents)) != int64(len(a.index)) {
		return nil, &jagged.StructuralError{Class: "IndexedArray.ReduceNext", Index: -1, Message: fmt.Sprintf("parents length %d does not match index length %d", len(parents), len(a.index))}
	}
	nextcarry, nextparents, _ := a.filter(parents)
	filtered, err := a.content.Carry(nextcarry)
	if err != nil {
		return nil, fmt.Errorf("IndexedArray.ReduceNext: %w", err)
	}
	return filtered.ReduceNext(reducer, negaxis, starts, nextparents, outlength, mask, keepdims)
}

// filter computes nextcarry, nextparents and outindex per the pass-through
// contract: nextcarry holds the retained underlying content positions,
// nextparents their corresponding parent, and outindex maps each of this
// array's own positions to its position in nextcarry, or -1 if dropped.
func (a IndexedArray) filter(parents []int64) (nextcarry, nextparents, outindex []int64) {
	outindex = make([]int64, len(a.index))
	for i, idx := range a.index {
		if idx < 0 {
			outindex[i] = -1
			continue
		}
		outindex[i] = int64(len(nextcarry))
		nextcarry = append(nextcarry, idx)
		nextparents = append(nextparents, parents[i])
	}
	return nextcarry, nextparents, outindex
}

// OutIndex exposes the pass-through's option-index directly (not used by
// ReduceNext itself, see its doc comment), for callers building further
// indirection-aware operations on top of a reduction.
func (a IndexedArray) OutIndex(parents []int64) []int64 {
	_, _, outindex := a.filter(parents)
	return outindex
}

var _ jagged.Content = IndexedArray{}

// ByteMaskedArray is an indirection layer where a parallel byte vector
// flags each position as valid or invalid; ValidWhen selects which byte
// value (nonzero or zero) means "present", matching Arrow's validity-byte
// convention used either way depending on producer.
type ByteMaskedArray struct {
	mask      []byte
	validWhen byte
	content   jagged.Content
}

// NewByteMaskedArray wraps content behind mask. validWhen is the mask byte
// value meaning "present"; pass 1 for an Arrow-style validity buffer, 0
// for an inverted ("excludes") convention.
func NewByteMaskedArray(mask []byte, validWhen byte, content jagged.Content) ByteMaskedArray {
	return ByteMaskedArray{mask: mask, validWhen: validWhen, content: content}
}

func (a ByteMaskedArray) Length() int64 { return int64(len(a.mask)) }

func (a ByteMaskedArray) BranchDepth() (bool, int64) { return a.content.BranchDepth() }

func (a ByteMaskedArray) PurelistDepth() int64 { return a.content.PurelistDepth() }

func (a ByteMaskedArray) Contained() jagged.Content { return a.content }

func (a ByteMaskedArray) valid(i int) bool {
	if a.validWhen == 0 {
		return a.mask[i] == 0
	}
	return a.mask[i] != 0
}

func (a ByteMaskedArray) Carry(sel []int64) (jagged.Content, error) {
	out := make([]byte, len(sel))
	n := int64(len(a.mask))
	for k, i := range sel {
		if i < 0 || i >= n {
			return nil, &jagged.StructuralError{Class: "ByteMaskedArray.Carry", Index: k, Message: fmt.Sprintf("carry index %d out of range [0,%d)", i, n)}
		}
		out[k] = a.mask[i]
	}
	return NewByteMaskedArray(out, a.validWhen, a.content), nil
}

func (a ByteMaskedArray) GetItemRangeNoWrap(lo, hi int64) (jagged.Content, error) {
	n := int64(len(a.mask))
	if lo < 0 || hi < lo || hi > n {
		return nil, &jagged.StructuralError{Class: "ByteMaskedArray.GetItemRangeNoWrap", Index: -1, Message: fmt.Sprintf("range [%d:%d] out of bounds for length %d", lo, hi, n)}
	}
	return NewByteMaskedArray(a.mask[lo:hi], a.validWhen, a.content), nil
}

// ReduceNext mirrors IndexedArray.ReduceNext: an invalid byte behaves
// exactly like a negative index, dropping that entry from its group
// before forwarding to the wrapped content. Because content here is
// indexed positionally (mask[i] describes content[i] directly, not an
// indirection through a stored index), the retained nextcarry is simply
// the surviving positions themselves.
func (a ByteMaskedArray) ReduceNext(reducer jagged.Reducer, negaxis int, starts, parents []int64, outlength int64, mask, keepdims bool) (jagged.Content, error) {
	if int64(len(parents)) != int64(len(a.mask)) {
		return nil, &jagged.StructuralError{Class: "ByteMaskedArray.ReduceNext", Index: -1, Message: fmt.Sprintf("parents length %d does not match mask length %d", len(parents), len(a.mask))}
	}
	var nextcarry, nextparents []int64
	for i := range a.mask {
		if !a.valid(i) {
			continue
		}
		nextcarry = append(nextcarry, int64(i))
		nextparents = append(nextparents, parents[i])
	}
	filtered, err := a.content.Carry(nextcarry)
	if err != nil {
		return nil, fmt.Errorf("ByteMaskedArray.ReduceNext: %w", err)
	}
	return filtered.ReduceNext(reducer, negaxis, starts, nextparents, outlength, mask, keepdims)
}

// OutIndex builds the option-index from this array's own positions to
// their position among the valid (surviving) entries, -1 where invalid.
func (a ByteMaskedArray) OutIndex() []int64 {
	outindex := make([]int64, len(a.mask))
	next := int64(0)
	for i := range a.mask {
		if !a.valid(i) {
			outindex[i] = -1
			continue
		}
		outindex[i] = next
		next++
	}
	return outindex
}

var _ jagged.Content = ByteMaskedArray{}
