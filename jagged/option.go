package jagged

// OptionArray is the minimal option-indexed wrapper the reduction core
// needs to report "missing" output groups when a reducer is invoked with
// mask=true. Full indirection semantics
// (bit/byte/unmasked arrays, index arrays) belong to the wider array
// ecosystem are explicitly out of scope; this type exists only so
// ReduceNext has somewhere to put the presence bits the reducer's own
// ReduceTyped call returns when mask is true.
type OptionArray struct {
	content Content
	present []bool
}

// NewOptionArray pairs content with a presence vector of the same length,
// for callers outside this package that need to report missing entries
// without building their own option-type wrapper. If every slot is
// present it returns content unchanged, same as maskMissing.
func NewOptionArray(content Content, present []bool) Content {
	return maskMissing(content, present)
}

// maskMissing pairs content with a presence vector of the same length.
// If every slot is present it returns content unchanged.
func maskMissing(content Content, present []bool) Content {
	for _, ok := range present {
		if !ok {
			return OptionArray{content: content, present: present}
		}
	}
	return content
}

// Present reports which entries of the wrapped content are defined.
func (o OptionArray) Present() []bool { return o.present }

// Contained returns the wrapped content (including identity values for
// missing slots, per the reducer's own initialization).
func (o OptionArray) Contained() Content { return o.content }

func (o OptionArray) Length() int64 { return o.content.Length() }

func (o OptionArray) BranchDepth() (bool, int64) {
	return o.content.BranchDepth()
}

func (o OptionArray) PurelistDepth() int64 {
	return o.content.PurelistDepth()
}

func (o OptionArray) Carry(index []int64) (Content, error) {
	inner, err := o.content.Carry(index)
	if err != nil {
		return nil, err
	}
	present := make([]bool, len(index))
	for k, i := range index {
		if i >= 0 && int(i) < len(o.present) {
			present[k] = o.present[i]
		}
	}
	return maskMissing(inner, present), nil
}

func (o OptionArray) GetItemRangeNoWrap(lo, hi int64) (Content, error) {
	inner, err := o.content.GetItemRangeNoWrap(lo, hi)
	if err != nil {
		return nil, err
	}
	return maskMissing(inner, o.present[lo:hi]), nil
}

func (o OptionArray) ReduceNext(reducer Reducer, negaxis int, starts, parents []int64, outlength int64, mask, keepdims bool) (Content, error) {
	return o.content.ReduceNext(reducer, negaxis, starts, parents, outlength, mask, keepdims)
}
