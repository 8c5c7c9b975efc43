package list

import (
	"fmt"

	"github.com/jagged-go/jagged"
	"github.com/jagged-go/jagged/contrib/indirect"
	"github.com/jagged-go/jagged/contrib/listprep"
)

// RpadAndClip right-pads every sublist to exactly target length (clip
// truncates longer sublists) or at least target length (!clip leaves
// longer sublists alone), filling padding positions with missing rather
// than a value — built from an IndexedArray (contrib/indirect) whose
// index carries a -1 sentinel at every padded position, per the "option-
// content simplification" the orchestration contract calls for.
func (l List[W]) RpadAndClip(target int64, clip bool) (jagged.Content, error) {
	rawOffsets := l.offsets.ToInt64()
	if err := listprep.ValidateOffsets(rawOffsets, l.content.Length()); err != nil {
		return nil, fmt.Errorf("List.RpadAndClip: %w", err)
	}
	start, stop := listprep.GlobalStartStop(rawOffsets)
	trimmed, err := l.content.GetItemRangeNoWrap(start, stop)
	if err != nil {
		return nil, fmt.Errorf("List.RpadAndClip: %w", err)
	}
	offsets := listprep.CompactOffsets(rawOffsets)

	var index, newOffsets []int64
	if clip {
		index = listprep.RpadAxis1AndClip(offsets, target)
		n := int64(len(offsets) - 1)
		newOffsets = make([]int64, n+1)
		for i := int64(0); i < n; i++ {
			newOffsets[i+1] = newOffsets[i] + target
		}
	} else {
		index = listprep.RpadAxis1(offsets, target)
		newOffsets = listprep.RpadAxis1Length(offsets, target)
	}

	padded := indirect.NewIndexedArray(index, trimmed)
	return New(jagged.NewIndexI64(newOffsets), jagged.Content(padded)), nil
}
