package listprep

import "fmt"

// LocalNextParents builds the parents vector a local reduction passes down
// to content: every element of sublist i (for compact offsets, i.e.
// offsets[0] == 0) receives parent i. The returned slice has length
// offsets[N] - offsets[0].
func LocalNextParents(offsets []int64) []int64 {
	if len(offsets) == 0 {
		return nil
	}
	base := offsets[0]
	n := len(offsets) - 1
	out := make([]int64, offsets[n]-base)
	for i := 0; i < n; i++ {
		lo, hi := offsets[i]-base, offsets[i+1]-base
		for k := lo; k < hi; k++ {
			out[k] = int64(i)
		}
	}
	return out
}

// LocalOutOffsets builds the offsets of a freshly assembled list whose N
// sublists have lengths equal to the per-group element counts implied by
// parents: outoffsets[j+1] - outoffsets[j] == |{k : parents[k] == j}|.
// parents must be non-decreasing; violating that is a caller error.
func LocalOutOffsets(parents []int64, outlength int64) ([]int64, error) {
	outoffsets := make([]int64, outlength+1)
	prev := int64(-1)
	for k, p := range parents {
		if p < prev {
			return nil, fmt.Errorf("listprep: LocalOutOffsets: parents[%d]=%d is less than previous value %d (parents must be non-decreasing)", k, p, prev)
		}
		if p < 0 || p >= outlength {
			return nil, fmt.Errorf("listprep: LocalOutOffsets: parents[%d]=%d out of range [0,%d)", k, p, outlength)
		}
		prev = p
		outoffsets[p+1]++
	}
	for j := int64(0); j < outlength; j++ {
		outoffsets[j+1] += outoffsets[j]
	}
	return outoffsets, nil
}

// MakeStarts returns, for each of the N sublists described by offsets, the
// position of its first element relative to offsets[0] (the "starts"
// vector argmin/argmax needs).
func MakeStarts(offsets []int64) []int64 {
	if len(offsets) == 0 {
		return nil
	}
	base := offsets[0]
	n := len(offsets) - 1
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = offsets[i] - base
	}
	return out
}
