package listprep

import "fmt"

// CompactOffsets returns a copy of offsets shifted so the first entry is
// zero: out[i] = offsets[i] - offsets[0]. Applying CompactOffsets to
// an already-compact array is a no-op (idempotent).
func CompactOffsets(offsets []int64) []int64 {
	out := make([]int64, len(offsets))
	if len(offsets) == 0 {
		return out
	}
	base := offsets[0]
	for i, v := range offsets {
		out[i] = v - base
	}
	return out
}

// GlobalStartStop scans offsets and returns (offsets[0], offsets[N]), the
// span of content this list actually references.
func GlobalStartStop(offsets []int64) (start, stop int64) {
	if len(offsets) == 0 {
		return 0, 0
	}
	return offsets[0], offsets[len(offsets)-1]
}

// ToRegularSize verifies every sublist described by offsets has the same
// length and, if so, returns that common size. ok is false if offsets
// describes fewer than one sublist or the sublists disagree in length
// (the toRegularArray size check).
func ToRegularSize(offsets []int64) (size int64, ok bool) {
	if len(offsets) < 2 {
		return 0, false
	}
	size = offsets[1] - offsets[0]
	for i := 1; i < len(offsets)-1; i++ {
		if offsets[i+1]-offsets[i] != size {
			return 0, false
		}
	}
	return size, true
}

// ValidateOffsets checks the invariants an offsets array must satisfy:
// non-decreasing entries and offsets[N] not exceeding contentLength. It is
// the single place list.List.ReduceNext should call before trusting an
// offsets array structurally.
func ValidateOffsets(offsets []int64, contentLength int64) error {
	if len(offsets) == 0 {
		return fmt.Errorf("listprep: offsets must have length >= 1, got 0")
	}
	for i := 0; i < len(offsets)-1; i++ {
		if offsets[i] > offsets[i+1] {
			return fmt.Errorf("listprep: offsets[%d]=%d > offsets[%d]=%d (not monotonic)", i, offsets[i], i+1, offsets[i+1])
		}
	}
	if offsets[len(offsets)-1] > contentLength {
		return fmt.Errorf("listprep: offsets[%d]=%d exceeds content length %d", len(offsets)-1, offsets[len(offsets)-1], contentLength)
	}
	return nil
}
