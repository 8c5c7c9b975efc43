package listprep

import "testing"

// TestPrepareNextColumnCollision verifies the scenario that makes a naive
// nextparents[k]=parents[i] assignment wrong: two sublists belonging to
// the same outer group must combine column-by-column rather than being
// silently merged into a single accumulator. content = [3,4 | 5,3], both
// rows owned by outer group 0: column 0 combines 3 and 5, column 1
// combines 4 and 3 - two independent output slots, not one.
func TestPrepareNextColumnCollision(t *testing.T) {
	offsets := []int64{0, 2, 4}
	parents := []int64{0, 0}
	outlength := int64(1)

	nextcarry, nextparents, distincts, maxcount, maxnextparents := PrepareNext(offsets, parents, outlength)

	if maxcount != 2 {
		t.Fatalf("maxcount = %d, want 2", maxcount)
	}
	if maxnextparents != 2 {
		t.Fatalf("maxnextparents = %d, want 2", maxnextparents)
	}
	if len(nextcarry) != 4 || len(nextparents) != 4 {
		t.Fatalf("nextcarry/nextparents length = %d/%d, want 4/4", len(nextcarry), len(nextparents))
	}

	content := []int64{3, 4, 5, 3}
	sums := make([]int64, maxnextparents)
	for k, pos := range nextcarry {
		sums[nextparents[k]] += content[pos]
	}
	if sums[0] != 8 {
		t.Errorf("column 0 sum = %d, want 8 (3+5)", sums[0])
	}
	if sums[1] != 7 {
		t.Errorf("column 1 sum = %d, want 7 (4+3)", sums[1])
	}

	starts, stops := OutStartsStops(distincts, maxcount, outlength)
	if starts[0] != 0 || stops[0] != 2 {
		t.Fatalf("starts/stops = %v/%v, want [0]/[2]", starts, stops)
	}
}

func TestPrepareNextRaggedGap(t *testing.T) {
	// Two sublists under the same group with unequal length: the shorter
	// one contributes no element to column 1, but the longer one does, so
	// slot 1 is still present and the output range covers both columns.
	offsets := []int64{0, 1, 3}
	parents := []int64{0, 0}
	outlength := int64(1)

	_, nextparents, distincts, maxcount, maxnextparents := PrepareNext(offsets, parents, outlength)
	if maxcount != 2 {
		t.Fatalf("maxcount = %d, want 2", maxcount)
	}

	present := FindGaps(nextparents, maxnextparents)
	if !present[0] {
		t.Errorf("slot 0 should be present")
	}
	if !present[1] {
		t.Errorf("slot 1 should be present (second row contributes to column 1)")
	}

	starts, stops := OutStartsStops(distincts, maxcount, outlength)
	if starts[0] != 0 || stops[0] != 2 {
		t.Fatalf("starts/stops = %v/%v, want [0]/[2]", starts, stops)
	}
}

func TestPrepareNextEmptyGroup(t *testing.T) {
	// outlength=2 but only group 0 has any sublists; group 1 is empty.
	offsets := []int64{0, 2}
	parents := []int64{0}
	outlength := int64(2)

	_, _, distincts, maxcount, _ := PrepareNext(offsets, parents, outlength)
	starts, stops := OutStartsStops(distincts, maxcount, outlength)
	if stops[1]-starts[1] != 0 {
		t.Errorf("group 1 should contribute an empty range, got [%d,%d)", starts[1], stops[1])
	}
	if stops[0]-starts[0] != 2 {
		t.Errorf("group 0 should contribute 2 slots, got [%d,%d)", starts[0], stops[0])
	}
}

func TestNextStarts(t *testing.T) {
	nextparents := []int64{0, 0, 1, 1}
	starts := NextStarts(nextparents, 2)
	if starts[0] != 0 {
		t.Errorf("starts[0] = %d, want 0", starts[0])
	}
	if starts[1] != 2 {
		t.Errorf("starts[1] = %d, want 2", starts[1])
	}
}

func TestFindGaps(t *testing.T) {
	present := FindGaps([]int64{0, 0, 2}, 3)
	want := []bool{true, false, true}
	for i := range want {
		if present[i] != want[i] {
			t.Fatalf("present = %v, want %v", present, want)
		}
	}
}

func TestMaxCountAndCopy(t *testing.T) {
	maxcount, copied := MaxCountAndCopy([]int64{10, 12, 15, 16})
	if maxcount != 3 {
		t.Fatalf("maxcount = %d, want 3", maxcount)
	}
	want := []int64{0, 2, 5, 6}
	for i := range want {
		if copied[i] != want[i] {
			t.Fatalf("copied = %v, want %v", copied, want)
		}
	}
}
