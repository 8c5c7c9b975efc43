package listprep

// MaxCountAndCopy scans offsets and returns the length of its longest
// sublist (maxcount) together with a compacted copy of offsets
// (equivalent to CompactOffsets, returned here too so callers that only
// need the non-local path don't have to call both).
func MaxCountAndCopy(offsets []int64) (maxcount int64, offsetscopy []int64) {
	offsetscopy = CompactOffsets(offsets)
	n := len(offsetscopy) - 1
	for i := 0; i < n; i++ {
		if c := offsetscopy[i+1] - offsetscopy[i]; c > maxcount {
			maxcount = c
		}
	}
	return maxcount, offsetscopy
}

// PrepareNext builds the (nextcarry, nextparents, distincts, maxcount,
// maxnextparents) tuple a non-local reduction passes one level deeper
// offsets describes the N sublists at this level (already
// compacted, offsets[0] == 0); parents maps each of those N sublists to
// its own outer group in [0, outlength).
//
// Content at position c within sublist i is carried to nextcarry in
// column-major order (all sublists' c==0 element first, then all c==1,
// and so on) so that sibling rows combine position-by-position rather
// than row-by-row, matching the "combine corresponding elements of
// unequal-length rows" semantics a non-local reduction needs.
//
// nextparents does not reuse parents[i] directly: multiple sublists
// sharing an outer group would then collide into a single slot at the
// same c, silently summing rows that should stay separate. Instead each
// (outer group j, column c) pair gets its own flattened slot
// j*maxcount+c, so every column of every group keeps an independent
// accumulator; distincts remembers which slots are real data (as
// opposed to columns past a shorter sublist's end) for OutStartsStops.
func PrepareNext(offsets []int64, parents []int64, outlength int64) (nextcarry, nextparents, distincts []int64, maxcount, maxnextparents int64) {
	maxcount, offsets = MaxCountAndCopy(offsets)
	n := len(offsets) - 1

	distincts = make([]int64, outlength*maxcount)
	for i := range distincts {
		distincts[i] = -1
	}

	for c := int64(0); c < maxcount; c++ {
		for i := 0; i < n; i++ {
			lo, hi := offsets[i], offsets[i+1]
			if lo+c >= hi {
				continue
			}
			contentpos := lo + c
			j := parents[i]
			slot := j*maxcount + c
			nextcarry = append(nextcarry, contentpos)
			nextparents = append(nextparents, slot)
			distincts[slot] = contentpos
		}
	}

	maxnextparents = outlength * maxcount
	return nextcarry, nextparents, distincts, maxcount, maxnextparents
}

// NextStarts returns, for each distinct value appearing in nextparents
// (values range over [0, maxnextparents)), the position within nextcarry
// of its first occurrence. Entries for values that never occur are left
// at 0, which is harmless: argmin/argmax only consult NextStarts at
// slots OutStartsStops has already confirmed are non-empty.
func NextStarts(nextparents []int64, maxnextparents int64) []int64 {
	starts := make([]int64, maxnextparents)
	seen := make([]bool, maxnextparents)
	for k, p := range nextparents {
		if !seen[p] {
			seen[p] = true
			starts[p] = int64(k)
		}
	}
	return starts
}

// FindGaps reports, for each of the outlength output groups, whether
// parents actually contains that group (i.e. whether the group is
// nonempty). present[j] is false exactly when group j owns no elements
// at this level, the condition a mask=true reduction must surface as a
// missing/identity output slot.
func FindGaps(parents []int64, outlength int64) []bool {
	present := make([]bool, outlength)
	for _, p := range parents {
		if p >= 0 && p < outlength {
			present[p] = true
		}
	}
	return present
}

// OutStartsStops derives the (starts, stops) pair describing, for each
// of the outlength output groups, the half-open range of maxcount-sized
// "distincts" row it owns. Because distincts is laid out as
// outlength*maxcount, group j's row is always [j*maxcount, j*maxcount+c)
// where c is the number of contiguous non-sentinel entries from the
// start of the row — later positions are never present without earlier
// ones being present too, since PrepareNext fills columns left to right.
func OutStartsStops(distincts []int64, maxcount, outlength int64) (starts, stops []int64) {
	starts = make([]int64, outlength)
	stops = make([]int64, outlength)
	for j := int64(0); j < outlength; j++ {
		row := distincts[j*maxcount : j*maxcount+maxcount]
		c := int64(0)
		for c < maxcount && row[c] != -1 {
			c++
		}
		starts[j] = j * maxcount
		stops[j] = j*maxcount + c
	}
	return starts, stops
}
