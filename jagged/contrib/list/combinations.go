package list

import "github.com/jagged-go/jagged"

// Combinations computes, per sublist, the lexicographically enumerated
// n-tuples of positions (C(len_i, n) of them, or the multiset variant of
// size C(len_i+n-1, n) if replacement is allowed), and returns outoffsets
// (one row per sublist, counting its own tuples) plus n parallel
// carry-index vectors selecting each tuple's fields — carries[f][t] is
// the source content position of tuple t's f-th field.
//
// Assembling carries into a record-of-n-fields Content is left to the
// caller: records, like every other higher-level array class, are an
// external collaborator this module states the required contract for and
// builds no more of (see the package doc on indirection). A caller with a
// record type need only Carry its own per-field contents by carries[f]
// and wrap the result under outoffsets.
func (l List[W]) Combinations(n int, replacement bool) (outoffsets []int64, carries [][]int64, err error) {
	if n < 1 {
		return nil, nil, &jagged.ArgumentError{Op: "List.Combinations", Message: "n must be >= 1"}
	}
	offsets := l.offsets.ToInt64()
	rows := len(offsets) - 1
	outoffsets = make([]int64, rows+1)
	carries = make([][]int64, n)

	for i := 0; i < rows; i++ {
		lo, hi := offsets[i], offsets[i+1]
		m := int(hi - lo)
		tuples := enumerateCombinations(m, n, replacement)
		outoffsets[i+1] = outoffsets[i] + int64(len(tuples))
		for _, tuple := range tuples {
			for f, localPos := range tuple {
				carries[f] = append(carries[f], lo+int64(localPos))
			}
		}
	}
	return outoffsets, carries, nil
}

// enumerateCombinations returns every lexicographically ordered n-tuple of
// positions in [0, m) — strictly increasing if !replacement, non-decreasing
// (a multiset combination) if replacement — as the standard
// next-combination algorithm produces them.
func enumerateCombinations(m, n int, replacement bool) [][]int {
	if n > m && !replacement {
		return nil
	}
	if m == 0 {
		return nil
	}
	c := make([]int, n)
	if !replacement {
		for i := range c {
			c[i] = i
		}
	}

	var out [][]int
	for {
		row := make([]int, n)
		copy(row, c)
		out = append(out, row)

		i := n - 1
		if replacement {
			for i >= 0 && c[i] == m-1 {
				i--
			}
		} else {
			for i >= 0 && c[i] == m-n+i {
				i--
			}
		}
		if i < 0 {
			return out
		}
		c[i]++
		for j := i + 1; j < n; j++ {
			if replacement {
				c[j] = c[i]
			} else {
				c[j] = c[j-1] + 1
			}
		}
	}
}
