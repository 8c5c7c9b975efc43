package listprep

// RpadAxis1Length returns the output offsets for right-padding every
// sublist in offsets up to at least length target: out[i+1]-out[i] ==
// max(target, offsets[i+1]-offsets[i]).
func RpadAxis1Length(offsets []int64, target int64) []int64 {
	n := len(offsets) - 1
	out := make([]int64, len(offsets))
	for i := 0; i < n; i++ {
		size := offsets[i+1] - offsets[i]
		if size < target {
			size = target
		}
		out[i+1] = out[i] + size
	}
	return out
}

// RpadAxis1 returns a carry array mapping each position of the
// rpad-expanded content (described by the offsets RpadAxis1Length would
// produce for the same target) back to a source content position, or -1
// for padding positions a caller should fill with an identity/missing
// value.
func RpadAxis1(offsets []int64, target int64) []int64 {
	n := len(offsets) - 1
	var carry []int64
	for i := 0; i < n; i++ {
		lo, hi := offsets[i], offsets[i+1]
		size := hi - lo
		for k := lo; k < hi; k++ {
			carry = append(carry, k)
		}
		for k := size; k < target; k++ {
			carry = append(carry, -1)
		}
	}
	return carry
}

// RpadAxis1AndClip behaves like RpadAxis1 but truncates sublists longer
// than target instead of leaving them untouched, so every resulting
// sublist has exactly length target.
func RpadAxis1AndClip(offsets []int64, target int64) []int64 {
	n := len(offsets) - 1
	carry := make([]int64, 0, int64(n)*target)
	for i := 0; i < n; i++ {
		lo, hi := offsets[i], offsets[i+1]
		size := hi - lo
		if size > target {
			hi = lo + target
			size = target
		}
		for k := lo; k < hi; k++ {
			carry = append(carry, k)
		}
		for k := size; k < target; k++ {
			carry = append(carry, -1)
		}
	}
	return carry
}
