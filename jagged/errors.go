package jagged

import "fmt"

// StructuralError reports a violated invariant of the offset/parents
// algebra: non-monotonic offsets, offsets running past the end of
// content, or a parents vector whose length disagrees with the offsets it
// is paired with. These are programmer errors and are not recoverable by
// retrying with the same inputs.
type StructuralError struct {
	// Class names the component that detected the violation, e.g.
	// "List.ReduceNext".
	Class string
	// Index is the offending position, or -1 if the violation is not
	// tied to a single index.
	Index int
	Message string
}

func (e *StructuralError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s (at index %d)", e.Class, e.Message, e.Index)
	}
	return fmt.Sprintf("%s: %s", e.Class, e.Message)
}

// ArgumentError reports misuse of an operation's entry contract:
// combinations requested with n < 1, broadcast_to_offsets given
// non-zero-started offsets, flatten requested at axis 0, and similar.
type ArgumentError struct {
	Op      string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// newStructuralErr is a small constructor to keep call sites terse.
func newStructuralErr(class string, index int, format string, args ...any) error {
	return &StructuralError{Class: class, Index: index, Message: fmt.Sprintf(format, args...)}
}

// newArgumentErr is a small constructor to keep call sites terse.
func newArgumentErr(op string, format string, args ...any) error {
	return &ArgumentError{Op: op, Message: fmt.Sprintf(format, args...)}
}
