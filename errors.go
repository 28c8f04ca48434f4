package intervaltree

import "fmt"

// ErrInvalidInterval is returned when a begin/end pair with begin >= end is
// presented at a tree entry point (Add, AddInterval, FromIntervals,
// FromTuples). It
// mirrors alkemir-intervaltree's typed InvalidIntervalError in carrying the
// offending bounds on the error value itself.
type ErrInvalidInterval[C any] struct {
	Begin, End C
}

func (e ErrInvalidInterval[C]) Error() string {
	return fmt.Sprintf("intervaltree: invalid interval [%v, %v)", e.Begin, e.End)
}

// ErrNotFound is returned by Remove when the interval is not a member of
// the tree. Discard swallows this error.
type ErrNotFound[C, D any] struct {
	Begin, End C
	Data       D
}

func (e ErrNotFound[C, D]) Error() string {
	return fmt.Sprintf("intervaltree: not found: [%v, %v)=%v", e.Begin, e.End, e.Data)
}

// ErrInvariantViolation is surfaced only from Tree.Verify, or internally
// when a bug is detected; it is never expected in normal operation.
type ErrInvariantViolation struct {
	Invariant string
	Detail    string
}

func (e ErrInvariantViolation) Error() string {
	return fmt.Sprintf("intervaltree: invariant violation (%s): %s", e.Invariant, e.Detail)
}
