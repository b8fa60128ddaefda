package netsimplex

import "errors"

var (
	// ErrUnsignedType is returned by New when the numeric type is not a
	// signed type able to represent negative supplies and costs.
	ErrUnsignedType = errors.New("netsimplex: numeric type must be signed")

	// ErrUnknownNode is returned when a caller references a node id outside
	// 0..N-1.
	ErrUnknownNode = errors.New("netsimplex: unknown node id")

	// ErrUnknownArc is returned when a caller references an arc id outside
	// the currently valid range.
	ErrUnknownArc = errors.New("netsimplex: unknown arc id")

	// ErrCapacityExceeded is returned by AddArc/UpdateArcs once a Solver
	// constructed with ModeFull has no remaining arc slots.
	ErrCapacityExceeded = errors.New("netsimplex: arc capacity exceeded")
)

// invariant panics with msg if cond is false. It guards conditions that, if
// violated, indicate a bug in this package rather than a problem with the
// caller's instance (spec.md §7, "internal invariant violation").
func invariant(cond bool, msg string) {
	if !cond {
		panic("netsimplex: invariant violation: " + msg)
	}
}
