package fd

import "errors"

// ErrInvalidRange is returned when a variable is declared with a minimum
// bound greater than (or, for strict declarations, not strictly less
// than) its maximum bound.
var ErrInvalidRange = errors.New("fd: invalid variable range")

// ErrEmptyAggregate is returned by Sum and Linear when called with no
// terms: there is no variable whose bounds could stand in for the
// aggregate's.
var ErrEmptyAggregate = errors.New("fd: empty aggregate")

// ErrMismatchedLength is returned by Linear when the term and
// coefficient slices have different lengths.
var ErrMismatchedLength = errors.New("fd: mismatched slice lengths")

// errFailed is the internal failure sentinel propagated by domain
// mutation and propagator pruning whenever a bound-set detects an empty
// domain. It never escapes the package: callers of Solve, Enumerate,
// Minimize and Maximize observe failure only as the absence of a
// solution.
var errFailed = errors.New("fd: domain collapsed")
