package logpmodels

import "fmt"

// OutOfBoundsError is a recoverable LogpFunc error: evaluating the
// density outside its declared support should be treated as a
// divergence, not a fatal sampler error, the way a real model's
// log-density might reject an invalid parameter region during warmup.
type OutOfBoundsError struct {
	Coordinate int
	Value      float64
	Bound      float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate %d value %g exceeds bound %g", e.Coordinate, e.Value, e.Bound)
}

// Recoverable always reports true: being outside the declared support
// is an expected, recoverable condition.
func (e *OutOfBoundsError) Recoverable() bool {
	return true
}

// FatalEvalError is a non-recoverable LogpFunc error, used by tests and
// examples to exercise the sampler's fatal-error path.
type FatalEvalError struct {
	Reason string
}

func (e *FatalEvalError) Error() string {
	return "fatal log-density evaluation error: " + e.Reason
}

// Recoverable always reports false.
func (e *FatalEvalError) Recoverable() bool {
	return false
}
