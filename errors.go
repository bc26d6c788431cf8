package bspline

import "fmt"

// ValidationError reports a malformed knot vector: a sequence that is not
// non-decreasing, degenerate (all values equal), or whose length does not
// match the control-point count and degree.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConfigurationError reports an invalid curve definition or operation
// request: a degree below 1, too few control points, mismatched weight or
// knot lengths, an insertion that would push a knot's multiplicity past
// the curve order, or invalid approximation parameters.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// DomainError reports a parameter outside the curve's valid domain.
type DomainError struct {
	T        float64
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("parameter %g outside domain [%g, %g]", e.T, e.Min, e.Max)
}

// DegeneracyError reports a numerically degenerate evaluation, such as a
// rational denominator that vanishes. It indicates malformed input rather
// than a recoverable condition.
type DegeneracyError struct {
	Msg string
}

func (e *DegeneracyError) Error() string { return e.Msg }

func errValidationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func errConfigf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}
