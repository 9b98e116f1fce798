// Package fault defines the typed failures raised by the numeric core.
package fault

import (
	"errors"
	"fmt"
	"math"
)

// #region kind
// Kind enumerates failure categories.
type Kind string

const (
	DivisionByZero Kind = "division_by_zero"
	InvalidRange   Kind = "invalid_range"
)

// Sentinels for errors.Is checks against any *Error of the same kind.
var (
	ErrDivisionByZero = errors.New(string(DivisionByZero))
	ErrInvalidRange   = errors.New(string(InvalidRange))
)

// #endregion kind

// #region error
// Error is a terminal input-validation failure. The core never retries it.
type Error struct {
	Kind  Kind
	Op    string // operation that rejected the input, e.g. "formula.cybernetics"
	Field string // offending input name
	Value float64
	Msg   string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s=%g", e.Op, e.Kind, e.Field, e.Value)
}

// Is matches the kind sentinels and other *Error values of the same kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrDivisionByZero:
		return e.Kind == DivisionByZero
	case ErrInvalidRange:
		return e.Kind == InvalidRange
	}
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind && (other.Field == "" || other.Field == e.Field)
	}
	return false
}

// #endregion error

// #region constructors
// DivideByZero reports that field was used as a zero divisor in op.
func DivideByZero(op, field string) *Error {
	return &Error{
		Kind:  DivisionByZero,
		Op:    op,
		Field: field,
		Msg:   fmt.Sprintf("%s must be non-zero", field),
	}
}

// OutOfRange reports that value for field falls outside [lo, hi].
// Use math.Inf(1) for an open upper bound.
func OutOfRange(op, field string, value, lo, hi float64) *Error {
	bounds := fmt.Sprintf("[%g, %g]", lo, hi)
	if math.IsInf(hi, 1) {
		bounds = fmt.Sprintf("[%g, +inf)", lo)
	}
	return &Error{
		Kind:  InvalidRange,
		Op:    op,
		Field: field,
		Value: value,
		Msg:   fmt.Sprintf("%s=%g outside %s", field, value, bounds),
	}
}

// NotFinite reports that op produced a NaN or infinite value for field.
// Overflow is classed as a range failure of the inputs that caused it.
func NotFinite(op, field string, value float64) *Error {
	return &Error{
		Kind:  InvalidRange,
		Op:    op,
		Field: field,
		Value: value,
		Msg:   fmt.Sprintf("%s=%g is not finite", field, value),
	}
}

// KindOf returns the fault kind carried by err, or "" if err is not a fault.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// #endregion constructors
