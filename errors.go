package fraction

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a zero denominator is supplied or a zero
// value is inverted or used as a divisor.
var ErrDivisionByZero = errors.New("fraction: division by zero")

// ErrOverflow is returned or panicked with when int64 wraparound leaves an
// arithmetic result with no valid denominator.
var ErrOverflow = errors.New("fraction: arithmetic overflow")

// InvalidOperandError is returned by constructors when an operand can not be
// represented as a canonical int64 rational.
type InvalidOperandError struct {
	Operand string // "numerator" or "denominator"
	Value   string
	Reason  string
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("fraction: invalid %s %s: %s", e.Operand, e.Value, e.Reason)
}

// SyntaxError is returned by Parse for malformed input.
type SyntaxError struct {
	Input string
	Err   error
}

func (e *SyntaxError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fraction: invalid syntax %q", e.Input)
	}
	return fmt.Sprintf("fraction: invalid syntax %q: %v", e.Input, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
