package types

import (
	"errors"
	"fmt"
)

// Formula failures. Every engine error unwraps to exactly one of these.
var (
	// ErrDomain indicates an input violates a physical precondition
	// (negative molar volume, max phase below 1, negative electron count).
	ErrDomain = errors.New("domain error")

	// ErrDivision indicates a divisor evaluated to zero.
	ErrDivision = errors.New("division by zero")

	// ErrRange indicates a phase index outside the coefficient table.
	ErrRange = errors.New("index out of range")

	// ErrUnknownShell indicates a shell label with no ionization threshold.
	ErrUnknownShell = errors.New("unknown shell")
)

// FormulaError records which formula failed and on which input.
type FormulaError struct {
	Op    string // formula name, e.g. "critical_density"
	Input string // offending input, e.g. "molar_volume=0"
	Err   error  // one of the sentinel errors above
}

func (e *FormulaError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Input, e.Err)
}

func (e *FormulaError) Unwrap() error { return e.Err }

// NewFormulaError builds a FormulaError with a formatted input description.
func NewFormulaError(op string, err error, format string, args ...any) *FormulaError {
	return &FormulaError{Op: op, Input: fmt.Sprintf(format, args...), Err: err}
}
