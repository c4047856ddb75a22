package sema

import (
	"errors"
	"fmt"

	"github.com/roach88/relcheck/internal/algebra"
)

// Validation error codes (E200-E299)
const (
	// Set operation errors (E201-E209)
	ErrColumnCountMismatch = "E201" // operand column counts differ
	ErrColumnTypeMismatch  = "E202" // no common widened type for a column pair

	// Scalar operator errors (E210-E219)
	ErrNotComparable = "E210" // operands have no common type to compare at
	ErrNotNumeric    = "E211" // operand is not of the numeric family

	// Resolution errors (E220-E229)
	ErrNoMatchingSignature = "E220" // no registered overload accepts the operands
)

// ValidationError is a located, categorized semantic error. It identifies
// the offending syntax node through Pos; rendering the final user-facing
// message (localization, source excerpts) is the caller's concern.
type ValidationError struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Pos     algebra.Position `json:"pos,omitempty"`

	// Ordinal is the 1-based failing column for ColumnTypeMismatch
	// errors, 0 for every other code.
	Ordinal int `json:"ordinal,omitempty"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Pos, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// CodeOf extracts the validation error code from err, or "" when err is not
// a ValidationError. Uses errors.As to handle wrapped errors.
func CodeOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}

// IsColumnCountMismatch reports whether err is a set-operation arity error.
func IsColumnCountMismatch(err error) bool {
	return CodeOf(err) == ErrColumnCountMismatch
}

// IsColumnTypeMismatch reports whether err is a per-column widening error.
func IsColumnTypeMismatch(err error) bool {
	return CodeOf(err) == ErrColumnTypeMismatch
}
