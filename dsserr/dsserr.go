// Package dsserr holds the error values surfaced by the DSS bindings.
//
// Errors raised inside the native engine are reported as *Error, carrying the
// engine's error number and description unchanged. Errors detected on the Go
// side of the boundary use the sentinel values below, usually wrapped with
// additional context.
package dsserr

import (
	"errors"
	"fmt"
)

var (
	ErrContextCreate   = errors.New("(DSSError) Could not create a new DSS Context")
	ErrInvalidComplex  = errors.New("(DSSError) Got invalid data for a complex number.")
	ErrInvalidMatrix   = errors.New("(DSSError) Got invalid data for a square matrix.")
	ErrDisposed        = errors.New("(DSSError) already disposed")
	ErrLengthMismatch  = errors.New("(DSSError) number of values does not match the batch size")
	ErrUnknownProperty = errors.New("(DSSError) unknown property")
	ErrUnknownClass    = errors.New("(DSSError) unknown DSS class")
	ErrNotFound        = errors.New("(DSSError) object not found")
)

// Error is an error reported by the engine through its "last error" state.
type Error struct {
	Number      int32
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("(DSSError#%d) %s", e.Number, e.Description)
}

// Is reports whether target is an *Error with the same number.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Number == e.Number
}

// New returns an engine error. A zero number yields nil.
func New(number int32, description string) error {
	if number == 0 {
		return nil
	}
	return &Error{Number: number, Description: description}
}

// Number extracts the engine error number from err, or 0 if err does not
// wrap an *Error.
func Number(err error) int32 {
	var e *Error
	if errors.As(err, &e) {
		return e.Number
	}
	return 0
}
