package securite

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("Not found")
	ErrConstraintViolation   = errors.New("Constraint violation")
	ErrOperationNotPermitted = errors.New("Operation not permitted")

	// ErrIllegalArgument is returned by the mappers when called without a source.
	ErrIllegalArgument = errors.New("Illegal argument")
)

type ValidationErr struct {
	message string
}

func NewValidationErrf(format string, a ...any) ValidationErr {
	return ValidationErr{
		message: fmt.Sprintf(format, a...),
	}
}

func (v ValidationErr) Error() string {
	return v.message
}
