package ledger

import (
	"errors"
	"fmt"
)

// ErrAlreadyPaid is returned when paying an invoice that has already
// moved to PAID. The transition is PENDING→PAID only.
var ErrAlreadyPaid = errors.New("invoice already paid")

// ValidationError reports a malformed or missing field on a request.
// The transport maps it to a client error.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a record that does not exist. The transport
// maps it to 404.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}
