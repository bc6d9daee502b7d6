package errs

import (
	"errors"
	"fmt"
)

var ErrBadRequestAlert = errors.New("bad request")

// BadRequestAlertError is a request contract violation that is reported back to the
// client with the entity it concerns and a stable ErrorKey (for example "idexists").
// The HTTP layer turns it into a 400 response carrying failure alert headers.
type BadRequestAlertError struct {
	Message    string
	EntityName string
	ErrorKey   string
}

func NewBadRequestAlertError(message, entityName, errorKey string) *BadRequestAlertError {
	return &BadRequestAlertError{
		Message:    message,
		EntityName: entityName,
		ErrorKey:   errorKey,
	}
}

func (e *BadRequestAlertError) Error() string {
	return fmt.Sprintf("%s: %s (entity: %s, key: %s)", ErrBadRequestAlert, e.Message, e.EntityName, e.ErrorKey)
}

func (e *BadRequestAlertError) Unwrap() error {
	return ErrBadRequestAlert
}
