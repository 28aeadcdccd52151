// Package apierr classifies the failures the field pages show to the operator.
package apierr

import (
	"errors"
	"fmt"
)

// TransportMessage is shown for any failure below the application layer.
const TransportMessage = "Error de conexión. Intente nuevamente."

// ValidationError is raised before any request leaves the client.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var (
	ErrCrewRequired  = &ValidationError{Reason: "Seleccione una brigada antes de guardar"}
	ErrNothingStaged = &ValidationError{Reason: "No hay materiales para guardar"}
	ErrBusy          = &ValidationError{Reason: "Hay una operación en curso"}
)

// BusinessError carries the server's own message, shown verbatim.
type BusinessError struct {
	Status  int
	Code    string
	Message string
}

func (e *BusinessError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

// TransportError wraps network, timeout and decoding failures.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsTransport(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}

func AsBusiness(err error) (*BusinessError, bool) {
	var b *BusinessError
	if errors.As(err, &b) {
		return b, true
	}
	return nil, false
}

// UserMessage is the text to render for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Reason
	}
	if b, ok := AsBusiness(err); ok {
		return b.Message
	}
	return TransportMessage
}
