// Package apperr holds the closed set of recoverable fault kinds. A fault
// of one of these kinds is reported back to the client as an error message
// and the connection survives; any other error ends the session.
package apperr

import "errors"

type Kind string

const (
	UserNotFound      Kind = "UserNotFound"
	IncorrectPassword Kind = "IncorrectPassword"
	EntityNotFound    Kind = "EntityNotFound"
	InvalidData       Kind = "InvalidData"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf reports the fault kind of err, if err belongs to the taxonomy.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return "", false
}
