package service

import (
	"errors"
	"fmt"

	"kushfilms/internal/microservices/http-api/repository"
)

// Error kinds. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Error carries a client-facing message alongside its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func invalidInput(format string, args ...any) error {
	return newError(ErrInvalidInput, format, args...)
}

func notFound(what string) error {
	return newError(ErrNotFound, "%s not found", what)
}

// lookupErr turns a repository miss into a NotFound for what, passing other errors through.
func lookupErr(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(what)
	}
	return err
}
