package service

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrUnauthenticated    = errors.New("authentication credentials were not provided or are invalid")
	ErrForbidden          = errors.New("you do not have permission to perform this action")
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
)

// Error pairs a sentinel kind with a client-facing message
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func notFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }
func conflict(msg string) error { return &Error{Kind: ErrConflict, Msg: msg} }

// ValidationError reports invalid input. Fields is set when the failure
// came from DTO validation and maps field names to messages.
type ValidationError struct {
	Msg    string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "invalid input"
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func fieldError(field, msg string) *ValidationError {
	return &ValidationError{Msg: field + ": " + msg, Fields: map[string]string{field: msg}}
}

// validate runs a DTO's Validate method and converts ozzo errors
func validate(v validation.Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if errors.As(err, &errs) {
		fields := make(map[string]string, len(errs))
		for name, fe := range errs {
			fields[name] = fe.Error()
		}
		return &ValidationError{Msg: errs.Error(), Fields: fields}
	}
	return &ValidationError{Msg: err.Error()}
}
