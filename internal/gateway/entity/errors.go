package entity

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUserNotFound = errors.New("User not found")
)

// InputError carries a client-facing validation message.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func InvalidInput(msg string) error {
	return &InputError{Message: msg}
}
