package service

import (
	"errors"
	"fmt"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrEmailTaken           = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountDeactivated   = errors.New("account is deactivated")
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
	ErrUserNotFound         = errors.New("user not found")
	ErrTodoNotFound         = errors.New("todo not found or access denied")

	// ErrInvalidInput is wrapped with a field specific message.
	ErrInvalidInput = errors.New("invalid input")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
