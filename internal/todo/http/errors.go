package http

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aussiebroadwan/todolist/internal/todo/domain"
	"github.com/aussiebroadwan/todolist/internal/todo/service"
)

const (
	msgTodoNotFound   = "Todo not found or access denied"
	msgInvalidRequest = "Invalid request body"
)

// clientMessage returns the envelope text for a known service error, or
// ok=false when err must not be shown to the client.
func clientMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		return "Username already exists", true
	case errors.Is(err, service.ErrEmailTaken):
		return "Email already exists", true
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials", true
	case errors.Is(err, service.ErrAccountDeactivated):
		return "Account is deactivated", true
	case errors.Is(err, service.ErrCurrentPasswordWrong):
		return "Current password is incorrect", true
	case errors.Is(err, service.ErrUserNotFound):
		return "User not found", true
	case errors.Is(err, service.ErrTodoNotFound):
		return msgTodoNotFound, true
	case errors.Is(err, service.ErrInvalidInput):
		return capitalize(strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")), true
	case errors.Is(err, domain.ErrInvalidEnum):
		return capitalize(err.Error()), true
	}
	return "", false
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
