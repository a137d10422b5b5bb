package domain

import "errors"

// User-facing, recoverable failures. Callers match them with errors.Is.
var (
	ErrAlreadyExists = errors.New("habit already exists")
	ErrNotFound      = errors.New("habit not found")
	ErrAlreadyLogged = errors.New("habit already logged for this date")
	ErrInvalidChoice = errors.New("invalid menu choice")
	ErrEmptyStore    = errors.New("no habits tracked")
	ErrInvalidName   = errors.New("habit name is empty")
)

// IsRecoverable reports whether err is one of the user-facing errors above.
func IsRecoverable(err error) bool {
	switch {
	case errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrAlreadyLogged),
		errors.Is(err, ErrInvalidChoice),
		errors.Is(err, ErrEmptyStore),
		errors.Is(err, ErrInvalidName):
		return true
	default:
		return false
	}
}
