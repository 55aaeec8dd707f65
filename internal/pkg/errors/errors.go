package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalid            = errors.New("invalid")
	ErrConflict           = errors.New("conflict")
	// ErrNotOwner is the collapsed update guard: the caller cannot learn
	// whether the record is missing or simply belongs to someone else.
	ErrNotOwner = errors.New("not found or unauthorized")
	ErrInternal = errors.New("internal")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
