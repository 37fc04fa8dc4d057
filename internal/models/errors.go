package models

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by services and repositories. Controllers map these
// to HTTP status codes with errors.Is.
var (
	// ErrValidation indicates a business rule was violated.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAccessDenied indicates the caller lacks ownership or role.
	ErrAccessDenied = errors.New("access denied")
	// ErrDuplicate indicates a uniqueness rule was violated.
	ErrDuplicate = errors.New("already exists")
	// ErrStorage wraps lower-layer persistence failures.
	ErrStorage = errors.New("storage failure")
)

func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundError(resource string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, resource, id)
}

func AccessDeniedError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrAccessDenied, fmt.Sprintf(format, args...))
}

func DuplicateError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDuplicate, fmt.Sprintf(format, args...))
}

func StorageError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
