package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrEmptySequence      = errors.New("sequence list is empty")
	ErrNoValidIDs         = errors.New("no valid ids provided")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username or email already exists")
)

// ValidationError carries the user-facing reason an input was rejected.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Msg)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func validationError(err error) error {
	return &ValidationError{Msg: err.Error()}
}

func wrapNotFound(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", action, err)
}
