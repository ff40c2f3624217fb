package dto

import (
	"errors"
	"strings"
)

func required(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(field + " is required")
	}
	return nil
}

// requiredIfSet rejects a partial update that blanks a required field.
func requiredIfSet(value *string, field string) error {
	if value == nil {
		return nil
	}
	return required(*value, field)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
