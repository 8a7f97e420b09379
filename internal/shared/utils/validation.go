package utils

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-catalog/internal/shared/apperr"
)

// NotNilUUID rejects uuid.Nil. validation.Required treats the 16-byte array
// as non-empty, so it cannot be used for ids.
var NotNilUUID = validation.By(func(value any) error {
	switch v := value.(type) {
	case uuid.UUID:
		if v == uuid.Nil {
			return errors.New("must be a valid id")
		}
	case *uuid.UUID:
		if v != nil && *v == uuid.Nil {
			return errors.New("must be a valid id")
		}
	}
	return nil
})

// ValidationFailed converts an ozzo-validation result into an InvalidInput error.
func ValidationFailed(err error) error {
	if err == nil {
		return nil
	}
	return &apperr.Error{
		Kind:    apperr.KindInvalidInput,
		Code:    "VALIDATION_FAILED",
		Message: err.Error(),
		Err:     err,
	}
}
