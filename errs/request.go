package errs

import (
	"errors"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrValidation       = errors.New("validation failed")
)

// FieldError is a single field-level validation failure, serialized as
// {"field": "message"} in the error envelope.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErr is an ApiErr carrying field-level failures, mapped to 422.
type ValidationErr struct {
	ApiErr
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationErr {
	return &ValidationErr{
		ApiErr: ApiErr{StatusCode: http.StatusUnprocessableEntity, err: ErrValidation},
		Fields: fields,
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func NewMalformedPayloadError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMalformedPayload,
		Details:    "Malformed JSON payload",
		Cause:      cause,
		Field:      "payload",
	}
}
