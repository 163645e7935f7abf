package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	ut "github.com/go-playground/universal-translator"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidInput    = errors.New("invalid input")
)

// FieldError reports the first rule a form field broke. It matches
// ErrInvalidInput with errors.Is.
type FieldError struct {
	Field string
	Tag   string
	Param string

	fe validator.FieldError
}

func newFieldError(fe validator.FieldError) *FieldError {
	return &FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param(), fe: fe}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, formatValidationError(e.Tag, e.Param))
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Localize renders the error with a translator that had the validator's
// default messages registered. Without one it falls back to Error.
func (e *FieldError) Localize(trans ut.Translator) string {
	if trans == nil || e.fe == nil {
		return e.Error()
	}
	return e.fe.Translate(trans)
}

func formatValidationError(tag, param string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must have a minimum of %s characters", param)
	case "max":
		return fmt.Sprintf("must have a maximum of %s characters", param)
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", param)
	case "eqfield":
		return fmt.Sprintf("must match %s", param)
	case "gtefield":
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "oneof":
		return fmt.Sprintf("must be one of: %s", param)
	case "number", "numeric":
		return "must be a number"
	default:
		return fmt.Sprintf("failed validation: %s", tag)
	}
}
