package validators

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	fr_translations "github.com/go-playground/validator/v10/translations/fr"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/models"
)

// FormValidator checks the client's forms against their validate tags
// before anything is sent to the backend.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator builds the validator and registers its English and French
// messages on the bundle's translators.
func NewFormValidator(bundle *i18n.Bundle) (*FormValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateSearchBounds, models.SearchFilter{})

	if bundle != nil {
		if err := en_translations.RegisterDefaultTranslations(v, bundle.Translator(models.LanguageEnglish)); err != nil {
			return nil, fmt.Errorf("register english validation messages: %w", err)
		}
		if err := fr_translations.RegisterDefaultTranslations(v, bundle.Translator(models.LanguageFrench)); err != nil {
			return nil, fmt.Errorf("register french validation messages: %w", err)
		}
	}

	return &FormValidator{validate: v}, nil
}

// Validate checks obj, or only the named fields of obj when fields are given.
// The first broken rule is returned as a *FieldError.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return newFieldError(ve[0])
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// validateSearchBounds rejects ranges whose lower bound exceeds the upper one.
// Bounds that do not parse are left to the field tags.
func validateSearchBounds(sl validator.StructLevel) {
	f := sl.Current().Interface().(models.SearchFilter)

	pairs := []struct {
		min, max         string
		minName, maxName string
	}{
		{f.MinTemp, f.MaxTemp, "MinTemp", "MaxTemp"},
		{f.MinDistance, f.MaxDistance, "MinDistance", "MaxDistance"},
		{f.MinYear, f.MaxYear, "MinYear", "MaxYear"},
	}
	for _, p := range pairs {
		lo, errLo := strconv.ParseFloat(strings.TrimSpace(p.min), 64)
		hi, errHi := strconv.ParseFloat(strings.TrimSpace(p.max), 64)
		if errLo != nil || errHi != nil {
			continue
		}
		if lo > hi {
			sl.ReportError(p.max, p.maxName, p.maxName, "gtefield", p.minName)
		}
	}
}
