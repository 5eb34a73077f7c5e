// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator and reports failures as field errors keyed by json name.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by c.Validate.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate runs the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fields := make(domainerrors.FieldErrors, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fieldPath(fe)] = describe(fe)
	}

	return domainerrors.NewValidationError(fields)
}

// fieldPath drops the top-level struct name from the namespace, e.g. riskSettings.maxVolume.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + fe.Param()
	case "gt", "gte", "lt", "lte", "min", "max":
		return "must satisfy " + fe.Tag() + "=" + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}
