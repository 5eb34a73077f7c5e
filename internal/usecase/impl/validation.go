package impl

import (
	"reflect"
	"strings"

	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// validate is shared by every service; validator.Validate caches struct metadata and is safe for concurrent use.
var validate = newValidator() //nolint:gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// validateStruct runs the validate tags of input and reports failures keyed by JSON field name.
func validateStruct(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fields := domainerrors.FieldErrors{}
	for _, fe := range fieldErrs {
		fields[fe.Field()] = describeFieldError(fe)
	}

	return domainerrors.NewValidationError(fields)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " characters"
	case "max":
		return "must have at most " + fe.Param() + " characters"
	case "alphanum":
		return "must contain only letters and digits"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
