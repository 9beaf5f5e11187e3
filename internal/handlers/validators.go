package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/MLR-5819/FSND-Fyyur/internal/errors"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
	"github.com/MLR-5819/FSND-Fyyur/internal/service"
)

var fieldMessages = map[string]string{
	"required":     "This field is required.",
	"notblank":     "This field is required.",
	"us_state":     "Not a valid choice.",
	"genre":        "Not a valid choice.",
	"url":          "Invalid URL.",
	"max":          "Field is too long.",
	"checkbox":     "Not a valid value.",
	"datetime_any": "Not a valid datetime value.",
	"gt":           "Must be a positive id.",
	"min":          "This field is required.",
}

// RegisterValidators adds the form rules to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"notblank": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
		"us_state": func(fl validator.FieldLevel) bool {
			return models.IsState(fl.Field().String())
		},
		"genre": func(fl validator.FieldLevel) bool {
			return models.IsGenre(fl.Field().String())
		},
		"checkbox": func(fl validator.FieldLevel) bool {
			_, err := models.ParseFlexibleBool(fl.Field().String())
			return err == nil
		},
		"datetime_any": func(fl validator.FieldLevel) bool {
			_, err := service.ParseStartTime(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// bindError converts a binding failure into a ValidationError keyed by form field.
func bindError(err error) *apperrors.ValidationError {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			name := fe.Field()
			if i := strings.IndexByte(name, '['); i >= 0 {
				name = name[:i]
			}
			if _, seen := fields[name]; seen {
				continue
			}
			msg, ok := fieldMessages[fe.Tag()]
			if !ok {
				msg = "Not a valid value."
			}
			fields[name] = msg
		}
		return &apperrors.ValidationError{Fields: fields}
	}

	fields["form"] = "Some values could not be read: " + err.Error()
	return &apperrors.ValidationError{Fields: fields}
}
