package validators

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the clinic tags registered:
// phone, isodate, hhmm.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return IsISODate(fl.Field().String())
		})
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return IsHHMM(fl.Field().String())
		})
		_ = v.RegisterValidation("clinicemail", func(fl validator.FieldLevel) bool {
			return IsEmail(fl.Field().String())
		})

		instance = v
	})
	return instance
}

// Struct validates s and converts tag failures into field errors.
func Struct(s any) *httperr.ValidationError {
	ve := &httperr.ValidationError{}

	err := Validator().Struct(s)
	if err == nil {
		return ve
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Add("_", err.Error())
		return ve
	}

	for _, fe := range fieldErrs {
		ve.Add(fieldPath(fe), message(fe))
	}
	return ve
}

// fieldPath drops the root struct name: "treatments[0].type".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "phone":
		return "must be a valid phone number"
	case "clinicemail", "email":
		return "must be a valid email address"
	case "isodate":
		return "must be a date (yyyy-mm-dd)"
	case "hhmm":
		return "must be a time (HH:MM)"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}
