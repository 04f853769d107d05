package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report offending fields by their JSON name so callers can map them to form inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return phoneRegex.MatchString(value)
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// Check validates s and converts rule violations into an *Error. Any other
// failure (for instance a nil or non-struct argument) is returned unchanged.
func (v *Validator) Check(s interface{}) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	errs := v.ValidationErrors(err)
	if len(errs) == 0 {
		return err
	}
	out := &Error{Fields: make(map[string]string, len(errs))}
	for _, fe := range errs {
		out.Fields[fieldPath(fe)] = fe.Tag()
	}
	return out
}

// fieldPath drops the root struct name from the namespace:
// "CreateRequest.metrics[0].label" becomes "metrics[0].label".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}
