package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
	}
}

// jsonFieldName reports fields by their JSON name so messages match the payload.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// validationMessage turns the first binding failure into "<field> is required"
// style text. ok is false for errors that are not validation failures.
func validationMessage(err error) (string, bool) {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "", false
	}

	first := errs[0]
	field := first.Field()
	switch first.Tag() {
	case "required", "notblank":
		return field + " is required", true
	case "email":
		return field + " must be a valid email address", true
	default:
		return field + " is invalid", true
	}
}
