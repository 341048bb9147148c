// Package request decodes and validates JSON request bodies. Validation rules
// live in `validate` struct tags and failures come back as
// *entity.ValidationError named after the JSON field.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"highwaymetric/internal/domain/entity"
)

// ErrBodyTooLarge is returned when the body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("request body too large")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// DecodeJSON reads r.Body into dst and validates it.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		var ve *entity.ValidationError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			return fmt.Errorf("%w: %w", ErrBodyTooLarge, maxErr)
		case errors.As(err, &ve):
			return ve
		case errors.As(err, &typeErr):
			return &entity.ValidationError{Field: typeErr.Field, Message: "must be " + typeErr.Type.String()}
		case errors.Is(err, io.EOF):
			return &entity.ValidationError{Field: "body", Message: "is required"}
		default:
			return &entity.ValidationError{Field: "body", Message: "malformed JSON"}
		}
	}
	return Validate(dst)
}

// Validate runs the struct tag rules on v and reports the first failure.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	fe := fieldErrs[0]
	return &entity.ValidationError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return "must not exceed " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "json":
		return "must be valid JSON"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
