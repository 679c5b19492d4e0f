// Package validation registers custom binding validators and formats
// validation errors for API responses.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	accessModel "github.com/staffhub/staffhub/internal/access/model"
	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the custom validators on gin's binding engine.
// It is safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn installs the custom validators on v.
func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]validator.Func{
		"notblank":      validators.NotBlank,
		"requeststatus": requestStatus,
		"teamrole":      teamRole,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validator: %w", tag, err)
		}
	}
	return nil
}

func requestStatus(fl validator.FieldLevel) bool {
	return accessModel.Status(fl.Field().String()).Valid()
}

func teamRole(fl validator.FieldLevel) bool {
	return membershipModel.Role(fl.Field().String()).Valid()
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// Describe turns a binding error into a short client-facing message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "requeststatus":
		return fmt.Sprintf("%s must be one of pending, approved, rejected", fe.Field())
	case "teamrole":
		return fmt.Sprintf("%s must be one of admin, user", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
