package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators makes gin's validator report json field names.
// Bodies are only checked for shape: required fields and their types.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
		}
	})
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// -----------------------------------------------------------------------------

// ValidationError represents a single rejected field
type ValidationError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationErrors is a collection of rejected fields
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Rule))
	}
	return strings.Join(messages, "; ")
}

// describeBinding flattens a binding error for logs. Decode errors are
// returned as they are.
func describeBinding(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out.Error()
}
