package validator

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns field-to-tag pairs for every failed rule, nil when the
// struct is valid.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

// Describe flattens a Validate result into a single stable message for the
// response envelope.
func Describe(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for field, tag := range fields {
		parts = append(parts, field+": "+tag)
	}
	sort.Strings(parts)
	return "Validation failed: " + strings.Join(parts, ", ")
}
