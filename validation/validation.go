package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Field declares one schema entry: the input key and its validation rules,
// expressed as a validator/v10 tag ("required", "required,max=64", ...).
type Field struct {
	Name  string
	Rules string
}

// Schema enumerates the declared fields in order. Input keys that are not
// declared are ignored, so clients can send extra fields without breaking.
type Schema []Field

// FieldErrors maps a field name to the ordered list of violated-rule messages.
type FieldErrors map[string][]string

// Error carries the full set of field violations for one input payload.
// Callers match it with errors.As to render the per-field detail.
type Error struct {
	Fields FieldErrors
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, strings.Join(e.Fields[name], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ItemSchema declares the item fields. Create and update both validate the
// full schema: an update resubmits every field, there is no partial patch.
func ItemSchema() Schema {
	return Schema{
		{Name: "name", Rules: "required"},
		{Name: "description", Rules: "required"},
	}
}

// Validate checks raw against schema and returns either the normalized
// values (trimmed, declared fields only) or every violation at once.
// No fail-fast across fields: the caller sees all problems in one pass.
func Validate(raw map[string]string, schema Schema) (map[string]string, FieldErrors) {
	normalized := make(map[string]string, len(schema))
	fieldErrors := FieldErrors{}

	for _, field := range schema {
		value := strings.TrimSpace(raw[field.Name])
		if err := validate.Var(value, field.Rules); err != nil {
			var violations validator.ValidationErrors
			if errors.As(err, &violations) {
				for _, violation := range violations {
					fieldErrors[field.Name] = append(fieldErrors[field.Name], ruleMessage(violation))
				}
				continue
			}
			fieldErrors[field.Name] = append(fieldErrors[field.Name], err.Error())
			continue
		}
		normalized[field.Name] = value
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return normalized, nil
}

func ruleMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", violation.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", violation.Param())
	default:
		return fmt.Sprintf("failed rule %q", violation.Tag())
	}
}
