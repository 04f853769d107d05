package validation

import (
	"errors"
	"sort"
	"strings"
)

// Error is returned when a payload does not conform to its schema. Fields maps
// each offending field path to the rule it broke.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	names := e.FieldNames()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" ("+e.Fields[name]+")")
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// FieldNames returns the offending fields in sorted order.
func (e *Error) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewFieldError builds an Error for a single field.
func NewFieldError(field, rule string) *Error {
	return &Error{Fields: map[string]string{field: rule}}
}

// AsError reports whether err is, or wraps, a validation *Error.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
