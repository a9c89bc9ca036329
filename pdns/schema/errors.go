package schema

import (
	"fmt"
	"strings"
)

// FieldError describes a single shape violation.
type FieldError struct {
	Path  string // e.g. @.host or @[0].zones_url
	Rule  string // violated rule, human readable
	Value any
}

func (e FieldError) String() string {
	return "Property " + e.Path + ": " + e.Rule
}

// Errors is the list of all shape violations found in one value.
type Errors []FieldError

// Error implements error. Each violation is rendered on its own line.
func (e Errors) Error() string {
	lines := make([]string, len(e))
	for i, fe := range e {
		lines[i] = fe.String()
	}

	return strings.Join(lines, "\n")
}

// Paths returns the paths of all violations in order.
func (e Errors) Paths() []string {
	paths := make([]string, len(e))
	for i, fe := range e {
		paths[i] = fe.Path
	}

	return paths
}

// rule translates a validator tag into the wording used in diagnostics.
func rule(tag, param string, isString bool) string {
	switch tag {
	case "required":
		return "is missing and not optional"
	case "min":
		if isString {
			return "must be longer than " + param + " elements"
		}

		return "must be greater than or equal to " + param
	case "max":
		if isString {
			return "must be shorter than " + param + " elements"
		}

		return "must be less than or equal to " + param
	case "len":
		return "must have exactly " + param + " elements"
	case "oneof":
		return "must match [" + param + "]"
	default:
		if param == "" {
			return fmt.Sprintf("failed validation rule '%s'", tag)
		}

		return fmt.Sprintf("failed validation rule '%s=%s'", tag, param)
	}
}
