package schema

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks values using validator struct tags. Field paths in diagnostics use
// the JSON names of the fields.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator ready to use.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)

	return &Validator{validate: v}
}

// Struct validates a struct (or pointer to struct) against its validate tags.
func (v *Validator) Struct(value any) error {
	return convert(v.validate.Struct(value))
}

// Var validates a single value, typically a slice, against tag,
// e.g. "len=1,dive" for an array holding exactly one valid element.
func (v *Validator) Var(value any, tag string) error {
	return convert(v.validate.Var(value, tag))
}

// FromJSON converts an encoding/json decode failure into Errors.
// Errors of any other kind are returned unchanged.
func FromJSON(err error) error {
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := "@"
		if typeErr.Field != "" {
			path += "." + typeErr.Field
		}

		return Errors{{
			Path:  path,
			Rule:  "must be " + kindName(typeErr.Type),
			Value: typeErr.Value,
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return Errors{{Path: "@", Rule: "must be valid JSON (" + err.Error() + ")"}}
	}

	return err
}

func convert(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Path:  path(fe.Namespace()),
			Rule:  rule(fe.Tag(), fe.Param(), fe.Kind() == reflect.String),
			Value: fe.Value(),
		})
	}

	return out
}

// path turns a validator namespace ("Config.host", "[0].zones_url", "") into
// the diagnostic form ("@.host", "@[0].zones_url", "@").
func path(namespace string) string {
	if namespace == "" {
		return "@"
	}

	if strings.HasPrefix(namespace, "[") {
		return "@" + namespace
	}

	// drop the struct type name
	if i := strings.IndexAny(namespace, ".["); i >= 0 {
		return "@" + namespace[i:]
	}

	return "@"
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0] //nolint:mnd
	if name == "-" {
		return ""
	}

	if name == "" {
		return fld.Name
	}

	return name
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "valid"
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.String()
	}
}
