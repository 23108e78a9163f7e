package schema

import (
	"fmt"
	"reflect"
	"sort"
	"unicode/utf8"
)

// Type defines the contract for field validation.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Validate appends the failures found in value, rooted at key.
	Validate(key string, value any) []error
}

// Schema maps field names of an object to their expected types.
// Fields are required unless wrapped in Optional.
type Schema map[string]Type

func mismatch(key, want string, value any) []error {
	return []error{&ValidationError{Key: key, Reason: "expected " + want, Value: value}}
}

// IntType validates integer values.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(key string, value any) []error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case float64:
		// Accept floats that are whole numbers (from JSON unmarshaling)
		if v == float64(int64(v)) {
			return nil
		}
		return []error{&ValidationError{Key: key, Reason: "expected int, got float (not a whole number)", Value: value}}
	default:
		return mismatch(key, "int", value)
	}
}

// CountType validates non-negative integers such as traversal capacities.
type CountType struct{}

func (t *CountType) Name() string { return "count" }

func (t *CountType) Validate(key string, value any) []error {
	if errs := (&IntType{}).Validate(key, value); len(errs) > 0 {
		return errs
	}
	rv := reflect.ValueOf(value)
	negative := false
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		negative = rv.Int() < 0
	case reflect.Float64:
		negative = rv.Float() < 0
	}
	if negative {
		return []error{&ValidationError{Key: key, Reason: "expected a non-negative int", Value: value}}
	}
	return nil
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(key string, value any) []error {
	if _, ok := value.(bool); !ok {
		return mismatch(key, "bool", value)
	}
	return nil
}

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(key string, value any) []error {
	if _, ok := value.(string); !ok {
		return mismatch(key, "string", value)
	}
	return nil
}

// CharType validates a transition label: a string of at most one rune.
// A single decimal digit is also accepted, since unquoted YAML decodes `0`
// as an integer.
type CharType struct{}

func (t *CharType) Name() string { return "char" }

func (t *CharType) Validate(key string, value any) []error {
	switch v := value.(type) {
	case string:
		if utf8.RuneCountInString(v) > 1 {
			return []error{&ValidationError{Key: key, Reason: fmt.Sprintf("expected a single character, got %q", v), Value: value}}
		}
		return nil
	case int:
		if v >= 0 && v <= 9 {
			return nil
		}
	}
	return mismatch(key, "char", value)
}

// SliceType validates slices of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Validate(key string, value any) []error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return mismatch(key, "slice", value)
	}

	var errs []error
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		errs = append(errs, t.elemType.Validate(fmt.Sprintf("%s[%d]", key, i), elem)...)
	}
	return errs
}

// ObjectType validates a map against a nested Schema.
type ObjectType struct {
	fields Schema
}

func (t *ObjectType) Name() string { return "object" }

func (t *ObjectType) Validate(key string, value any) []error {
	data, ok := value.(map[string]any)
	if !ok {
		return mismatch(key, "object", value)
	}
	return validateFields(key, t.fields, data)
}

// OptionalType allows a field to be absent or null.
type OptionalType struct {
	inner Type
}

func (t *OptionalType) Name() string { return t.inner.Name() + "?" }

func (t *OptionalType) Validate(key string, value any) []error {
	if value == nil {
		return nil
	}
	return t.inner.Validate(key, value)
}

// --- Factory Functions ---

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// Count creates a validator for integers that must not be negative.
func Count() Type { return &CountType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// String creates a string type validator.
func String() Type { return &StringType{} }

// Char creates a transition label validator.
func Char() Type { return &CharType{} }

// Slice creates a slice type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// Object creates a validator for maps with the given fields. Unknown keys are rejected.
func Object(fields Schema) Type {
	return &ObjectType{fields: fields}
}

// Optional makes a field optional.
func Optional(inner Type) Type {
	return &OptionalType{inner: inner}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
