package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError locates one field of a document that does not fit the schema.
type ValidationError struct {
	Key    string // Path into the document, e.g. "matrix[1][2].character"
	Reason string
	Value  any // Offending value; nil when the field is missing or unknown
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return e.Key + ": " + e.Reason
	}
	return fmt.Sprintf("%s: %s (got %T)", e.Key, e.Reason, e.Value)
}

// AggregateError collects every ValidationError found in one document,
// in field order.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	parts := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d schema violations: %s", len(e.Errors), strings.Join(parts, "; "))
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors extracts the field failures carried anywhere in err's chain,
// so callers can inspect errors that decoders wrapped with context.
// It returns nil when err holds no schema failure.
func ValidationErrors(err error) []*ValidationError {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		out := make([]*ValidationError, 0, len(aggr.Errors))
		for _, e := range aggr.Errors {
			var verr *ValidationError
			if errors.As(e, &verr) {
				out = append(out, verr)
			}
		}
		return out
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return []*ValidationError{verr}
	}
	return nil
}
