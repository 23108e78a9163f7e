package schema

// Validate checks if data conforms to the schema.
// Unknown top-level keys are rejected. Returns an *AggregateError with every
// failure found, in deterministic field order.
func Validate(schema Schema, data map[string]any) error {
	if len(schema) == 0 {
		// No schema = no validation
		return nil
	}

	errs := validateFields("", schema, data)
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func validateFields(prefix string, schema Schema, data map[string]any) []error {
	var errs []error

	for _, fieldName := range sortedKeys(schema) {
		fieldType := schema[fieldName]
		key := join(prefix, fieldName)

		value, exists := data[fieldName]
		if !exists {
			if _, optional := fieldType.(*OptionalType); optional {
				continue
			}
			errs = append(errs, &ValidationError{Key: key, Reason: "required"})
			continue
		}
		errs = append(errs, fieldType.Validate(key, value)...)
	}

	for _, fieldName := range sortedKeys(data) {
		if _, known := schema[fieldName]; !known {
			errs = append(errs, &ValidationError{Key: join(prefix, fieldName), Reason: "unknown field"})
		}
	}

	return errs
}

func join(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
