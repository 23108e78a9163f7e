// Package schema validates the structure of persisted automaton documents.
//
// Documents are decoded into generic maps (from JSON or YAML) and checked here
// before they are mapped onto typed records, so that schema mismatches are
// reported with the exact location of every offending field.
//
// Basic usage:
//
//	var raw map[string]any
//	_ = json.Unmarshal(data, &raw)
//
//	if err := schema.Validate(schema.Automaton(), raw); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        fmt.Println(e)
//	    }
//	}
package schema
