package isoparser

import "fmt"

// GenericDocument is the target type for YAML-declared mappings: a plain
// field map keyed by parameter name. Parameters the document never saw are
// absent from the map.
type GenericDocument struct {
	Type   string
	Fields map[string]interface{}

	required []string
}

// NewGenericDocument creates an empty generic document for a type id.
func NewGenericDocument(typeID string, required []string) *GenericDocument {
	return &GenericDocument{
		Type:     typeID,
		Fields:   make(map[string]interface{}),
		required: required,
	}
}

// TypeID returns the mapped message type id.
func (d *GenericDocument) TypeID() string { return d.Type }

// Apply stores the coerced value under the parameter name.
func (d *GenericDocument) Apply(field string, value interface{}) error {
	d.Fields[field] = value
	return nil
}

// Validate checks that every required parameter received a value.
func (d *GenericDocument) Validate() error {
	for _, name := range d.required {
		if _, ok := d.Fields[name]; !ok {
			return fmt.Errorf("%s: required parameter %s is missing", d.Type, name)
		}
	}
	return nil
}

// String returns the string value of a field, or "" when absent or not a
// string.
func (d *GenericDocument) String(field string) string {
	if value, ok := d.Fields[field].(string); ok {
		return value
	}
	return ""
}
