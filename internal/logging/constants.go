package logging

// Standardized field names for structured logging. Keeping these in one place
// makes the codec's log output consistent and easy to filter.
const (
	FieldFile      = "file_path"
	FieldTag       = "tag"
	FieldLine      = "line"
	FieldAccount   = "account"
	FieldReference = "reference"
	FieldCount     = "count"
	FieldMessage   = "message_type"
	FieldNamespace = "namespace"
	FieldParameter = "parameter"
	FieldPolicy    = "policy"
)
