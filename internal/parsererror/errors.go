// Package parsererror defines the typed error taxonomy shared by the SWIFT
// and ISO 20022 codecs.
package parsererror

import "fmt"

// GrammarMismatchError reports a statement line that fails its positional
// pattern, e.g. a malformed :61: or balance line.
type GrammarMismatchError struct {
	Tag    string
	Line   string
	Reason string
}

func (e *GrammarMismatchError) Error() string {
	return fmt.Sprintf("field %s does not match its grammar: %s (line: %q)", e.Tag, e.Reason, e.Line)
}

// MissingRequiredFieldError reports a statement block that lacks one of the
// hard-mandatory fields: account id, opening balance or closing balance.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("statement is missing required field %s", e.Field)
}

// BalanceMismatchError reports a strict-mode reconciliation failure. It
// carries the declared and the computed balance rendered as strings so the
// error stays independent of the models package.
type BalanceMismatchError struct {
	Declared string
	Computed string
}

func (e *BalanceMismatchError) Error() string {
	return fmt.Sprintf("closing balance mismatch: declared %s, computed %s", e.Declared, e.Computed)
}

// UnknownMessageTypeError reports an XML input whose root element cannot be
// associated with any registered mapping.
type UnknownMessageTypeError struct {
	Root      string
	Namespace string
}

func (e *UnknownMessageTypeError) Error() string {
	if e.Namespace != "" {
		return fmt.Sprintf("no mapping registered for message root %q (namespace %s)", e.Root, e.Namespace)
	}
	return fmt.Sprintf("no mapping registered for message root %q", e.Root)
}

// DocumentMappingError reports a failure while mapping an XML document to a
// typed document, typically a type coercion failure. It carries the offending
// parameter name and the raw string value.
type DocumentMappingError struct {
	Type      string
	Parameter string
	Value     string
	Err       error
}

func (e *DocumentMappingError) Error() string {
	return fmt.Sprintf("%s: failed to map parameter %s from value %q: %v", e.Type, e.Parameter, e.Value, e.Err)
}

func (e *DocumentMappingError) Unwrap() error {
	return e.Err
}
