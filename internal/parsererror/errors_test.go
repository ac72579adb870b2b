package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	grammar := &GrammarMismatchError{Tag: "61", Line: "garbage", Reason: "too short"}
	assert.Contains(t, grammar.Error(), "61")
	assert.Contains(t, grammar.Error(), "too short")

	missing := &MissingRequiredFieldError{Field: "opening balance (:60F:)"}
	assert.Contains(t, missing.Error(), "opening balance")

	mismatch := &BalanceMismatchError{Declared: "C 950.00", Computed: "C 900.00"}
	assert.Contains(t, mismatch.Error(), "950.00")
	assert.Contains(t, mismatch.Error(), "900.00")

	unknown := &UnknownMessageTypeError{Root: "Stmt"}
	assert.NotContains(t, unknown.Error(), "namespace")
	unknown.Namespace = "urn:example"
	assert.Contains(t, unknown.Error(), "urn:example")
}

func TestDocumentMappingErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("not a number")
	err := &DocumentMappingError{Type: "camt.053", Parameter: "amount", Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), "camt.053")
	assert.Contains(t, err.Error(), "amount")
	assert.ErrorIs(t, err, cause)

	var mapping *DocumentMappingError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &mapping))
}
