package isoparser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountActivityApply(t *testing.T) {
	doc := &AccountStatement{}

	require.NoError(t, doc.Apply("identification", "STMT001"))
	require.NoError(t, doc.Apply("sequenceNumber", int64(7)))
	require.NoError(t, doc.Apply("createdAt", time.Date(2022, 1, 3, 10, 0, 0, 0, time.UTC)))

	assert.Equal(t, "STMT001", doc.Identification)
	assert.Equal(t, int64(7), doc.SequenceNumber)

	assert.Error(t, doc.Apply("identification", 42))
	assert.Error(t, doc.Apply("nonexistent", "x"))
}

func TestAccountActivityValidate(t *testing.T) {
	doc := &AccountReport{}
	assert.Error(t, doc.Validate())

	require.NoError(t, doc.Apply("identification", "RPT-1"))
	assert.NoError(t, doc.Validate())
}

func TestInvestigationResolutionValidate(t *testing.T) {
	doc := &InvestigationResolution{}
	assert.Error(t, doc.Validate())

	require.NoError(t, doc.Apply("assignmentId", "ASGN-1"))
	assert.Error(t, doc.Validate())

	require.NoError(t, doc.Apply("caseId", "CASE-1"))
	assert.NoError(t, doc.Validate())
}

func TestInitiationValidate(t *testing.T) {
	transfer := &CreditTransferInitiation{}
	assert.Error(t, transfer.Validate())
	require.NoError(t, transfer.Apply("messageId", "M-1"))
	assert.NoError(t, transfer.Validate())

	mandate := &MandateInitiationRequest{}
	assert.Error(t, mandate.Validate())
	require.NoError(t, mandate.Apply("messageId", "M-2"))
	assert.NoError(t, mandate.Validate())
}

func TestTypeIDs(t *testing.T) {
	tests := []struct {
		doc      Document
		expected string
	}{
		{doc: &AccountStatement{}, expected: "camt.053"},
		{doc: &AccountReport{}, expected: "camt.052"},
		{doc: &DebitCreditNotification{}, expected: "camt.054"},
		{doc: &InvestigationResolution{}, expected: "camt.029"},
		{doc: &InvestigationRejection{}, expected: "camt.031"},
		{doc: &CreditTransferInitiation{}, expected: "pain.001"},
		{doc: &MandateInitiationRequest{}, expected: "pain.009"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.doc.TypeID())
	}
}
