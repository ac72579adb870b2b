package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finwire/statement-codec/internal/logging"
	"finwire/statement-codec/internal/models"
)

func sampleRecords() []models.TransactionRecord {
	return []models.TransactionRecord{
		{
			StatementID: "STMT001",
			AccountID:   "CH9300762011623852957",
			BookingDate: "2022-01-02",
			ValueDate:   "2022-01-02",
			Amount:      decimal.RequireFromString("50.25"),
			Currency:    "EUR",
			CreditDebit: "DBIT",
			Reference:   "E2E-1",
			Description: "Invoice 42",
		},
		{
			StatementID: "STMT001",
			Amount:      decimal.RequireFromString("200"),
			Currency:    "EUR",
			CreditDebit: "CRDT",
			Reversal:    true,
		},
	}
}

func TestWriteRecordsToCSV(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out", "records.csv")

	err := WriteRecordsToCSV(sampleRecords(), file, logging.NewMockLogger())
	require.NoError(t, err)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	content := string(data)

	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "StatementID")
	assert.Contains(t, lines[1], "DBIT")
	assert.Contains(t, lines[1], "50.25")
	assert.Contains(t, lines[2], "CRDT")
}

func TestWriteRecordsToCSVNilRecords(t *testing.T) {
	err := WriteRecordsToCSV(nil, filepath.Join(t.TempDir(), "x.csv"), logging.NewMockLogger())
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, WriteRecordsToCSV(sampleRecords(), file, logging.NewMockLogger()))

	records, err := ReadRecordsFromCSV(file, logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "STMT001", records[0].StatementID)
	assert.Equal(t, "DBIT", records[0].CreditDebit)
	assert.True(t, records[1].Reversal)
}

func TestSetDelimiter(t *testing.T) {
	original := Delimiter
	defer SetDelimiter(original)

	SetDelimiter(';')
	file := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, WriteRecordsToCSV(sampleRecords(), file, logging.NewMockLogger()))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "StatementID;AccountID")
}
