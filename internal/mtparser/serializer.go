package mtparser

import (
	"strings"

	"finwire/statement-codec/internal/models"
)

// Serialize renders a Statement back into its wire form: canonical tag
// order, CRLF line endings, terminal "-". It is the exact inverse of Parse
// for statements the assembler produced.
func Serialize(stmt *models.Statement) string {
	var lines []string

	lines = append(lines, ":20:"+stmt.Header.ReferenceID)
	if stmt.Header.RelatedReference != "" {
		lines = append(lines, ":21:"+stmt.Header.RelatedReference)
	}
	lines = append(lines, ":25:"+stmt.Header.AccountID)

	if stmt.Header.StatementNumber != "" || stmt.Header.SequenceNumber != "" {
		number := stmt.Header.StatementNumber
		if stmt.Header.SequenceNumber != "" {
			number += "/" + stmt.Header.SequenceNumber
		}
		lines = append(lines, ":28C:"+number)
	}

	lines = append(lines, ":"+balanceTag(stmt.Opening.Type)+":"+EncodeBalanceLine(stmt.Opening))

	for _, tx := range stmt.Transactions {
		lines = append(lines, ":61:"+EncodeTransactionLine(tx))
		if tx.Supplementary != "" {
			lines = append(lines, truncate(tx.Supplementary, models.MaxSupplementaryLength))
		}
		if tx.Purpose != "" || tx.Reference.BookingKey != "" {
			segments := EncodePurpose(tx.Purpose, tx.Reference.BookingKey)
			lines = append(lines, ":86:"+segments[0])
			lines = append(lines, segments[1:]...)
		}
	}

	lines = append(lines, ":"+balanceTag(stmt.Closing.Type)+":"+EncodeBalanceLine(stmt.Closing))
	for _, balance := range stmt.AvailableBalances {
		lines = append(lines, ":64:"+EncodeBalanceLine(balance))
	}
	for _, balance := range stmt.ForwardBalances {
		lines = append(lines, ":65:"+EncodeBalanceLine(balance))
	}

	if stmt.Narrative != "" {
		narrativeLines := strings.Split(stmt.Narrative, "\n")
		lines = append(lines, ":86:"+narrativeLines[0])
		lines = append(lines, narrativeLines[1:]...)
	}

	lines = append(lines, "-")
	return strings.Join(lines, "\r\n") + "\r\n"
}
