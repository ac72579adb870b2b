package isoparser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finwire/statement-codec/internal/logging"
	"finwire/statement-codec/internal/models"
	"finwire/statement-codec/internal/parsererror"
)

const sampleCamt053 = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt>
    <GrpHdr>
      <MsgId>MSG001</MsgId>
      <CreDtTm>2022-01-03T10:00:00</CreDtTm>
    </GrpHdr>
    <Stmt>
      <Id>STMT001</Id>
      <ElctrncSeqNb>5</ElctrncSeqNb>
      <CreDtTm>2022-01-03T10:00:00</CreDtTm>
      <Acct>
        <Id><IBAN>CH9300762011623852957</IBAN></Id>
        <Ccy>EUR</Ccy>
      </Acct>
      <Bal>
        <Tp><CdOrPrtry><Cd>OPBD</Cd></CdOrPrtry></Tp>
        <Amt Ccy="EUR">1000.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <Dt><Dt>2022-01-01</Dt></Dt>
      </Bal>
      <Ntry>
        <Amt Ccy="EUR">50.25</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <RvslInd>false</RvslInd>
        <Sts>BOOK</Sts>
        <BookgDt><Dt>2022-01-02</Dt></BookgDt>
        <ValDt><Dt>2022-01-02</Dt></ValDt>
        <AcctSvcrRef>SVC1</AcctSvcrRef>
        <NtryDtls>
          <TxDtls>
            <Refs><EndToEndId>E2E-1</EndToEndId></Refs>
            <RmtInf><Ustrd>Invoice 42</Ustrd></RmtInf>
          </TxDtls>
        </NtryDtls>
      </Ntry>
      <Ntry>
        <Amt Ccy="EUR">75.00</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <RvslInd>true</RvslInd>
        <Sts>BOOK</Sts>
        <BookgDt><Dt>2022-01-03</Dt></BookgDt>
        <NtryRef>REF-2</NtryRef>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

const samplePain001 = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.09">
  <CstmrCdtTrfInitn>
    <GrpHdr>
      <MsgId>PAY-001</MsgId>
      <CreDtTm>2022-02-01T08:00:00</CreDtTm>
      <NbOfTxs>2</NbOfTxs>
      <CtrlSum>350.00</CtrlSum>
      <InitgPty><Nm>ACME AG</Nm></InitgPty>
    </GrpHdr>
    <PmtInf>
      <PmtInfId>BATCH-1</PmtInfId>
      <PmtMtd>TRF</PmtMtd>
      <ReqdExctnDt><Dt>2022-02-03</Dt></ReqdExctnDt>
      <Dbtr><Nm>ACME AG</Nm></Dbtr>
      <DbtrAcct><Id><IBAN>CH9300762011623852957</IBAN></Id></DbtrAcct>
      <CdtTrfTxInf>
        <PmtId><EndToEndId>E2E-A</EndToEndId></PmtId>
        <Amt><InstdAmt Ccy="CHF">100.00</InstdAmt></Amt>
        <Cdtr><Nm>Alpha GmbH</Nm></Cdtr>
        <CdtrAcct><Id><IBAN>DE89370400440532013000</IBAN></Id></CdtrAcct>
      </CdtTrfTxInf>
      <CdtTrfTxInf>
        <PmtId><EndToEndId>E2E-B</EndToEndId></PmtId>
        <Amt><InstdAmt Ccy="CHF">250.00</InstdAmt></Amt>
        <Cdtr><Nm>Beta SA</Nm></Cdtr>
        <CdtrAcct><Id><Othr><Id>123456</Id></Othr></Id></CdtrAcct>
      </CdtTrfTxInf>
    </PmtInf>
  </CstmrCdtTrfInitn>
</Document>`

const sampleCamt029 = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.029.001.09">
  <RsltnOfInvstgtn>
    <Assgnmt>
      <Id>ASGN-1</Id>
      <Assgnr><Pty><Nm>Bank A</Nm></Pty></Assgnr>
      <Assgne><Pty><Nm>Bank B</Nm></Pty></Assgne>
      <CreDtTm>2022-03-01T09:00:00</CreDtTm>
    </Assgnmt>
    <RslvdCase><Id>CASE-7</Id></RslvdCase>
    <Sts><Conf>CNCL</Conf></Sts>
    <CxlDtls>
      <TxInfAndSts>
        <OrgnlInstrId>INSTR-1</OrgnlInstrId>
        <TxCxlSts>ACCR</TxCxlSts>
        <CxlStsRsnInf><Rsn><Cd>CUST</Cd></Rsn></CxlStsRsnInf>
      </TxInfAndSts>
    </CxlDtls>
  </RsltnOfInvstgtn>
</Document>`

func newTestMapper() *Mapper {
	return NewMapper(DefaultRegistry(), logging.NewMockLogger())
}

func TestMapperDecodeStatement(t *testing.T) {
	doc, err := newTestMapper().Decode([]byte(sampleCamt053))
	require.NoError(t, err)

	stmt, ok := doc.(*AccountStatement)
	require.True(t, ok)
	assert.Equal(t, "camt.053", stmt.TypeID())
	assert.Equal(t, "STMT001", stmt.Identification)
	assert.Equal(t, "MSG001", stmt.MessageID)
	assert.Equal(t, int64(5), stmt.SequenceNumber)
	assert.Equal(t, "CH9300762011623852957", stmt.AccountID)
	assert.Equal(t, "EUR", stmt.Currency.String())
	assert.Equal(t, 2022, stmt.CreatedAt.Year())

	require.Len(t, stmt.Balances, 1)
	balance := stmt.Balances[0]
	assert.Equal(t, "OPBD", balance.Code)
	assert.Equal(t, "1000", balance.Amount.String())
	assert.Equal(t, models.Credit, balance.CreditDebit)
	assert.Equal(t, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), balance.Date)

	require.Len(t, stmt.Entries, 2)
	first := stmt.Entries[0]
	assert.Equal(t, "50.25", first.Amount.String())
	assert.Equal(t, models.Debit, first.CreditDebit)
	assert.False(t, first.IsReversal)
	assert.Equal(t, "E2E-1", first.Reference)
	assert.Equal(t, "Invoice 42", first.Info)
	assert.Equal(t, "BOOK", first.Status)

	// a reversed debit is effectively a credit
	second := stmt.Entries[1]
	assert.True(t, second.IsReversal)
	assert.Equal(t, models.Credit, second.CreditDebit)
	assert.Equal(t, "REF-2", second.Reference)
	// value date falls back to the booking date
	assert.Equal(t, second.BookingDate, second.ValueDate)
}

func TestMapperDecodeStatementWithoutNamespace(t *testing.T) {
	stripped := `<Document><BkToCstmrStmt><Stmt><Id>PLAIN-1</Id></Stmt></BkToCstmrStmt></Document>`

	doc, err := newTestMapper().Decode([]byte(stripped))
	require.NoError(t, err)
	stmt := doc.(*AccountStatement)
	assert.Equal(t, "PLAIN-1", stmt.Identification)
}

func TestMapperDecodeCreditTransferInitiation(t *testing.T) {
	doc, err := newTestMapper().Decode([]byte(samplePain001))
	require.NoError(t, err)

	initiation, ok := doc.(*CreditTransferInitiation)
	require.True(t, ok)
	assert.Equal(t, "PAY-001", initiation.MessageID)
	assert.Equal(t, int64(2), initiation.TransactionCount)
	assert.Equal(t, "350", initiation.ControlSum.String())
	assert.Equal(t, "ACME AG", initiation.InitiatingParty)

	require.Len(t, initiation.Instructions, 1)
	instruction := initiation.Instructions[0]
	assert.Equal(t, "BATCH-1", instruction.PaymentID)
	assert.Equal(t, "TRF", instruction.Method)
	assert.Equal(t, time.Date(2022, 2, 3, 0, 0, 0, 0, time.UTC), instruction.ExecutionDate)
	assert.Equal(t, "CH9300762011623852957", instruction.DebtorAccount)

	require.Len(t, instruction.Transfers, 2)
	assert.Equal(t, "E2E-A", instruction.Transfers[0].EndToEndID)
	assert.Equal(t, "100", instruction.Transfers[0].Amount.String())
	assert.Equal(t, "CHF", instruction.Transfers[0].Currency.String())
	assert.Equal(t, "123456", instruction.Transfers[1].CreditorAccount)
}

func TestMapperDecodeInvestigationResolution(t *testing.T) {
	doc, err := newTestMapper().Decode([]byte(sampleCamt029))
	require.NoError(t, err)

	resolution, ok := doc.(*InvestigationResolution)
	require.True(t, ok)
	assert.Equal(t, "ASGN-1", resolution.AssignmentID)
	assert.Equal(t, "Bank A", resolution.Assigner)
	assert.Equal(t, "Bank B", resolution.Assignee)
	assert.Equal(t, "CASE-7", resolution.CaseID)
	assert.Equal(t, "CNCL", resolution.ConfirmationStatus)

	require.Len(t, resolution.Cancellations, 1)
	assert.Equal(t, "INSTR-1", resolution.Cancellations[0].OriginalInstructionID)
	assert.Equal(t, "ACCR", resolution.Cancellations[0].Status)
	assert.Equal(t, "CUST", resolution.Cancellations[0].Reason)
}

func TestMapperUnknownMessageType(t *testing.T) {
	unknown := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.999.001.01"><SomethingElse/></Document>`

	_, err := newTestMapper().Decode([]byte(unknown))
	var unknownType *parsererror.UnknownMessageTypeError
	require.ErrorAs(t, err, &unknownType)
	assert.Contains(t, unknownType.Namespace, "camt.999")
}

func TestMapperRequiredFieldMissing(t *testing.T) {
	noID := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.09">
  <CstmrCdtTrfInitn><GrpHdr><CreDtTm>2022-02-01T08:00:00</CreDtTm></GrpHdr></CstmrCdtTrfInitn>
</Document>`

	_, err := newTestMapper().Decode([]byte(noID))
	var mapping *parsererror.DocumentMappingError
	require.ErrorAs(t, err, &mapping)
	assert.Equal(t, "messageId", mapping.Parameter)
}

func TestMapperCoercionFailure(t *testing.T) {
	badAmount := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt><Stmt><Id>S1</Id>
    <Ntry><Amt Ccy="EUR">not-a-number</Amt><CdtDbtInd>DBIT</CdtDbtInd></Ntry>
  </Stmt></BkToCstmrStmt>
</Document>`

	_, err := newTestMapper().Decode([]byte(badAmount))
	var mapping *parsererror.DocumentMappingError
	require.ErrorAs(t, err, &mapping)
	assert.Equal(t, "entry.amount", mapping.Parameter)
	assert.Equal(t, "not-a-number", mapping.Value)
}

func TestMapperDecodeAs(t *testing.T) {
	doc, err := newTestMapper().DecodeAs("camt.053", []byte(sampleCamt053))
	require.NoError(t, err)
	assert.Equal(t, "camt.053", doc.TypeID())

	_, err = newTestMapper().DecodeAs("pain.001", []byte(sampleCamt053))
	var unknownType *parsererror.UnknownMessageTypeError
	require.ErrorAs(t, err, &unknownType)

	_, err = newTestMapper().DecodeAs("nope", []byte(sampleCamt053))
	assert.Error(t, err)
}

func TestDocumentRecords(t *testing.T) {
	doc, err := newTestMapper().Decode([]byte(sampleCamt053))
	require.NoError(t, err)

	records := DocumentRecords(doc)
	require.Len(t, records, 2)
	assert.Equal(t, "STMT001", records[0].StatementID)
	assert.Equal(t, "DBIT", records[0].CreditDebit)
	assert.Equal(t, "2022-01-02", records[0].BookingDate)
	assert.Equal(t, "CRDT", records[1].CreditDebit)
	assert.True(t, records[1].Reversal)
}

func TestDocumentRecordsNonActivity(t *testing.T) {
	doc, err := newTestMapper().Decode([]byte(sampleCamt029))
	require.NoError(t, err)
	assert.Nil(t, DocumentRecords(doc))
}
