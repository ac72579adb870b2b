package isoparser

import (
	"time"

	"github.com/shopspring/decimal"

	"finwire/statement-codec/internal/currency"
)

// DefaultRegistry returns the built-in registrations for the supported CAMT
// and PAIN message families. Callers may add their own registrations before
// handing the registry to a Mapper.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	activityFields := []FieldMapping{
		{Name: "identification", Paths: []string{"Id"}, Kind: KindString, Required: true},
		{Name: "messageId", Paths: []string{"../GrpHdr/MsgId"}, Kind: KindString},
		{Name: "createdAt", Paths: []string{"CreDtTm", "../GrpHdr/CreDtTm"}, Kind: KindDateTime},
		{Name: "sequenceNumber", Paths: []string{"ElctrncSeqNb", "LglSeqNb"}, Kind: KindInt},
		{Name: "accountId", Paths: []string{"Acct/Id/IBAN", "Acct/Id/Othr/Id"}, Kind: KindString},
		{Name: "currency", Paths: []string{"Acct/Ccy"}, Kind: KindCurrency},
	}

	r.MustRegister(Registration{
		TypeID: "camt.053",
		Root:   "Stmt",
		Fields: activityFields,
		New:    func() Document { return &AccountStatement{} },
		Post:   activityPost,
	})
	r.MustRegister(Registration{
		TypeID: "camt.052",
		Root:   "Rpt",
		Fields: activityFields,
		New:    func() Document { return &AccountReport{} },
		Post:   activityPost,
	})
	r.MustRegister(Registration{
		TypeID: "camt.054",
		Root:   "Ntfctn",
		Fields: activityFields,
		New:    func() Document { return &DebitCreditNotification{} },
		Post:   activityPost,
	})

	r.MustRegister(Registration{
		TypeID: "camt.029",
		Root:   "RsltnOfInvstgtn",
		Fields: []FieldMapping{
			{Name: "assignmentId", Paths: []string{"Assgnmt/Id"}, Kind: KindString, Required: true},
			{Name: "createdAt", Paths: []string{"Assgnmt/CreDtTm"}, Kind: KindDateTime},
			{Name: "assigner", Paths: []string{
				"Assgnmt/Assgnr/Pty/Nm",
				"Assgnmt/Assgnr/Agt/FinInstnId/BICFI",
				"Assgnmt/Assgnr/Agt/FinInstnId/BIC",
			}, Kind: KindString},
			{Name: "assignee", Paths: []string{
				"Assgnmt/Assgne/Pty/Nm",
				"Assgnmt/Assgne/Agt/FinInstnId/BICFI",
				"Assgnmt/Assgne/Agt/FinInstnId/BIC",
			}, Kind: KindString},
			{Name: "confirmationStatus", Paths: []string{"Sts/Conf"}, Kind: KindString},
			{Name: "caseId", Paths: []string{"RslvdCase/Id", "Case/Id"}, Kind: KindString, Required: true},
		},
		New:  func() Document { return &InvestigationResolution{} },
		Post: resolutionPost,
	})

	r.MustRegister(Registration{
		TypeID: "camt.031",
		Root:   "RjctInvstgtn",
		Fields: []FieldMapping{
			{Name: "assignmentId", Paths: []string{"Assgnmt/Id"}, Kind: KindString, Required: true},
			{Name: "createdAt", Paths: []string{"Assgnmt/CreDtTm"}, Kind: KindDateTime},
			{Name: "caseId", Paths: []string{"Case/Id"}, Kind: KindString, Required: true},
			{Name: "reason", Paths: []string{"Justfn/RjctnRsn", "RjctnRsn"}, Kind: KindString},
		},
		New: func() Document { return &InvestigationRejection{} },
	})

	r.MustRegister(Registration{
		TypeID: "pain.001",
		Root:   "CstmrCdtTrfInitn",
		Fields: []FieldMapping{
			{Name: "messageId", Paths: []string{"GrpHdr/MsgId"}, Kind: KindString, Required: true},
			{Name: "createdAt", Paths: []string{"GrpHdr/CreDtTm"}, Kind: KindDateTime},
			{Name: "transactionCount", Paths: []string{"GrpHdr/NbOfTxs"}, Kind: KindInt},
			{Name: "controlSum", Paths: []string{"GrpHdr/CtrlSum"}, Kind: KindDecimal},
			{Name: "initiatingParty", Paths: []string{"GrpHdr/InitgPty/Nm"}, Kind: KindString},
		},
		New:  func() Document { return &CreditTransferInitiation{} },
		Post: initiationPost,
	})

	r.MustRegister(Registration{
		TypeID: "pain.009",
		Root:   "MndtInitnReq",
		Fields: []FieldMapping{
			{Name: "messageId", Paths: []string{"GrpHdr/MsgId"}, Kind: KindString, Required: true},
			{Name: "createdAt", Paths: []string{"GrpHdr/CreDtTm"}, Kind: KindDateTime},
			{Name: "mandateId", Paths: []string{"Mndt/MndtId"}, Kind: KindString},
			{Name: "debtor", Paths: []string{"Mndt/Dbtr/Nm"}, Kind: KindString},
			{Name: "creditor", Paths: []string{"Mndt/Cdtr/Nm"}, Kind: KindString},
			{Name: "firstCollectionDate", Paths: []string{"Mndt/Ocrncs/FrstColltnDt", "Mndt/FrstColltnDt"}, Kind: KindDate},
		},
		New: func() Document { return &MandateInitiationRequest{} },
	})

	return r
}

// resolutionPost collects the per-transaction cancellation outcomes of a
// camt.029 resolution.
func resolutionPost(doc Document, ctx *Context) error {
	target, ok := doc.(*InvestigationResolution)
	if !ok {
		return nil
	}
	for _, node := range ctx.Nodes("CxlDtls/TxInfAndSts") {
		sub := ctx.Sub(node)
		var status CancellationStatus
		status.OriginalInstructionID, _ = sub.First("OrgnlInstrId", "OrgnlEndToEndId", "OrgnlTxId")
		status.Status, _ = sub.String("TxCxlSts")
		status.Reason, _ = sub.First("CxlStsRsnInf/Rsn/Cd", "CxlStsRsnInf/Rsn/Prtry", "CxlStsRsnInf/AddtlInf")
		target.Cancellations = append(target.Cancellations, status)
	}
	return nil
}

// initiationPost maps the PmtInf blocks of a pain.001 with their nested
// credit transfers.
func initiationPost(doc Document, ctx *Context) error {
	target, ok := doc.(*CreditTransferInitiation)
	if !ok {
		return nil
	}
	for _, node := range ctx.Nodes("PmtInf") {
		sub := ctx.Sub(node)
		instruction, err := mapInstruction(target.TypeID(), sub)
		if err != nil {
			return err
		}
		target.Instructions = append(target.Instructions, instruction)
	}
	return nil
}

func mapInstruction(typeID string, ctx *Context) (PaymentInstruction, error) {
	var instruction PaymentInstruction
	instruction.PaymentID, _ = ctx.String("PmtInfId")
	instruction.Method, _ = ctx.String("PmtMtd")
	instruction.Debtor, _ = ctx.String("Dbtr/Nm")
	instruction.DebtorAccount, _ = ctx.First("DbtrAcct/Id/IBAN", "DbtrAcct/Id/Othr/Id")

	if raw, ok := ctx.First("ReqdExctnDt/Dt", "ReqdExctnDt"); ok {
		date, err := Coerce(KindDate, raw)
		if err != nil {
			return instruction, mappingError(typeID, "instruction.executionDate", raw, err)
		}
		instruction.ExecutionDate = date.(time.Time)
	}

	for _, node := range ctx.Nodes("CdtTrfTxInf") {
		sub := ctx.Sub(node)
		transfer, err := mapTransfer(typeID, sub)
		if err != nil {
			return instruction, err
		}
		instruction.Transfers = append(instruction.Transfers, transfer)
	}
	return instruction, nil
}

func mapTransfer(typeID string, ctx *Context) (CreditTransfer, error) {
	var transfer CreditTransfer
	transfer.EndToEndID, _ = ctx.First("PmtId/EndToEndId", "PmtId/InstrId")
	transfer.Creditor, _ = ctx.String("Cdtr/Nm")
	transfer.CreditorAccount, _ = ctx.First("CdtrAcct/Id/IBAN", "CdtrAcct/Id/Othr/Id")

	raw, ok := ctx.String("Amt/InstdAmt")
	if !ok {
		return transfer, mappingError(typeID, "transfer.amount", "", errRequiredMissing)
	}
	amount, err := Coerce(KindDecimal, raw)
	if err != nil {
		return transfer, mappingError(typeID, "transfer.amount", raw, err)
	}
	transfer.Amount = amount.(decimal.Decimal)

	if raw, ok := ctx.String("Amt/InstdAmt/@Ccy"); ok {
		code, err := currency.Parse(raw)
		if err != nil {
			return transfer, mappingError(typeID, "transfer.currency", raw, err)
		}
		transfer.Currency = code
	}
	return transfer, nil
}
