package isoparser

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finwire/statement-codec/internal/currency"
)

// CancellationStatus is one per-transaction cancellation outcome inside a
// camt.029 resolution.
type CancellationStatus struct {
	OriginalInstructionID string
	Status                string
	Reason                string
}

// InvestigationResolution is a camt.029 resolution of investigation.
type InvestigationResolution struct {
	AssignmentID       string
	Assigner           string
	Assignee           string
	CreatedAt          time.Time
	ConfirmationStatus string
	CaseID             string
	Cancellations      []CancellationStatus
}

// TypeID identifies the message family.
func (d *InvestigationResolution) TypeID() string { return "camt.029" }

// Apply sets one mapped parameter.
func (d *InvestigationResolution) Apply(field string, value interface{}) error {
	switch field {
	case "assignmentId":
		return setString(&d.AssignmentID, value)
	case "assigner":
		return setString(&d.Assigner, value)
	case "assignee":
		return setString(&d.Assignee, value)
	case "createdAt":
		return setTime(&d.CreatedAt, value)
	case "confirmationStatus":
		return setString(&d.ConfirmationStatus, value)
	case "caseId":
		return setString(&d.CaseID, value)
	}
	return fmt.Errorf("unknown parameter %s", field)
}

// Validate requires the assignment and case identifications that tie a
// resolution back to its investigation.
func (d *InvestigationResolution) Validate() error {
	if d.AssignmentID == "" {
		return fmt.Errorf("resolution requires a non-empty assignment id")
	}
	if d.CaseID == "" {
		return fmt.Errorf("resolution requires a non-empty case id")
	}
	return nil
}

// InvestigationRejection is a camt.031 rejection of investigation.
type InvestigationRejection struct {
	AssignmentID string
	CreatedAt    time.Time
	CaseID       string
	Reason       string
}

// TypeID identifies the message family.
func (d *InvestigationRejection) TypeID() string { return "camt.031" }

// Apply sets one mapped parameter.
func (d *InvestigationRejection) Apply(field string, value interface{}) error {
	switch field {
	case "assignmentId":
		return setString(&d.AssignmentID, value)
	case "createdAt":
		return setTime(&d.CreatedAt, value)
	case "caseId":
		return setString(&d.CaseID, value)
	case "reason":
		return setString(&d.Reason, value)
	}
	return fmt.Errorf("unknown parameter %s", field)
}

// Validate requires the case identification.
func (d *InvestigationRejection) Validate() error {
	if d.CaseID == "" {
		return fmt.Errorf("rejection requires a non-empty case id")
	}
	return nil
}

// CreditTransfer is one credit transfer inside a payment instruction.
type CreditTransfer struct {
	EndToEndID      string
	Amount          decimal.Decimal
	Currency        currency.Code
	Creditor        string
	CreditorAccount string
}

// PaymentInstruction is one PmtInf block of a pain.001 initiation.
type PaymentInstruction struct {
	PaymentID     string
	Method        string
	ExecutionDate time.Time
	Debtor        string
	DebtorAccount string
	Transfers     []CreditTransfer
}

// CreditTransferInitiation is a pain.001 customer credit transfer initiation.
type CreditTransferInitiation struct {
	MessageID        string
	CreatedAt        time.Time
	TransactionCount int64
	ControlSum       decimal.Decimal
	InitiatingParty  string
	Instructions     []PaymentInstruction
}

// TypeID identifies the message family.
func (d *CreditTransferInitiation) TypeID() string { return "pain.001" }

// Apply sets one mapped parameter.
func (d *CreditTransferInitiation) Apply(field string, value interface{}) error {
	switch field {
	case "messageId":
		return setString(&d.MessageID, value)
	case "createdAt":
		return setTime(&d.CreatedAt, value)
	case "transactionCount":
		return setInt(&d.TransactionCount, value)
	case "controlSum":
		return setDecimal(&d.ControlSum, value)
	case "initiatingParty":
		return setString(&d.InitiatingParty, value)
	}
	return fmt.Errorf("unknown parameter %s", field)
}

// Validate requires the group header message id.
func (d *CreditTransferInitiation) Validate() error {
	if d.MessageID == "" {
		return fmt.Errorf("credit transfer initiation requires a non-empty message id")
	}
	return nil
}

// MandateInitiationRequest is a pain.009 mandate initiation request.
type MandateInitiationRequest struct {
	MessageID           string
	CreatedAt           time.Time
	MandateID           string
	Debtor              string
	Creditor            string
	FirstCollectionDate time.Time
}

// TypeID identifies the message family.
func (d *MandateInitiationRequest) TypeID() string { return "pain.009" }

// Apply sets one mapped parameter.
func (d *MandateInitiationRequest) Apply(field string, value interface{}) error {
	switch field {
	case "messageId":
		return setString(&d.MessageID, value)
	case "createdAt":
		return setTime(&d.CreatedAt, value)
	case "mandateId":
		return setString(&d.MandateID, value)
	case "debtor":
		return setString(&d.Debtor, value)
	case "creditor":
		return setString(&d.Creditor, value)
	case "firstCollectionDate":
		return setTime(&d.FirstCollectionDate, value)
	}
	return fmt.Errorf("unknown parameter %s", field)
}

// Validate requires the group header message id.
func (d *MandateInitiationRequest) Validate() error {
	if d.MessageID == "" {
		return fmt.Errorf("mandate initiation requires a non-empty message id")
	}
	return nil
}

func setString(dst *string, value interface{}) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	*dst = v
	return nil
}

func setInt(dst *int64, value interface{}) error {
	v, ok := value.(int64)
	if !ok {
		return fmt.Errorf("expected int, got %T", value)
	}
	*dst = v
	return nil
}

func setDecimal(dst *decimal.Decimal, value interface{}) error {
	v, ok := value.(decimal.Decimal)
	if !ok {
		return fmt.Errorf("expected decimal, got %T", value)
	}
	*dst = v
	return nil
}

func setTime(dst *time.Time, value interface{}) error {
	v, ok := value.(time.Time)
	if !ok {
		return fmt.Errorf("expected date, got %T", value)
	}
	*dst = v
	return nil
}

func setCurrency(dst *currency.Code, value interface{}) error {
	v, ok := value.(currency.Code)
	if !ok {
		return fmt.Errorf("expected currency code, got %T", value)
	}
	*dst = v
	return nil
}
