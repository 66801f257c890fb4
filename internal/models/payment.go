package models

import (
	"github.com/shopspring/decimal"
)

// SubmitPayrollRequest is the body of the pay endpoint. The approval
// password gates every disbursement run, it is never stored.
type SubmitPayrollRequest struct {
	ApprovalPassword string           `json:"password" validate:"required"`
	Payments         []PaymentRequest `json:"payments" validate:"required,min=1,dive"`
}

type PaymentRequest struct {
	EmployeeID string          `json:"userId" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
}

// PaymentInstruction is a PaymentRequest enriched with the payee's
// mobile money number, ready for the batch processor.
type PaymentInstruction struct {
	EmployeeID        string
	Amount            decimal.Decimal
	Reason            string
	MobileMoneyNumber string
}
