package models

import (
	"github.com/shopspring/decimal"
)

const (
	OutcomeStatusSuccess = "success"
	OutcomeStatusFailed  = "failed"

	// Per-item messages surfaced to the payroll operator. Frontends match
	// on these strings, do not reword them.
	MsgMissingMobileNumber = "Missing Mobile Money Number"
	MsgInvalidPhoneFormat  = "Invalid phone number format"
	MsgInvalidAmount       = "Invalid payment amount"
	MsgPaymentQueued       = "Payment queued successfully"
)

// PaymentOutcome is the per-item result of a batch run. Failures are
// data here, not errors: one bad item never aborts the batch.
type PaymentOutcome struct {
	EmployeeID  string          `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	ReferenceID string          `json:"referenceId,omitempty"`
	Message     string          `json:"message"`
}

func (o PaymentOutcome) Succeeded() bool {
	return o.Status == OutcomeStatusSuccess
}

type BatchSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type BatchResult struct {
	Outcomes []PaymentOutcome `json:"data"`
	Summary  BatchSummary     `json:"summary"`
}

func NewBatchResult(outcomes []PaymentOutcome) BatchResult {
	summary := BatchSummary{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Succeeded() {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}
	return BatchResult{Outcomes: outcomes, Summary: summary}
}
