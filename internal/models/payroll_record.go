package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const ExternalIDPrefix = "PAY"

// PayrollRecord is one accepted disbursement. TransactionID is the
// provider reference (a UUID we mint before submitting), ExternalID is
// our own correlation id embedded in the transfer request.
type PayrollRecord struct {
	ID            uint64          `json:"id"`
	TransactionID string          `json:"transactionId"`
	EmployeeID    string          `json:"userId"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	Status        TransferStatus  `json:"status"`
	ExternalID    string          `json:"externalId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PayrollFilterOptions narrows history queries. Month and Year are only
// applied when both are set.
type PayrollFilterOptions struct {
	EmployeeID string `json:"userId" query:"userId"`
	Month      int    `json:"month" query:"month"`
	Year       int    `json:"year" query:"year"`
	Statuses   []TransferStatus
	Limit      uint64
	Offset     uint64
}

func (o PayrollFilterOptions) HasPeriod() bool {
	return o.Month > 0 && o.Year > 0
}

// HistorySource tells API consumers whether results came from durable
// storage or the in-process fallback log.
type HistorySource string

const (
	HistorySourceDatabase HistorySource = "database"
	HistorySourceFallback HistorySource = "fallback"
)
