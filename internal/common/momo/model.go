package momo

import (
	"github.com/shopspring/decimal"

	"github.com/vpena/go-payroll-disbursement/internal/models"
)

// TransferIn is one disbursement instruction, already validated and
// sanitized by the caller.
type TransferIn struct {
	Amount      decimal.Decimal
	PayeeNumber string
	ExternalID  string
	PayeeNote   string
}

// TransferOut is the outcome of a transfer attempt. A failed attempt is
// reported here, never as a Go error: the batch processor treats
// failures as data.
type TransferOut struct {
	Status      models.TransferStatus
	ReferenceID string
	Message     string
	Simulated   bool
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type transferParty struct {
	PartyIDType string `json:"partyIdType"`
	PartyID     string `json:"partyId"`
}

type transferRequest struct {
	Amount       string        `json:"amount"`
	Currency     string        `json:"currency"`
	ExternalID   string        `json:"externalId"`
	Payee        transferParty `json:"payee"`
	PayerMessage string        `json:"payerMessage"`
	PayeeNote    string        `json:"payeeNote"`
}
