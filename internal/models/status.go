package models

import "strings"

type TransferStatus string

func (m TransferStatus) String() string {
	return string(m)
}

const (
	TransferStatusPending TransferStatus = "PENDING"
	TransferStatusSuccess TransferStatus = "SUCCESS"
	TransferStatusFailed  TransferStatus = "FAILED"
)

var (
	// MapTransferStatus is a map of transfer status with its title for display purpose
	MapTransferStatus = map[TransferStatus]string{
		TransferStatusPending: "Pending",
		TransferStatusSuccess: "Success",
		TransferStatusFailed:  "Failed",
	}
)

// NormalizeTransferStatus maps the status strings providers put in
// callbacks onto our set. Unknown values pass through uppercased so
// they stay visible in the stored record.
func NormalizeTransferStatus(s string) TransferStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SUCCESS", "SUCCESSFUL":
		return TransferStatusSuccess
	case "FAILED", "FAILURE", "REJECTED":
		return TransferStatusFailed
	case "PENDING":
		return TransferStatusPending
	default:
		return TransferStatus(strings.ToUpper(strings.TrimSpace(s)))
	}
}

// Counted reports whether the status represents money already committed
// to the payee. A pending transfer counts: the provider has accepted it
// and it must not be disbursed twice.
func (m TransferStatus) Counted() bool {
	return m == TransferStatusPending || m == TransferStatusSuccess
}
