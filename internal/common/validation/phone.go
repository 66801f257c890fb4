package validation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxTransferAmount is the single-transfer ceiling in GHS.
var MaxTransferAmount = decimal.NewFromInt(100000)

// Ghana mobile money numbers: 10 digits, leading 0, second digit 2, 3 or 5.
var ghanaMsisdnPattern = regexp.MustCompile(`^0[235]\d{8}$`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// SanitizePhone strips all whitespace. It is idempotent: sanitizing an
// already sanitized number returns it unchanged.
func SanitizePhone(phone string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(phone, ""))
}

// IsValidGhanaPhone validates against the sanitized form, so numbers
// with interior spaces still pass.
func IsValidGhanaPhone(phone string) bool {
	return ghanaMsisdnPattern.MatchString(SanitizePhone(phone))
}

// IsValidAmount accepts amounts strictly above zero up to and including
// MaxTransferAmount.
func IsValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.LessThanOrEqual(MaxTransferAmount)
}
