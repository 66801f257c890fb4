package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetPayRate is the flat take-home fraction applied to gross salary
// after statutory deductions.
var NetPayRate = decimal.NewFromFloat(0.90)

type Employee struct {
	ID                string          `json:"id"`
	Name              string          `json:"name" validate:"required"`
	Email             string          `json:"email"`
	MobileMoneyNumber string          `json:"mobileMoneyNumber"`
	BasicSalary       decimal.Decimal `json:"basicSalary"`
	Role              string          `json:"role"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// NetPay is the amount disbursed for one month of the basic salary.
func (e Employee) NetPay() decimal.Decimal {
	return e.BasicSalary.Mul(NetPayRate)
}

type CreateEmployeeRequest struct {
	Name              string          `json:"name" validate:"required"`
	Email             string          `json:"email"`
	MobileMoneyNumber string          `json:"mobileMoneyNumber" validate:"omitempty,ghmsisdn"`
	BasicSalary       decimal.Decimal `json:"basicSalary"`
	Role              string          `json:"role"`
}

// PayableEmployee is the payroll view of an employee for one period:
// net pay after flat deductions plus whether a counted payment already
// exists in that period.
type PayableEmployee struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	MobileMoneyNumber string          `json:"mobileMoneyNumber"`
	BasicSalary       decimal.Decimal `json:"basicSalary"`
	NetPay            decimal.Decimal `json:"netPay"`
	IsPaid            bool            `json:"isPaid"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	PaidDate          *time.Time      `json:"paidDate"`
	PaidReason        string          `json:"paidReason,omitempty"`
}
