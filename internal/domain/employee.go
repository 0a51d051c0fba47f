package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeDebt is an amount an employee owes the business.
type EmployeeDebt struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Amount       decimal.Decimal
	Reason       string
	Date         time.Time
	CreatedAt    time.Time
}

// Deduction is an amount withheld from an employee's pay.
type Deduction struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Amount       decimal.Decimal
	Reason       string
	Date         time.Time
	CreatedAt    time.Time
}
