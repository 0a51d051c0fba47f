package domain

import "errors"

var (
	// Party errors
	ErrClientNotFound   = errors.New("client not found")
	ErrSupplierNotFound = errors.New("supplier not found")

	// Invoice errors
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrAlreadyPosted         = errors.New("invoice already posted to account")
	ErrCashPurchaseOnAccount = errors.New("cash purchase cannot be posted to supplier account")

	// Voucher errors
	ErrVoucherNotFound = errors.New("payment voucher not found")

	// Return errors
	ErrReturnNotFound = errors.New("return record not found")

	// Employee errors
	ErrDebtNotFound      = errors.New("employee debt not found")
	ErrDeductionNotFound = errors.New("deduction not found")

	// Statement errors
	ErrInvalidPeriod = errors.New("period start is after period end")
	ErrInvalidAmount = errors.New("amount must be positive")
)
