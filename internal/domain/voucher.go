package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherKind distinguishes client receipts from supplier disbursements.
type VoucherKind string

const (
	VoucherReceipt      VoucherKind = "receipt"
	VoucherDisbursement VoucherKind = "disbursement"
)

// PaymentVoucher records money received from a client or paid to a supplier.
type PaymentVoucher struct {
	ID          string
	Kind        VoucherKind
	Number      string
	PartyID     string
	Amount      decimal.Decimal
	PaymentDate time.Time
	Note        string
	CreatedAt   time.Time
}
