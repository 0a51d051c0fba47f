package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes sales (client side) from purchases (supplier side).
type InvoiceKind string

const (
	InvoiceSale     InvoiceKind = "sale"
	InvoicePurchase InvoiceKind = "purchase"
)

// PaymentMethod of an invoice. Cash invoices settle immediately and never
// appear on a supplier statement.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodDeferred PaymentMethod = "deferred"
)

// Invoice is a sale or purchase document. Only invoices posted to the
// party's account participate in statements; drafts do not.
type Invoice struct {
	ID              string
	Kind            InvoiceKind
	Number          string
	PartyID         string
	BranchID        string
	Date            time.Time
	Total           decimal.Decimal
	Method          PaymentMethod
	PostedToAccount bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OnStatement reports whether the invoice belongs on its party's statement.
// Purchases additionally require the deferred payment method.
func (i *Invoice) OnStatement() bool {
	if !i.PostedToAccount {
		return false
	}

	if i.Kind == InvoicePurchase && i.Method != MethodDeferred {
		return false
	}

	return true
}

// ValidatePost checks whether the invoice can be posted to its party account.
func (i *Invoice) ValidatePost() error {
	if i.PostedToAccount {
		return ErrAlreadyPosted
	}

	if i.Kind == InvoicePurchase && i.Method != MethodDeferred {
		return ErrCashPurchaseOnAccount
	}

	return nil
}
