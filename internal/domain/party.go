package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyType distinguishes the two statement sign conventions.
type PartyType string

const (
	// PartyClient accumulates balance as debit minus credit: an invoice
	// increases what the client owes, a receipt reduces it.
	PartyClient PartyType = "client"

	// PartySupplier accumulates balance as credit minus debit: a purchase
	// increases what the business owes the supplier, a payment reduces it.
	PartySupplier PartyType = "supplier"
)

// Delta returns the running-balance contribution of a debit/credit pair
// under this party type's sign convention.
func (t PartyType) Delta(debit, credit decimal.Decimal) decimal.Decimal {
	if t == PartySupplier {
		return credit.Sub(debit)
	}

	return debit.Sub(credit)
}

// Party is a client or supplier account being statemented.
// OpeningBalance is signed: positive means the party owes the business
// (client) or the business owes the party (supplier).
type Party struct {
	ID             string
	Type           PartyType
	Name           string
	Phone          string
	Email          string
	Address        string
	BranchID       string
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NotFoundError returns the sentinel error matching the party type.
func (t PartyType) NotFoundError() error {
	if t == PartySupplier {
		return ErrSupplierNotFound
	}

	return ErrClientNotFound
}
