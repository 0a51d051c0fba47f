package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind of a normalized ledger row.
type EntryKind string

const (
	EntryInvoice EntryKind = "invoice"
	EntryPayment EntryKind = "payment"
)

// LedgerEntry is one normalized statement row. Exactly one of Debit/Credit
// is non-zero by construction. Balance is populated by Accumulate.
type LedgerEntry struct {
	ID          string
	Date        time.Time
	Kind        EntryKind
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Reference   string
	Balance     decimal.Decimal
}

// StatementTotals aggregates a fully accumulated ledger.
type StatementTotals struct {
	TotalDebit   decimal.Decimal
	TotalCredit  decimal.Decimal
	FinalBalance decimal.Decimal
}

// Statement is the derived projection served to callers. It is recomputed
// from the current snapshot on every request and never persisted.
type Statement struct {
	Party       *Party
	Period      Period
	Entries     []LedgerEntry
	Totals      StatementTotals
	GeneratedAt time.Time
}

// NormalizeInvoices maps invoices into ledger entries, netting each invoice
// against the returns recorded against it. Invoices not eligible for the
// statement (drafts, cash purchases) are skipped. Balances are left unset.
//
// Sign convention: a sale debits the client ledger, a deferred purchase
// credits the supplier ledger.
func NormalizeInvoices(t PartyType, invoices []*Invoice, returns []*ReturnRecord) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(invoices))

	for _, inv := range invoices {
		if !inv.OnStatement() {
			continue
		}

		returned := ReturnOffset(inv.ID, returns)
		effective := inv.Total.Sub(returned)

		desc := invoiceDescription(inv, returned, effective)

		entry := LedgerEntry{
			ID:          inv.ID,
			Date:        inv.Date,
			Kind:        EntryInvoice,
			Description: desc,
			Reference:   inv.Number,
		}

		if t == PartySupplier {
			entry.Credit = effective
		} else {
			entry.Debit = effective
		}

		entries = append(entries, entry)
	}

	return entries
}

// invoiceDescription embeds the reference number, and when a return reduced
// the invoice it discloses the original and net amounts instead of silently
// netting them.
func invoiceDescription(inv *Invoice, returned, effective decimal.Decimal) string {
	label := "Sales invoice"
	if inv.Kind == InvoicePurchase {
		label = "Purchase invoice"
	}

	if returned.IsZero() {
		return fmt.Sprintf("%s #%s", label, inv.Number)
	}

	return fmt.Sprintf("%s #%s (original %s, net %s after deducting return of %s)",
		label, inv.Number, inv.Total, effective, returned)
}

// NormalizeVouchers maps payment vouchers into ledger entries. A receipt
// credits the client ledger, a disbursement debits the supplier ledger.
func NormalizeVouchers(t PartyType, vouchers []*PaymentVoucher) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(vouchers))

	for _, v := range vouchers {
		label := "Receipt voucher"
		if v.Kind == VoucherDisbursement {
			label = "Payment voucher"
		}

		entry := LedgerEntry{
			ID:          v.ID,
			Date:        v.PaymentDate,
			Kind:        EntryPayment,
			Description: fmt.Sprintf("%s #%s", label, v.Number),
			Reference:   v.Number,
		}

		if t == PartySupplier {
			entry.Debit = v.Amount
		} else {
			entry.Credit = v.Amount
		}

		entries = append(entries, entry)
	}

	return entries
}

// Accumulate sorts entries by date ascending (stable: same-day entries keep
// input order) and folds the running balance from the opening balance under
// the party type's sign convention. The input slice is not mutated; calling
// Accumulate twice over the same input yields identical output.
func Accumulate(t PartyType, opening decimal.Decimal, entries []LedgerEntry) ([]LedgerEntry, StatementTotals) {
	sorted := make([]LedgerEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	totals := StatementTotals{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	balance := opening
	for i := range sorted {
		balance = balance.Add(t.Delta(sorted[i].Debit, sorted[i].Credit))
		sorted[i].Balance = balance

		totals.TotalDebit = totals.TotalDebit.Add(sorted[i].Debit)
		totals.TotalCredit = totals.TotalCredit.Add(sorted[i].Credit)
	}

	totals.FinalBalance = balance

	return sorted, totals
}
