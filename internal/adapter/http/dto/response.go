package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/domain"
)

// PartyResponse represents a client or supplier in API responses.
type PartyResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Address        string          `json:"address,omitempty"`
	BranchID       string          `json:"branch_id,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PartyFromDomain converts a domain party to a response.
func PartyFromDomain(p *domain.Party) *PartyResponse {
	return &PartyResponse{
		ID:             p.ID,
		Name:           p.Name,
		Phone:          p.Phone,
		Email:          p.Email,
		Address:        p.Address,
		BranchID:       p.BranchID,
		OpeningBalance: p.OpeningBalance,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// PartiesFromDomain converts domain parties to responses.
func PartiesFromDomain(parties []*domain.Party) []*PartyResponse {
	result := make([]*PartyResponse, len(parties))
	for i, p := range parties {
		result[i] = PartyFromDomain(p)
	}
	return result
}

// ListPartiesResponse wraps a page of parties.
type ListPartiesResponse struct {
	Parties []*PartyResponse `json:"parties"`
	Total   int64            `json:"total"`
}

// InvoiceResponse represents an invoice in API responses.
type InvoiceResponse struct {
	ID              string               `json:"id"`
	Kind            domain.InvoiceKind   `json:"kind"`
	Number          string               `json:"number"`
	PartyID         string               `json:"party_id"`
	BranchID        string               `json:"branch_id,omitempty"`
	Date            time.Time            `json:"date"`
	Total           decimal.Decimal      `json:"total"`
	Method          domain.PaymentMethod `json:"method"`
	PostedToAccount bool                 `json:"posted_to_account"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// InvoiceFromDomain converts a domain invoice to a response.
func InvoiceFromDomain(inv *domain.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:              inv.ID,
		Kind:            inv.Kind,
		Number:          inv.Number,
		PartyID:         inv.PartyID,
		BranchID:        inv.BranchID,
		Date:            inv.Date,
		Total:           inv.Total,
		Method:          inv.Method,
		PostedToAccount: inv.PostedToAccount,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

// InvoicesFromDomain converts domain invoices to responses.
func InvoicesFromDomain(invoices []*domain.Invoice) []*InvoiceResponse {
	result := make([]*InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		result[i] = InvoiceFromDomain(inv)
	}
	return result
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices []*InvoiceResponse `json:"invoices"`
	Total    int64              `json:"total"`
}

// VoucherResponse represents a payment voucher in API responses.
type VoucherResponse struct {
	ID          string             `json:"id"`
	Kind        domain.VoucherKind `json:"kind"`
	Number      string             `json:"number"`
	PartyID     string             `json:"party_id"`
	Amount      decimal.Decimal    `json:"amount"`
	PaymentDate time.Time          `json:"payment_date"`
	Note        string             `json:"note,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// VoucherFromDomain converts a domain voucher to a response.
func VoucherFromDomain(v *domain.PaymentVoucher) *VoucherResponse {
	return &VoucherResponse{
		ID:          v.ID,
		Kind:        v.Kind,
		Number:      v.Number,
		PartyID:     v.PartyID,
		Amount:      v.Amount,
		PaymentDate: v.PaymentDate,
		Note:        v.Note,
		CreatedAt:   v.CreatedAt,
	}
}

// VouchersFromDomain converts domain vouchers to responses.
func VouchersFromDomain(vouchers []*domain.PaymentVoucher) []*VoucherResponse {
	result := make([]*VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		result[i] = VoucherFromDomain(v)
	}
	return result
}

// ListVouchersResponse wraps a page of vouchers.
type ListVouchersResponse struct {
	Vouchers []*VoucherResponse `json:"vouchers"`
	Total    int64              `json:"total"`
}

// ReturnResponse represents a return in API responses. Value is the computed
// sum of the return lines, not a stored column.
type ReturnResponse struct {
	ID        string             `json:"id"`
	InvoiceID string             `json:"invoice_id"`
	Date      time.Time          `json:"date"`
	Items     domain.ReturnItems `json:"items"`
	Value     decimal.Decimal    `json:"value"`
	CreatedAt time.Time          `json:"created_at"`
}

// ReturnFromDomain converts a domain return record to a response.
func ReturnFromDomain(rec *domain.ReturnRecord) *ReturnResponse {
	return &ReturnResponse{
		ID:        rec.ID,
		InvoiceID: rec.InvoiceID,
		Date:      rec.Date,
		Items:     rec.Items,
		Value:     rec.Value(),
		CreatedAt: rec.CreatedAt,
	}
}

// ReturnsFromDomain converts domain return records to responses.
func ReturnsFromDomain(records []*domain.ReturnRecord) []*ReturnResponse {
	result := make([]*ReturnResponse, len(records))
	for i, rec := range records {
		result[i] = ReturnFromDomain(rec)
	}
	return result
}

// ListReturnsResponse wraps a page of returns.
type ListReturnsResponse struct {
	Returns []*ReturnResponse `json:"returns"`
	Total   int64             `json:"total"`
}

// LedgerEntryResponse represents one statement row.
type LedgerEntryResponse struct {
	ID          string           `json:"id"`
	Date        time.Time        `json:"date"`
	Kind        domain.EntryKind `json:"kind"`
	Description string           `json:"description"`
	Debit       decimal.Decimal  `json:"debit"`
	Credit      decimal.Decimal  `json:"credit"`
	Reference   string           `json:"reference,omitempty"`
	Balance     decimal.Decimal  `json:"balance"`
}

// StatementResponse represents a full party statement.
type StatementResponse struct {
	Party        *PartyResponse         `json:"party"`
	From         *time.Time             `json:"from,omitempty"`
	To           *time.Time             `json:"to,omitempty"`
	Entries      []*LedgerEntryResponse `json:"entries"`
	TotalDebit   decimal.Decimal        `json:"total_debit"`
	TotalCredit  decimal.Decimal        `json:"total_credit"`
	FinalBalance decimal.Decimal        `json:"final_balance"`
	GeneratedAt  time.Time              `json:"generated_at"`
}

// StatementFromDomain converts a domain statement to a response.
func StatementFromDomain(s *domain.Statement) *StatementResponse {
	entries := make([]*LedgerEntryResponse, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = &LedgerEntryResponse{
			ID:          e.ID,
			Date:        e.Date,
			Kind:        e.Kind,
			Description: e.Description,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Reference:   e.Reference,
			Balance:     e.Balance,
		}
	}
	return &StatementResponse{
		Party:        PartyFromDomain(s.Party),
		From:         s.Period.From,
		To:           s.Period.To,
		Entries:      entries,
		TotalDebit:   s.Totals.TotalDebit,
		TotalCredit:  s.Totals.TotalCredit,
		FinalBalance: s.Totals.FinalBalance,
		GeneratedAt:  s.GeneratedAt,
	}
}

// EmployeeDebtResponse represents an employee debt in API responses.
type EmployeeDebtResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason,omitempty"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DebtFromDomain converts a domain employee debt to a response.
func DebtFromDomain(d *domain.EmployeeDebt) *EmployeeDebtResponse {
	return &EmployeeDebtResponse{
		ID:           d.ID,
		EmployeeID:   d.EmployeeID,
		EmployeeName: d.EmployeeName,
		Amount:       d.Amount,
		Reason:       d.Reason,
		Date:         d.Date,
		CreatedAt:    d.CreatedAt,
	}
}

// DebtsFromDomain converts domain employee debts to responses.
func DebtsFromDomain(debts []*domain.EmployeeDebt) []*EmployeeDebtResponse {
	result := make([]*EmployeeDebtResponse, len(debts))
	for i, d := range debts {
		result[i] = DebtFromDomain(d)
	}
	return result
}

// DeductionResponse represents a pay deduction in API responses.
type DeductionResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason,omitempty"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DeductionFromDomain converts a domain deduction to a response.
func DeductionFromDomain(d *domain.Deduction) *DeductionResponse {
	return &DeductionResponse{
		ID:           d.ID,
		EmployeeID:   d.EmployeeID,
		EmployeeName: d.EmployeeName,
		Amount:       d.Amount,
		Reason:       d.Reason,
		Date:         d.Date,
		CreatedAt:    d.CreatedAt,
	}
}

// DeductionsFromDomain converts domain deductions to responses.
func DeductionsFromDomain(deductions []*domain.Deduction) []*DeductionResponse {
	result := make([]*DeductionResponse, len(deductions))
	for i, d := range deductions {
		result[i] = DeductionFromDomain(d)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
