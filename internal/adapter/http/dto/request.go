package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/usecase"
)

// CreatePartyRequest represents a request to create a client or supplier.
type CreatePartyRequest struct {
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Address        string          `json:"address,omitempty"`
	BranchID       string          `json:"branch_id,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePartyRequest) ToUseCaseInput(partyType domain.PartyType) usecase.CreatePartyInput {
	return usecase.CreatePartyInput{
		Type:           partyType,
		Name:           r.Name,
		Phone:          r.Phone,
		Email:          r.Email,
		Address:        r.Address,
		BranchID:       r.BranchID,
		OpeningBalance: r.OpeningBalance,
	}
}

// UpdatePartyRequest represents a request to update a client or supplier.
type UpdatePartyRequest struct {
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Address        string          `json:"address,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdatePartyRequest) ToUseCaseInput(partyType domain.PartyType, id string) usecase.UpdatePartyInput {
	return usecase.UpdatePartyInput{
		ID:             id,
		Type:           partyType,
		Name:           r.Name,
		Phone:          r.Phone,
		Email:          r.Email,
		Address:        r.Address,
		OpeningBalance: r.OpeningBalance,
	}
}

// CreateInvoiceRequest represents a request to create a sale or purchase invoice.
type CreateInvoiceRequest struct {
	Number          string               `json:"number"`
	PartyID         string               `json:"party_id"`
	BranchID        string               `json:"branch_id,omitempty"`
	Date            *time.Time           `json:"date,omitempty"`
	Total           decimal.Decimal      `json:"total"`
	Method          domain.PaymentMethod `json:"method,omitempty"`
	PostedToAccount bool                 `json:"posted_to_account"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateInvoiceRequest) ToUseCaseInput(kind domain.InvoiceKind) usecase.CreateInvoiceInput {
	input := usecase.CreateInvoiceInput{
		Kind:            kind,
		Number:          r.Number,
		PartyID:         r.PartyID,
		BranchID:        r.BranchID,
		Total:           r.Total,
		Method:          r.Method,
		PostedToAccount: r.PostedToAccount,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// CreateVoucherRequest represents a request to record a payment voucher.
type CreateVoucherRequest struct {
	Number      string          `json:"number"`
	PartyID     string          `json:"party_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	Note        string          `json:"note,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateVoucherRequest) ToUseCaseInput(kind domain.VoucherKind) usecase.CreateVoucherInput {
	input := usecase.CreateVoucherInput{
		Kind:    kind,
		Number:  r.Number,
		PartyID: r.PartyID,
		Amount:  r.Amount,
		Note:    r.Note,
	}
	if r.PaymentDate != nil {
		input.PaymentDate = *r.PaymentDate
	}
	return input
}

// CreateReturnRequest represents a request to record a return. Items accepts
// a plain array, a JSON-encoded string of one, or garbage; garbage parses to
// an empty line list rather than failing the request.
type CreateReturnRequest struct {
	InvoiceID string             `json:"invoice_id"`
	Date      *time.Time         `json:"date,omitempty"`
	Items     domain.ReturnItems `json:"items,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateReturnRequest) ToUseCaseInput(kind domain.InvoiceKind) usecase.CreateReturnInput {
	input := usecase.CreateReturnInput{
		Kind:      kind,
		InvoiceID: r.InvoiceID,
		Items:     r.Items,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// CreateDebtRequest represents a request to record an employee debt.
type CreateDebtRequest struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason,omitempty"`
	Date         *time.Time      `json:"date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDebtRequest) ToUseCaseInput() usecase.CreateDebtInput {
	input := usecase.CreateDebtInput{
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Amount:       r.Amount,
		Reason:       r.Reason,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// CreateDeductionRequest represents a request to record a pay deduction.
type CreateDeductionRequest struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason,omitempty"`
	Date         *time.Time      `json:"date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDeductionRequest) ToUseCaseInput() usecase.CreateDeductionInput {
	input := usecase.CreateDeductionInput{
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Amount:       r.Amount,
		Reason:       r.Reason,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}
