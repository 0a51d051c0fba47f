package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/domain"
)

// EmployeeUseCase handles employee debt and deduction tracking.
type EmployeeUseCase struct {
	debtRepo      EmployeeDebtRepository
	deductionRepo DeductionRepository
	idGen         IDGenerator
}

// NewEmployeeUseCase creates a new EmployeeUseCase.
func NewEmployeeUseCase(debtRepo EmployeeDebtRepository, deductionRepo DeductionRepository, idGen IDGenerator) *EmployeeUseCase {
	return &EmployeeUseCase{
		debtRepo:      debtRepo,
		deductionRepo: deductionRepo,
		idGen:         idGen,
	}
}

// CreateDebtInput represents input for recording an employee debt.
type CreateDebtInput struct {
	EmployeeID   string
	EmployeeName string
	Amount       decimal.Decimal
	Reason       string
	Date         time.Time
}

// CreateDebt records an amount an employee owes the business.
func (uc *EmployeeUseCase) CreateDebt(ctx context.Context, input CreateDebtInput) (*domain.EmployeeDebt, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	debt := &domain.EmployeeDebt{
		ID:           uc.idGen.Generate(),
		EmployeeID:   input.EmployeeID,
		EmployeeName: input.EmployeeName,
		Amount:       input.Amount,
		Reason:       input.Reason,
		Date:         date,
		CreatedAt:    now,
	}

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}

	return debt, nil
}

// DeleteDebt removes an employee debt.
func (uc *EmployeeUseCase) DeleteDebt(ctx context.Context, id string) error {
	return uc.debtRepo.Delete(ctx, id)
}

// ListDebts lists employee debts with pagination.
func (uc *EmployeeUseCase) ListDebts(ctx context.Context, limit, offset int) ([]*domain.EmployeeDebt, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.debtRepo.List(ctx, limit, offset)
}

// CreateDeductionInput represents input for recording a pay deduction.
type CreateDeductionInput struct {
	EmployeeID   string
	EmployeeName string
	Amount       decimal.Decimal
	Reason       string
	Date         time.Time
}

// CreateDeduction records an amount withheld from an employee's pay.
func (uc *EmployeeUseCase) CreateDeduction(ctx context.Context, input CreateDeductionInput) (*domain.Deduction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	deduction := &domain.Deduction{
		ID:           uc.idGen.Generate(),
		EmployeeID:   input.EmployeeID,
		EmployeeName: input.EmployeeName,
		Amount:       input.Amount,
		Reason:       input.Reason,
		Date:         date,
		CreatedAt:    now,
	}

	if err := uc.deductionRepo.Create(ctx, deduction); err != nil {
		return nil, err
	}

	return deduction, nil
}

// DeleteDeduction removes a deduction.
func (uc *EmployeeUseCase) DeleteDeduction(ctx context.Context, id string) error {
	return uc.deductionRepo.Delete(ctx, id)
}

// ListDeductions lists deductions with pagination.
func (uc *EmployeeUseCase) ListDeductions(ctx context.Context, limit, offset int) ([]*domain.Deduction, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.deductionRepo.List(ctx, limit, offset)
}
