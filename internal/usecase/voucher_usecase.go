package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/domain"
)

// VoucherUseCase handles receipt and payment voucher business logic.
type VoucherUseCase struct {
	voucherRepo VoucherRepository
	partyRepo   PartyRepository
	idGen       IDGenerator
}

// NewVoucherUseCase creates a new VoucherUseCase.
func NewVoucherUseCase(voucherRepo VoucherRepository, partyRepo PartyRepository, idGen IDGenerator) *VoucherUseCase {
	return &VoucherUseCase{
		voucherRepo: voucherRepo,
		partyRepo:   partyRepo,
		idGen:       idGen,
	}
}

// CreateVoucherInput represents input for creating a payment voucher.
type CreateVoucherInput struct {
	Kind        domain.VoucherKind
	Number      string
	PartyID     string
	Amount      decimal.Decimal
	PaymentDate time.Time
	Note        string
}

// CreateVoucher records money received from a client or paid to a supplier.
func (uc *VoucherUseCase) CreateVoucher(ctx context.Context, input CreateVoucherInput) (*domain.PaymentVoucher, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateDocumentNumber(input.Number); err != nil {
		return nil, err
	}

	partyType := domain.PartyClient
	if input.Kind == domain.VoucherDisbursement {
		partyType = domain.PartySupplier
	}

	if _, err := uc.partyRepo.GetByID(ctx, partyType, input.PartyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = now
	}

	voucher := &domain.PaymentVoucher{
		ID:          uc.idGen.Generate(),
		Kind:        input.Kind,
		Number:      input.Number,
		PartyID:     input.PartyID,
		Amount:      input.Amount,
		PaymentDate: paymentDate,
		Note:        input.Note,
		CreatedAt:   now,
	}

	if err := uc.voucherRepo.Create(ctx, voucher); err != nil {
		return nil, err
	}

	return voucher, nil
}

// GetVoucher retrieves a voucher by ID.
func (uc *VoucherUseCase) GetVoucher(ctx context.Context, id string) (*domain.PaymentVoucher, error) {
	return uc.voucherRepo.GetByID(ctx, id)
}

// DeleteVoucher removes a voucher. The next statement derivation simply no
// longer sees it; there is no compensation logic.
func (uc *VoucherUseCase) DeleteVoucher(ctx context.Context, kind domain.VoucherKind, id string) error {
	return uc.voucherRepo.Delete(ctx, kind, id)
}

// ListVouchersInput represents input for listing vouchers.
type ListVouchersInput struct {
	Kind    domain.VoucherKind
	PartyID string
	Limit   int
	Offset  int
}

// ListVouchers lists vouchers of a kind, optionally for one party.
func (uc *VoucherUseCase) ListVouchers(ctx context.Context, input ListVouchersInput) ([]*domain.PaymentVoucher, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.voucherRepo.List(ctx, input.Kind, input.PartyID, limit, offset)
}
