package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/domain"
)

// PartyUseCase handles client and supplier business logic.
type PartyUseCase struct {
	partyRepo PartyRepository
	idGen     IDGenerator
}

// NewPartyUseCase creates a new PartyUseCase.
func NewPartyUseCase(partyRepo PartyRepository, idGen IDGenerator) *PartyUseCase {
	return &PartyUseCase{
		partyRepo: partyRepo,
		idGen:     idGen,
	}
}

// CreatePartyInput represents input for creating a client or supplier.
type CreatePartyInput struct {
	Type           domain.PartyType
	Name           string
	Phone          string
	Email          string
	Address        string
	BranchID       string
	OpeningBalance decimal.Decimal
}

// CreateParty creates a new client or supplier.
func (uc *PartyUseCase) CreateParty(ctx context.Context, input CreatePartyInput) (*domain.Party, error) {
	if err := domain.ValidatePartyName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	party := &domain.Party{
		ID:             uc.idGen.Generate(),
		Type:           input.Type,
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		Address:        input.Address,
		BranchID:       input.BranchID,
		OpeningBalance: input.OpeningBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// GetParty retrieves a client or supplier by ID.
func (uc *PartyUseCase) GetParty(ctx context.Context, partyType domain.PartyType, id string) (*domain.Party, error) {
	return uc.partyRepo.GetByID(ctx, partyType, id)
}

// UpdatePartyInput represents input for updating a party.
type UpdatePartyInput struct {
	ID             string
	Type           domain.PartyType
	Name           string
	Phone          string
	Email          string
	Address        string
	OpeningBalance decimal.Decimal
}

// UpdateParty updates an existing party's details.
func (uc *PartyUseCase) UpdateParty(ctx context.Context, input UpdatePartyInput) (*domain.Party, error) {
	if err := domain.ValidatePartyName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	party, err := uc.partyRepo.GetByID(ctx, input.Type, input.ID)
	if err != nil {
		return nil, err
	}

	party.Name = input.Name
	party.Phone = input.Phone
	party.Email = input.Email
	party.Address = input.Address
	party.OpeningBalance = input.OpeningBalance
	party.UpdatedAt = time.Now().UTC()

	if err := uc.partyRepo.Update(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// DeleteParty removes a client or supplier.
func (uc *PartyUseCase) DeleteParty(ctx context.Context, partyType domain.PartyType, id string) error {
	return uc.partyRepo.Delete(ctx, partyType, id)
}

// ListPartiesInput represents input for listing parties.
type ListPartiesInput struct {
	Type   domain.PartyType
	Limit  int
	Offset int
}

// ListParties lists clients or suppliers with pagination.
func (uc *PartyUseCase) ListParties(ctx context.Context, input ListPartiesInput) ([]*domain.Party, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.partyRepo.List(ctx, input.Type, limit, offset)
}
