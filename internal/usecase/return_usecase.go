package usecase

import (
	"context"
	"time"

	"github.com/iho/partyledger/internal/domain"
)

// ReturnUseCase handles sales and purchase return business logic.
type ReturnUseCase struct {
	returnRepo  ReturnRepository
	invoiceRepo InvoiceRepository
	idGen       IDGenerator
}

// NewReturnUseCase creates a new ReturnUseCase.
func NewReturnUseCase(returnRepo ReturnRepository, invoiceRepo InvoiceRepository, idGen IDGenerator) *ReturnUseCase {
	return &ReturnUseCase{
		returnRepo:  returnRepo,
		invoiceRepo: invoiceRepo,
		idGen:       idGen,
	}
}

// CreateReturnInput represents input for recording a return.
type CreateReturnInput struct {
	Kind      domain.InvoiceKind
	InvoiceID string
	Date      time.Time
	Items     domain.ReturnItems
}

// CreateReturn records a return against an existing invoice. Items that
// failed to parse upstream arrive empty and are stored as such; they simply
// contribute nothing to the statement offset.
func (uc *ReturnUseCase) CreateReturn(ctx context.Context, input CreateReturnInput) (*domain.ReturnRecord, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	if invoice.Kind != input.Kind {
		return nil, domain.ErrInvoiceNotFound
	}

	now := time.Now().UTC()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	record := &domain.ReturnRecord{
		ID:        uc.idGen.Generate(),
		InvoiceID: input.InvoiceID,
		Date:      date,
		Items:     input.Items,
		CreatedAt: now,
	}

	if err := uc.returnRepo.Create(ctx, input.Kind, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ListReturns lists returns of a kind with pagination.
func (uc *ReturnUseCase) ListReturns(ctx context.Context, kind domain.InvoiceKind, limit, offset int) ([]*domain.ReturnRecord, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.returnRepo.List(ctx, kind, limit, offset)
}
