package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/domain"
)

// InvoiceUseCase handles sales and purchase invoice business logic.
type InvoiceUseCase struct {
	txManager   TransactionManager
	invoiceRepo InvoiceRepository
	partyRepo   PartyRepository
	idGen       IDGenerator
	retrier     Retrier
}

// NewInvoiceUseCase creates a new InvoiceUseCase.
func NewInvoiceUseCase(
	txManager TransactionManager,
	invoiceRepo InvoiceRepository,
	partyRepo PartyRepository,
	idGen IDGenerator,
	retrier Retrier,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txManager:   txManager,
		invoiceRepo: invoiceRepo,
		partyRepo:   partyRepo,
		idGen:       idGen,
		retrier:     retrier,
	}
}

// CreateInvoiceInput represents input for creating an invoice.
type CreateInvoiceInput struct {
	Kind            domain.InvoiceKind
	Number          string
	PartyID         string
	BranchID        string
	Date            time.Time
	Total           decimal.Decimal
	Method          domain.PaymentMethod
	PostedToAccount bool
}

// CreateInvoice creates a sale or purchase invoice. The party must exist.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	if err := domain.ValidateAmount(input.Total); err != nil {
		return nil, err
	}

	if err := domain.ValidateDocumentNumber(input.Number); err != nil {
		return nil, err
	}

	partyType := domain.PartyClient
	if input.Kind == domain.InvoicePurchase {
		partyType = domain.PartySupplier
	}

	if _, err := uc.partyRepo.GetByID(ctx, partyType, input.PartyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	method := input.Method
	if method == "" {
		method = domain.MethodCash
	}

	invoice := &domain.Invoice{
		ID:              uc.idGen.Generate(),
		Kind:            input.Kind,
		Number:          input.Number,
		PartyID:         input.PartyID,
		BranchID:        input.BranchID,
		Date:            date,
		Total:           input.Total,
		Method:          method,
		PostedToAccount: input.PostedToAccount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// A cash purchase settles immediately; it can never sit on the supplier
	// account, whatever the caller asked for.
	if invoice.Kind == domain.InvoicePurchase && invoice.Method != domain.MethodDeferred {
		invoice.PostedToAccount = false
	}

	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// GetInvoice retrieves an invoice by ID.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	return uc.invoiceRepo.GetByID(ctx, id)
}

// ListInvoices lists invoices with optional party/branch filtering.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, filter InvoiceFilter) ([]*domain.Invoice, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)

	return uc.invoiceRepo.List(ctx, filter)
}

// PostToAccount commits a draft invoice to its party's running account.
// The row is locked for the duration so concurrent posts cannot double-apply.
// The whole transaction is retried on deadlock or serialization failure.
func (uc *InvoiceUseCase) PostToAccount(ctx context.Context, id string) (*domain.Invoice, error) {
	var invoice *domain.Invoice

	operation := func() error {
		var err error
		invoice, err = uc.postToAccount(ctx, id)
		return err
	}

	run := operation
	if uc.retrier != nil {
		run = func() error { return uc.retrier.Retry(ctx, operation) }
	}

	if err := run(); err != nil {
		return nil, err
	}

	return invoice, nil
}

func (uc *InvoiceUseCase) postToAccount(ctx context.Context, id string) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	invoice, err := uc.invoiceRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.ValidatePost(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.invoiceRepo.MarkPosted(ctx, tx, id, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	invoice.PostedToAccount = true
	invoice.UpdatedAt = now

	return invoice, nil
}
