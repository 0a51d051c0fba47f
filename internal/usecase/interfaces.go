package usecase

import (
	"context"
	"time"

	"github.com/iho/partyledger/internal/domain"
)

// PartyRepository defines data access for clients and suppliers.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, partyType domain.PartyType, id string) (*domain.Party, error)
	Update(ctx context.Context, party *domain.Party) error
	Delete(ctx context.Context, partyType domain.PartyType, id string) error
	List(ctx context.Context, partyType domain.PartyType, limit, offset int) ([]*domain.Party, error)
}

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	Kind     domain.InvoiceKind
	PartyID  string
	BranchID string
	Limit    int
	Offset   int
}

// InvoiceRepository defines data access for sales and purchase invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Invoice, error)
	MarkPosted(ctx context.Context, tx Transaction, id string, updatedAt time.Time) error
	List(ctx context.Context, filter InvoiceFilter) ([]*domain.Invoice, error)
	ListByParty(ctx context.Context, kind domain.InvoiceKind, partyID string) ([]*domain.Invoice, error)
}

// VoucherRepository defines data access for payment vouchers.
type VoucherRepository interface {
	Create(ctx context.Context, voucher *domain.PaymentVoucher) error
	GetByID(ctx context.Context, id string) (*domain.PaymentVoucher, error)
	Delete(ctx context.Context, kind domain.VoucherKind, id string) error
	List(ctx context.Context, kind domain.VoucherKind, partyID string, limit, offset int) ([]*domain.PaymentVoucher, error)
	ListByParty(ctx context.Context, kind domain.VoucherKind, partyID string) ([]*domain.PaymentVoucher, error)
}

// ReturnRepository defines data access for sales and purchase returns.
type ReturnRepository interface {
	Create(ctx context.Context, kind domain.InvoiceKind, record *domain.ReturnRecord) error
	List(ctx context.Context, kind domain.InvoiceKind, limit, offset int) ([]*domain.ReturnRecord, error)
	ListByInvoiceIDs(ctx context.Context, kind domain.InvoiceKind, invoiceIDs []string) ([]*domain.ReturnRecord, error)
}

// EmployeeDebtRepository defines data access for employee debts.
type EmployeeDebtRepository interface {
	Create(ctx context.Context, debt *domain.EmployeeDebt) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.EmployeeDebt, error)
}

// DeductionRepository defines data access for deductions.
type DeductionRepository interface {
	Create(ctx context.Context, deduction *domain.Deduction) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Deduction, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries operations that fail transiently.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
