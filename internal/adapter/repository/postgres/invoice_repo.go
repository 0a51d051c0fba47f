package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/usecase"
)

const invoiceColumns = `id, kind, number, party_id, branch_id, invoice_date, total, method, posted_to_account, created_at, updated_at`

// InvoiceRepository implements usecase.InvoiceRepository on a single
// invoices table; the kind column separates sales from purchases.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

// Create creates a new invoice.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		invoice.ID,
		string(invoice.Kind),
		invoice.Number,
		invoice.PartyID,
		invoice.BranchID,
		timeToPgTimestamptz(invoice.Date),
		decimalToNumeric(invoice.Total),
		string(invoice.Method),
		invoice.PostedToAccount,
		timeToPgTimestamptz(invoice.CreatedAt),
		timeToPgTimestamptz(invoice.UpdatedAt),
	)

	return err
}

// GetByID retrieves an invoice by ID.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)

	invoice, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return invoice, nil
}

// GetByIDForUpdate retrieves an invoice by ID with a FOR UPDATE lock.
func (r *InvoiceRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Invoice, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)

	invoice, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return invoice, nil
}

// MarkPosted flags an invoice as posted to its party's account.
func (r *InvoiceRepository) MarkPosted(ctx context.Context, tx usecase.Transaction, id string, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE invoices SET posted_to_account = TRUE, updated_at = $2 WHERE id = $1`,
		id, timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}

	return nil
}

// List lists invoices of a kind with optional party/branch filters,
// newest first.
func (r *InvoiceRepository) List(ctx context.Context, filter usecase.InvoiceFilter) ([]*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE kind = $1`
	args := []any{string(filter.Kind)}

	if filter.PartyID != "" {
		args = append(args, filter.PartyID)
		query += fmt.Sprintf(` AND party_id = $%d`, len(args))
	}
	if filter.BranchID != "" {
		args = append(args, filter.BranchID)
		query += fmt.Sprintf(` AND branch_id = $%d`, len(args))
	}

	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY invoice_date DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	return r.queryInvoices(ctx, query, args...)
}

// ListByParty lists every invoice of a kind for one party, oldest first.
// Statement derivation needs the full history, so there is no pagination.
func (r *InvoiceRepository) ListByParty(ctx context.Context, kind domain.InvoiceKind, partyID string) ([]*domain.Invoice, error) {
	return r.queryInvoices(ctx, `
		SELECT `+invoiceColumns+` FROM invoices
		WHERE kind = $1 AND party_id = $2
		ORDER BY invoice_date ASC, created_at ASC`,
		string(kind), partyID)
}

func (r *InvoiceRepository) queryInvoices(ctx context.Context, query string, args ...any) ([]*domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	return invoices, rows.Err()
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var (
		invoice   domain.Invoice
		kind      string
		method    string
		date      pgtype.Timestamptz
		total     pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&invoice.ID,
		&kind,
		&invoice.Number,
		&invoice.PartyID,
		&invoice.BranchID,
		&date,
		&total,
		&method,
		&invoice.PostedToAccount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	invoice.Kind = domain.InvoiceKind(kind)
	invoice.Method = domain.PaymentMethod(method)
	invoice.Date = date.Time
	invoice.Total = numericToDecimal(total)
	invoice.CreatedAt = createdAt.Time
	invoice.UpdatedAt = updatedAt.Time

	return &invoice, nil
}
