package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/partyledger/internal/domain"
)

// ReturnRepository implements usecase.ReturnRepository. Return lines are
// stored as JSONB; historic rows may carry double-encoded or malformed
// payloads, which the domain decoder turns into empty line lists.
type ReturnRepository struct {
	pool *pgxpool.Pool
}

// NewReturnRepository creates a new ReturnRepository.
func NewReturnRepository(pool *pgxpool.Pool) *ReturnRepository {
	return &ReturnRepository{pool: pool}
}

// Create records a new return.
func (r *ReturnRepository) Create(ctx context.Context, kind domain.InvoiceKind, record *domain.ReturnRecord) error {
	items, err := json.Marshal(record.Items)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO returns (id, kind, invoice_id, return_date, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID,
		string(kind),
		record.InvoiceID,
		timeToPgTimestamptz(record.Date),
		items,
		timeToPgTimestamptz(record.CreatedAt),
	)

	return err
}

// List lists returns of a kind with pagination, newest first.
func (r *ReturnRepository) List(ctx context.Context, kind domain.InvoiceKind, limit, offset int) ([]*domain.ReturnRecord, error) {
	return r.queryReturns(ctx, `
		SELECT id, invoice_id, return_date, items, created_at
		FROM returns WHERE kind = $1
		ORDER BY return_date DESC LIMIT $2 OFFSET $3`,
		string(kind), limit, offset)
}

// ListByInvoiceIDs lists all returns of a kind against any of the given
// invoices.
func (r *ReturnRepository) ListByInvoiceIDs(ctx context.Context, kind domain.InvoiceKind, invoiceIDs []string) ([]*domain.ReturnRecord, error) {
	if len(invoiceIDs) == 0 {
		return []*domain.ReturnRecord{}, nil
	}

	return r.queryReturns(ctx, `
		SELECT id, invoice_id, return_date, items, created_at
		FROM returns WHERE kind = $1 AND invoice_id = ANY($2)
		ORDER BY return_date ASC`,
		string(kind), invoiceIDs)
}

func (r *ReturnRepository) queryReturns(ctx context.Context, query string, args ...any) ([]*domain.ReturnRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.ReturnRecord, 0)
	for rows.Next() {
		record, err := scanReturn(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func scanReturn(row pgx.Row) (*domain.ReturnRecord, error) {
	var (
		record    domain.ReturnRecord
		date      pgtype.Timestamptz
		items     []byte
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&record.ID,
		&record.InvoiceID,
		&date,
		&items,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	// ReturnItems.UnmarshalJSON never fails; bad payloads decode to an
	// empty list and contribute nothing to the statement.
	_ = json.Unmarshal(items, &record.Items)

	record.Date = date.Time
	record.CreatedAt = createdAt.Time

	return &record, nil
}
