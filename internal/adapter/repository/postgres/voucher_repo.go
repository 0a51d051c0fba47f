package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/partyledger/internal/domain"
)

const voucherColumns = `id, kind, number, party_id, amount, payment_date, note, created_at`

// VoucherRepository implements usecase.VoucherRepository on a single
// vouchers table; the kind column separates receipts from disbursements.
type VoucherRepository struct {
	pool *pgxpool.Pool
}

// NewVoucherRepository creates a new VoucherRepository.
func NewVoucherRepository(pool *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{pool: pool}
}

// Create records a new voucher.
func (r *VoucherRepository) Create(ctx context.Context, voucher *domain.PaymentVoucher) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO vouchers (`+voucherColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		voucher.ID,
		string(voucher.Kind),
		voucher.Number,
		voucher.PartyID,
		decimalToNumeric(voucher.Amount),
		timeToPgTimestamptz(voucher.PaymentDate),
		voucher.Note,
		timeToPgTimestamptz(voucher.CreatedAt),
	)

	return err
}

// GetByID retrieves a voucher by ID.
func (r *VoucherRepository) GetByID(ctx context.Context, id string) (*domain.PaymentVoucher, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+voucherColumns+` FROM vouchers WHERE id = $1`, id)

	voucher, err := scanVoucher(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVoucherNotFound
		}

		return nil, err
	}

	return voucher, nil
}

// Delete removes a voucher.
func (r *VoucherRepository) Delete(ctx context.Context, kind domain.VoucherKind, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vouchers WHERE id = $1 AND kind = $2`, id, string(kind))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVoucherNotFound
	}

	return nil
}

// List lists vouchers of a kind, optionally for one party, newest first.
func (r *VoucherRepository) List(ctx context.Context, kind domain.VoucherKind, partyID string, limit, offset int) ([]*domain.PaymentVoucher, error) {
	if partyID != "" {
		return r.queryVouchers(ctx, `
			SELECT `+voucherColumns+` FROM vouchers
			WHERE kind = $1 AND party_id = $2
			ORDER BY payment_date DESC LIMIT $3 OFFSET $4`,
			string(kind), partyID, limit, offset)
	}

	return r.queryVouchers(ctx, `
		SELECT `+voucherColumns+` FROM vouchers
		WHERE kind = $1
		ORDER BY payment_date DESC LIMIT $2 OFFSET $3`,
		string(kind), limit, offset)
}

// ListByParty lists every voucher of a kind for one party, oldest first.
// Statement derivation needs the full history, so there is no pagination.
func (r *VoucherRepository) ListByParty(ctx context.Context, kind domain.VoucherKind, partyID string) ([]*domain.PaymentVoucher, error) {
	return r.queryVouchers(ctx, `
		SELECT `+voucherColumns+` FROM vouchers
		WHERE kind = $1 AND party_id = $2
		ORDER BY payment_date ASC, created_at ASC`,
		string(kind), partyID)
}

func (r *VoucherRepository) queryVouchers(ctx context.Context, query string, args ...any) ([]*domain.PaymentVoucher, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vouchers := make([]*domain.PaymentVoucher, 0)
	for rows.Next() {
		voucher, err := scanVoucher(rows)
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, voucher)
	}

	return vouchers, rows.Err()
}

func scanVoucher(row pgx.Row) (*domain.PaymentVoucher, error) {
	var (
		voucher     domain.PaymentVoucher
		kind        string
		amount      pgtype.Numeric
		paymentDate pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&voucher.ID,
		&kind,
		&voucher.Number,
		&voucher.PartyID,
		&amount,
		&paymentDate,
		&voucher.Note,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	voucher.Kind = domain.VoucherKind(kind)
	voucher.Amount = numericToDecimal(amount)
	voucher.PaymentDate = paymentDate.Time
	voucher.CreatedAt = createdAt.Time

	return &voucher, nil
}
