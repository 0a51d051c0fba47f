package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/partyledger/internal/domain"
)

// PartyRepository implements usecase.PartyRepository. Clients and suppliers
// live in separate tables with identical shapes; the party type picks the
// table.
type PartyRepository struct {
	pool *pgxpool.Pool
}

// NewPartyRepository creates a new PartyRepository.
func NewPartyRepository(pool *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{pool: pool}
}

func partyTable(partyType domain.PartyType) string {
	if partyType == domain.PartySupplier {
		return "suppliers"
	}
	return "clients"
}

// Create creates a new party.
func (r *PartyRepository) Create(ctx context.Context, party *domain.Party) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, phone, email, address, branch_id, opening_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, partyTable(party.Type))

	_, err := r.pool.Exec(ctx, query,
		party.ID,
		party.Name,
		party.Phone,
		party.Email,
		party.Address,
		party.BranchID,
		decimalToNumeric(party.OpeningBalance),
		timeToPgTimestamptz(party.CreatedAt),
		timeToPgTimestamptz(party.UpdatedAt),
	)

	return err
}

// GetByID retrieves a party by ID.
func (r *PartyRepository) GetByID(ctx context.Context, partyType domain.PartyType, id string) (*domain.Party, error) {
	query := fmt.Sprintf(`
		SELECT id, name, phone, email, address, branch_id, opening_balance, created_at, updated_at
		FROM %s WHERE id = $1`, partyTable(partyType))

	party, err := scanParty(r.pool.QueryRow(ctx, query, id), partyType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, partyType.NotFoundError()
		}

		return nil, err
	}

	return party, nil
}

// Update updates a party's details.
func (r *PartyRepository) Update(ctx context.Context, party *domain.Party) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $2, phone = $3, email = $4, address = $5, opening_balance = $6, updated_at = $7
		WHERE id = $1`, partyTable(party.Type))

	tag, err := r.pool.Exec(ctx, query,
		party.ID,
		party.Name,
		party.Phone,
		party.Email,
		party.Address,
		decimalToNumeric(party.OpeningBalance),
		timeToPgTimestamptz(party.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return party.Type.NotFoundError()
	}

	return nil
}

// Delete removes a party.
func (r *PartyRepository) Delete(ctx context.Context, partyType domain.PartyType, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, partyTable(partyType))

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return partyType.NotFoundError()
	}

	return nil
}

// List lists parties with pagination, newest first.
func (r *PartyRepository) List(ctx context.Context, partyType domain.PartyType, limit, offset int) ([]*domain.Party, error) {
	query := fmt.Sprintf(`
		SELECT id, name, phone, email, address, branch_id, opening_balance, created_at, updated_at
		FROM %s ORDER BY created_at DESC LIMIT $1 OFFSET $2`, partyTable(partyType))

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parties := make([]*domain.Party, 0)
	for rows.Next() {
		party, err := scanParty(rows, partyType)
		if err != nil {
			return nil, err
		}
		parties = append(parties, party)
	}

	return parties, rows.Err()
}

func scanParty(row pgx.Row, partyType domain.PartyType) (*domain.Party, error) {
	var (
		party          domain.Party
		openingBalance pgtype.Numeric
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)

	err := row.Scan(
		&party.ID,
		&party.Name,
		&party.Phone,
		&party.Email,
		&party.Address,
		&party.BranchID,
		&openingBalance,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	party.Type = partyType
	party.OpeningBalance = numericToDecimal(openingBalance)
	party.CreatedAt = createdAt.Time
	party.UpdatedAt = updatedAt.Time

	return &party, nil
}
