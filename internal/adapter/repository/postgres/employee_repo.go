package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/partyledger/internal/domain"
)

// EmployeeDebtRepository implements usecase.EmployeeDebtRepository.
type EmployeeDebtRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeDebtRepository creates a new EmployeeDebtRepository.
func NewEmployeeDebtRepository(pool *pgxpool.Pool) *EmployeeDebtRepository {
	return &EmployeeDebtRepository{pool: pool}
}

// Create records an employee debt.
func (r *EmployeeDebtRepository) Create(ctx context.Context, debt *domain.EmployeeDebt) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO employee_debts (id, employee_id, employee_name, amount, reason, debt_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		debt.ID,
		debt.EmployeeID,
		debt.EmployeeName,
		decimalToNumeric(debt.Amount),
		debt.Reason,
		timeToPgTimestamptz(debt.Date),
		timeToPgTimestamptz(debt.CreatedAt),
	)

	return err
}

// Delete removes an employee debt.
func (r *EmployeeDebtRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employee_debts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}

	return nil
}

// List lists employee debts with pagination, newest first.
func (r *EmployeeDebtRepository) List(ctx context.Context, limit, offset int) ([]*domain.EmployeeDebt, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, employee_id, employee_name, amount, reason, debt_date, created_at
		FROM employee_debts ORDER BY debt_date DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debts := make([]*domain.EmployeeDebt, 0)
	for rows.Next() {
		var (
			debt      domain.EmployeeDebt
			amount    pgtype.Numeric
			date      pgtype.Timestamptz
			createdAt pgtype.Timestamptz
		)

		if err := rows.Scan(&debt.ID, &debt.EmployeeID, &debt.EmployeeName, &amount, &debt.Reason, &date, &createdAt); err != nil {
			return nil, err
		}

		debt.Amount = numericToDecimal(amount)
		debt.Date = date.Time
		debt.CreatedAt = createdAt.Time
		debts = append(debts, &debt)
	}

	return debts, rows.Err()
}

// DeductionRepository implements usecase.DeductionRepository.
type DeductionRepository struct {
	pool *pgxpool.Pool
}

// NewDeductionRepository creates a new DeductionRepository.
func NewDeductionRepository(pool *pgxpool.Pool) *DeductionRepository {
	return &DeductionRepository{pool: pool}
}

// Create records a pay deduction.
func (r *DeductionRepository) Create(ctx context.Context, deduction *domain.Deduction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO deductions (id, employee_id, employee_name, amount, reason, deduction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		deduction.ID,
		deduction.EmployeeID,
		deduction.EmployeeName,
		decimalToNumeric(deduction.Amount),
		deduction.Reason,
		timeToPgTimestamptz(deduction.Date),
		timeToPgTimestamptz(deduction.CreatedAt),
	)

	return err
}

// Delete removes a deduction.
func (r *DeductionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM deductions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDeductionNotFound
	}

	return nil
}

// List lists deductions with pagination, newest first.
func (r *DeductionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Deduction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, employee_id, employee_name, amount, reason, deduction_date, created_at
		FROM deductions ORDER BY deduction_date DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deductions := make([]*domain.Deduction, 0)
	for rows.Next() {
		var (
			deduction domain.Deduction
			amount    pgtype.Numeric
			date      pgtype.Timestamptz
			createdAt pgtype.Timestamptz
		)

		if err := rows.Scan(&deduction.ID, &deduction.EmployeeID, &deduction.EmployeeName, &amount, &deduction.Reason, &date, &createdAt); err != nil {
			return nil, err
		}

		deduction.Amount = numericToDecimal(amount)
		deduction.Date = date.Time
		deduction.CreatedAt = createdAt.Time
		deductions = append(deductions, &deduction)
	}

	return deductions, rows.Err()
}
