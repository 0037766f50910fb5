package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/history"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type historyRepository struct {
	db *database.DB
}

func NewHistoryRepository(db *database.DB) history.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, entry history.Entry) (history.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_history (employee_id, field_name, old_value, new_value, changed_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, field_name, old_value, new_value, changed_at, changed_by
	`

	var e history.Entry
	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.FieldName, entry.OldValue, entry.NewValue, entry.ChangedBy,
	).Scan(
		&e.ID, &e.EmployeeID, &e.FieldName, &e.OldValue, &e.NewValue, &e.ChangedAt, &e.ChangedBy,
	)
	if err != nil {
		return history.Entry{}, fmt.Errorf("failed to create history entry: %w", err)
	}

	return e, nil
}

func (r *historyRepository) ListByEmployee(ctx context.Context, employeeID string) ([]history.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, field_name, old_value, new_value, changed_at, changed_by
		FROM employee_history
		WHERE employee_id = $1
		ORDER BY changed_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}
	defer rows.Close()

	var entries []history.Entry
	for rows.Next() {
		var e history.Entry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.FieldName, &e.OldValue, &e.NewValue, &e.ChangedAt, &e.ChangedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *historyRepository) LatestBaseSalary(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT new_value
		FROM employee_history
		WHERE employee_id = $1 AND field_name = $2
		ORDER BY changed_at DESC
		LIMIT 1
	`

	var raw string
	err := q.QueryRow(ctx, query, employeeID, history.FieldBaseSalary).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Decimal{}, history.ErrNoBaseSalary
		}
		return decimal.Decimal{}, fmt.Errorf("failed to get latest base salary: %w", err)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		// An unparseable history value is treated the same as no history;
		// the payroll service falls back to the default basic salary.
		return decimal.Decimal{}, history.ErrNoBaseSalary
	}

	return amount, nil
}
