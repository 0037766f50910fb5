package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/payroll"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `id, employee_id, organization_id, month, year, basic_salary, bonus, deductions, total, status, paid_at, created_at, updated_at`

func (r *salaryRepository) scanRow(row pgx.Row) (payroll.Salary, error) {
	var s payroll.Salary
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.OrganizationID, &s.Month, &s.Year,
		&s.BasicSalary, &s.Bonus, &s.Deductions, &s.Total,
		&s.Status, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetByID is deliberately not organization-scoped: the service needs the
// record's owner to distinguish a cross-tenant access attempt (Forbidden)
// from a missing record (NotFound).
func (r *salaryRepository) GetByID(ctx context.Context, id string) (payroll.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE id = $1`

	s, err := r.scanRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Salary{}, payroll.ErrSalaryNotFound
		}
		return payroll.Salary{}, fmt.Errorf("failed to get salary: %w", err)
	}

	return s, nil
}

func (r *salaryRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (payroll.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE employee_id = $1 AND month = $2 AND year = $3`

	s, err := r.scanRow(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Salary{}, payroll.ErrSalaryNotFound
		}
		return payroll.Salary{}, fmt.Errorf("failed to get salary by period: %w", err)
	}

	return s, nil
}

func (r *salaryRepository) list(ctx context.Context, query string, args ...interface{}) ([]payroll.Salary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	var salaries []payroll.Salary
	for rows.Next() {
		var s payroll.Salary
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.OrganizationID, &s.Month, &s.Year,
			&s.BasicSalary, &s.Bonus, &s.Deductions, &s.Total,
			&s.Status, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries = append(salaries, s)
	}

	return salaries, rows.Err()
}

func (r *salaryRepository) ListByEmployee(ctx context.Context, organizationID, employeeID string) ([]payroll.Salary, error) {
	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE organization_id = $1 AND employee_id = $2 ORDER BY year DESC, month DESC`
	return r.list(ctx, query, organizationID, employeeID)
}

func (r *salaryRepository) ListByOrganization(ctx context.Context, organizationID string) ([]payroll.Salary, error) {
	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE organization_id = $1 ORDER BY year DESC, month DESC, created_at`
	return r.list(ctx, query, organizationID)
}

func (r *salaryRepository) Insert(ctx context.Context, record payroll.Salary) (payroll.Salary, error) {
	q := GetQuerier(ctx, r.db)

	// The total column is written explicitly rather than computed in SQL so
	// the stored value always matches the decimal arithmetic performed by
	// the compensation engine.
	query := `
		INSERT INTO salaries (employee_id, organization_id, month, year, basic_salary, bonus, deductions, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + salaryColumns

	s, err := r.scanRow(q.QueryRow(ctx, query,
		record.EmployeeID, record.OrganizationID, record.Month, record.Year,
		record.BasicSalary, record.Bonus, record.Deductions, record.Total, record.Status,
	))
	if err != nil {
		if isUniqueViolation(err, "uk_salaries_employee_period") {
			return payroll.Salary{}, payroll.ErrSalaryExists
		}
		return payroll.Salary{}, fmt.Errorf("failed to insert salary: %w", err)
	}

	return s, nil
}

func (r *salaryRepository) Update(ctx context.Context, record payroll.Salary) (payroll.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salaries
		SET basic_salary = $3, bonus = $4, deductions = $5, total = $6, status = $7, paid_at = $8, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
		RETURNING ` + salaryColumns

	s, err := r.scanRow(q.QueryRow(ctx, query,
		record.ID, record.OrganizationID,
		record.BasicSalary, record.Bonus, record.Deductions, record.Total,
		record.Status, record.PaidAt,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Salary{}, payroll.ErrSalaryNotFound
		}
		return payroll.Salary{}, fmt.Errorf("failed to update salary: %w", err)
	}

	return s, nil
}
