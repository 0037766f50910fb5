package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/employee"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, organization_id, first_name, last_name, email, job_title, hire_date, created_at, updated_at`

func (r *employeeRepository) GetByID(ctx context.Context, id string, organizationID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND organization_id = $2`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&e.ID, &e.OrganizationID, &e.FirstName, &e.LastName, &e.Email, &e.JobTitle, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByOrganizationID(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE organization_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.OrganizationID, &e.FirstName, &e.LastName, &e.Email, &e.JobTitle, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (organization_id, first_name, last_name, email, job_title, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + employeeColumns

	var e employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.OrganizationID, newEmployee.FirstName, newEmployee.LastName,
		newEmployee.Email, newEmployee.JobTitle, newEmployee.HireDate,
	).Scan(
		&e.ID, &e.OrganizationID, &e.FirstName, &e.LastName, &e.Email, &e.JobTitle, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "uk_employees_org_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}
