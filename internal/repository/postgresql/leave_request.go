package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/leave"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `id, organization_id, employee_id, from_date, to_date, reason, status, approved_by, approved_at, created_at, updated_at`

func (r *leaveRepository) scanRow(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID, &l.OrganizationID, &l.EmployeeID, &l.FromDate, &l.ToDate, &l.Reason,
		&l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	l, err := r.scanRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		if err := rows.Scan(
			&l.ID, &l.OrganizationID, &l.EmployeeID, &l.FromDate, &l.ToDate, &l.Reason,
			&l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}

	return requests, rows.Err()
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, organizationID, employeeID string) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE organization_id = $1 AND employee_id = $2 ORDER BY created_at DESC`
	return r.list(ctx, query, organizationID, employeeID)
}

func (r *leaveRepository) ListByOrganization(ctx context.Context, organizationID string) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE organization_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, organizationID)
}

func (r *leaveRepository) ListApproved(ctx context.Context, organizationID string) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE organization_id = $1 AND status = $2 ORDER BY from_date`
	return r.list(ctx, query, organizationID, leave.StatusApproved)
}

func (r *leaveRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (organization_id, employee_id, from_date, to_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leaveColumns

	l, err := r.scanRow(q.QueryRow(ctx, query,
		request.OrganizationID, request.EmployeeID, request.FromDate, request.ToDate, request.Reason, request.Status,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) Update(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $3, approved_by = $4, approved_at = $5, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
		RETURNING ` + leaveColumns

	l, err := r.scanRow(q.QueryRow(ctx, query,
		request.ID, request.OrganizationID, request.Status, request.ApprovedBy, request.ApprovedAt,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return l, nil
}
