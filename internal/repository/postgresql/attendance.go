package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/attendance"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, organization_id, employee_id, date, check_in_time, check_out_time, status, notes, created_at, updated_at`

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, organizationID, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE organization_id = $1 AND employee_id = $2 AND date = $3
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, organizationID, employeeID, date).Scan(
		&a.ID, &a.OrganizationID, &a.EmployeeID, &a.Date, &a.CheckInTime, &a.CheckOutTime,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, organizationID, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE organization_id = $1 AND employee_id = $2 AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, organizationID, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.OrganizationID, &a.EmployeeID, &a.Date, &a.CheckInTime, &a.CheckOutTime,
			&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (organization_id, employee_id, date, check_in_time, check_out_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + attendanceColumns

	var a attendance.Attendance
	err := q.QueryRow(ctx, query,
		record.OrganizationID, record.EmployeeID, record.Date,
		record.CheckInTime, record.CheckOutTime, record.Status, record.Notes,
	).Scan(
		&a.ID, &a.OrganizationID, &a.EmployeeID, &a.Date, &a.CheckInTime, &a.CheckOutTime,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "uk_attendances_org_employee_date") {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in_time = $3, check_out_time = $4, status = $5, notes = $6, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
		RETURNING ` + attendanceColumns

	var a attendance.Attendance
	err := q.QueryRow(ctx, query,
		record.ID, record.OrganizationID,
		record.CheckInTime, record.CheckOutTime, record.Status, record.Notes,
	).Scan(
		&a.ID, &a.OrganizationID, &a.EmployeeID, &a.Date, &a.CheckInTime, &a.CheckOutTime,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return a, nil
}
