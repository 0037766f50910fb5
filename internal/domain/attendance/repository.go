package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	GetByEmployeeAndDate(ctx context.Context, organizationID, employeeID string, date time.Time) (Attendance, error)
	// ListByEmployeeAndRange returns records with from <= date <= to.
	ListByEmployeeAndRange(ctx context.Context, organizationID, employeeID string, from, to time.Time) ([]Attendance, error)
	Create(ctx context.Context, record Attendance) (Attendance, error)
	Update(ctx context.Context, record Attendance) (Attendance, error)
}
