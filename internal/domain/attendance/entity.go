package attendance

import "time"

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPresent Status = "PRESENT"
)

// Attendance is one employee's record for one calendar date. At most one
// exists per (organization, employee, date); re-check-in after a completed
// day reopens the same record rather than creating a second one.
type Attendance struct {
	ID             string
	OrganizationID string
	EmployeeID     string
	Date           time.Time
	CheckInTime    *time.Time
	CheckOutTime   *time.Time
	Status         Status
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
