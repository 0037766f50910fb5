package leave

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// LeaveRequest covers the inclusive date range [FromDate, ToDate].
type LeaveRequest struct {
	ID             string
	OrganizationID string
	EmployeeID     string
	FromDate       time.Time
	ToDate         time.Time
	Reason         *string
	Status         Status
	ApprovedBy     *string
	ApprovedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
