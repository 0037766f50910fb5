package leave

import "context"

type LeaveRepository interface {
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, organizationID, employeeID string) ([]LeaveRequest, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]LeaveRequest, error)
	// ListApproved returns only APPROVED requests for the organization,
	// the fact set the payroll calculator consumes.
	ListApproved(ctx context.Context, organizationID string) ([]LeaveRequest, error)
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
}
