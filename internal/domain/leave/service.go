package leave

import (
	"context"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
)

type LeaveService interface {
	Create(ctx context.Context, tc tenant.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)
	ListMine(ctx context.Context, tc tenant.Context) ([]LeaveRequestResponse, error)
	ListAll(ctx context.Context, tc tenant.Context) ([]LeaveRequestResponse, error)
	// UpdateStatus approves or rejects a PENDING request, recording the
	// approver. Processed requests are immutable.
	UpdateStatus(ctx context.Context, tc tenant.Context, requestID string, req UpdateStatusRequest) (LeaveRequestResponse, error)
}
