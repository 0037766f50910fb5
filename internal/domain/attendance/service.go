package attendance

import (
	"context"
	"time"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
)

type AttendanceService interface {
	// CheckIn opens today's record for the calling employee. A second
	// check-in on an open record fails; a check-in after checking out
	// reopens the existing record.
	CheckIn(ctx context.Context, tc tenant.Context, req CheckInRequest) (AttendanceResponse, error)
	// CheckOut closes today's open record and marks it PRESENT.
	CheckOut(ctx context.Context, tc tenant.Context, req CheckOutRequest) (AttendanceResponse, error)
	ListMine(ctx context.Context, tc tenant.Context, from, to time.Time) ([]AttendanceResponse, error)
}
