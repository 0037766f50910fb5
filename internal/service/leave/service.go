package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/leave"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
	logger    *slog.Logger
	now       func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRepository, logger *slog.Logger) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo: leaveRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *LeaveServiceImpl) Create(ctx context.Context, tc tenant.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if !tc.HasEmployee() {
		return leave.LeaveRequestResponse{}, tenant.ErrEmployeeRequired
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	from, _ := validator.IsValidDate(req.FromDate)
	to, _ := validator.IsValidDate(req.ToDate)

	record := leave.LeaveRequest{
		OrganizationID: tc.OrganizationID,
		EmployeeID:     tc.EmployeeID,
		FromDate:       from,
		ToDate:         to,
		Reason:         req.Reason,
		Status:         leave.StatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, record)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.logger.InfoContext(ctx, "leave request created",
		slog.String("leave_request_id", created.ID),
		slog.String("employee_id", tc.EmployeeID))

	return leave.ToResponse(created), nil
}

func (s *LeaveServiceImpl) ListMine(ctx context.Context, tc tenant.Context) ([]leave.LeaveRequestResponse, error) {
	if !tc.HasEmployee() {
		return []leave.LeaveRequestResponse{}, nil
	}

	records, err := s.leaveRepo.ListByEmployee(ctx, tc.OrganizationID, tc.EmployeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

func (s *LeaveServiceImpl) ListAll(ctx context.Context, tc tenant.Context) ([]leave.LeaveRequestResponse, error) {
	records, err := s.leaveRepo.ListByOrganization(ctx, tc.OrganizationID)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, tc tenant.Context, requestID string, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	record, err := s.leaveRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if record.OrganizationID != tc.OrganizationID {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestForbidden
	}
	if record.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := s.now()
	record.Status = leave.Status(req.Status)
	record.ApprovedBy = &tc.UserID
	record.ApprovedAt = &now
	record.UpdatedAt = now

	updated, err := s.leaveRepo.Update(ctx, record)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.logger.InfoContext(ctx, "leave request processed",
		slog.String("leave_request_id", updated.ID),
		slog.String("status", string(updated.Status)))

	return leave.ToResponse(updated), nil
}

func toResponses(records []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, leave.ToResponse(r))
	}
	return responses
}
