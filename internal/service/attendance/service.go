package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/attendance"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	logger         *slog.Logger
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, logger *slog.Logger) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, tc tenant.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if !tc.HasEmployee() {
		return attendance.AttendanceResponse{}, tenant.ErrEmployeeRequired
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	checkIn := s.now()
	if req.CheckInTime != nil {
		checkIn, _ = validator.IsValidDateTime(*req.CheckInTime)
	}
	date := truncateToDay(checkIn)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, tc.OrganizationID, tc.EmployeeID, date)
	switch {
	case err == nil:
		if existing.CheckOutTime == nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		// Re-check-in after a completed day reopens the same record.
		existing.CheckInTime = &checkIn
		existing.CheckOutTime = nil
		existing.Status = attendance.StatusPending
		if req.Notes != nil {
			existing.Notes = req.Notes
		}
		existing.UpdatedAt = s.now()
		updated, err := s.attendanceRepo.Update(ctx, existing)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		s.logger.InfoContext(ctx, "attendance reopened",
			slog.String("employee_id", tc.EmployeeID),
			slog.String("date", date.Format("2006-01-02")))
		return attendance.ToResponse(updated), nil

	case errors.Is(err, attendance.ErrAttendanceNotFound):
		record := attendance.Attendance{
			OrganizationID: tc.OrganizationID,
			EmployeeID:     tc.EmployeeID,
			Date:           date,
			CheckInTime:    &checkIn,
			Status:         attendance.StatusPending,
			Notes:          req.Notes,
		}
		created, err := s.attendanceRepo.Create(ctx, record)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.ToResponse(created), nil

	default:
		return attendance.AttendanceResponse{}, err
	}
}

func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, tc tenant.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if !tc.HasEmployee() {
		return attendance.AttendanceResponse{}, tenant.ErrEmployeeRequired
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	checkOut := s.now()
	if req.CheckOutTime != nil {
		checkOut, _ = validator.IsValidDateTime(*req.CheckOutTime)
	}
	date := truncateToDay(checkOut)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, tc.OrganizationID, tc.EmployeeID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNoCheckIn
		}
		return attendance.AttendanceResponse{}, err
	}
	if record.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOutTime = &checkOut
	record.Status = attendance.StatusPresent
	if req.Notes != nil {
		record.Notes = req.Notes
	}
	record.UpdatedAt = s.now()

	updated, err := s.attendanceRepo.Update(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(updated), nil
}

func (s *AttendanceServiceImpl) ListMine(ctx context.Context, tc tenant.Context, from, to time.Time) ([]attendance.AttendanceResponse, error) {
	if !tc.HasEmployee() {
		return []attendance.AttendanceResponse{}, nil
	}

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, tc.OrganizationID, tc.EmployeeID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
