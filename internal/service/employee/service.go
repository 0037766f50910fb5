package employee

import (
	"context"
	"log/slog"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/employee"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/history"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	historyRepo  history.HistoryRepository
	logger       *slog.Logger
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	historyRepo history.HistoryRepository,
	logger *slog.Logger,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		historyRepo:  historyRepo,
		logger:       logger,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, tc tenant.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	record := employee.Employee{
		OrganizationID: tc.OrganizationID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		JobTitle:       req.JobTitle,
	}
	if req.HireDate != nil {
		hireDate, _ := validator.IsValidDate(*req.HireDate)
		record.HireDate = &hireDate
	}

	created, err := s.employeeRepo.Create(ctx, record)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.BaseSalary != nil {
		entry := history.Entry{
			EmployeeID: created.ID,
			FieldName:  history.FieldBaseSalary,
			NewValue:   *req.BaseSalary,
			ChangedBy:  &tc.UserID,
		}
		if _, err := s.historyRepo.Create(ctx, entry); err != nil {
			// The employee row exists; payroll falls back to the default
			// basic salary until an entry is recorded.
			s.logger.ErrorContext(ctx, "failed to record base salary",
				slog.String("employee_id", created.ID),
				slog.Any("error", err))
		}
	}

	s.logger.InfoContext(ctx, "employee created",
		slog.String("employee_id", created.ID),
		slog.String("organization_id", tc.OrganizationID))

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, tc tenant.Context, employeeID string) (employee.EmployeeResponse, error) {
	record, err := s.employeeRepo.GetByID(ctx, employeeID, tc.OrganizationID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(record), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, tc tenant.Context) ([]employee.EmployeeResponse, error) {
	records, err := s.employeeRepo.GetByOrganizationID(ctx, tc.OrganizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, employee.ToResponse(r))
	}
	return responses, nil
}
