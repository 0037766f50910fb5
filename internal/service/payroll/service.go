package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/attendance"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/employee"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/history"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/leave"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/payroll"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	salaryRepo     payroll.SalaryRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	historyRepo    history.HistoryRepository
	logger         *slog.Logger
	now            func() time.Time
}

func NewPayrollService(
	salaryRepo payroll.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	historyRepo history.HistoryRepository,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		salaryRepo:     salaryRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		historyRepo:    historyRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// Calculate runs payroll generation for one (organization, month, year).
// Each employee's record is created independently: a failure mid-run leaves
// records created for earlier employees in place, and re-running picks up
// where the failed run left off (generation is idempotent per employee).
func (s *PayrollServiceImpl) Calculate(ctx context.Context, tc tenant.Context, req payroll.CalculateSalaryRequest) ([]payroll.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetByOrganizationID(ctx, tc.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(employees) == 0 {
		return nil, employee.ErrNoEmployeesInOrg
	}

	// Approved leave is fetched once per run; the overlap computation
	// below narrows it to each employee's requests.
	approvedLeaves, err := s.leaveRepo.ListApproved(ctx, tc.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}
	leavesByEmployee := make(map[string][]leave.LeaveRequest, len(employees))
	for _, l := range approvedLeaves {
		leavesByEmployee[l.EmployeeID] = append(leavesByEmployee[l.EmployeeID], l)
	}

	start, end := periodWindow(req.Month, req.Year)

	results := make([]payroll.SalaryResponse, 0, len(employees))
	for _, emp := range employees {
		_, err := s.salaryRepo.GetByEmployeeAndPeriod(ctx, emp.ID, req.Month, req.Year)
		if err == nil {
			s.logger.Info("salary already exists, skipping",
				"employee_id", emp.ID, "month", req.Month, "year", req.Year)
			continue
		}
		if !errors.Is(err, payroll.ErrSalaryNotFound) {
			return nil, fmt.Errorf("failed to check existing salary: %w", err)
		}

		basicSalary := s.resolveBasicSalary(ctx, emp.ID)

		attendances, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, tc.OrganizationID, emp.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance for employee %s: %w", emp.ID, err)
		}

		stats := computeStats(attendances, leavesByEmployee[emp.ID], req.Month, req.Year)
		bonus := computeBonus(basicSalary, stats)
		deductions := computeDeductions(basicSalary, stats)

		record := payroll.Salary{
			EmployeeID:     emp.ID,
			OrganizationID: tc.OrganizationID,
			Month:          req.Month,
			Year:           req.Year,
			BasicSalary:    basicSalary,
			Bonus:          bonus,
			Deductions:     deductions,
			Status:         payroll.StatusPending,
		}
		record.RecalculateTotal()

		created, err := s.salaryRepo.Insert(ctx, record)
		if err != nil {
			// A concurrent generation run inserted the record between the
			// existence check and our insert; treat as already generated.
			if errors.Is(err, payroll.ErrSalaryExists) {
				continue
			}
			return nil, fmt.Errorf("failed to insert salary for employee %s: %w", emp.ID, err)
		}

		s.logger.Info("created salary record",
			"salary_id", created.ID, "employee_id", emp.ID,
			"unpaid_days", stats.UnpaidDays, "total", created.Total)

		name := emp.FullName()
		results = append(results, payroll.ToResponse(created, &name))
	}

	return results, nil
}

// resolveBasicSalary reads the employee's latest recorded base salary,
// falling back to the default when there is no history.
func (s *PayrollServiceImpl) resolveBasicSalary(ctx context.Context, employeeID string) decimal.Decimal {
	amount, err := s.historyRepo.LatestBaseSalary(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, history.ErrNoBaseSalary) {
			s.logger.Warn("failed to read base salary history, using default",
				"employee_id", employeeID, "error", err)
		}
		return defaultBasicSalary
	}
	return amount
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, tc tenant.Context, salaryID string) (payroll.SalaryResponse, error) {
	record, err := s.salaryRepo.GetByID(ctx, salaryID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	// Ownership is checked before the status so a cross-tenant caller
	// cannot learn whether a foreign record is paid.
	if record.OrganizationID != tc.OrganizationID {
		return payroll.SalaryResponse{}, payroll.ErrSalaryForbidden
	}

	if record.Status == payroll.StatusPaid {
		return payroll.SalaryResponse{}, payroll.ErrSalaryAlreadyPaid
	}

	now := s.now()
	record.Status = payroll.StatusPaid
	record.PaidAt = &now
	record.UpdatedAt = now

	updated, err := s.salaryRepo.Update(ctx, record)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	s.logger.Info("salary marked as paid", "salary_id", updated.ID)

	return payroll.ToResponse(updated, s.employeeName(ctx, tc, updated.EmployeeID)), nil
}

func (s *PayrollServiceImpl) GetByID(ctx context.Context, tc tenant.Context, salaryID string) (payroll.SalaryResponse, error) {
	record, err := s.salaryRepo.GetByID(ctx, salaryID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}
	if record.OrganizationID != tc.OrganizationID {
		return payroll.SalaryResponse{}, payroll.ErrSalaryForbidden
	}

	return payroll.ToResponse(record, s.employeeName(ctx, tc, record.EmployeeID)), nil
}

func (s *PayrollServiceImpl) ListMine(ctx context.Context, tc tenant.Context) ([]payroll.SalaryResponse, error) {
	if !tc.HasEmployee() {
		return []payroll.SalaryResponse{}, nil
	}

	records, err := s.salaryRepo.ListByEmployee(ctx, tc.OrganizationID, tc.EmployeeID)
	if err != nil {
		return nil, err
	}

	return s.toResponses(ctx, tc, records), nil
}

func (s *PayrollServiceImpl) ListAll(ctx context.Context, tc tenant.Context) ([]payroll.SalaryResponse, error) {
	records, err := s.salaryRepo.ListByOrganization(ctx, tc.OrganizationID)
	if err != nil {
		return nil, err
	}

	return s.toResponses(ctx, tc, records), nil
}

func (s *PayrollServiceImpl) toResponses(ctx context.Context, tc tenant.Context, records []payroll.Salary) []payroll.SalaryResponse {
	result := make([]payroll.SalaryResponse, 0, len(records))
	for _, r := range records {
		result = append(result, payroll.ToResponse(r, s.employeeName(ctx, tc, r.EmployeeID)))
	}
	return result
}

// employeeName is best-effort display enrichment; a missing roster entry
// never fails the payroll operation itself.
func (s *PayrollServiceImpl) employeeName(ctx context.Context, tc tenant.Context, employeeID string) *string {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, tc.OrganizationID)
	if err != nil {
		return nil
	}
	name := emp.FullName()
	return &name
}
