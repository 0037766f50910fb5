package response

import (
	"errors"
	"net/http"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/attendance"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/auth"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/employee"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/leave"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/organization"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/payroll"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/user"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth / identity errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, tenant.ErrNoOrganization):
		Unauthorized(w, "Token carries no organization")
	case errors.Is(err, tenant.ErrInvalidEmployee):
		Unauthorized(w, "Invalid employee reference in token")
	case errors.Is(err, tenant.ErrEmployeeRequired):
		Forbidden(w, "Account is not linked to an employee")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Organization errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrNameExists):
		Conflict(w, "Organization name already taken")

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this organization")
	case errors.Is(err, employee.ErrNoEmployeesInOrg):
		BadRequest(w, "Organization has no employees", nil)

	// Attendance errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "Already checked in today, check out first", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, "Already checked out today", nil)
	case errors.Is(err, attendance.ErrNoCheckIn):
		BadRequest(w, "No check-in found for today", nil)

	// Leave errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveRequestForbidden):
		Forbidden(w, "Leave request belongs to another organization")

	// Payroll errors
	case errors.Is(err, payroll.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrSalaryForbidden):
		Forbidden(w, "Salary record belongs to another organization")
	case errors.Is(err, payroll.ErrSalaryAlreadyPaid):
		BadRequest(w, "Salary record is already paid", nil)
	case errors.Is(err, payroll.ErrSalaryExists):
		Conflict(w, "Salary record already exists for this period")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
