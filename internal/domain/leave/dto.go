package leave

import (
	"time"

	"github.com/peopleops-dev/hr-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	FromDate string  `json:"from_date"`
	ToDate   string  `json:"to_date"`
	Reason   *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "cannot be after to_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be APPROVED or REJECTED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	FromDate   string  `json:"from_date"`
	ToDate     string  `json:"to_date"`
	Reason     *string `json:"reason,omitempty"`
	Status     string  `json:"status"`
	ApprovedBy *string `json:"approved_by,omitempty"`
	ApprovedAt *string `json:"approved_at,omitempty"`
}

func ToResponse(l LeaveRequest) LeaveRequestResponse {
	var approvedAt *string
	if l.ApprovedAt != nil {
		s := l.ApprovedAt.Format(time.RFC3339)
		approvedAt = &s
	}

	return LeaveRequestResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		FromDate:   l.FromDate.Format("2006-01-02"),
		ToDate:     l.ToDate.Format("2006-01-02"),
		Reason:     l.Reason,
		Status:     string(l.Status),
		ApprovedBy: l.ApprovedBy,
		ApprovedAt: approvedAt,
	}
}
