package attendance

import (
	"time"

	"github.com/peopleops-dev/hr-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	CheckInTime *string `json:"check_in_time,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckInTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in_time", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out_time", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

const dateLayout = "2006-01-02"

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		Date:         a.Date.Format(dateLayout),
		CheckInTime:  formatTime(a.CheckInTime),
		CheckOutTime: formatTime(a.CheckOutTime),
		Status:       string(a.Status),
		Notes:        a.Notes,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
