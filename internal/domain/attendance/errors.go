package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("already checked in today, check out first")
	ErrAlreadyCheckedOut  = errors.New("already checked out today")
	ErrNoCheckIn          = errors.New("no check-in found for today")
)
