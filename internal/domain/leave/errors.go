package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed      = errors.New("leave request already processed")
	ErrLeaveRequestForbidden = errors.New("leave request belongs to another organization")
)
