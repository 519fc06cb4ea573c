package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrNotLeaveOwner    = errors.New("not authorized to access this leave request")
	ErrApprovalRequired = errors.New("admin or hr role required to process leave requests")
	ErrCrossEmployee    = errors.New("not authorized to create leave requests for other employees")
)
