package response

import (
	"errors"
	"net/http"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/candidate"
	"github.com/peoplehub/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrm-backend-go/internal/domain/notification"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "Admin or HR access required")
	case errors.Is(err, user.ErrNoLinkedEmployee):
		BadRequest(w, "No employee profile linked to this account", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, "Invalid employee id", nil)
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Employee email already registered")

	// Candidate domain errors
	case errors.Is(err, candidate.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, candidate.ErrResumeNotFound):
		NotFound(w, "Candidate has no resume on file")
	case errors.Is(err, candidate.ErrEmailExists):
		Conflict(w, "Candidate email already registered")
	case errors.Is(err, candidate.ErrAlreadyConverted):
		Conflict(w, "Candidate has already been converted to an employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDay):
		Conflict(w, "Attendance already recorded for this employee and date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrNotLeaveOwner):
		Forbidden(w, "Not authorized to access this leave request")
	case errors.Is(err, leave.ErrApprovalRequired):
		Forbidden(w, "Admin or HR role required to process leave requests")
	case errors.Is(err, leave.ErrCrossEmployee):
		Forbidden(w, "Not authorized to create leave requests for other employees")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotRecipient):
		Forbidden(w, "Not authorized to access this notification")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
