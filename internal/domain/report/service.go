package report

import (
	"context"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
)

type Service interface {
	// AttendanceWorkbook renders the attendance records of the requested
	// range into an xlsx workbook and returns its bytes with a suggested
	// filename.
	AttendanceWorkbook(ctx context.Context, caller auth.Caller, req *AttendanceReportRequest) ([]byte, string, error)
}
