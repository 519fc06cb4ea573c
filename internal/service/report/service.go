package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/peoplehub/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/report"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
)

type reportService struct {
	attendanceRepo attendance.Repository
}

// NewReportService creates a new report service
func NewReportService(attendanceRepo attendance.Repository) report.Service {
	return &reportService{
		attendanceRepo: attendanceRepo,
	}
}

func (s *reportService) AttendanceWorkbook(ctx context.Context, caller auth.Caller, req *report.AttendanceReportRequest) ([]byte, string, error) {
	if !caller.CanManageOthers() {
		return nil, "", user.ErrHRAccessRequired
	}

	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	start, end := req.Range()
	rangeStart, _ := attendance.DayWindow(start)
	_, rangeEnd := attendance.DayWindow(end)

	records, err := s.attendanceRepo.ListRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Employee", "Department", "Position", "Status", "Check In", "Check Out", "Task"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, a := range records {
		row := i + 2
		values := []interface{}{
			a.Date.Format("2006-01-02"),
			deref(a.EmployeeName),
			deref(a.EmployeeDepartment),
			deref(a.EmployeePosition),
			string(a.Status),
			deref(a.CheckIn),
			deref(a.CheckOut),
			deref(a.Task),
		}
		for j, v := range values {
			cell := fmt.Sprintf("%c%d", 'A'+j, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance-%s-%s.xlsx", start.Format("2006-01-02"), end.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
