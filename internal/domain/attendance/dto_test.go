package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

func TestUpsertAttendanceRequestValidate(t *testing.T) {
	req := &UpsertAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-15",
		Status:     "Present",
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), req.ParsedDate())
}

func TestUpsertAttendanceRequestValidateReportsMissingFields(t *testing.T) {
	req := &UpsertAttendanceRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.ElementsMatch(t, []string{"employee_id", "date", "status"}, errs.Fields())
}

func TestUpsertAttendanceRequestValidateRejectsUnknownStatus(t *testing.T) {
	req := &UpsertAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-15",
		Status:     "Vacation",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"status"}, errs.Fields())
}

func TestBulkTaskRequestValidateRequiresTask(t *testing.T) {
	req := &BulkTaskRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"task"}, errs.Fields())
}

func TestBulkTaskRequestDateDefaultsToToday(t *testing.T) {
	req := &BulkTaskRequest{Task: "Prepare quarterly review"}

	require.NoError(t, req.Validate())

	now := time.Now()
	parsed := req.ParsedDate()
	assert.Equal(t, now.Year(), parsed.Year())
	assert.Equal(t, now.YearDay(), parsed.YearDay())
}

func TestBulkTaskRequestEmptyTargetsAreAllowed(t *testing.T) {
	req := &BulkTaskRequest{Task: "Standup notes", Date: "2024-03-15"}

	require.NoError(t, req.Validate())
	assert.Empty(t, req.EmployeeIDs)
}

func TestBulkTaskResultSummarize(t *testing.T) {
	result := &BulkTaskResult{Updated: 2, Created: 3, Failed: 1, Total: 6}

	result.Summarize()

	assert.Equal(t, "Task assigned to 5 employees (2 updated, 3 created, 1 failed)", result.Message)
}
