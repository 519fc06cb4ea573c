package report

import (
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

type AttendanceReportRequest struct {
	StartDate string
	EndDate   string

	start time.Time
	end   time.Time
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if date, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	} else {
		r.start = date
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if date, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	} else {
		r.end = date
	}

	if !r.start.IsZero() && !r.end.IsZero() && r.end.Before(r.start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Range returns the parsed inclusive date range. Valid only after Validate.
func (r *AttendanceReportRequest) Range() (time.Time, time.Time) {
	return r.start, r.end
}
