package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2024, 3, 15), date(2024, 3, 15), 1},
		{"three days", date(2024, 3, 15), date(2024, 3, 17), 3},
		{"swapped arguments", date(2024, 3, 17), date(2024, 3, 15), 3},
		{"across month boundary", date(2024, 3, 30), date(2024, 4, 2), 4},
		{"two weeks", date(2024, 6, 1), date(2024, 6, 14), 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalDaysBetween(tt.start, tt.end))
		})
	}
}

func TestApproveStampsActor(t *testing.T) {
	l := &Leave{Status: StatusPending}
	at := time.Now()

	l.Approve("admin-1", at)

	assert.Equal(t, StatusApproved, l.Status)
	require.NotNil(t, l.ApprovedBy)
	assert.Equal(t, "admin-1", *l.ApprovedBy)
	require.NotNil(t, l.ApprovedAt)
	assert.Equal(t, at, *l.ApprovedAt)
}

func TestRejectDefaultsReason(t *testing.T) {
	l := &Leave{Status: StatusPending}

	l.Reject("hr-1", time.Now(), "")

	assert.Equal(t, StatusRejected, l.Status)
	require.NotNil(t, l.RejectionReason)
	assert.Equal(t, DefaultRejectionReason, *l.RejectionReason)
}

func TestRejectKeepsGivenReason(t *testing.T) {
	l := &Leave{Status: StatusPending}

	l.Reject("hr-1", time.Now(), "quota exhausted")

	require.NotNil(t, l.RejectionReason)
	assert.Equal(t, "quota exhausted", *l.RejectionReason)
}

func TestRepeatedTransitionOverwritesStamps(t *testing.T) {
	l := &Leave{Status: StatusPending}
	first := time.Now()
	second := first.Add(time.Hour)

	l.Approve("admin-1", first)
	l.Approve("admin-2", second)

	require.NotNil(t, l.ApprovedBy)
	assert.Equal(t, "admin-2", *l.ApprovedBy)
	assert.Equal(t, second, *l.ApprovedAt)

	// A later rejection stamps the rejection fields without clearing the
	// approval stamps; status reflects the last transition.
	l.Reject("hr-1", second, "changed plans")
	assert.Equal(t, StatusRejected, l.Status)
	assert.Equal(t, "admin-2", *l.ApprovedBy)
	require.NotNil(t, l.RejectedBy)
	assert.Equal(t, "hr-1", *l.RejectedBy)
}
