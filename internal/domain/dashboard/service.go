package dashboard

import (
	"context"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
)

type Service interface {
	// Stats recomputes the full snapshot on every call.
	Stats(ctx context.Context, caller auth.Caller) (*StatsResponse, error)

	// Activities merges the newest candidates and leave requests into one
	// feed, newest first, truncated to the top 10.
	Activities(ctx context.Context, caller auth.Caller) ([]*Activity, error)
}
