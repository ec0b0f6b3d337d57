package leave

import (
	"context"
	"time"
)

type Service interface {
	Apply(ctx context.Context, req ApplyRequest) (LeaveRequest, error)

	// Approve allocates the request onto attendance records and marks it approved.
	Approve(ctx context.Context, leaveID, approverID string, now time.Time) (LeaveRequest, error)
	Reject(ctx context.Context, leaveID, approverID string, reason *string, now time.Time) (LeaveRequest, error)

	Get(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	Balance(ctx context.Context, employeeID string, year int) (Balance, error)
}
