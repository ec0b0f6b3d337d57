package leave

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

type Repository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Update(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// ListByEmployee returns the employee's requests, newest start date first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// HasOverlap reports whether a pending or approved request of the employee
	// intersects [start, end].
	HasOverlap(ctx context.Context, employeeID string, start, end calendar.Day) (bool, error)

	// ListApprovedBetween returns approved requests intersecting [start, end].
	// An empty employeeID matches every employee.
	ListApprovedBetween(ctx context.Context, employeeID string, start, end calendar.Day) ([]LeaveRequest, error)
}
