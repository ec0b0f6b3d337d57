package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

// Allocator turns an approved leave request into per-day attendance records
// drawn from the employee's shared annual quota pool.
type Allocator struct {
	records attendance.Repository
}

func NewAllocator(records attendance.Repository) *Allocator {
	return &Allocator{records: records}
}

// Allocate upserts one record per non-weekend day of the request. Days that
// would push usage past the quota become unpaid_leave.
//
// Usage is recomputed from stored records and ignores the request's own
// range, so running Allocate again after a partial failure gives the same
// outcome.
func (a *Allocator) Allocate(ctx context.Context, request leave.LeaveRequest, settings policy.Settings) ([]attendance.Record, error) {
	quota := settings.QuotaFor(request.LeaveType)
	duration := request.LeaveDuration
	leaveType := request.LeaveType

	usedByYear := make(map[int]float64)
	var allocated []attendance.Record

	for _, day := range calendar.Range(request.StartDate, request.EndDate) {
		if settings.IsWeekend(day) {
			continue
		}

		used, ok := usedByYear[day.Year]
		if !ok {
			var err error
			used, err = a.records.SumLeaveDuration(ctx, request.EmployeeID, day.Year, request.StartDate, request.EndDate)
			if err != nil {
				return allocated, fmt.Errorf("failed to sum leave usage for %d: %w", day.Year, err)
			}
		}

		status := attendance.StatusLeave
		if used+duration > quota {
			status = attendance.StatusUnpaidLeave
		} else {
			used += duration
		}
		usedByYear[day.Year] = used

		record, err := a.records.Upsert(ctx, attendance.Record{
			EmployeeID:    request.EmployeeID,
			Date:          day,
			Status:        status,
			LeaveType:     &leaveType,
			LeaveDuration: duration,
		})
		if err != nil {
			return allocated, fmt.Errorf("failed to allocate leave on %s: %w", day, err)
		}
		allocated = append(allocated, record)
	}

	slog.Info("leave allocated",
		"leave_id", request.ID,
		"employee_id", request.EmployeeID,
		"days", len(allocated),
		"quota", quota,
	)
	return allocated, nil
}
