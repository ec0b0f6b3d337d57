package attendance

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

// Repository persists attendance records. Implementations enforce uniqueness
// on (employee, date).
type Repository interface {
	// Create returns ErrRecordConflict when a record already exists for the employee and day.
	Create(ctx context.Context, record Record) (Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate returns ErrRecordNotFound when nothing is logged for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, day calendar.Day) (Record, error)

	Update(ctx context.Context, record Record) (Record, error)

	// Upsert creates the record or, when one exists for the same day, overwrites
	// its status, leave type and leave duration.
	Upsert(ctx context.Context, record Record) (Record, error)

	// ListByEmployeeRange returns records in [start, end] ordered by date.
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end calendar.Day) ([]Record, error)

	ListByDate(ctx context.Context, day calendar.Day) ([]Record, error)

	// SumLeaveDuration totals LeaveDuration of leave and unpaid_leave records in
	// year, skipping days inside [excludeStart, excludeEnd] when both are set.
	SumLeaveDuration(ctx context.Context, employeeID string, year int, excludeStart, excludeEnd calendar.Day) (float64, error)
}
