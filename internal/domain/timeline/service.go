package timeline

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

// MaxRangeDays bounds a single GetRange query.
const MaxRangeDays = 366

type Service interface {
	GetRange(ctx context.Context, employeeID string, start, end calendar.Day) (Timeline, error)
	GetMonth(ctx context.Context, employeeID string, year int, month time.Month) (Timeline, error)
	GetDay(ctx context.Context, employeeID string, day calendar.Day) (attendance.Record, error)
}
