package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

type Status string

const (
	StatusPresent     Status = "present"
	StatusLate        Status = "late"
	StatusHalfDay     Status = "half_day"
	StatusAbsent      Status = "absent"
	StatusLeave       Status = "leave"
	StatusUnpaidLeave Status = "unpaid_leave"
	StatusHoliday     Status = "holiday"
	StatusWeekend     Status = "weekend"
)

var Statuses = []Status{
	StatusPresent, StatusLate, StatusHalfDay, StatusAbsent,
	StatusLeave, StatusUnpaidLeave, StatusHoliday, StatusWeekend,
}

func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsLeave reports whether the status consumes (or overflows) the leave pool.
func (s Status) IsLeave() bool {
	return s == StatusLeave || s == StatusUnpaidLeave
}

// Record is the attendance of one employee on one calendar day. At most one
// stored record exists per (EmployeeID, Date).
type Record struct {
	ID               string
	EmployeeID       string
	Date             calendar.Day
	CheckIn          *time.Time
	CheckOut         *time.Time
	CheckInLocation  *policy.Location
	CheckOutLocation *policy.Location
	WorkingHours     float64
	OvertimeHours    float64
	Status           Status
	LeaveType        *string
	LeaveDuration    float64 // 0, 0.5 or 1

	// IsMissingRecord marks an entry synthesized for a read view. It is never persisted.
	IsMissingRecord bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Record) HasCheckedIn() bool {
	return r.CheckIn != nil
}

func (r Record) HasCheckedOut() bool {
	return r.CheckOut != nil
}
