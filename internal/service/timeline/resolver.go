package timeline

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

// DayContext is everything known about one employee on one day.
type DayContext struct {
	EmployeeID string
	Day        calendar.Day
	Settings   policy.Settings
	Record     *attendance.Record
	Holiday    *holiday.Holiday
	Leave      *leave.LeaveRequest
}

// Rule yields an entry when it applies to the day.
type Rule struct {
	Name  string
	Apply func(dc DayContext) (attendance.Record, bool)
}

// Resolver evaluates rules in order; the first one that applies decides the day.
type Resolver struct {
	rules []Rule
}

// DefaultRules: holiday, stored record, weekend, approved leave, absence.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "holiday", Apply: holidayRule},
		{Name: "stored_record", Apply: storedRecordRule},
		{Name: "weekend", Apply: weekendRule},
		{Name: "approved_leave", Apply: approvedLeaveRule},
		{Name: "absence", Apply: absenceRule},
	}
}

func NewResolver(rules ...Rule) *Resolver {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Resolver{rules: rules}
}

func (r *Resolver) Resolve(dc DayContext) attendance.Record {
	for _, rule := range r.rules {
		if entry, ok := rule.Apply(dc); ok {
			return entry
		}
	}
	return virtual(dc, attendance.StatusAbsent)
}

// A holiday only fills the day when nothing was logged on it.
func holidayRule(dc DayContext) (attendance.Record, bool) {
	if dc.Holiday == nil || dc.Record != nil {
		return attendance.Record{}, false
	}
	entry := virtual(dc, attendance.StatusHoliday)
	name := dc.Holiday.Name
	entry.LeaveType = &name
	return entry, true
}

func storedRecordRule(dc DayContext) (attendance.Record, bool) {
	if dc.Record == nil {
		return attendance.Record{}, false
	}
	return *dc.Record, true
}

func weekendRule(dc DayContext) (attendance.Record, bool) {
	if !dc.Settings.IsWeekend(dc.Day) {
		return attendance.Record{}, false
	}
	return virtual(dc, attendance.StatusWeekend), true
}

func approvedLeaveRule(dc DayContext) (attendance.Record, bool) {
	if dc.Leave == nil {
		return attendance.Record{}, false
	}
	status := attendance.StatusLeave
	if dc.Leave.IsHalfDay() {
		status = attendance.StatusHalfDay
	}
	entry := virtual(dc, status)
	leaveType := dc.Leave.LeaveType
	entry.LeaveType = &leaveType
	entry.LeaveDuration = dc.Leave.LeaveDuration
	return entry, true
}

// Today is treated like any past day: absent until a check-in is stored.
func absenceRule(dc DayContext) (attendance.Record, bool) {
	return virtual(dc, attendance.StatusAbsent), true
}

func virtual(dc DayContext, status attendance.Status) attendance.Record {
	return attendance.Record{
		EmployeeID:      dc.EmployeeID,
		Date:            dc.Day,
		Status:          status,
		IsMissingRecord: true,
	}
}
