package timeline

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/timeline"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type TimelineServiceImpl struct {
	records   attendance.Repository
	employees employee.EmployeeRepository
	holidays  holiday.HolidayRepository
	leaves    leave.Repository
	settings  policy.SettingsRepository
	resolver  *Resolver
}

func NewTimelineService(
	records attendance.Repository,
	employees employee.EmployeeRepository,
	holidays holiday.HolidayRepository,
	leaves leave.Repository,
	settings policy.SettingsRepository,
	resolver *Resolver,
) timeline.Service {
	if resolver == nil {
		resolver = NewResolver()
	}
	return &TimelineServiceImpl{
		records:   records,
		employees: employees,
		holidays:  holidays,
		leaves:    leaves,
		settings:  settings,
		resolver:  resolver,
	}
}

// GetRange implements timeline.Service.
func (s *TimelineServiceImpl) GetRange(ctx context.Context, employeeID string, start, end calendar.Day) (timeline.Timeline, error) {
	if end.Before(start) {
		return timeline.Timeline{}, timeline.ErrInvalidRange
	}
	if calendar.DaysBetween(start, end) > timeline.MaxRangeDays {
		return timeline.Timeline{}, timeline.ErrRangeTooLong
	}

	var (
		emp      employee.Employee
		settings policy.Settings
		records  []attendance.Record
		holidays []holiday.Holiday
		leaves   []leave.LeaveRequest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emp, err = s.employees.GetByID(gctx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = policy.Load(gctx, s.settings)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.records.ListByEmployeeRange(gctx, employeeID, start, end)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		holidays, err = s.holidays.ListBetween(gctx, start, end)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaves.ListApprovedBetween(gctx, employeeID, start, end)
		if err != nil {
			return fmt.Errorf("failed to list approved leave: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return timeline.Timeline{}, err
	}

	result := timeline.Timeline{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		Start:        start,
		End:          end,
	}

	first := start
	if !emp.JoiningDate.IsZero() {
		first = calendar.Max(start, emp.JoiningDate)
	}
	if first.After(end) {
		result.Summary = summarize(nil)
		return result, nil
	}

	recordByDay := make(map[calendar.Day]attendance.Record, len(records))
	for _, r := range records {
		recordByDay[r.Date] = r
	}
	holidayByDay := holiday.ByDay(holidays)

	days := calendar.Range(first, end)
	entries := make([]attendance.Record, 0, len(days))
	for _, day := range days {
		dc := DayContext{EmployeeID: emp.ID, Day: day, Settings: settings}
		if r, ok := recordByDay[day]; ok {
			dc.Record = &r
		}
		if h, ok := holidayByDay[day]; ok {
			dc.Holiday = &h
		}
		for i := range leaves {
			if leaves[i].Covers(day) {
				dc.Leave = &leaves[i]
				break
			}
		}
		entries = append(entries, s.resolver.Resolve(dc))
	}

	result.Entries = entries
	result.Summary = summarize(entries)
	return result, nil
}

// GetMonth implements timeline.Service.
func (s *TimelineServiceImpl) GetMonth(ctx context.Context, employeeID string, year int, month time.Month) (timeline.Timeline, error) {
	start, end := calendar.MonthBounds(year, month)
	return s.GetRange(ctx, employeeID, start, end)
}

// GetDay implements timeline.Service.
func (s *TimelineServiceImpl) GetDay(ctx context.Context, employeeID string, day calendar.Day) (attendance.Record, error) {
	t, err := s.GetRange(ctx, employeeID, day, day)
	if err != nil {
		return attendance.Record{}, err
	}
	if len(t.Entries) == 0 {
		return attendance.Record{}, timeline.ErrBeforeJoining
	}
	return t.Entries[0], nil
}

func summarize(entries []attendance.Record) timeline.Summary {
	summary := timeline.Summary{
		Days:     len(entries),
		ByStatus: make(map[attendance.Status]int),
	}
	var working, overtime float64
	for _, e := range entries {
		summary.ByStatus[e.Status]++
		working += e.WorkingHours
		overtime += e.OvertimeHours
	}
	summary.WorkingHours = utils.RoundHours(working)
	summary.OvertimeHours = utils.RoundHours(overtime)
	return summary
}
