package employee_dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	empDashboard "github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee_dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/timeline"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type EmployeeDashboardServiceImpl struct {
	timelines timeline.Service
	leaves    leave.Service
}

func NewEmployeeDashboardService(timelines timeline.Service, leaves leave.Service) empDashboard.EmployeeDashboardService {
	return &EmployeeDashboardServiceImpl{
		timelines: timelines,
		leaves:    leaves,
	}
}

// GetDashboard implements empDashboard.EmployeeDashboardService.
func (s *EmployeeDashboardServiceImpl) GetDashboard(ctx context.Context, employeeID string, day calendar.Day) (*empDashboard.EmployeeDashboardResponse, error) {
	monthStart := calendar.New(day.Year, day.Month, 1)

	var (
		tl      timeline.Timeline
		balance leave.Balance
	)

	g, gctx := errgroup.WithContext(ctx)

	// 1. Month-to-date timeline
	g.Go(func() error {
		var err error
		tl, err = s.timelines.GetRange(gctx, employeeID, monthStart, day)
		return err
	})

	// 2. Leave balance for the year
	g.Go(func() error {
		var err error
		balance, err = s.leaves.Balance(gctx, employeeID, day.Year)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build employee dashboard: %w", err)
	}

	resp := &empDashboard.EmployeeDashboardResponse{
		EmployeeID:        tl.EmployeeID,
		EmployeeName:      tl.EmployeeName,
		WorkStats:         workStats(tl),
		AttendanceSummary: attendanceSummary(tl),
		LeaveSummary:      leaveSummary(balance),
	}
	if n := len(tl.Entries); n > 0 && tl.Entries[n-1].Date == day {
		today := attendance.NewRecordResponse(tl.Entries[n-1])
		resp.Today = &today
	}
	return resp, nil
}

func workStats(tl timeline.Timeline) empDashboard.WorkStatsResponse {
	minutes := int64(math.Round(tl.Summary.WorkingHours * 60))
	return empDashboard.WorkStatsResponse{
		WorkHours:     formatWorkHours(minutes),
		WorkMinutes:   minutes,
		OvertimeHours: utils.RoundHours(tl.Summary.OvertimeHours),
		OnTimeCount:   int64(tl.Summary.ByStatus[attendance.StatusPresent]),
		LateCount:     int64(tl.Summary.ByStatus[attendance.StatusLate]),
		HalfDayCount:  int64(tl.Summary.ByStatus[attendance.StatusHalfDay]),
		AbsentCount:   int64(tl.Summary.ByStatus[attendance.StatusAbsent]),
		StartDate:     tl.Start.String(),
		EndDate:       tl.End.String(),
	}
}

func attendanceSummary(tl timeline.Timeline) empDashboard.AttendanceSummaryResponse {
	by := tl.Summary.ByStatus
	leaveDays := int64(by[attendance.StatusLeave] + by[attendance.StatusUnpaidLeave])
	summary := empDashboard.AttendanceSummaryResponse{
		WorkingDays: int64(tl.Summary.Days - by[attendance.StatusWeekend] - by[attendance.StatusHoliday]),
		OnTime:      int64(by[attendance.StatusPresent]),
		Late:        int64(by[attendance.StatusLate]),
		HalfDay:     int64(by[attendance.StatusHalfDay]),
		Absent:      int64(by[attendance.StatusAbsent]),
		LeaveCount:  leaveDays,
		Month:       fmt.Sprintf("%04d-%02d", tl.End.Year, int(tl.End.Month)),
	}

	summary.OnTimePercent = percent(summary.OnTime, summary.WorkingDays)
	summary.LatePercent = percent(summary.Late, summary.WorkingDays)
	summary.AbsentPercent = percent(summary.Absent, summary.WorkingDays)
	summary.LeavePercent = percent(summary.LeaveCount, summary.WorkingDays)

	byType := make(map[string]float64)
	var total float64
	for _, e := range tl.Entries {
		if !e.Status.IsLeave() {
			continue
		}
		name := "unspecified"
		if e.LeaveType != nil && *e.LeaveType != "" {
			name = *e.LeaveType
		}
		days := e.LeaveDuration
		if days == 0 {
			days = 1
		}
		byType[name] += days
		total += days
	}

	summary.LeaveBreakdown = make([]empDashboard.LeaveBreakdownItem, 0, len(byType))
	for name, days := range byType {
		summary.LeaveBreakdown = append(summary.LeaveBreakdown, empDashboard.LeaveBreakdownItem{
			LeaveTypeName: name,
			Days:          days,
			Percent:       utils.RoundHours(days / total * 100),
		})
	}
	sort.Slice(summary.LeaveBreakdown, func(i, j int) bool {
		return summary.LeaveBreakdown[i].LeaveTypeName < summary.LeaveBreakdown[j].LeaveTypeName
	})
	return summary
}

func leaveSummary(b leave.Balance) empDashboard.LeaveSummaryResponse {
	names := make([]string, 0, len(b.Quotas))
	for name := range b.Quotas {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]empDashboard.LeaveQuotaItem, 0, len(names))
	for _, name := range names {
		items = append(items, empDashboard.LeaveQuotaItem{
			LeaveTypeName: name,
			TotalQuota:    b.Quotas[name],
			Taken:         b.Used,
			Remaining:     b.Remaining[name],
		})
	}
	return empDashboard.LeaveSummaryResponse{Year: b.Year, Used: b.Used, LeaveQuotaDetail: items}
}

// formatWorkHours formats minutes to "Xh Ym" format
func formatWorkHours(minutes int64) string {
	hours := minutes / 60
	mins := minutes % 60
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return utils.RoundHours(float64(part) / float64(whole) * 100)
}
