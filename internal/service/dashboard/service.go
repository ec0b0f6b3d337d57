package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	records   attendance.Repository
	employees employee.EmployeeRepository
	leaves    leave.Repository
}

func NewDashboardService(records attendance.Repository, employees employee.EmployeeRepository, leaves leave.Repository) dashboard.Service {
	return &DashboardServiceImpl{
		records:   records,
		employees: employees,
		leaves:    leaves,
	}
}

type bucket int

const (
	bucketNone bucket = iota
	bucketPresent
	bucketHalfDay
	bucketOnLeave
)

// GetOrgSnapshot implements dashboard.Service. Each active employee lands in
// the highest-priority bucket that applies: present (incl. late), half day,
// on leave. Everyone left over is absent.
func (s *DashboardServiceImpl) GetOrgSnapshot(ctx context.Context, day calendar.Day) (dashboard.OrgSnapshot, error) {
	var (
		roster  []employee.Employee
		records []attendance.Record
		leaves  []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Active roster
	g.Go(func() error {
		var err error
		roster, err = s.employees.ListActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list active employees: %w", err)
		}
		return nil
	})

	// 2. Logged records of the day
	g.Go(func() error {
		var err error
		records, err = s.records.ListByDate(gCtx, day)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		return nil
	})

	// 3. Approved leave covering the day
	g.Go(func() error {
		var err error
		leaves, err = s.leaves.ListApprovedBetween(gCtx, "", day, day)
		if err != nil {
			return fmt.Errorf("failed to list approved leave: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.OrgSnapshot{}, err
	}

	assigned := make(map[string]bucket, len(roster))
	for _, e := range roster {
		assigned[e.ID] = bucketNone
	}

	snapshot := dashboard.OrgSnapshot{
		Date:           day.String(),
		TotalEmployees: len(roster),
	}

	assign := func(employeeID string, b bucket) {
		current, active := assigned[employeeID]
		if !active || (current != bucketNone && current <= b) {
			return
		}
		assigned[employeeID] = b
	}

	late := make(map[string]bool)
	for _, r := range records {
		switch {
		case r.Status == attendance.StatusPresent || r.Status == attendance.StatusLate:
			assign(r.EmployeeID, bucketPresent)
			if r.Status == attendance.StatusLate {
				late[r.EmployeeID] = true
			}
		case r.Status == attendance.StatusHalfDay:
			assign(r.EmployeeID, bucketHalfDay)
		case r.Status.IsLeave() && r.LeaveDuration == leave.DurationHalfDay:
			assign(r.EmployeeID, bucketHalfDay)
		case r.Status.IsLeave():
			assign(r.EmployeeID, bucketOnLeave)
		}
	}
	for _, l := range leaves {
		if l.IsHalfDay() {
			assign(l.EmployeeID, bucketHalfDay)
		} else {
			assign(l.EmployeeID, bucketOnLeave)
		}
	}

	for employeeID, b := range assigned {
		switch b {
		case bucketPresent:
			snapshot.Present++
			if late[employeeID] {
				snapshot.Late++
			}
		case bucketHalfDay:
			snapshot.HalfDay++
		case bucketOnLeave:
			snapshot.OnLeave++
		}
	}

	snapshot.Absent = snapshot.TotalEmployees - snapshot.Present - snapshot.HalfDay - snapshot.OnLeave
	if snapshot.Absent < 0 {
		snapshot.Absent = 0
	}
	return snapshot, nil
}
