package leave

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	requests  leave.Repository
	records   attendance.Repository
	employees employee.EmployeeRepository
	settings  policy.SettingsRepository
	allocator *Allocator
	tx        database.TxManager
	location  *time.Location
}

func NewLeaveService(
	requests leave.Repository,
	records attendance.Repository,
	employees employee.EmployeeRepository,
	settings policy.SettingsRepository,
	allocator *Allocator,
	tx database.TxManager,
	location *time.Location,
) leave.Service {
	if location == nil {
		location = time.UTC
	}
	return &LeaveServiceImpl{
		requests:  requests,
		records:   records,
		employees: employees,
		settings:  settings,
		allocator: allocator,
		tx:        tx,
		location:  location,
	}
}

// Apply implements leave.Service.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	duration := req.Duration()
	if duration != leave.DurationHalfDay && duration != leave.DurationFullDay {
		return leave.LeaveRequest{}, leave.ErrInvalidDuration
	}
	if req.EndDate.Before(req.StartDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}
	if duration == leave.DurationHalfDay && req.StartDate != req.EndDate {
		return leave.LeaveRequest{}, leave.ErrHalfDayRange
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	if req.StartDate.Before(calendar.In(now, s.location)) {
		return leave.LeaveRequest{}, leave.ErrPastDatedLeave
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequest{}, err
	}

	settings, err := policy.Load(ctx, s.settings)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !hasWorkingDay(settings, req.StartDate, req.EndDate) {
		return leave.LeaveRequest{}, leave.ErrNoWorkingDays
	}

	var created leave.LeaveRequest
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		overlap, err := s.requests.HasOverlap(txCtx, req.EmployeeID, req.StartDate, req.EndDate)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave: %w", err)
		}
		if overlap {
			return leave.ErrLeaveOverlap
		}

		created, err = s.requests.Create(txCtx, leave.LeaveRequest{
			EmployeeID:    req.EmployeeID,
			LeaveType:     req.LeaveType,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			LeaveDuration: duration,
			Reason:        req.Reason,
			Status:        leave.RequestStatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	slog.Info("leave requested", "leave_id", created.ID, "employee_id", created.EmployeeID,
		"start_date", created.StartDate.String(), "end_date", created.EndDate.String())
	return created, nil
}

// Approve implements leave.Service.
func (s *LeaveServiceImpl) Approve(ctx context.Context, leaveID, approverID string, now time.Time) (leave.LeaveRequest, error) {
	if now.IsZero() {
		now = time.Now()
	}

	var approved leave.LeaveRequest
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		request, err := s.requests.GetByID(txCtx, leaveID)
		if err != nil {
			return err
		}
		if !request.IsPending() {
			return leave.ErrLeaveAlreadyProcessed
		}

		settings, err := policy.Load(txCtx, s.settings)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		if _, err := s.allocator.Allocate(txCtx, request, settings); err != nil {
			return err
		}

		request.Status = leave.RequestStatusApproved
		request.ApprovedBy = &approverID
		request.ApprovedAt = &now
		approved, err = s.requests.Update(txCtx, request)
		if err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	slog.Info("leave approved", "leave_id", approved.ID, "approved_by", approverID)
	return approved, nil
}

// Reject implements leave.Service.
func (s *LeaveServiceImpl) Reject(ctx context.Context, leaveID, approverID string, reason *string, now time.Time) (leave.LeaveRequest, error) {
	if now.IsZero() {
		now = time.Now()
	}

	request, err := s.requests.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !request.IsPending() {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}

	request.Status = leave.RequestStatusRejected
	request.ApprovedBy = &approverID
	request.ApprovedAt = &now
	request.RejectionReason = reason

	rejected, err := s.requests.Update(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	slog.Info("leave rejected", "leave_id", rejected.ID, "rejected_by", approverID)
	return rejected, nil
}

// Get implements leave.Service.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.requests.GetByID(ctx, id)
}

// ListByEmployee implements leave.Service.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	requests, err := s.requests.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// Balance implements leave.Service. The pool is shared, so every type's
// remaining value is its own quota minus the same total usage.
func (s *LeaveServiceImpl) Balance(ctx context.Context, employeeID string, year int) (leave.Balance, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return leave.Balance{}, err
	}

	settings, err := policy.Load(ctx, s.settings)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to load settings: %w", err)
	}

	used, err := s.records.SumLeaveDuration(ctx, employeeID, year, calendar.Day{}, calendar.Day{})
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to sum leave usage: %w", err)
	}

	quotas := map[string]float64{
		"casual":    settings.LeavePolicy.CasualLeave,
		"sick":      settings.LeavePolicy.SickLeave,
		"annual":    settings.LeavePolicy.AnnualLeave,
		"maternity": settings.LeavePolicy.MaternityLeave,
	}
	remaining := make(map[string]float64, len(quotas))
	for leaveType, quota := range quotas {
		remaining[leaveType] = math.Max(0, quota-used)
	}

	return leave.Balance{
		EmployeeID: employeeID,
		Year:       year,
		Used:       used,
		Quotas:     quotas,
		Remaining:  remaining,
	}, nil
}

func hasWorkingDay(settings policy.Settings, start, end calendar.Day) bool {
	for _, day := range calendar.Range(start, end) {
		if !settings.IsWeekend(day) {
			return true
		}
	}
	return false
}
