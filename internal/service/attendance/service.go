package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/utils"
)

// Below this many hours a shift counts as a half day.
const halfDayHours = 4.0

// Manual edits also treat less than this share of the standard shift as a half day.
const manualHalfDayRatio = 0.8

type AttendanceServiceImpl struct {
	records   attendance.Repository
	employees employee.EmployeeRepository
	settings  policy.SettingsRepository
	location  *time.Location
}

func NewAttendanceService(
	records attendance.Repository,
	employees employee.EmployeeRepository,
	settings policy.SettingsRepository,
	location *time.Location,
) attendance.Service {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceServiceImpl{
		records:   records,
		employees: employees,
		settings:  settings,
		location:  location,
	}
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}
	now := nowOr(req.Now)

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Record{}, err
	}
	if emp.Role != employee.RoleEmployee {
		return attendance.Record{}, employee.ErrRoleForbidden
	}

	settings, err := policy.Load(ctx, s.settings)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to load settings: %w", err)
	}

	today := calendar.In(now, s.location)
	if _, err := s.records.GetByEmployeeAndDate(ctx, emp.ID, today); err == nil {
		return attendance.Record{}, attendance.ErrDuplicateCheckIn
	} else if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.Record{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	location := req.Location()
	if err := settings.ValidateLocation(location); err != nil {
		return attendance.Record{}, err
	}

	status := attendance.StatusPresent
	if settings.IsLate(now, s.location) {
		status = attendance.StatusLate
	}

	record, err := s.records.Create(ctx, attendance.Record{
		EmployeeID:      emp.ID,
		Date:            today,
		CheckIn:         &now,
		CheckInLocation: location,
		Status:          status,
	})
	if err != nil {
		// Lost a concurrent check-in race on the (employee, date) unique index.
		if errors.Is(err, attendance.ErrRecordConflict) {
			return attendance.Record{}, attendance.ErrDuplicateCheckIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	slog.Info("employee checked in", "employee_id", emp.ID, "date", today.String(), "status", status)
	return record, nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}
	now := nowOr(req.Now)

	settings, err := policy.Load(ctx, s.settings)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to load settings: %w", err)
	}

	today := calendar.In(now, s.location)
	record, err := s.openRecord(ctx, req.EmployeeID, today, settings)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.Record{}, attendance.ErrNoActiveCheckIn
		}
		return attendance.Record{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if !record.HasCheckedIn() {
		return attendance.Record{}, attendance.ErrNoActiveCheckIn
	}
	if record.HasCheckedOut() {
		return attendance.Record{}, attendance.ErrAlreadyCheckedOut
	}

	shift := settings.StandardShift()
	hoursWorked := utils.HoursBetween(*record.CheckIn, now)

	// The half-shift gate runs before the geofence so the two failures stay distinguishable.
	if hoursWorked < shift/2 {
		return attendance.Record{}, apperror.Wrapf(attendance.ErrEarlyCheckoutForbidden,
			"you can check out after %.2f hours, you have worked %.2f hours", shift/2, hoursWorked)
	}

	location := req.Location()
	if err := settings.ValidateLocation(location); err != nil {
		return attendance.Record{}, err
	}

	record.CheckOut = &now
	record.CheckOutLocation = location
	record.WorkingHours = utils.RoundHours(hoursWorked)
	record.OvertimeHours = utils.RoundHours(math.Max(0, hoursWorked-shift))
	if hoursWorked < halfDayHours && record.Status != attendance.StatusLate {
		record.Status = attendance.StatusHalfDay
	}

	updated, err := s.records.Update(ctx, record)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	slog.Info("employee checked out",
		"employee_id", record.EmployeeID,
		"date", record.Date.String(),
		"working_hours", updated.WorkingHours,
		"status", updated.Status,
	)
	return updated, nil
}

// openRecord returns the record a check-out closes: today's, or on an
// overnight shift the previous day's record while it is still open.
func (s *AttendanceServiceImpl) openRecord(ctx context.Context, employeeID string, today calendar.Day, settings policy.Settings) (attendance.Record, error) {
	record, err := s.records.GetByEmployeeAndDate(ctx, employeeID, today)
	if !errors.Is(err, attendance.ErrRecordNotFound) || !settings.IsOvernightShift() {
		return record, err
	}

	previous, prevErr := s.records.GetByEmployeeAndDate(ctx, employeeID, today.AddDays(-1))
	if prevErr != nil {
		return attendance.Record{}, prevErr
	}
	if !previous.HasCheckedIn() || previous.HasCheckedOut() {
		return attendance.Record{}, err
	}
	return previous, nil
}

// CreateManual implements attendance.Service.
func (s *AttendanceServiceImpl) CreateManual(ctx context.Context, req attendance.CreateRecordRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.Record{}, err
	}

	settings, err := policy.Load(ctx, s.settings)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to load settings: %w", err)
	}

	record := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		LeaveType:  req.LeaveType,
	}
	if req.LeaveDuration != nil {
		record.LeaveDuration = *req.LeaveDuration
	}
	if err := s.deriveManual(&record, settings, req.Status, attendance.StatusPresent); err != nil {
		return attendance.Record{}, err
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordConflict) {
			return attendance.Record{}, err
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	slog.Info("attendance record created manually", "record_id", created.ID, "employee_id", created.EmployeeID, "status", created.Status)
	return created, nil
}

// UpdateManual implements attendance.Service. Without times or a status
// override the record keeps its current status.
func (s *AttendanceServiceImpl) UpdateManual(ctx context.Context, id string, req attendance.UpdateRecordRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return attendance.Record{}, err
	}

	settings, err := policy.Load(ctx, s.settings)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to load settings: %w", err)
	}

	if req.CheckIn != nil {
		record.CheckIn = req.CheckIn
	}
	if req.CheckOut != nil {
		record.CheckOut = req.CheckOut
	}
	if req.LeaveType != nil {
		record.LeaveType = req.LeaveType
	}
	if req.LeaveDuration != nil {
		record.LeaveDuration = *req.LeaveDuration
	}
	if err := s.deriveManual(&record, settings, req.Status, record.Status); err != nil {
		return attendance.Record{}, err
	}

	updated, err := s.records.Update(ctx, record)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	slog.Info("attendance record updated manually", "record_id", updated.ID, "employee_id", updated.EmployeeID, "status", updated.Status)
	return updated, nil
}

// GetRecord implements attendance.Service.
func (s *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.Record, error) {
	return s.records.GetByID(ctx, id)
}

// deriveManual recomputes hours and status for an admin edit. With both
// timestamps the status is always derived; otherwise override wins, then a
// lone check-in decides late/present, then fallback.
func (s *AttendanceServiceImpl) deriveManual(record *attendance.Record, settings policy.Settings, override *attendance.Status, fallback attendance.Status) error {
	record.WorkingHours = 0
	record.OvertimeHours = 0

	if record.CheckIn != nil && record.CheckOut != nil {
		if record.CheckOut.Before(*record.CheckIn) {
			return attendance.ErrInvalidTimes
		}

		shift := settings.StandardShift()
		hoursWorked := utils.HoursBetween(*record.CheckIn, *record.CheckOut)
		record.WorkingHours = utils.RoundHours(hoursWorked)
		record.OvertimeHours = utils.RoundHours(math.Max(0, hoursWorked-shift))

		switch {
		case hoursWorked < halfDayHours || hoursWorked < manualHalfDayRatio*shift:
			record.Status = attendance.StatusHalfDay
		case s.isLateOn(settings, record.Date, *record.CheckIn):
			record.Status = attendance.StatusLate
		default:
			record.Status = attendance.StatusPresent
		}
		return nil
	}

	switch {
	case override != nil:
		record.Status = *override
	case record.CheckIn != nil:
		record.Status = attendance.StatusPresent
		if s.isLateOn(settings, record.Date, *record.CheckIn) {
			record.Status = attendance.StatusLate
		}
	case fallback != "":
		record.Status = fallback
	default:
		record.Status = attendance.StatusPresent
	}
	return nil
}

// isLateOn compares against the cutoff of the record's own day, not today.
func (s *AttendanceServiceImpl) isLateOn(settings policy.Settings, day calendar.Day, checkIn time.Time) bool {
	return checkIn.After(settings.LatenessCutoff(day, s.location))
}

func nowOr(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
