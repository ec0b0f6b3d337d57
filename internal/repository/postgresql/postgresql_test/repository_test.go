package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_CreateAndUniqueness(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	empID := setup.CreateEmployee(t, ctx, "Budi")
	repo := postgresql.NewAttendanceRepository(setup.DB)

	checkIn := time.Date(2025, 3, 10, 2, 5, 0, 0, time.UTC)
	day := calendar.New(2025, time.March, 10)

	created, err := repo.Create(ctx, attendance.Record{
		EmployeeID:      empID,
		Date:            day,
		CheckIn:         &checkIn,
		CheckInLocation: &policy.Location{Latitude: -6.2, Longitude: 106.8},
		Status:          attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, day, created.Date)
	require.NotNil(t, created.CheckInLocation)
	assert.InDelta(t, -6.2, created.CheckInLocation.Latitude, 1e-9)
	assert.Nil(t, created.CheckOutLocation)

	_, err = repo.Create(ctx, attendance.Record{EmployeeID: empID, Date: day, Status: attendance.StatusPresent})
	assert.ErrorIs(t, err, attendance.ErrRecordConflict)

	got, err := repo.GetByEmployeeAndDate(ctx, empID, day)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByEmployeeAndDate(ctx, empID, day.AddDays(1))
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestAttendanceRepository_UpsertKeepsTimes(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	empID := setup.CreateEmployee(t, ctx, "Sari")
	repo := postgresql.NewAttendanceRepository(setup.DB)

	day := calendar.New(2025, time.March, 11)
	checkIn := time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, attendance.Record{EmployeeID: empID, Date: day, CheckIn: &checkIn, Status: attendance.StatusPresent})
	require.NoError(t, err)

	sick := "sick"
	upserted, err := repo.Upsert(ctx, attendance.Record{
		EmployeeID:    empID,
		Date:          day,
		Status:        attendance.StatusLeave,
		LeaveType:     &sick,
		LeaveDuration: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLeave, upserted.Status)
	require.NotNil(t, upserted.CheckIn)
	assert.True(t, checkIn.Equal(*upserted.CheckIn))

	_, err = repo.Upsert(ctx, attendance.Record{EmployeeID: empID, Date: day.AddDays(1), Status: attendance.StatusUnpaidLeave, LeaveType: &sick, LeaveDuration: 0.5})
	require.NoError(t, err)

	total, err := repo.SumLeaveDuration(ctx, empID, 2025, calendar.Day{}, calendar.Day{})
	require.NoError(t, err)
	assert.Equal(t, 1.5, total)

	total, err = repo.SumLeaveDuration(ctx, empID, 2025, day, day)
	require.NoError(t, err)
	assert.Equal(t, 0.5, total)

	records, err := repo.ListByEmployeeRange(ctx, empID, day, day.AddDays(5))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLeaveRepository_Lifecycle(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	empID := setup.CreateEmployee(t, ctx, "Dewi")
	repo := postgresql.NewLeaveRepository(setup.DB)

	start := calendar.New(2025, time.April, 7)
	end := calendar.New(2025, time.April, 9)

	created, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID:    empID,
		LeaveType:     "annual",
		StartDate:     start,
		EndDate:       end,
		LeaveDuration: leave.DurationFullDay,
		Status:        leave.RequestStatusPending,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, leave.LeaveRequest{
		EmployeeID:    empID,
		LeaveType:     "sick",
		StartDate:     end,
		EndDate:       end.AddDays(1),
		LeaveDuration: leave.DurationFullDay,
		Status:        leave.RequestStatusPending,
	})
	assert.ErrorIs(t, err, leave.ErrLeaveOverlap)

	overlap, err := repo.HasOverlap(ctx, empID, end, end.AddDays(2))
	require.NoError(t, err)
	assert.True(t, overlap)

	overlap, err = repo.HasOverlap(ctx, empID, end.AddDays(1), end.AddDays(2))
	require.NoError(t, err)
	assert.False(t, overlap)

	now := time.Now().UTC()
	created.Status = leave.RequestStatusApproved
	created.ApprovedBy = &empID
	created.ApprovedAt = &now
	_, err = repo.Update(ctx, created)
	require.NoError(t, err)

	approved, err := repo.ListApprovedBetween(ctx, "", start, start)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, created.ID, approved[0].ID)

	_, err = repo.GetByID(ctx, "0190c6f0-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestTxManager_RollsBack(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	empID := setup.CreateEmployee(t, ctx, "Rina")
	repo := postgresql.NewAttendanceRepository(setup.DB)
	tx := postgresql.NewTxManager(setup.DB)

	day := calendar.New(2025, time.May, 5)
	errBoom := errors.New("boom")

	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := repo.Upsert(ctx, attendance.Record{EmployeeID: empID, Date: day, Status: attendance.StatusLeave, LeaveDuration: 1}); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = repo.GetByEmployeeAndDate(ctx, empID, day)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestSettingsAndEmployeeRepositories(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	empID := setup.CreateEmployee(t, ctx, "Agus")

	settingsRepo := postgresql.NewSettingsRepository(setup.DB)
	_, err := settingsRepo.Get(ctx)
	assert.ErrorIs(t, err, policy.ErrSettingsNotFound)

	settings := policy.DefaultSettings()
	settings.WorkingHours.CheckIn = "08:00"
	require.NoError(t, settingsRepo.Save(ctx, settings))

	got, err := settingsRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "08:00", got.WorkingHours.CheckIn)

	employees := postgresql.NewEmployeeRepository(setup.DB)
	e, err := employees.GetByID(ctx, empID)
	require.NoError(t, err)
	assert.Equal(t, "Agus", e.FullName)
	assert.Equal(t, employee.RoleEmployee, e.Role)
}
