package attendance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	officeLat = -6.2000
	officeLng = 106.8166
	workday   = calendar.New(2025, time.March, 3) // Monday
)

type fixture struct {
	store    *memory.Store
	service  attendance.Service
	employee employee.Employee
}

func newFixture(t *testing.T, configure func(*policy.Settings)) fixture {
	t.Helper()
	store := memory.NewStore()

	settings := policy.DefaultSettings()
	if configure != nil {
		configure(&settings)
	}
	require.NoError(t, store.Settings().Save(context.Background(), settings))

	emp := store.Employees().Add(employee.Employee{
		FullName:    "Budi Santoso",
		JoiningDate: calendar.New(2024, time.January, 1),
		Status:      employee.StatusActive,
		Role:        employee.RoleEmployee,
	})

	return fixture{
		store:    store,
		service:  NewAttendanceService(store.Attendance(), store.Employees(), store.Settings(), time.UTC),
		employee: emp,
	}
}

func withOffice(s *policy.Settings) {
	s.OfficeLocation = &policy.OfficeLocation{Latitude: &officeLat, Longitude: &officeLng, Radius: 100}
}

func at(hour, minute int) time.Time {
	return workday.At(hour, minute, time.UTC)
}

func (f fixture) checkIn(t *testing.T, now time.Time) attendance.Record {
	t.Helper()
	record, err := f.service.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: f.employee.ID, Now: now})
	require.NoError(t, err)
	return record
}

func (f fixture) checkOut(now time.Time) (attendance.Record, error) {
	return f.service.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: f.employee.ID, Now: now})
}

func TestCheckInLateness(t *testing.T) {
	t.Run("09:14 is present", func(t *testing.T) {
		f := newFixture(t, nil)
		record := f.checkIn(t, at(9, 14))
		assert.Equal(t, attendance.StatusPresent, record.Status)
		assert.Equal(t, workday, record.Date)
		assert.NotEmpty(t, record.ID)
	})

	t.Run("exact cutoff is present", func(t *testing.T) {
		f := newFixture(t, nil)
		assert.Equal(t, attendance.StatusPresent, f.checkIn(t, at(9, 15)).Status)
	})

	t.Run("09:16 is late", func(t *testing.T) {
		f := newFixture(t, nil)
		assert.Equal(t, attendance.StatusLate, f.checkIn(t, at(9, 16)).Status)
	})
}

func TestShiftScenario(t *testing.T) {
	f := newFixture(t, nil)
	checkIn := at(9, 14)
	f.checkIn(t, checkIn)

	_, err := f.checkOut(checkIn.Add(264 * time.Minute)) // 4.4h
	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrEarlyCheckoutForbidden)
	assert.Contains(t, err.Error(), "4.50")

	record, err := f.checkOut(checkIn.Add(276 * time.Minute)) // 4.6h
	require.NoError(t, err)
	assert.Equal(t, 4.6, record.WorkingHours)
	assert.Equal(t, 0.0, record.OvertimeHours)
	assert.Equal(t, attendance.StatusPresent, record.Status)
	require.NotNil(t, record.CheckOut)
}

func TestCheckOutHalfShiftBoundary(t *testing.T) {
	t.Run("exactly half the shift is allowed", func(t *testing.T) {
		f := newFixture(t, nil)
		f.checkIn(t, at(9, 0))
		record, err := f.checkOut(at(13, 30))
		require.NoError(t, err)
		assert.Equal(t, 4.5, record.WorkingHours)
	})

	t.Run("one second below is rejected", func(t *testing.T) {
		f := newFixture(t, nil)
		f.checkIn(t, at(9, 0))
		_, err := f.checkOut(at(13, 30).Add(-time.Second))
		assert.ErrorIs(t, err, attendance.ErrEarlyCheckoutForbidden)
	})
}

func TestCheckOutOvertimeAndDemotion(t *testing.T) {
	t.Run("overtime beyond the shift", func(t *testing.T) {
		f := newFixture(t, nil)
		f.checkIn(t, at(9, 0))
		record, err := f.checkOut(at(19, 30))
		require.NoError(t, err)
		assert.Equal(t, 10.5, record.WorkingHours)
		assert.Equal(t, 1.5, record.OvertimeHours)
	})

	shortShift := func(s *policy.Settings) {
		s.WorkingHours = policy.WorkingHours{CheckIn: "09:00", CheckOut: "15:00", GracePeriod: 15}
	}

	t.Run("under four hours demotes present", func(t *testing.T) {
		f := newFixture(t, shortShift)
		f.checkIn(t, at(9, 0))
		record, err := f.checkOut(at(12, 30))
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusHalfDay, record.Status)
	})

	t.Run("late is never demoted", func(t *testing.T) {
		f := newFixture(t, shortShift)
		f.checkIn(t, at(9, 30))
		record, err := f.checkOut(at(13, 0))
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusLate, record.Status)
	})
}

func TestCheckOutOvernightShift(t *testing.T) {
	nightShift := func(s *policy.Settings) {
		s.WorkingHours.CheckIn = "22:00"
		s.WorkingHours.CheckOut = "06:00"
	}
	nextMorning := func(hour, minute int) time.Time {
		return workday.AddDays(1).At(hour, minute, time.UTC)
	}

	t.Run("closes previous day's record after midnight", func(t *testing.T) {
		f := newFixture(t, nightShift)
		f.checkIn(t, at(22, 5))

		record, err := f.checkOut(nextMorning(6, 0))
		require.NoError(t, err)
		assert.Equal(t, workday, record.Date)
		assert.Equal(t, attendance.StatusPresent, record.Status)
		assert.InDelta(t, 7.92, record.WorkingHours, 1e-9)

		_, err = f.checkOut(nextMorning(6, 10))
		assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
	})

	t.Run("day shift does not look back", func(t *testing.T) {
		f := newFixture(t, nil)
		f.checkIn(t, at(9, 0))

		_, err := f.checkOut(nextMorning(1, 0))
		assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
	})
}

func TestCheckInStateErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate check-in", func(t *testing.T) {
		f := newFixture(t, nil)
		f.checkIn(t, at(9, 0))
		_, err := f.service.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: f.employee.ID, Now: at(9, 5)})
		assert.ErrorIs(t, err, attendance.ErrDuplicateCheckIn)
	})

	t.Run("only employees check in", func(t *testing.T) {
		f := newFixture(t, nil)
		manager := f.store.Employees().Add(employee.Employee{FullName: "Ani", Status: employee.StatusActive, Role: employee.RoleManager})
		_, err := f.service.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: manager.ID, Now: at(9, 0)})
		assert.ErrorIs(t, err, employee.ErrRoleForbidden)
	})

	t.Run("unknown employee", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.service.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "missing", Now: at(9, 0)})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("check-out without check-in", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.checkOut(at(18, 0))
		assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
	})

	t.Run("check-out twice", func(t *testing.T) {
		f := newFixture(t, nil)
		f.checkIn(t, at(9, 0))
		_, err := f.checkOut(at(18, 0))
		require.NoError(t, err)
		_, err = f.checkOut(at(18, 5))
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	})
}

func TestConcurrentDuplicateCheckIn(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.service.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: f.employee.ID, Now: at(9, 0)})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, attendance.ErrDuplicateCheckIn)
	}
	assert.Equal(t, 1, successes)

	records, err := f.store.Attendance().ListByDate(ctx, workday)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGeofence(t *testing.T) {
	ctx := context.Background()
	inside := &officeLat
	far := officeLat + 0.01

	t.Run("location required", func(t *testing.T) {
		f := newFixture(t, withOffice)
		_, err := f.service.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: f.employee.ID, Now: at(9, 0)})
		assert.ErrorIs(t, err, policy.ErrLocationRequired)
	})

	t.Run("outside radius", func(t *testing.T) {
		f := newFixture(t, withOffice)
		req := attendance.CheckInRequest{EmployeeID: f.employee.ID, Now: at(9, 0)}
		req.Latitude, req.Longitude = &far, &officeLng
		_, err := f.service.CheckIn(ctx, req)
		assert.ErrorIs(t, err, policy.ErrGeofenceViolation)
	})

	t.Run("inside radius stores location", func(t *testing.T) {
		f := newFixture(t, withOffice)
		req := attendance.CheckInRequest{EmployeeID: f.employee.ID, Now: at(9, 0)}
		req.Latitude, req.Longitude = inside, &officeLng
		record, err := f.service.CheckIn(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, record.CheckInLocation)
		assert.Equal(t, officeLat, record.CheckInLocation.Latitude)
	})

	t.Run("early checkout is reported before location", func(t *testing.T) {
		f := newFixture(t, withOffice)
		in := attendance.CheckInRequest{EmployeeID: f.employee.ID, Now: at(9, 0)}
		in.Latitude, in.Longitude = inside, &officeLng
		_, err := f.service.CheckIn(ctx, in)
		require.NoError(t, err)

		out := attendance.CheckOutRequest{EmployeeID: f.employee.ID, Now: at(10, 0)}
		out.Latitude, out.Longitude = &far, &officeLng
		_, err = f.service.CheckOut(ctx, out)
		assert.ErrorIs(t, err, attendance.ErrEarlyCheckoutForbidden)

		out.Now = at(18, 0)
		_, err = f.service.CheckOut(ctx, out)
		assert.ErrorIs(t, err, policy.ErrGeofenceViolation)
	})
}

func TestManualRecords(t *testing.T) {
	ctx := context.Background()
	timePtr := func(t time.Time) *time.Time { return &t }
	statusPtr := func(s attendance.Status) *attendance.Status { return &s }

	cases := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		override *attendance.Status
		status   attendance.Status
		hours    float64
	}{
		{"full day present", timePtr(at(9, 0)), timePtr(at(18, 0)), nil, attendance.StatusPresent, 9},
		{"full day late", timePtr(at(9, 30)), timePtr(at(18, 30)), nil, attendance.StatusLate, 9},
		{"under 80 percent of shift", timePtr(at(9, 0)), timePtr(at(16, 0)), nil, attendance.StatusHalfDay, 7},
		{"times win over override", timePtr(at(9, 0)), timePtr(at(18, 0)), statusPtr(attendance.StatusAbsent), attendance.StatusPresent, 9},
		{"check-in only", timePtr(at(9, 20)), nil, nil, attendance.StatusLate, 0},
		{"override without times", nil, nil, statusPtr(attendance.StatusLeave), attendance.StatusLeave, 0},
		{"nothing given", nil, nil, nil, attendance.StatusPresent, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, nil)
			record, err := f.service.CreateManual(ctx, attendance.CreateRecordRequest{
				EmployeeID: f.employee.ID,
				Date:       workday,
				CheckIn:    tc.checkIn,
				CheckOut:   tc.checkOut,
				Status:     tc.override,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.status, record.Status)
			assert.Equal(t, tc.hours, record.WorkingHours)
		})
	}
}

func TestManualCreateConflict(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.checkIn(t, at(9, 0))

	_, err := f.service.CreateManual(ctx, attendance.CreateRecordRequest{EmployeeID: f.employee.ID, Date: workday})
	assert.ErrorIs(t, err, attendance.ErrRecordConflict)
}

func TestUpdateManual(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	created := f.checkIn(t, at(9, 0))

	checkOut := at(19, 0)
	updated, err := f.service.UpdateManual(ctx, created.ID, attendance.UpdateRecordRequest{CheckOut: &checkOut})
	require.NoError(t, err)
	assert.Equal(t, 10.0, updated.WorkingHours)
	assert.Equal(t, 1.0, updated.OvertimeHours)
	assert.Equal(t, attendance.StatusPresent, updated.Status)

	// Moving check-in past check-out is rejected.
	lateIn := at(20, 0)
	_, err = f.service.UpdateManual(ctx, created.ID, attendance.UpdateRecordRequest{CheckIn: &lateIn})
	assert.True(t, errors.Is(err, attendance.ErrInvalidTimes))

	_, err = f.service.UpdateManual(ctx, "missing", attendance.UpdateRecordRequest{})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)

	got, err := f.service.GetRecord(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.WorkingHours)
}
