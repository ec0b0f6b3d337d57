package policy

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardShift(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     float64
	}{
		{"day shift", "09:00", "18:00", 9},
		{"half hour", "08:30", "17:00", 8.5},
		{"overnight", "22:00", "06:00", 8},
		{"zero length", "09:00", "09:00", DefaultShiftHours},
		{"invalid", "nine", "18:00", DefaultShiftHours},
		{"missing", "", "", DefaultShiftHours},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Settings{WorkingHours: WorkingHours{CheckIn: tc.checkIn, CheckOut: tc.checkOut}}
			assert.InDelta(t, tc.want, s.StandardShift(), 1e-9)
		})
	}
}

func TestIsOvernightShift(t *testing.T) {
	assert.True(t, Settings{WorkingHours: WorkingHours{CheckIn: "22:00", CheckOut: "06:00"}}.IsOvernightShift())
	assert.False(t, Settings{WorkingHours: WorkingHours{CheckIn: "09:00", CheckOut: "18:00"}}.IsOvernightShift())
	assert.False(t, Settings{WorkingHours: WorkingHours{CheckIn: "bad", CheckOut: "06:00"}}.IsOvernightShift())
}

func TestIsLate(t *testing.T) {
	loc := time.UTC
	s := DefaultSettings()
	day := calendar.New(2025, time.March, 3)

	assert.False(t, s.IsLate(day.At(9, 14, loc), loc))
	assert.False(t, s.IsLate(day.At(9, 15, loc), loc), "exact cutoff is on time")
	assert.True(t, s.IsLate(day.At(9, 15, loc).Add(time.Second), loc))
	assert.True(t, s.IsLate(day.At(9, 16, loc), loc))
}

func TestIsLateUsesOrganizationTimezone(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	s := DefaultSettings()

	// 02:20 UTC is 09:20 in Jakarta.
	arrival := time.Date(2025, time.March, 3, 2, 20, 0, 0, time.UTC)
	assert.True(t, s.IsLate(arrival, jakarta))
	assert.False(t, s.IsLate(arrival, time.UTC))
}

func TestIsLateOnDaylightSavingTransition(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	s := DefaultSettings()

	// Clocks jump from 02:00 to 03:00 on 2025-03-09.
	day := calendar.New(2025, time.March, 9)
	cutoff := s.LatenessCutoff(day, ny)
	assert.Equal(t, 9, cutoff.Hour())
	assert.Equal(t, 15, cutoff.Minute())

	assert.False(t, s.IsLate(time.Date(2025, time.March, 9, 9, 15, 0, 0, ny), ny))
	assert.True(t, s.IsLate(time.Date(2025, time.March, 9, 9, 16, 0, 0, ny), ny))
	assert.True(t, s.IsLate(time.Date(2025, time.March, 9, 9, 30, 0, 0, ny), ny))

	// Clocks fall back from 02:00 to 01:00 on 2025-11-02.
	assert.True(t, s.IsLate(time.Date(2025, time.November, 2, 9, 16, 0, 0, ny), ny))
	assert.False(t, s.IsLate(time.Date(2025, time.November, 2, 8, 30, 0, 0, ny), ny))
}

func TestIsWeekend(t *testing.T) {
	s := Settings{WeekendPolicy: []string{"saturday", " Sunday "}}

	assert.True(t, s.IsWeekend(calendar.New(2025, time.March, 1)))
	assert.True(t, s.IsWeekend(calendar.New(2025, time.March, 2)))
	assert.False(t, s.IsWeekend(calendar.New(2025, time.March, 3)))

	assert.False(t, Settings{}.IsWeekend(calendar.New(2025, time.March, 1)))
}

func TestQuotaFor(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, float64(DefaultSickQuota), s.QuotaFor("Sick Leave"))
	assert.Equal(t, float64(DefaultSickQuota), s.QuotaFor("sick_leave"))
	assert.Equal(t, float64(DefaultSickQuota), s.QuotaFor("sickLeave"))
	assert.Equal(t, float64(DefaultAnnualQuota), s.QuotaFor("annual"))
	assert.Equal(t, float64(DefaultMaternityQuota), s.QuotaFor("Maternity Leave"))
	assert.Equal(t, float64(DefaultCasualQuota), s.QuotaFor("casual"))
	assert.Equal(t, float64(DefaultCasualQuota), s.QuotaFor("bereavement"))
}

func TestValidateLocation(t *testing.T) {
	lat, lng := -6.2000, 106.8166
	s := DefaultSettings()

	t.Run("no office configured", func(t *testing.T) {
		assert.NoError(t, s.ValidateLocation(nil))
	})

	s.OfficeLocation = &OfficeLocation{Latitude: &lat, Longitude: &lng, Radius: 100}

	t.Run("missing location", func(t *testing.T) {
		assert.ErrorIs(t, s.ValidateLocation(nil), ErrLocationRequired)
	})

	t.Run("inside radius", func(t *testing.T) {
		assert.NoError(t, s.ValidateLocation(&Location{Latitude: lat, Longitude: lng}))
	})

	t.Run("outside radius", func(t *testing.T) {
		// roughly 1.1km north
		err := s.ValidateLocation(&Location{Latitude: lat + 0.01, Longitude: lng})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrGeofenceViolation))
		assert.Contains(t, err.Error(), "allowed radius is 100m")
	})

	t.Run("default radius", func(t *testing.T) {
		s.OfficeLocation.Radius = 0
		err := s.ValidateLocation(&Location{Latitude: lat + 0.0005, Longitude: lng}) // ~55m
		assert.NoError(t, err)
	})
}

type stubSettingsRepo struct {
	settings Settings
	err      error
}

func (r stubSettingsRepo) Get(context.Context) (Settings, error) { return r.settings, r.err }
func (r stubSettingsRepo) Save(context.Context, Settings) error  { return nil }

func TestLoad(t *testing.T) {
	ctx := context.Background()

	got, err := Load(ctx, stubSettingsRepo{err: ErrSettingsNotFound})
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)

	custom := Settings{WorkingHours: WorkingHours{CheckIn: "08:00", CheckOut: "16:00"}}
	got, err = Load(ctx, stubSettingsRepo{settings: custom})
	require.NoError(t, err)
	assert.Equal(t, custom, got)

	boom := errors.New("boom")
	_, err = Load(ctx, stubSettingsRepo{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("08:45")
	require.NoError(t, err)
	assert.Equal(t, 8, h)
	assert.Equal(t, 45, m)

	for _, s := range []string{"8:45", "24:00", "08:60", "0845", ""} {
		_, _, err := ParseClock(s)
		assert.ErrorIs(t, err, ErrInvalidClock, s)
	}
}
