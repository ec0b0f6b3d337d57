package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func float64Ptr(f float64) *float64 { return &f }

// ==========================================
// SEEDED DATA RESULT
// ==========================================

// SeededDataIDs holds IDs of the demo data written by Seed
type SeededDataIDs struct {
	OwnerID   string
	ManagerID string

	// Employee IDs by full name
	EmployeeIDs map[string]string // e.g., "Budi Santoso" -> "uuid"
}

// ==========================================
// DEFAULT SETTINGS
// ==========================================

// GetDefaultSettings returns the organization policy used by the demo:
// the stock working hours with an office geofence in central Jakarta.
func GetDefaultSettings() policy.Settings {
	settings := policy.DefaultSettings()
	settings.OfficeLocation = &policy.OfficeLocation{
		Latitude:  float64Ptr(-6.2088),
		Longitude: float64Ptr(106.8456),
		Radius:    policy.DefaultRadiusMeters,
	}
	return settings
}

// ==========================================
// DEFAULT HOLIDAYS
// ==========================================

// GetDefaultHolidays returns the fixed-date Indonesian national holidays of a year.
// Lunar-calendar holidays move every year and are entered by the organization.
func GetDefaultHolidays(year int) []holiday.Holiday {
	return []holiday.Holiday{
		{Date: calendar.New(year, time.January, 1), Name: "Tahun Baru Masehi"},
		{Date: calendar.New(year, time.May, 1), Name: "Hari Buruh Internasional"},
		{Date: calendar.New(year, time.June, 1), Name: "Hari Lahir Pancasila"},
		{Date: calendar.New(year, time.August, 17), Name: "Hari Kemerdekaan Republik Indonesia"},
		{Date: calendar.New(year, time.December, 25), Name: "Hari Raya Natal"},
	}
}

// ==========================================
// DEMO EMPLOYEES
// ==========================================

// GetDemoEmployees returns a small roster covering every role.
func GetDemoEmployees(joining calendar.Day) []employee.Employee {
	return []employee.Employee{
		{FullName: "Rina Wijaya", JoiningDate: joining, Status: employee.StatusActive, Role: employee.RoleOwner},
		{FullName: "Agus Pratama", JoiningDate: joining, Status: employee.StatusActive, Role: employee.RoleManager},
		{FullName: "Budi Santoso", JoiningDate: joining, Status: employee.StatusActive, Role: employee.RoleEmployee},
		{FullName: "Sari Dewi", JoiningDate: joining, Status: employee.StatusActive, Role: employee.RoleEmployee},
		{FullName: "Dimas Saputra", JoiningDate: joining.AddDays(60), Status: employee.StatusActive, Role: employee.RoleEmployee},
		{FullName: "Lestari Putri", JoiningDate: joining, Status: employee.StatusInactive, Role: employee.RoleEmployee},
	}
}

// Seed fills an in-memory store with demo settings, holidays and employees.
// Employees join on January 1st of the year containing today.
func Seed(ctx context.Context, store *memory.Store, today calendar.Day) (*SeededDataIDs, error) {
	if err := store.Settings().Save(ctx, GetDefaultSettings()); err != nil {
		return nil, fmt.Errorf("failed to seed settings: %w", err)
	}

	for _, year := range []int{today.Year - 1, today.Year, today.Year + 1} {
		for _, h := range GetDefaultHolidays(year) {
			store.Holidays().Add(h)
		}
	}

	ids := &SeededDataIDs{EmployeeIDs: make(map[string]string)}
	for _, e := range GetDemoEmployees(calendar.New(today.Year, time.January, 1)) {
		added := store.Employees().Add(e)
		ids.EmployeeIDs[added.FullName] = added.ID
		switch added.Role {
		case employee.RoleOwner:
			ids.OwnerID = added.ID
		case employee.RoleManager:
			ids.ManagerID = added.ID
		}
	}
	return ids, nil
}
