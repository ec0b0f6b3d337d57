package employee_dashboard

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

// EmployeeDashboardService defines the interface for employee dashboard operations
type EmployeeDashboardService interface {
	// GetDashboard returns the month-to-date dashboard ending on day.
	GetDashboard(ctx context.Context, employeeID string, day calendar.Day) (*EmployeeDashboardResponse, error)
}
