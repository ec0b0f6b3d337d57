package employee

import "github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"

// Employee is the slice of the account subsystem's employee record the
// attendance engine reads. The engine never writes it.
type Employee struct {
	ID          string
	FullName    string
	JoiningDate calendar.Day
	Status      Status
	Role        Role
}

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOnLeave    Status = "on_leave"
	StatusTerminated Status = "terminated"
	StatusBlocked    Status = "blocked"
)

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Can approve leave and edit attendance
	RoleEmployee Role = "employee" // Regular employee, the only role that checks in
)

// IsManager checks if the role may approve leave and edit attendance.
func (r Role) IsManager() bool {
	return r == RoleManager || r == RoleOwner
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
