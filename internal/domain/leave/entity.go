package leave

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

const (
	DurationHalfDay = 0.5
	DurationFullDay = 1.0
)

// LeaveRequest covers [StartDate, EndDate]; both are equal for a half-day request.
type LeaveRequest struct {
	ID            string
	EmployeeID    string
	LeaveType     string
	StartDate     calendar.Day
	EndDate       calendar.Day
	LeaveDuration float64
	Reason        *string

	Status          RequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r LeaveRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

func (r LeaveRequest) Covers(day calendar.Day) bool {
	return !day.Before(r.StartDate) && !day.After(r.EndDate)
}

func (r LeaveRequest) IsHalfDay() bool {
	return r.LeaveDuration == DurationHalfDay
}

// Balance is the shared annual pool as seen from each leave type's quota.
type Balance struct {
	EmployeeID string             `json:"employee_id"`
	Year       int                `json:"year"`
	Used       float64            `json:"used"`
	Quotas     map[string]float64 `json:"quotas"`
	Remaining  map[string]float64 `json:"remaining"`
}
