package leave

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	EmployeeID    string       `json:"-"`
	LeaveType     string       `json:"leave_type" validate:"required,max=100"`
	StartDate     calendar.Day `json:"start_date"`
	EndDate       calendar.Day `json:"end_date"`
	LeaveDuration *float64     `json:"leave_duration"`
	Reason        *string      `json:"reason" validate:"omitempty,max=500"`
	Now           time.Time    `json:"-"`
}

// Validate checks request shape. Date-range and duration rules are enforced
// by the service so they surface as typed domain errors.
func (r *ApplyRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.StartDate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required"})
	}
	if r.EndDate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Duration defaults to a full day.
func (r ApplyRequest) Duration() float64 {
	if r.LeaveDuration == nil {
		return DurationFullDay
	}
	return *r.LeaveDuration
}

type RejectRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

func (r *RejectRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID              string        `json:"id"`
	EmployeeID      string        `json:"employee_id"`
	LeaveType       string        `json:"leave_type"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	LeaveDuration   float64       `json:"leave_duration"`
	Reason          *string       `json:"reason,omitempty"`
	Status          RequestStatus `json:"status"`
	ApprovedBy      *string       `json:"approved_by,omitempty"`
	ApprovedAt      *string       `json:"approved_at,omitempty"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
	CreatedAt       string        `json:"created_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		LeaveType:       r.LeaveType,
		StartDate:       r.StartDate.String(),
		EndDate:         r.EndDate.String(),
		LeaveDuration:   r.LeaveDuration,
		Reason:          r.Reason,
		Status:          r.Status,
		ApprovedBy:      r.ApprovedBy,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
	if r.ApprovedAt != nil {
		s := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	return resp
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewLeaveRequestResponse(r))
	}
	return out
}
