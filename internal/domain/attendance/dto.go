package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// LocationInput is the optional device location sent with check-in/out.
type LocationInput struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// Location returns nil unless both coordinates are present.
func (l LocationInput) Location() *policy.Location {
	if l.Latitude == nil || l.Longitude == nil {
		return nil
	}
	return &policy.Location{Latitude: *l.Latitude, Longitude: *l.Longitude}
}

func (l LocationInput) validate() validator.ValidationErrors {
	errs := validator.Struct(l)
	if (l.Latitude == nil) != (l.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be provided together",
		})
	}
	return errs
}

type CheckInRequest struct {
	LocationInput
	EmployeeID string    `json:"-"`
	Now        time.Time `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	errs := r.LocationInput.validate()
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	LocationInput
	EmployeeID string    `json:"-"`
	Now        time.Time `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	errs := r.LocationInput.validate()
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateRecordRequest is an admin-entered attendance record.
type CreateRecordRequest struct {
	EmployeeID    string       `json:"employee_id" validate:"required"`
	Date          calendar.Day `json:"date"`
	CheckIn       *time.Time   `json:"check_in"`
	CheckOut      *time.Time   `json:"check_out"`
	Status        *Status      `json:"status"`
	LeaveType     *string      `json:"leave_type" validate:"omitempty,max=100"`
	LeaveDuration *float64     `json:"leave_duration"`
}

func (r *CreateRecordRequest) Validate() error {
	errs := validator.Struct(r)
	if r.Date.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	}
	errs = append(errs, validateManualFields(r.CheckIn, r.CheckOut, r.Status, r.LeaveDuration)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest patches an existing record; nil fields are kept.
type UpdateRecordRequest struct {
	CheckIn       *time.Time `json:"check_in"`
	CheckOut      *time.Time `json:"check_out"`
	Status        *Status    `json:"status"`
	LeaveType     *string    `json:"leave_type" validate:"omitempty,max=100"`
	LeaveDuration *float64   `json:"leave_duration"`
}

func (r *UpdateRecordRequest) Validate() error {
	errs := validator.Struct(r)
	errs = append(errs, validateManualFields(r.CheckIn, r.CheckOut, r.Status, r.LeaveDuration)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateManualFields(checkIn, checkOut *time.Time, status *Status, duration *float64) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if checkIn != nil && checkOut != nil && checkOut.Before(*checkIn) {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: ErrInvalidTimes.Message})
	}
	if status != nil && !status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, late, half_day, absent, leave, unpaid_leave, holiday, weekend",
		})
	}
	if duration != nil && *duration != 0 && *duration != 0.5 && *duration != 1 {
		errs = append(errs, validator.ValidationError{Field: "leave_duration", Message: "leave_duration must be one of: 0, 0.5, 1"})
	}
	return errs
}

type RecordResponse struct {
	ID                string   `json:"id,omitempty"`
	EmployeeID        string   `json:"employee_id"`
	Date              string   `json:"date"`
	CheckIn           *string  `json:"check_in,omitempty"`
	CheckOut          *string  `json:"check_out,omitempty"`
	CheckInLatitude   *float64 `json:"check_in_latitude,omitempty"`
	CheckInLongitude  *float64 `json:"check_in_longitude,omitempty"`
	CheckOutLatitude  *float64 `json:"check_out_latitude,omitempty"`
	CheckOutLongitude *float64 `json:"check_out_longitude,omitempty"`
	WorkingHours      float64  `json:"working_hours"`
	OvertimeHours     float64  `json:"overtime_hours"`
	Status            Status   `json:"status"`
	LeaveType         *string  `json:"leave_type,omitempty"`
	LeaveDuration     float64  `json:"leave_duration"`
	IsMissingRecord   bool     `json:"is_missing_record"`
}

func NewRecordResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		Date:            r.Date.String(),
		WorkingHours:    r.WorkingHours,
		OvertimeHours:   r.OvertimeHours,
		Status:          r.Status,
		LeaveType:       r.LeaveType,
		LeaveDuration:   r.LeaveDuration,
		IsMissingRecord: r.IsMissingRecord,
	}
	if r.CheckIn != nil {
		s := r.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &s
	}
	if r.CheckOut != nil {
		s := r.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &s
	}
	if r.CheckInLocation != nil {
		resp.CheckInLatitude = &r.CheckInLocation.Latitude
		resp.CheckInLongitude = &r.CheckInLocation.Longitude
	}
	if r.CheckOutLocation != nil {
		resp.CheckOutLatitude = &r.CheckOutLocation.Latitude
		resp.CheckOutLongitude = &r.CheckOutLocation.Longitude
	}
	return resp
}

func NewRecordResponses(records []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewRecordResponse(r))
	}
	return out
}
