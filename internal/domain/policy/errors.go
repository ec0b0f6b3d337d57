package policy

import "github.com/cmlabs-hris/attendance-backend-go/internal/pkg/apperror"

var (
	ErrSettingsNotFound  = apperror.New(apperror.KindNotFound, "SETTINGS_NOT_FOUND", "organization settings not found")
	ErrLocationRequired  = apperror.New(apperror.KindValidation, "LOCATION_REQUIRED", "location is required to record attendance")
	ErrGeofenceViolation = apperror.New(apperror.KindPolicyViolation, "GEOFENCE_VIOLATION", "you are outside the allowed radius")
	ErrInvalidClock      = apperror.New(apperror.KindValidation, "INVALID_CLOCK", "time must be in HH:MM format")
)
