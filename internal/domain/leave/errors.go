package leave

import "github.com/cmlabs-hris/attendance-backend-go/internal/pkg/apperror"

var (
	ErrLeaveRequestNotFound  = apperror.New(apperror.KindNotFound, "LEAVE_NOT_FOUND", "leave request not found")
	ErrLeaveAlreadyProcessed = apperror.New(apperror.KindStateConflict, "LEAVE_ALREADY_PROCESSED", "leave request already processed")
	ErrLeaveOverlap          = apperror.New(apperror.KindStateConflict, "LEAVE_OVERLAP", "leave request overlaps an existing pending or approved request")

	ErrPastDatedLeave   = apperror.New(apperror.KindValidation, "PAST_DATED_LEAVE", "leave cannot start in the past")
	ErrInvalidDateRange = apperror.New(apperror.KindValidation, "INVALID_DATE_RANGE", "end_date must not be before start_date")
	ErrInvalidDuration  = apperror.New(apperror.KindValidation, "INVALID_LEAVE_DURATION", "leave_duration must be 0.5 or 1")
	ErrHalfDayRange     = apperror.New(apperror.KindValidation, "HALF_DAY_RANGE", "a half-day leave must start and end on the same day")
	ErrNoWorkingDays    = apperror.New(apperror.KindValidation, "NO_WORKING_DAYS", "leave range contains no working days")
)
