package timeline

import "github.com/cmlabs-hris/attendance-backend-go/internal/pkg/apperror"

var (
	ErrInvalidRange  = apperror.New(apperror.KindValidation, "INVALID_RANGE", "end_date must not be before start_date")
	ErrRangeTooLong  = apperror.New(apperror.KindValidation, "RANGE_TOO_LONG", "date range must not exceed 366 days")
	ErrBeforeJoining = apperror.New(apperror.KindNotFound, "BEFORE_JOINING_DATE", "employee had not joined on this date")
)
