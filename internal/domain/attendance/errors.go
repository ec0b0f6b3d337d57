package attendance

import "github.com/cmlabs-hris/attendance-backend-go/internal/pkg/apperror"

var (
	// Check-in / check-out
	ErrDuplicateCheckIn       = apperror.New(apperror.KindStateConflict, "DUPLICATE_CHECK_IN", "you have already checked in today")
	ErrNoActiveCheckIn        = apperror.New(apperror.KindStateConflict, "NO_ACTIVE_CHECK_IN", "you have not checked in yet")
	ErrAlreadyCheckedOut      = apperror.New(apperror.KindStateConflict, "ALREADY_CHECKED_OUT", "you have already checked out")
	ErrEarlyCheckoutForbidden = apperror.New(apperror.KindStateConflict, "EARLY_CHECKOUT_FORBIDDEN", "you cannot check out before completing half of your shift")

	// Records
	ErrRecordNotFound = apperror.New(apperror.KindNotFound, "ATTENDANCE_NOT_FOUND", "attendance record not found")
	ErrRecordConflict = apperror.New(apperror.KindPersistenceConflict, "ATTENDANCE_CONFLICT", "an attendance record already exists for this day")
	ErrInvalidTimes   = apperror.New(apperror.KindValidation, "INVALID_TIMES", "check_out must not be before check_in")
)
