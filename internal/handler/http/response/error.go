package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

var statusByKind = map[apperror.Kind]int{
	apperror.KindValidation:          http.StatusUnprocessableEntity,
	apperror.KindStateConflict:       http.StatusConflict,
	apperror.KindPolicyViolation:     http.StatusForbidden,
	apperror.KindNotFound:            http.StatusNotFound,
	apperror.KindAuthorization:       http.StatusForbidden,
	apperror.KindPersistenceConflict: http.StatusConflict,
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	kind := apperror.KindOf(err)
	status, known := statusByKind[kind]
	if !known {
		slog.Error("unhandled error", "error", err, "kind", kind)
		InternalServerError(w, "An unexpected error occurred")
		return
	}

	appErr, _ := apperror.As(err)
	Failure(w, status, appErr.Code, appErr.Message)
}
