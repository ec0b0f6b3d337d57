package employee

import "github.com/cmlabs-hris/attendance-backend-go/internal/pkg/apperror"

var (
	ErrEmployeeNotFound = apperror.New(apperror.KindNotFound, "EMPLOYEE_NOT_FOUND", "employee not found")
	ErrRoleForbidden    = apperror.New(apperror.KindAuthorization, "ROLE_FORBIDDEN", "only employees can record attendance")

	ErrEmployeeClaimRequired = apperror.New(apperror.KindAuthorization, "EMPLOYEE_REQUIRED", "token is not linked to an employee")
	ErrManagerAccessRequired = apperror.New(apperror.KindAuthorization, "MANAGER_ACCESS_REQUIRED", "manager or owner access required")
	ErrSelfOrManagerRequired = apperror.New(apperror.KindAuthorization, "ACCESS_DENIED", "you can only access your own records")
)
