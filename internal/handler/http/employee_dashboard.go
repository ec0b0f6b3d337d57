package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	empDashboard "github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee_dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

type EmployeeDashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type employeeDashboardHandlerImpl struct {
	service  empDashboard.EmployeeDashboardService
	location *time.Location
	now      clock
}

func NewEmployeeDashboardHandler(service empDashboard.EmployeeDashboardService, location *time.Location) EmployeeDashboardHandler {
	return &employeeDashboardHandlerImpl{
		service:  service,
		location: location,
		now:      time.Now,
	}
}

// GetDashboard handles GET /dashboard/me?date=YYYY-MM-DD
func (h *employeeDashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	employeeID, ok := targetEmployee(r, claims)
	if !ok {
		response.HandleError(w, employee.ErrSelfOrManagerRequired)
		return
	}

	day, err := dayParam(r, "date", calendar.In(h.now(), h.location))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.service.GetDashboard(r.Context(), employeeID, day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
