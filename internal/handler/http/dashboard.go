package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

type DashboardHandler interface {
	GetToday(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
	location         *time.Location
	now              clock
}

func NewDashboardHandler(dashboardService dashboard.Service, location *time.Location) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		location:         location,
		now:              time.Now,
	}
}

// GetToday implements DashboardHandler. The optional date parameter selects another day.
func (h *dashboardHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r, "date", calendar.In(h.now(), h.location))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	snapshot, err := h.dashboardService.GetOrgSnapshot(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}
