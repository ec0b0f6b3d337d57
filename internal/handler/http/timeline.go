package http

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/timeline"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/export"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type TimelineHandler interface {
	GetRange(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)
}

type timelineHandlerImpl struct {
	timelineService timeline.Service
	location        *time.Location
	now             clock
}

func NewTimelineHandler(timelineService timeline.Service, location *time.Location) TimelineHandler {
	return &timelineHandlerImpl{
		timelineService: timelineService,
		location:        location,
		now:             time.Now,
	}
}

// GetRange implements TimelineHandler.
func (h *timelineHandlerImpl) GetRange(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	employeeID, ok := targetEmployee(r, claims)
	if !ok {
		response.HandleError(w, employee.ErrSelfOrManagerRequired)
		return
	}

	today := calendar.In(h.now(), h.location)
	end, err := dayParam(r, "end_date", today)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	start, err := dayParam(r, "start_date", calendar.New(end.Year, end.Month, 1))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timelineService.GetRange(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.write(w, r, result)
}

// GetMonth implements TimelineHandler.
func (h *timelineHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	employeeID, ok := targetEmployee(r, claims)
	if !ok {
		response.HandleError(w, employee.ErrSelfOrManagerRequired)
		return
	}

	month := h.now().In(h.location)
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, valid := validator.IsValidMonth(raw)
		if !valid {
			response.HandleError(w, validator.ValidationErrors{{Field: "month", Message: "month must be formatted as YYYY-MM"}})
			return
		}
		month = parsed
	}

	result, err := h.timelineService.GetMonth(r.Context(), employeeID, month.Year(), month.Month())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.write(w, r, result)
}

func (h *timelineHandlerImpl) write(w http.ResponseWriter, r *http.Request, t timeline.Timeline) {
	if r.URL.Query().Get("format") != "xlsx" {
		response.Success(w, timeline.NewTimelineResponse(t))
		return
	}

	filename := fmt.Sprintf("attendance_%s_%s_%s.xlsx", t.EmployeeID, t.Start, t.End)
	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := export.WriteXLSX(w, timelineSheet(t, h.location)); err != nil {
		response.HandleError(w, fmt.Errorf("failed to export timeline: %w", err))
	}
}

func timelineSheet(t timeline.Timeline, loc *time.Location) export.Sheet {
	sheet := export.Sheet{
		Name:  "Timeline",
		Title: "Attendance Timeline",
		Meta: [][2]string{
			{"Employee", t.EmployeeName},
			{"Period", t.Start.String() + " - " + t.End.String()},
		},
		Headers: []string{"Date", "Day", "Status", "Check In", "Check Out", "Working Hours", "Overtime Hours", "Leave Type", "Recorded"},
	}

	for _, e := range t.Entries {
		leaveType := ""
		if e.LeaveType != nil {
			leaveType = *e.LeaveType
		}
		sheet.Rows = append(sheet.Rows, []interface{}{
			e.Date.String(),
			e.Date.Weekday().String(),
			string(e.Status),
			clockValue(e.CheckIn, loc),
			clockValue(e.CheckOut, loc),
			e.WorkingHours,
			e.OvertimeHours,
			leaveType,
			!e.IsMissingRecord,
		})
	}

	statuses := make([]string, 0, len(t.Summary.ByStatus))
	for status := range t.Summary.ByStatus {
		statuses = append(statuses, string(status))
	}
	sort.Strings(statuses)

	sheet.Footer = append(sheet.Footer, [2]string{"Days", fmt.Sprintf("%d", t.Summary.Days)})
	for _, status := range statuses {
		sheet.Footer = append(sheet.Footer, [2]string{status, fmt.Sprintf("%d", t.Summary.ByStatus[attendance.Status(status)])})
	}
	sheet.Footer = append(sheet.Footer,
		[2]string{"Working Hours", fmt.Sprintf("%.2f", t.Summary.WorkingHours)},
		[2]string{"Overtime Hours", fmt.Sprintf("%.2f", t.Summary.OvertimeHours)},
	)
	return sheet
}

func clockValue(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format("15:04")
}
