package timeline

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

// Timeline holds exactly one entry per calendar day from the later of Start
// and the employee's joining date through End, ordered by day.
type Timeline struct {
	EmployeeID   string
	EmployeeName string
	Start        calendar.Day
	End          calendar.Day
	Entries      []attendance.Record
	Summary      Summary
}

type Summary struct {
	Days          int                       `json:"days"`
	ByStatus      map[attendance.Status]int `json:"by_status"`
	WorkingHours  float64                   `json:"working_hours"`
	OvertimeHours float64                   `json:"overtime_hours"`
}

type TimelineResponse struct {
	EmployeeID   string                      `json:"employee_id"`
	EmployeeName string                      `json:"employee_name"`
	StartDate    string                      `json:"start_date"`
	EndDate      string                      `json:"end_date"`
	Entries      []attendance.RecordResponse `json:"entries"`
	Summary      Summary                     `json:"summary"`
}

func NewTimelineResponse(t Timeline) TimelineResponse {
	return TimelineResponse{
		EmployeeID:   t.EmployeeID,
		EmployeeName: t.EmployeeName,
		StartDate:    t.Start.String(),
		EndDate:      t.End.String(),
		Entries:      attendance.NewRecordResponses(t.Entries),
		Summary:      t.Summary,
	}
}
