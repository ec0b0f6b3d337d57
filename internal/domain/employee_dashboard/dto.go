package employee_dashboard

import "github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"

// ========== COMBINED EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is the combined month-to-date view of one employee
type EmployeeDashboardResponse struct {
	EmployeeID        string                     `json:"employee_id"`
	EmployeeName      string                     `json:"employee_name"`
	Today             *attendance.RecordResponse `json:"today,omitempty"`
	WorkStats         WorkStatsResponse          `json:"work_stats"`
	AttendanceSummary AttendanceSummaryResponse  `json:"attendance_summary"`
	LeaveSummary      LeaveSummaryResponse       `json:"leave_summary"`
}

// ========== WORK STATS (Top Cards) ==========

// WorkStatsResponse contains work hours and attendance counts for date range
type WorkStatsResponse struct {
	WorkHours     string  `json:"work_hours"`     // Format: "120h 54m"
	WorkMinutes   int64   `json:"work_minutes"`   // Total minutes for calculation
	OvertimeHours float64 `json:"overtime_hours"` // Total overtime, two decimals
	OnTimeCount   int64   `json:"on_time_count"`  // present
	LateCount     int64   `json:"late_count"`     // late
	HalfDayCount  int64   `json:"half_day_count"` // half_day
	AbsentCount   int64   `json:"absent_count"`   // absent, stored or synthesized
	StartDate     string  `json:"start_date"`     // Filter start date
	EndDate       string  `json:"end_date"`       // Filter end date
}

// ========== ATTENDANCE SUMMARY (Pie Chart) ==========

// AttendanceSummaryResponse is the status distribution over working days
// (days that are neither weekend nor holiday)
type AttendanceSummaryResponse struct {
	WorkingDays    int64                `json:"working_days"`
	OnTime         int64                `json:"on_time"`
	Late           int64                `json:"late"`
	HalfDay        int64                `json:"half_day"`
	Absent         int64                `json:"absent"`
	LeaveCount     int64                `json:"leave_count"` // leave and unpaid_leave days
	OnTimePercent  float64              `json:"on_time_percent"`
	LatePercent    float64              `json:"late_percent"`
	AbsentPercent  float64              `json:"absent_percent"`
	LeavePercent   float64              `json:"leave_percent"`
	LeaveBreakdown []LeaveBreakdownItem `json:"leave_breakdown"` // Breakdown by leave type
	Month          string               `json:"month"`           // Format: "YYYY-MM"
}

// LeaveBreakdownItem represents leave count by type
type LeaveBreakdownItem struct {
	LeaveTypeName string  `json:"leave_type_name"`
	Days          float64 `json:"days"`
	Percent       float64 `json:"percent"`
}

// ========== LEAVE SUMMARY ==========

// LeaveSummaryResponse represents leave quota summary for a year
type LeaveSummaryResponse struct {
	Year             int              `json:"year"`
	Used             float64          `json:"used"`
	LeaveQuotaDetail []LeaveQuotaItem `json:"leave_quota_detail"`
}

// LeaveQuotaItem represents quota info for a leave type. The pool is shared,
// so Taken is the same for every type.
type LeaveQuotaItem struct {
	LeaveTypeName string  `json:"leave_type_name"`
	TotalQuota    float64 `json:"total_quota"`
	Taken         float64 `json:"taken"`
	Remaining     float64 `json:"remaining"`
}
