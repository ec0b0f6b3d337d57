package policy

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

// ParseClock parses "HH:MM" into hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, ErrInvalidClock
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, ErrInvalidClock
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidClock
	}
	return hour, minute, nil
}

// StandardShift is the configured shift length in hours. Overnight shifts wrap
// past midnight; a zero-length or unparsable shift falls back to DefaultShiftHours.
func (s Settings) StandardShift() float64 {
	inH, inM, err := ParseClock(s.WorkingHours.CheckIn)
	if err != nil {
		return DefaultShiftHours
	}
	outH, outM, err := ParseClock(s.WorkingHours.CheckOut)
	if err != nil {
		return DefaultShiftHours
	}

	minutes := (outH*60 + outM) - (inH*60 + inM)
	if minutes < 0 {
		minutes += 24 * 60
	}
	if minutes <= 0 {
		return DefaultShiftHours
	}
	return float64(minutes) / 60
}

// IsOvernightShift reports whether the configured check-out falls on the day
// after check-in.
func (s Settings) IsOvernightShift() bool {
	inH, inM, err := ParseClock(s.WorkingHours.CheckIn)
	if err != nil {
		return false
	}
	outH, outM, err := ParseClock(s.WorkingHours.CheckOut)
	if err != nil {
		return false
	}
	return outH*60+outM < inH*60+inM
}

// LatenessCutoff is the shift start plus grace period on day, in loc.
// Arrivals strictly after the cutoff are late.
func (s Settings) LatenessCutoff(day calendar.Day, loc *time.Location) time.Time {
	hour, minute, err := ParseClock(s.WorkingHours.CheckIn)
	if err != nil {
		hour, minute, _ = ParseClock(DefaultCheckIn)
	}
	grace := s.WorkingHours.GracePeriod
	if grace < 0 {
		grace = 0
	}
	return day.At(hour, minute, loc).Add(time.Duration(grace) * time.Minute)
}

// IsLate reports whether an arrival at t is past the cutoff of the day t falls on in loc.
func (s Settings) IsLate(t time.Time, loc *time.Location) bool {
	return t.After(s.LatenessCutoff(calendar.In(t, loc), loc))
}

// IsWeekend matches day's weekday against the weekend policy, case-insensitively.
func (s Settings) IsWeekend(day calendar.Day) bool {
	name := day.Weekday().String()
	for _, w := range s.WeekendPolicy {
		if strings.EqualFold(strings.TrimSpace(w), name) {
			return true
		}
	}
	return false
}

// QuotaFor returns the annual quota for a leave type. Unknown types draw from
// the casual quota.
func (s Settings) QuotaFor(leaveType string) float64 {
	switch NormalizeLeaveType(leaveType) {
	case "sick":
		return s.LeavePolicy.SickLeave
	case "annual":
		return s.LeavePolicy.AnnualLeave
	case "maternity":
		return s.LeavePolicy.MaternityLeave
	default:
		return s.LeavePolicy.CasualLeave
	}
}

// NormalizeLeaveType maps "Sick Leave", "sick_leave" and "sickLeave" to "sick".
func NormalizeLeaveType(leaveType string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(leaveType) {
		if r == ' ' || r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	key := strings.ToLower(b.String())
	key = strings.TrimSuffix(key, "leave")
	if key == "" {
		return "casual"
	}
	return key
}
