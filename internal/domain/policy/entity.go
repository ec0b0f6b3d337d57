package policy

// Settings is an immutable, per-operation snapshot of the organization policy.
// Services load it once at the start of an operation and pass it by value.
type Settings struct {
	WorkingHours   WorkingHours    `json:"working_hours"`
	WeekendPolicy  []string        `json:"weekend_policy"`
	LeavePolicy    LeavePolicy     `json:"leave_policy"`
	OfficeLocation *OfficeLocation `json:"office_location,omitempty"`
}

type WorkingHours struct {
	CheckIn     string `json:"check_in"`     // HH:MM
	CheckOut    string `json:"check_out"`    // HH:MM
	GracePeriod int    `json:"grace_period"` // minutes
}

// LeavePolicy holds the annual quota in days per leave type.
type LeavePolicy struct {
	CasualLeave    float64 `json:"casual_leave"`
	SickLeave      float64 `json:"sick_leave"`
	AnnualLeave    float64 `json:"annual_leave"`
	MaternityLeave float64 `json:"maternity_leave"`
}

type OfficeLocation struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Radius    float64  `json:"radius"` // meters
}

// Location is a coordinate reported by a client device.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

const (
	DefaultShiftHours     = 9.0
	DefaultRadiusMeters   = 100.0
	DefaultCheckIn        = "09:00"
	DefaultCheckOut       = "18:00"
	DefaultGracePeriod    = 15
	DefaultCasualQuota    = 12
	DefaultSickQuota      = 10
	DefaultAnnualQuota    = 18
	DefaultMaternityQuota = 12
)

// DefaultSettings is used when an organization has not saved its own policy.
func DefaultSettings() Settings {
	return Settings{
		WorkingHours: WorkingHours{
			CheckIn:     DefaultCheckIn,
			CheckOut:    DefaultCheckOut,
			GracePeriod: DefaultGracePeriod,
		},
		WeekendPolicy: []string{"Saturday", "Sunday"},
		LeavePolicy: LeavePolicy{
			CasualLeave:    DefaultCasualQuota,
			SickLeave:      DefaultSickQuota,
			AnnualLeave:    DefaultAnnualQuota,
			MaternityLeave: DefaultMaternityQuota,
		},
	}
}

// HasOfficeLocation reports whether check-in/out must be geofenced.
func (s Settings) HasOfficeLocation() bool {
	return s.OfficeLocation != nil && s.OfficeLocation.Latitude != nil && s.OfficeLocation.Longitude != nil
}
