package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2024-02"); !ok {
		t.Errorf("IsValidMonth(2024-02) = false, want true")
	}
	if _, ok := IsValidMonth("2024-2-01"); ok {
		t.Errorf("IsValidMonth(2024-2-01) = true, want false")
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:15", "23:59"}
	invalid := []string{"24:00", "9:15", "09:60", "0915", ""}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "latitude", Message: "invalid"},
		{Field: "leave_type", Message: "required"},
	}
	got := errs.Error()
	want := "latitude: invalid; leave_type: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "latitude", Message: "invalid"},
		{Field: "leave_type", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"latitude": "invalid", "leave_type": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

type structSample struct {
	LeaveType string   `json:"leave_type" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Duration  string   `json:"duration" validate:"omitempty,oneof=full half"`
}

func TestStruct(t *testing.T) {
	lat := 123.0
	errs := Struct(structSample{Latitude: &lat, Duration: "quarter"})
	got := errs.ToMap()

	if got["leave_type"] != "leave_type is required" {
		t.Errorf("Struct()[leave_type] = %q", got["leave_type"])
	}
	if got["latitude"] != "latitude must be between -90 and 90" {
		t.Errorf("Struct()[latitude] = %q", got["latitude"])
	}
	if got["duration"] != "duration must be one of: full, half" {
		t.Errorf("Struct()[duration] = %q", got["duration"])
	}

	lat = 10
	if errs := Struct(structSample{LeaveType: "sick", Latitude: &lat}); errs != nil {
		t.Errorf("Struct(valid) = %v, want nil", errs)
	}
}
