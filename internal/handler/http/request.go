package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// decodeJSON decodes the request body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// dayParam parses a YYYY-MM-DD query parameter; an absent value yields fallback.
func dayParam(r *http.Request, name string, fallback calendar.Day) (calendar.Day, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	d, err := calendar.Parse(raw)
	if err != nil {
		return calendar.Day{}, validator.ValidationErrors{{Field: name, Message: name + " must be formatted as YYYY-MM-DD"}}
	}
	return d, nil
}

// targetEmployee resolves the employee_id query parameter against the caller.
// Callers default to themselves; only managers may name someone else.
func targetEmployee(r *http.Request, claims middleware.Claims) (string, bool) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		employeeID = claims.EmployeeID
	}
	return employeeID, claims.CanAccess(employeeID)
}

type clock func() time.Time
