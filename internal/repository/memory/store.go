package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/google/uuid"
)

type recordKey struct {
	employeeID string
	day        calendar.Day
}

// Store is an in-process backing store shared by the memory repositories.
// It enforces the same (employee, date) uniqueness as the Postgres schema.
type Store struct {
	mu sync.RWMutex

	employees   map[string]employee.Employee
	holidays    map[string]holiday.Holiday
	settings    *policy.Settings
	records     map[string]attendance.Record
	recordIndex map[recordKey]string
	leaves      map[string]leave.LeaveRequest

	// txMu serializes WithinTx units of work.
	txMu sync.Mutex
}

func NewStore() *Store {
	return &Store{
		employees:   make(map[string]employee.Employee),
		holidays:    make(map[string]holiday.Holiday),
		records:     make(map[string]attendance.Record),
		recordIndex: make(map[recordKey]string),
		leaves:      make(map[string]leave.LeaveRequest),
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

type txKey struct{}

// undoLog holds the inverse of each write made through one WithinTx ctx.
type undoLog struct {
	steps []func()
}

// logUndo registers undo with the unit of work carried by ctx, if any.
// Callers hold s.mu.
func logUndo(ctx context.Context, undo func()) {
	if log, ok := ctx.Value(txKey{}).(*undoLog); ok {
		log.steps = append(log.steps, undo)
	}
}

// WithinTx runs fn and, if it fails, reverts the writes fn made through the
// ctx it was given, newest first. Writes from other callers are kept.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	log := &undoLog{}
	if err := fn(context.WithValue(ctx, txKey{}, log)); err != nil {
		s.mu.Lock()
		for i := len(log.steps) - 1; i >= 0; i-- {
			log.steps[i]()
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) Employees() *EmployeeRepository {
	return &EmployeeRepository{store: s}
}

func (s *Store) Holidays() *HolidayRepository {
	return &HolidayRepository{store: s}
}

func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{store: s}
}

func (s *Store) Attendance() *AttendanceRepository {
	return &AttendanceRepository{store: s}
}

func (s *Store) Leave() *LeaveRepository {
	return &LeaveRepository{store: s}
}
