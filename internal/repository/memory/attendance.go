package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

type AttendanceRepository struct {
	store *Store
}

// Create implements attendance.Repository.
func (r *AttendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := recordKey{employeeID: record.EmployeeID, day: record.Date}
	if _, exists := r.store.recordIndex[key]; exists {
		return attendance.Record{}, attendance.ErrRecordConflict
	}
	return r.insertLocked(ctx, record), nil
}

// GetByID implements attendance.Repository.
func (r *AttendanceRepository) GetByID(_ context.Context, id string) (attendance.Record, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return cloneRecord(record), nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (r *AttendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID string, day calendar.Day) (attendance.Record, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	id, ok := r.store.recordIndex[recordKey{employeeID: employeeID, day: day}]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return cloneRecord(r.store.records[id]), nil
}

// Update implements attendance.Repository.
func (r *AttendanceRepository) Update(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.records[record.ID]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}

	oldKey := recordKey{employeeID: existing.EmployeeID, day: existing.Date}
	newKey := recordKey{employeeID: record.EmployeeID, day: record.Date}
	if oldKey != newKey {
		if _, taken := r.store.recordIndex[newKey]; taken {
			return attendance.Record{}, attendance.ErrRecordConflict
		}
		delete(r.store.recordIndex, oldKey)
		r.store.recordIndex[newKey] = record.ID
	}
	logUndo(ctx, func() {
		if oldKey != newKey {
			delete(r.store.recordIndex, newKey)
			r.store.recordIndex[oldKey] = existing.ID
		}
		r.store.records[existing.ID] = existing
	})

	record.IsMissingRecord = false
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = time.Now()
	r.store.records[record.ID] = cloneRecord(record)
	return cloneRecord(record), nil
}

// Upsert implements attendance.Repository.
func (r *AttendanceRepository) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id, exists := r.store.recordIndex[recordKey{employeeID: record.EmployeeID, day: record.Date}]
	if !exists {
		return r.insertLocked(ctx, record), nil
	}

	previous := r.store.records[id]
	logUndo(ctx, func() { r.store.records[id] = previous })

	existing := cloneRecord(previous)
	existing.Status = record.Status
	existing.LeaveType = record.LeaveType
	existing.LeaveDuration = record.LeaveDuration
	existing.UpdatedAt = time.Now()
	r.store.records[id] = existing
	return cloneRecord(existing), nil
}

// ListByEmployeeRange implements attendance.Repository.
func (r *AttendanceRepository) ListByEmployeeRange(_ context.Context, employeeID string, start, end calendar.Day) ([]attendance.Record, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []attendance.Record
	for _, record := range r.store.records {
		if record.EmployeeID == employeeID && !record.Date.Before(start) && !record.Date.After(end) {
			out = append(out, cloneRecord(record))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// ListByDate implements attendance.Repository.
func (r *AttendanceRepository) ListByDate(_ context.Context, day calendar.Day) ([]attendance.Record, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []attendance.Record
	for _, record := range r.store.records {
		if record.Date == day {
			out = append(out, cloneRecord(record))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

// SumLeaveDuration implements attendance.Repository.
func (r *AttendanceRepository) SumLeaveDuration(_ context.Context, employeeID string, year int, excludeStart, excludeEnd calendar.Day) (float64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	exclude := !excludeStart.IsZero() && !excludeEnd.IsZero()
	var total float64
	for _, record := range r.store.records {
		if record.EmployeeID != employeeID || record.Date.Year != year || !record.Status.IsLeave() {
			continue
		}
		if exclude && !record.Date.Before(excludeStart) && !record.Date.After(excludeEnd) {
			continue
		}
		total += record.LeaveDuration
	}
	return total, nil
}

func (r *AttendanceRepository) insertLocked(ctx context.Context, record attendance.Record) attendance.Record {
	now := time.Now()
	record.ID = newID()
	record.IsMissingRecord = false
	record.CreatedAt = now
	record.UpdatedAt = now

	id := record.ID
	key := recordKey{employeeID: record.EmployeeID, day: record.Date}
	r.store.records[id] = cloneRecord(record)
	r.store.recordIndex[key] = id
	logUndo(ctx, func() {
		delete(r.store.records, id)
		if r.store.recordIndex[key] == id {
			delete(r.store.recordIndex, key)
		}
	})
	return cloneRecord(record)
}

func cloneRecord(r attendance.Record) attendance.Record {
	if r.CheckIn != nil {
		t := *r.CheckIn
		r.CheckIn = &t
	}
	if r.CheckOut != nil {
		t := *r.CheckOut
		r.CheckOut = &t
	}
	if r.CheckInLocation != nil {
		l := *r.CheckInLocation
		r.CheckInLocation = &l
	}
	if r.CheckOutLocation != nil {
		l := *r.CheckOutLocation
		r.CheckOutLocation = &l
	}
	if r.LeaveType != nil {
		s := *r.LeaveType
		r.LeaveType = &s
	}
	return r
}
