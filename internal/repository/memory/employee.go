package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	store *Store
}

// Add inserts or replaces an employee; a blank ID is generated.
func (r *EmployeeRepository) Add(e employee.Employee) employee.Employee {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if e.ID == "" {
		e.ID = newID()
	}
	r.store.employees[e.ID] = e
	return e
}

// GetByID implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	e, ok := r.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *EmployeeRepository) ListActive(_ context.Context) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []employee.Employee
	for _, e := range r.store.employees {
		if e.IsActive() {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}
