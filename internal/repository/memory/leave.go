package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

type LeaveRepository struct {
	store *Store
}

// Create implements leave.Repository.
func (r *LeaveRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.leaves {
		if existing.EmployeeID == request.EmployeeID && existing.Status != leave.RequestStatusRejected &&
			request.Status != leave.RequestStatusRejected && intersects(existing, request.StartDate, request.EndDate) {
			return leave.LeaveRequest{}, leave.ErrLeaveOverlap
		}
	}

	now := time.Now()
	request.ID = newID()
	request.CreatedAt = now
	request.UpdatedAt = now
	id := request.ID
	r.store.leaves[id] = request
	logUndo(ctx, func() { delete(r.store.leaves, id) })
	return request, nil
}

// GetByID implements leave.Repository.
func (r *LeaveRepository) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	request, ok := r.store.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

// Update implements leave.Repository.
func (r *LeaveRepository) Update(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.leaves[request.ID]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	logUndo(ctx, func() { r.store.leaves[existing.ID] = existing })
	request.CreatedAt = existing.CreatedAt
	request.UpdatedAt = time.Now()
	r.store.leaves[request.ID] = request
	return request, nil
}

// ListByEmployee implements leave.Repository.
func (r *LeaveRepository) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []leave.LeaveRequest
	for _, request := range r.store.leaves {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

// HasOverlap implements leave.Repository.
func (r *LeaveRepository) HasOverlap(_ context.Context, employeeID string, start, end calendar.Day) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, request := range r.store.leaves {
		if request.EmployeeID != employeeID || request.Status == leave.RequestStatusRejected {
			continue
		}
		if intersects(request, start, end) {
			return true, nil
		}
	}
	return false, nil
}

// ListApprovedBetween implements leave.Repository.
func (r *LeaveRepository) ListApprovedBetween(_ context.Context, employeeID string, start, end calendar.Day) ([]leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []leave.LeaveRequest
	for _, request := range r.store.leaves {
		if request.Status != leave.RequestStatusApproved {
			continue
		}
		if employeeID != "" && request.EmployeeID != employeeID {
			continue
		}
		if intersects(request, start, end) {
			out = append(out, request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func intersects(request leave.LeaveRequest, start, end calendar.Day) bool {
	return !request.StartDate.After(end) && !request.EndDate.Before(start)
}
