package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

type HolidayRepository struct {
	store *Store
}

func (r *HolidayRepository) Add(h holiday.Holiday) holiday.Holiday {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if h.ID == "" {
		h.ID = newID()
	}
	r.store.holidays[h.ID] = h
	return h
}

// ListBetween implements holiday.HolidayRepository.
func (r *HolidayRepository) ListBetween(_ context.Context, start, end calendar.Day) ([]holiday.Holiday, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []holiday.Holiday
	for _, h := range r.store.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
