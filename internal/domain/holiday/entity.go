package holiday

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

type Holiday struct {
	ID   string
	Date calendar.Day
	Name string
}

// HolidayRepository reads the organization holiday calendar.
type HolidayRepository interface {
	// ListBetween returns holidays with start <= date <= end, ordered by date.
	ListBetween(ctx context.Context, start, end calendar.Day) ([]Holiday, error)
}

// ByDay indexes holidays by calendar day. The first holiday of a day wins.
func ByDay(holidays []Holiday) map[calendar.Day]Holiday {
	index := make(map[calendar.Day]Holiday, len(holidays))
	for _, h := range holidays {
		if _, exists := index[h.Date]; !exists {
			index[h.Date] = h
		}
	}
	return index
}
