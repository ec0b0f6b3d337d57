package dashboard

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

type Service interface {
	GetOrgSnapshot(ctx context.Context, day calendar.Day) (OrgSnapshot, error)
}
