package fixtures

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	today := calendar.New(2025, time.March, 10)

	ids, err := Seed(ctx, store, today)
	require.NoError(t, err)

	assert.NotEmpty(t, ids.OwnerID)
	assert.NotEmpty(t, ids.ManagerID)
	assert.Len(t, ids.EmployeeIDs, 6)

	active, err := store.Employees().ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 5)

	settings, err := store.Settings().Get(ctx)
	require.NoError(t, err)
	assert.True(t, settings.HasOfficeLocation())

	holidays, err := store.Holidays().ListBetween(ctx, calendar.New(2025, time.January, 1), calendar.New(2025, time.December, 31))
	require.NoError(t, err)
	assert.Len(t, holidays, 5)
}
