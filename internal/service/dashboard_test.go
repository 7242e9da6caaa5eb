package service

import (
	"context"
	"testing"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/atinyakov/FleetKeeper/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboard(f *fixture) *DashboardService {
	return NewDashboardService(f.ships, f.components, f.jobs).WithClock(func() time.Time { return testNow })
}

func TestDashboard_SeedStats(t *testing.T) {
	f := newFixture(t)
	d, err := newDashboard(f).Dashboard(context.Background(), engineer)
	require.NoError(t, err)

	assert.Equal(t, views.Stats{
		TotalShips:                   6,
		TotalComponents:              14,
		OverdueJobs:                  4,
		JobsInProgress:               4,
		CompletedJobs:                4,
		OverdueMaintenanceComponents: 14,
	}, d.Stats)
	assert.Len(t, d.JobsTrend, views.TrendDays)

	_, err = newDashboard(f).Dashboard(context.Background(), nil)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func countJobs(c views.Calendar) int {
	n := 0
	for _, d := range c.Days {
		n += len(d.Jobs)
	}
	return n
}

func TestCalendar_MonthGrid(t *testing.T) {
	f := newFixture(t)
	svc := newDashboard(f)
	ctx := context.Background()

	cal, err := svc.Calendar(ctx, admin, views.MonthView, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "May 2024", cal.Title)
	require.Len(t, cal.Days, 35)
	assert.Equal(t, "2024-04-28", cal.Days[0].Key)
	assert.Equal(t, "2024-06-01", cal.Days[34].Key)
	// jobs 2, 3, 8 and 12 fall inside the grid
	assert.Equal(t, 4, countJobs(cal))

	other := &models.User{ID: "8", Role: models.RoleEngineer}
	cal, err = svc.Calendar(ctx, other, views.MonthView, testNow)
	require.NoError(t, err)
	assert.Zero(t, countJobs(cal))
}

func TestCalendar_WeekGrid(t *testing.T) {
	f := newFixture(t)
	cal, err := newDashboard(f).Calendar(context.Background(), engineer, views.WeekView, testNow)
	require.NoError(t, err)
	require.Len(t, cal.Days, 7)
	assert.Equal(t, "2024-05-06", cal.Days[0].Key)
	assert.Equal(t, "6 May - 12 May 2024", cal.Title)
	assert.Zero(t, countJobs(cal))
}
