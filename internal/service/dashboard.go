package service

import (
	"context"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/access"
	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/atinyakov/FleetKeeper/internal/views"
)

// DashboardService assembles the dashboard and calendar projections.
type DashboardService struct {
	ships      ShipRepository
	components ComponentRepository
	jobs       JobRepository
	now        func() time.Time
}

// NewDashboardService constructs a DashboardService reading the wall clock.
func NewDashboardService(ships ShipRepository, components ComponentRepository, jobs JobRepository) *DashboardService {
	return &DashboardService{ships: ships, components: components, jobs: jobs, now: time.Now}
}

// WithClock replaces the time source.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// Dashboard computes fleet statistics and chart series over every job.
func (s *DashboardService) Dashboard(ctx context.Context, actor *models.User) (views.Dashboard, error) {
	if actor == nil {
		return views.Dashboard{}, models.ErrUnauthorized
	}
	return views.BuildDashboard(s.ships.List(ctx), s.components.List(ctx), s.jobs.List(ctx), s.now()), nil
}

// Calendar renders the grid of view around ref with the jobs actor may see.
// A zero ref means today.
func (s *DashboardService) Calendar(ctx context.Context, actor *models.User, view views.CalendarView, ref time.Time) (views.Calendar, error) {
	if actor == nil {
		return views.Calendar{}, models.ErrUnauthorized
	}
	if ref.IsZero() {
		ref = s.now()
	}
	grid := views.BuildCalendar(view, ref, nil)
	if len(grid.Days) == 0 {
		return grid, nil
	}
	jobs, err := s.jobs.ByDateRange(ctx, grid.Days[0].Key, grid.Days[len(grid.Days)-1].Key)
	if err != nil {
		return views.Calendar{}, err
	}
	return views.BuildCalendar(view, ref, access.VisibleJobs(actor, jobs)), nil
}
