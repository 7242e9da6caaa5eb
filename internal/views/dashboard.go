package views

import (
	"time"

	"github.com/atinyakov/FleetKeeper/internal/models"
)

// TrendDays is the window of the dashboard trend chart.
const TrendDays = 14

// Stats summarizes the fleet for the dashboard.
type Stats struct {
	TotalShips                   int `json:"totalShips"`
	TotalComponents              int `json:"totalComponents"`
	OverdueJobs                  int `json:"overdueJobs"`
	JobsInProgress               int `json:"jobsInProgress"`
	CompletedJobs                int `json:"completedJobs"`
	OverdueMaintenanceComponents int `json:"overdueMaintenanceComponents"`
}

// Dashboard bundles the statistics with the chart series.
type Dashboard struct {
	Stats       Stats        `json:"stats"`
	JobStatus   []Slice      `json:"jobStatus"`
	ShipStatus  []Slice      `json:"shipStatus"`
	JobsTrend   []TrendPoint `json:"jobsTrend"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

// BuildDashboard computes the dashboard as of now.
func BuildDashboard(ships []models.Ship, comps []models.Component, jobs []models.Job, now time.Time) Dashboard {
	s := Stats{TotalShips: len(ships), TotalComponents: len(comps)}
	for _, j := range jobs {
		if JobOverdue(j, now) {
			s.OverdueJobs++
		}
		switch j.Status {
		case models.JobInProgress:
			s.JobsInProgress++
		case models.JobCompleted:
			s.CompletedJobs++
		}
	}
	s.OverdueMaintenanceComponents = len(OverdueComponents(comps, now))

	return Dashboard{
		Stats:       s,
		JobStatus:   JobStatusDistribution(jobs),
		ShipStatus:  ShipStatusDistribution(ships),
		JobsTrend:   Trend(jobs, TrendDays, now),
		GeneratedAt: now.UTC(),
	}
}
