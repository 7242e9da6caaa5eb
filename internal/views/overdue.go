package views

import (
	"time"

	"github.com/atinyakov/FleetKeeper/internal/models"
)

// MaintenanceInterval is how many days a component may go unmaintained.
const MaintenanceInterval = 90

// MaintenanceOverdue reports whether c was last maintained more than
// MaintenanceInterval days before now.
func MaintenanceOverdue(c models.Component, now time.Time) bool {
	if c.LastMaintenanceDate == "" {
		return false
	}
	last, err := models.ParseDate(c.LastMaintenanceDate)
	if err != nil {
		return false
	}
	return models.DaysBetween(last, now) > MaintenanceInterval
}

// OverdueComponents returns the components whose maintenance is overdue.
func OverdueComponents(comps []models.Component, now time.Time) []models.Component {
	out := []models.Component{}
	for _, c := range comps {
		if MaintenanceOverdue(c, now) {
			out = append(out, c)
		}
	}
	return out
}

// JobOverdue reports whether j is still open past its scheduled date.
func JobOverdue(j models.Job, now time.Time) bool {
	if j.Status == models.JobCompleted {
		return false
	}
	t, err := models.ParseDate(j.ScheduledDate)
	return err == nil && t.Before(now)
}
