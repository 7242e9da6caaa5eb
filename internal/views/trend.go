package views

import (
	"time"

	"github.com/atinyakov/FleetKeeper/internal/models"
)

// TrendLabelLayout formats trend bucket labels, e.g. "May 04".
const TrendLabelLayout = "Jan 02"

// TrendPoint holds the job activity of one day.
type TrendPoint struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
	Overdue   int    `json:"overdue"`
}

// Trend buckets job activity into the last days days, oldest first. A job
// counts as created on its createdAt, as completed on its completedDate when
// Completed, and as overdue on its scheduledDate when it is not Completed and
// that date has passed. Dates older than the window land in the oldest
// bucket; future dates are dropped.
func Trend(jobs []models.Job, days int, now time.Time) []TrendPoint {
	if len(jobs) == 0 || days <= 0 {
		return []TrendPoint{}
	}
	now = now.UTC()
	out := make([]TrendPoint, days)
	for i := range out {
		out[i].Date = now.AddDate(0, 0, -(days - 1 - i)).Format(TrendLabelLayout)
	}

	bucket := func(s string) (int, bool) {
		t, err := models.ParseDate(s)
		if err != nil {
			return 0, false
		}
		return bucketIndex(now, t, days)
	}

	for _, j := range jobs {
		if j.CreatedAt != "" {
			if i, ok := bucket(j.CreatedAt); ok {
				out[i].Created++
			}
		}
		if j.Status == models.JobCompleted && j.CompletedDate != nil {
			if i, ok := bucket(*j.CompletedDate); ok {
				out[i].Completed++
			}
		}
		if j.Status != models.JobCompleted && j.ScheduledDate != "" {
			t, err := models.ParseDate(j.ScheduledDate)
			if err != nil || !t.Before(now) {
				continue
			}
			if i, ok := bucketIndex(now, t, days); ok {
				out[i].Overdue++
			}
		}
	}
	return out
}

func bucketIndex(now, t time.Time, days int) (int, bool) {
	diff := now.Sub(t)
	offset := int(diff / (24 * time.Hour))
	if diff < 0 && diff%(24*time.Hour) != 0 {
		offset--
	}
	if offset > days-1 {
		offset = days - 1
	}
	i := days - 1 - offset
	return i, i >= 0 && i < days
}
