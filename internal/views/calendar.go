package views

import (
	"fmt"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/models"
)

// CalendarView selects the calendar layout.
type CalendarView string

const (
	MonthView CalendarView = "month"
	WeekView  CalendarView = "week"
)

// ParseCalendarView accepts "month", "week" or an empty string (month).
func ParseCalendarView(s string) (CalendarView, error) {
	switch CalendarView(s) {
	case "", MonthView:
		return MonthView, nil
	case WeekView:
		return WeekView, nil
	}
	return "", fmt.Errorf("unknown calendar view %q", s)
}

// CalendarDay is one cell of the calendar grid.
type CalendarDay struct {
	Date           time.Time    `json:"date"`
	Day            int          `json:"day"`
	IsCurrentMonth bool         `json:"isCurrentMonth"`
	Key            string       `json:"key"`
	Jobs           []models.Job `json:"jobs"`
}

// Calendar is a rendered grid with its heading. Previous and Next are the
// reference dates of the neighbouring grids.
type Calendar struct {
	View     CalendarView  `json:"view"`
	Title    string        `json:"title"`
	Previous string        `json:"previous"`
	Next     string        `json:"next"`
	Days     []CalendarDay `json:"days"`
}

// BuildCalendar renders the grid of view around ref.
func BuildCalendar(view CalendarView, ref time.Time, jobs []models.Job) Calendar {
	var days []CalendarDay
	if view == WeekView {
		days = Week(ref, jobs)
	} else {
		view = MonthView
		days = Month(ref, jobs)
	}
	return Calendar{
		View:     view,
		Title:    title(view, ref, days),
		Previous: models.FormatDate(Previous(view, ref)),
		Next:     models.FormatDate(Next(view, ref)),
		Days:     days,
	}
}

// Month returns the Sunday-first grid of ref's month, padded with days of the
// neighbouring months to whole weeks.
func Month(ref time.Time, jobs []models.Job) []CalendarDay {
	byDate := jobsByDate(jobs)
	first := firstOfMonth(ref)
	last := first.AddDate(0, 1, -1)

	lead := int(first.Weekday())
	total := lead + last.Day()
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	start := first.AddDate(0, 0, -lead)
	days := make([]CalendarDay, 0, total)
	for i := 0; i < total; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, cell(d, d.Month() == first.Month(), byDate))
	}
	return days
}

// Week returns the seven days of the Monday-start week containing ref.
func Week(ref time.Time, jobs []models.Job) []CalendarDay {
	byDate := jobsByDate(jobs)
	day := models.Day(ref)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)

	days := make([]CalendarDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, cell(d, d.Month() == day.Month(), byDate))
	}
	return days
}

// Previous moves ref back by one month or one week.
func Previous(view CalendarView, ref time.Time) time.Time {
	return step(view, ref, -1)
}

// Next moves ref forward by one month or one week.
func Next(view CalendarView, ref time.Time) time.Time {
	return step(view, ref, 1)
}

// step moves from the first of the month in month view so that a reference
// on the 31st never skips a shorter month.
func step(view CalendarView, ref time.Time, dir int) time.Time {
	if view == WeekView {
		return models.Day(ref).AddDate(0, 0, 7*dir)
	}
	return firstOfMonth(ref).AddDate(0, dir, 0)
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func cell(d time.Time, current bool, byDate map[string][]models.Job) CalendarDay {
	key := models.FormatDate(d)
	jobs := byDate[key]
	if jobs == nil {
		jobs = []models.Job{}
	}
	return CalendarDay{Date: d, Day: d.Day(), IsCurrentMonth: current, Key: key, Jobs: jobs}
}

func jobsByDate(jobs []models.Job) map[string][]models.Job {
	out := make(map[string][]models.Job)
	for _, j := range jobs {
		out[j.ScheduledDate] = append(out[j.ScheduledDate], j)
	}
	return out
}

func title(view CalendarView, ref time.Time, days []CalendarDay) string {
	if view == MonthView || len(days) == 0 {
		return firstOfMonth(ref).Format("January 2006")
	}
	first, last := days[0].Date, days[len(days)-1].Date
	return fmt.Sprintf("%d %s - %d %s %d", first.Day(), first.Month(), last.Day(), last.Month(), last.Year())
}
