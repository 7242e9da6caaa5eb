package export

import (
	"errors"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/models"
)

// Errors for empty exports.
var (
	ErrNoJobs       = errors.New("No jobs to export")
	ErrNoComponents = errors.New("No components to export")
)

// Column sets of the two exports.
var (
	JobHeaders       = []string{"Type", "Ship", "Component", "Priority", "Status", "ScheduledDate", "Description"}
	ComponentHeaders = []string{"Name", "Ship", "SerialNumber", "InstallDate", "LastMaintenance", "Status", "Description"}
)

const unknown = "Unknown"

// Lookup resolves display names of referenced entities.
type Lookup struct {
	Ships      map[string]models.Ship
	Components map[string]models.Component
}

// NewLookup indexes ships and components by id.
func NewLookup(ships []models.Ship, comps []models.Component) Lookup {
	l := Lookup{
		Ships:      make(map[string]models.Ship, len(ships)),
		Components: make(map[string]models.Component, len(comps)),
	}
	for _, s := range ships {
		l.Ships[s.ID] = s
	}
	for _, c := range comps {
		l.Components[c.ID] = c
	}
	return l
}

func (l Lookup) shipName(id string) string {
	if s, ok := l.Ships[id]; ok {
		return s.Name
	}
	return unknown
}

func (l Lookup) componentName(id string) string {
	if c, ok := l.Components[id]; ok {
		return c.Name
	}
	return unknown
}

// JobRecords converts jobs into export records.
func JobRecords(jobs []models.Job, l Lookup) []Record {
	out := make([]Record, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, Record{
			{"Type", j.Type},
			{"Ship", l.shipName(j.ShipID)},
			{"Component", l.componentName(j.ComponentID)},
			{"Priority", string(j.Priority)},
			{"Status", string(j.Status)},
			{"ScheduledDate", j.ScheduledDate},
			{"Description", j.Description},
		})
	}
	return out
}

// ComponentRecords converts components into export records. Components have
// no status of their own and are exported as Active.
func ComponentRecords(comps []models.Component, l Lookup) []Record {
	out := make([]Record, 0, len(comps))
	for _, c := range comps {
		out = append(out, Record{
			{"Name", c.Name},
			{"Ship", l.shipName(c.ShipID)},
			{"SerialNumber", c.SerialNumber},
			{"InstallDate", c.InstallDate},
			{"LastMaintenance", c.LastMaintenanceDate},
			{"Status", "Active"},
			{"Description", c.Description},
		})
	}
	return out
}

// File is a rendered export.
type File struct {
	Name    string
	Content []byte
}

// Jobs renders the job export dated now.
func Jobs(jobs []models.Job, l Lookup, now time.Time) (File, error) {
	if len(jobs) == 0 {
		return File{}, ErrNoJobs
	}
	content, err := Encode(JobRecords(jobs, l), JobHeaders)
	if err != nil {
		return File{}, err
	}
	return File{Name: "maintenance_jobs_" + models.FormatDate(now) + ".csv", Content: content}, nil
}

// Components renders the component export dated now.
func Components(comps []models.Component, l Lookup, now time.Time) (File, error) {
	if len(comps) == 0 {
		return File{}, ErrNoComponents
	}
	content, err := Encode(ComponentRecords(comps, l), ComponentHeaders)
	if err != nil {
		return File{}, err
	}
	return File{Name: "components_" + models.FormatDate(now) + ".csv", Content: content}, nil
}
