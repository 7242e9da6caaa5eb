package shell

import (
	"fmt"
	"strings"

	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/atinyakov/FleetKeeper/internal/service"
)

// ask prints label and reads one trimmed line. It returns "" at end of input.
func (s *Shell) ask(label string) string {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// PromptShip reads the ship form.
func (s *Shell) PromptShip() service.ShipInput {
	return service.ShipInput{
		Name:   s.ask("Ship name: "),
		IMO:    s.ask("IMO number (IMO1234567): "),
		Flag:   s.ask("Flag: "),
		Status: models.ShipStatus(s.ask("Status (Active/Under Maintenance/Out of Service, empty for Active): ")),
	}
}

// PromptComponent reads the component form for shipID.
func (s *Shell) PromptComponent(shipID string) service.ComponentInput {
	return service.ComponentInput{
		ShipID:              shipID,
		Name:                s.ask("Component name: "),
		SerialNumber:        s.ask("Serial number: "),
		InstallDate:         s.ask("Installation date (YYYY-MM-DD): "),
		LastMaintenanceDate: s.ask("Last maintenance date (YYYY-MM-DD): "),
		Description:         s.ask("Description: "),
	}
}

// PromptJob reads the job form.
func (s *Shell) PromptJob() service.JobInput {
	in := service.JobInput{
		ShipID:             s.ask("Ship id: "),
		ComponentID:        s.ask("Component id: "),
		Type:               s.ask("Job type: "),
		Priority:           models.Priority(s.ask("Priority (High/Medium/Low): ")),
		Status:             models.JobStatus(s.ask("Status (Open/In Progress/Completed, empty for Open): ")),
		AssignedEngineerID: s.ask("Assigned engineer id: "),
		ScheduledDate:      s.ask("Scheduled date (YYYY-MM-DD): "),
		Description:        s.ask("Description: "),
	}
	if in.Status == "" {
		in.Status = models.JobOpen
	}
	return in
}
