package service

import (
	"regexp"
	"strings"

	"github.com/atinyakov/FleetKeeper/internal/models"
)

var imoPattern = regexp.MustCompile(`^IMO\d{7}$`)

type fieldErrors []models.FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, models.FieldError{Field: field, Message: message})
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &models.ValidationError{Errors: f}
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// ShipInput is the ship form.
type ShipInput struct {
	Name   string            `json:"name"`
	IMO    string            `json:"imo"`
	Flag   string            `json:"flag"`
	Status models.ShipStatus `json:"status"`
}

// Validate checks the required fields and the IMO number format.
func (in ShipInput) Validate() error {
	var errs fieldErrors
	if blank(in.Name) {
		errs.add("name", "Ship name is required")
	}
	switch {
	case blank(in.IMO):
		errs.add("imo", "IMO number is required")
	case !imoPattern.MatchString(in.IMO):
		errs.add("imo", "IMO must be in format IMO followed by 7 digits")
	}
	if blank(in.Flag) {
		errs.add("flag", "Flag is required")
	}
	if in.Status != "" && !in.Status.Valid() {
		errs.add("status", "Invalid ship status")
	}
	return errs.err()
}

func (in ShipInput) ship() models.Ship {
	status := in.Status
	if status == "" {
		status = models.ShipActive
	}
	return models.Ship{
		Name:   strings.TrimSpace(in.Name),
		IMO:    in.IMO,
		Flag:   strings.TrimSpace(in.Flag),
		Status: status,
	}
}

func validateShipPatch(p models.ShipPatch) error {
	var errs fieldErrors
	if p.Name != nil && blank(*p.Name) {
		errs.add("name", "Ship name is required")
	}
	if p.IMO != nil {
		switch {
		case blank(*p.IMO):
			errs.add("imo", "IMO number is required")
		case !imoPattern.MatchString(*p.IMO):
			errs.add("imo", "IMO must be in format IMO followed by 7 digits")
		}
	}
	if p.Flag != nil && blank(*p.Flag) {
		errs.add("flag", "Flag is required")
	}
	if p.Status != nil && !p.Status.Valid() {
		errs.add("status", "Invalid ship status")
	}
	return errs.err()
}

// ComponentInput is the component form.
type ComponentInput struct {
	ShipID              string `json:"shipId"`
	Name                string `json:"name"`
	SerialNumber        string `json:"serialNumber"`
	InstallDate         string `json:"installDate"`
	LastMaintenanceDate string `json:"lastMaintenanceDate"`
	Description         string `json:"description"`
}

// Validate checks that every required field is present.
func (in ComponentInput) Validate() error {
	var errs fieldErrors
	if blank(in.ShipID) {
		errs.add("shipId", "Ship is required")
	}
	if blank(in.Name) {
		errs.add("name", "Component name is required")
	}
	if blank(in.SerialNumber) {
		errs.add("serialNumber", "Serial number is required")
	}
	if blank(in.InstallDate) {
		errs.add("installDate", "Installation date is required")
	}
	if blank(in.LastMaintenanceDate) {
		errs.add("lastMaintenanceDate", "Last maintenance date is required")
	}
	return errs.err()
}

func (in ComponentInput) component() models.Component {
	return models.Component{
		ShipID:              in.ShipID,
		Name:                strings.TrimSpace(in.Name),
		SerialNumber:        strings.TrimSpace(in.SerialNumber),
		InstallDate:         in.InstallDate,
		LastMaintenanceDate: in.LastMaintenanceDate,
		Description:         in.Description,
	}
}

func validateComponentPatch(p models.ComponentPatch) error {
	var errs fieldErrors
	if p.ShipID != nil && blank(*p.ShipID) {
		errs.add("shipId", "Ship is required")
	}
	if p.Name != nil && blank(*p.Name) {
		errs.add("name", "Component name is required")
	}
	if p.SerialNumber != nil && blank(*p.SerialNumber) {
		errs.add("serialNumber", "Serial number is required")
	}
	if p.InstallDate != nil && blank(*p.InstallDate) {
		errs.add("installDate", "Installation date is required")
	}
	if p.LastMaintenanceDate != nil && blank(*p.LastMaintenanceDate) {
		errs.add("lastMaintenanceDate", "Last maintenance date is required")
	}
	return errs.err()
}

// JobInput is the job form.
type JobInput struct {
	ShipID             string           `json:"shipId"`
	ComponentID        string           `json:"componentId"`
	Type               string           `json:"type"`
	Priority           models.Priority  `json:"priority"`
	Status             models.JobStatus `json:"status"`
	AssignedEngineerID string           `json:"assignedEngineerId"`
	ScheduledDate      string           `json:"scheduledDate"`
	CompletedDate      string           `json:"completedDate"`
	Description        string           `json:"description"`
}

// Validate checks that every required field is present and that the enums
// hold known values.
func (in JobInput) Validate() error {
	var errs fieldErrors
	if blank(in.ShipID) {
		errs.add("shipId", "Ship is required")
	}
	if blank(in.ComponentID) {
		errs.add("componentId", "Component is required")
	}
	if blank(in.Type) {
		errs.add("type", "Job type is required")
	}
	switch {
	case in.Priority == "":
		errs.add("priority", "Priority is required")
	case !in.Priority.Valid():
		errs.add("priority", "Invalid priority")
	}
	switch {
	case in.Status == "":
		errs.add("status", "Status is required")
	case !in.Status.Valid():
		errs.add("status", "Invalid status")
	}
	if blank(in.AssignedEngineerID) {
		errs.add("assignedEngineerId", "Assigned engineer is required")
	}
	if blank(in.ScheduledDate) {
		errs.add("scheduledDate", "Scheduled date is required")
	}
	return errs.err()
}

func (in JobInput) job() models.Job {
	j := models.Job{
		ShipID:             in.ShipID,
		ComponentID:        in.ComponentID,
		Type:               strings.TrimSpace(in.Type),
		Priority:           in.Priority,
		Status:             in.Status,
		AssignedEngineerID: in.AssignedEngineerID,
		ScheduledDate:      in.ScheduledDate,
		Description:        in.Description,
	}
	if !blank(in.CompletedDate) {
		d := in.CompletedDate
		j.CompletedDate = &d
	}
	return j
}

func validateJobPatch(p models.JobPatch) error {
	var errs fieldErrors
	if p.ShipID != nil && blank(*p.ShipID) {
		errs.add("shipId", "Ship is required")
	}
	if p.ComponentID != nil && blank(*p.ComponentID) {
		errs.add("componentId", "Component is required")
	}
	if p.Type != nil && blank(*p.Type) {
		errs.add("type", "Job type is required")
	}
	if p.Priority != nil && !p.Priority.Valid() {
		errs.add("priority", "Priority is required")
	}
	if p.Status != nil && !p.Status.Valid() {
		errs.add("status", "Status is required")
	}
	if p.AssignedEngineerID != nil && blank(*p.AssignedEngineerID) {
		errs.add("assignedEngineerId", "Assigned engineer is required")
	}
	if p.ScheduledDate != nil && blank(*p.ScheduledDate) {
		errs.add("scheduledDate", "Scheduled date is required")
	}
	return errs.err()
}
