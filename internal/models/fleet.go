// Package models defines the core data structures of the fleet maintenance
// tracker: ships, their components, maintenance jobs, users and notifications.
package models

// ShipStatus is the operational state of a ship.
type ShipStatus string

const (
	// ShipActive marks a ship in service.
	ShipActive ShipStatus = "Active"
	// ShipUnderMaintenance marks a ship in a maintenance period.
	ShipUnderMaintenance ShipStatus = "Under Maintenance"
	// ShipOutOfService marks a ship withdrawn from service.
	ShipOutOfService ShipStatus = "Out of Service"
)

// Valid reports whether s is one of the known ship statuses.
func (s ShipStatus) Valid() bool {
	switch s {
	case ShipActive, ShipUnderMaintenance, ShipOutOfService:
		return true
	}
	return false
}

// Ship is a vessel of the fleet.
type Ship struct {
	// ID is the unique identifier for the ship.
	ID string `json:"id"`
	// Name is the display name, e.g. "INS Vikrant".
	Name string `json:"name"`
	// IMO is the IMO number in the form IMO followed by 7 digits.
	IMO string `json:"imo"`
	// Flag is the flag state.
	Flag string `json:"flag"`
	// Status is the operational state.
	Status ShipStatus `json:"status"`
}

// ShipPatch holds a partial update of a ship. Nil fields are left untouched.
type ShipPatch struct {
	Name   *string     `json:"name,omitempty"`
	IMO    *string     `json:"imo,omitempty"`
	Flag   *string     `json:"flag,omitempty"`
	Status *ShipStatus `json:"status,omitempty"`
}

// Component is a piece of equipment installed on a ship.
type Component struct {
	ID           string `json:"id"`
	ShipID       string `json:"shipId"`
	Name         string `json:"name"`
	SerialNumber string `json:"serialNumber"`
	// InstallDate is stored as YYYY-MM-DD.
	InstallDate string `json:"installDate"`
	// LastMaintenanceDate is stored as YYYY-MM-DD.
	LastMaintenanceDate string `json:"lastMaintenanceDate"`
	Description         string `json:"description,omitempty"`
}

// ComponentPatch holds a partial update of a component.
type ComponentPatch struct {
	ShipID              *string `json:"shipId,omitempty"`
	Name                *string `json:"name,omitempty"`
	SerialNumber        *string `json:"serialNumber,omitempty"`
	InstallDate         *string `json:"installDate,omitempty"`
	LastMaintenanceDate *string `json:"lastMaintenanceDate,omitempty"`
	Description         *string `json:"description,omitempty"`
}
