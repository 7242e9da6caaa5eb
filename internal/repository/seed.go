package repository

import "github.com/atinyakov/FleetKeeper/internal/models"

// Seed data written on first start. Seeded records keep short numeric ids.

func seedUsers() []models.User {
	return []models.User{
		{ID: "1", Email: "admin@test.in", Password: "admin123", Role: models.RoleAdmin, Name: "Admin User"},
		{ID: "2", Email: "inspector@test.in", Password: "inspect123", Role: models.RoleInspector, Name: "Inspector User"},
		{ID: "3", Email: "engineer@test.in", Password: "engine123", Role: models.RoleEngineer, Name: "Engineer User"},
	}
}

func seedShips() []models.Ship {
	return []models.Ship{
		{ID: "1", Name: "INS Vikrant", IMO: "IMO9879543", Flag: "India", Status: models.ShipActive},
		{ID: "2", Name: "INS Vikramaditya", IMO: "IMO9765432", Flag: "India", Status: models.ShipActive},
		{ID: "3", Name: "INS Chennai", IMO: "IMO9654321", Flag: "India", Status: models.ShipUnderMaintenance},
		{ID: "4", Name: "INS Tarkash", IMO: "IMO9543210", Flag: "India", Status: models.ShipActive},
		{ID: "5", Name: "INS Kolkata", IMO: "IMO9432109", Flag: "India", Status: models.ShipUnderMaintenance},
		{ID: "6", Name: "INS Kamorta", IMO: "IMO9321098", Flag: "India", Status: models.ShipOutOfService},
	}
}

func seedComponents() []models.Component {
	return []models.Component{
		{ID: "1", ShipID: "1", Name: "Gas Turbine Engine", SerialNumber: "GTE-LM2500-01", InstallDate: "2022-01-15", LastMaintenanceDate: "2023-11-10"},
		{ID: "2", ShipID: "1", Name: "BrahMos Missile System", SerialNumber: "BMS-VIK-001", InstallDate: "2022-02-20", LastMaintenanceDate: "2023-10-05"},
		{ID: "3", ShipID: "1", Name: "Barak-8 Air Defense System", SerialNumber: "BAR8-VIK-002", InstallDate: "2022-01-30", LastMaintenanceDate: "2023-12-12"},
		{ID: "4", ShipID: "2", Name: "MiG-29K Support System", SerialNumber: "MIG-SUP-001", InstallDate: "2020-05-10", LastMaintenanceDate: "2023-08-15"},
		{ID: "5", ShipID: "2", Name: "STOBAR Flight Deck", SerialNumber: "DECK-VIK-001", InstallDate: "2019-11-03", LastMaintenanceDate: "2023-09-22"},
		{ID: "6", ShipID: "2", Name: "Marine Gas Turbine", SerialNumber: "MGT-VIK-003", InstallDate: "2019-10-15", LastMaintenanceDate: "2023-07-18"},
		{ID: "7", ShipID: "3", Name: "Oto Melara 76mm Gun", SerialNumber: "OMG-CHE-001", InstallDate: "2021-03-12", LastMaintenanceDate: "2023-11-30"},
		{ID: "8", ShipID: "3", Name: "HUMSA-NG Sonar System", SerialNumber: "HUM-CHE-002", InstallDate: "2021-04-05", LastMaintenanceDate: "2023-10-25"},
		{ID: "9", ShipID: "4", Name: "Brahmos Cruise Missile System", SerialNumber: "BMS-TAR-001", InstallDate: "2020-08-18", LastMaintenanceDate: "2023-12-05"},
		{ID: "10", ShipID: "4", Name: "Diesel Engine MTU 12V1163", SerialNumber: "MTU-TAR-002", InstallDate: "2020-07-25", LastMaintenanceDate: "2023-11-15"},
		{ID: "11", ShipID: "5", Name: "Main Propulsion System", SerialNumber: "MPS-KOL-001", InstallDate: "2021-05-10", LastMaintenanceDate: "2023-12-01"},
		{ID: "12", ShipID: "5", Name: "Shivalik Radar System", SerialNumber: "SRS-KOL-002", InstallDate: "2021-05-15", LastMaintenanceDate: "2023-09-10"},
		{ID: "13", ShipID: "6", Name: "AK-630 Gun System", SerialNumber: "AKG-KAM-001", InstallDate: "2020-02-28", LastMaintenanceDate: "2023-10-20"},
		{ID: "14", ShipID: "6", Name: "Kavach Chaff System", SerialNumber: "KCS-KAM-002", InstallDate: "2020-03-10", LastMaintenanceDate: "2023-11-05"},
	}
}

func seedJobs() []models.Job {
	date := func(s string) *string { return &s }
	return []models.Job{
		{ID: "1", ShipID: "1", ComponentID: "1", Type: "Inspection", Priority: models.PriorityHigh, Status: models.JobCompleted, AssignedEngineerID: "3", ScheduledDate: "2023-11-15", CompletedDate: date("2023-11-15")},
		{ID: "2", ShipID: "1", ComponentID: "2", Type: "Maintenance", Priority: models.PriorityHigh, Status: models.JobOpen, AssignedEngineerID: "3", ScheduledDate: "2024-05-20", CompletedDate: nil},
		{ID: "3", ShipID: "1", ComponentID: "3", Type: "Calibration", Priority: models.PriorityMedium, Status: models.JobInProgress, AssignedEngineerID: "3", ScheduledDate: "2024-05-05", CompletedDate: nil},
		{ID: "4", ShipID: "2", ComponentID: "4", Type: "Repair", Priority: models.PriorityHigh, Status: models.JobInProgress, AssignedEngineerID: "3", ScheduledDate: "2024-04-25", CompletedDate: nil},
		{ID: "5", ShipID: "2", ComponentID: "5", Type: "Inspection", Priority: models.PriorityMedium, Status: models.JobCompleted, AssignedEngineerID: "3", ScheduledDate: "2024-03-10", CompletedDate: date("2024-03-15")},
		{ID: "6", ShipID: "2", ComponentID: "6", Type: "Overhaul", Priority: models.PriorityHigh, Status: models.JobOpen, AssignedEngineerID: "3", ScheduledDate: "2024-06-15", CompletedDate: nil},
		{ID: "7", ShipID: "3", ComponentID: "7", Type: "Upgrade", Priority: models.PriorityHigh, Status: models.JobInProgress, AssignedEngineerID: "3", ScheduledDate: "2024-04-20", CompletedDate: nil},
		{ID: "8", ShipID: "3", ComponentID: "8", Type: "Repair", Priority: models.PriorityHigh, Status: models.JobOpen, AssignedEngineerID: "3", ScheduledDate: "2024-05-25", CompletedDate: nil},
		{ID: "9", ShipID: "4", ComponentID: "9", Type: "Inspection", Priority: models.PriorityMedium, Status: models.JobCompleted, AssignedEngineerID: "3", ScheduledDate: "2024-01-15", CompletedDate: date("2024-01-18")},
		{ID: "10", ShipID: "4", ComponentID: "10", Type: "Maintenance", Priority: models.PriorityLow, Status: models.JobCompleted, AssignedEngineerID: "3", ScheduledDate: "2024-02-10", CompletedDate: date("2024-02-12")},
		{ID: "11", ShipID: "5", ComponentID: "11", Type: "Repair", Priority: models.PriorityHigh, Status: models.JobInProgress, AssignedEngineerID: "3", ScheduledDate: "2024-04-15", CompletedDate: nil},
		{ID: "12", ShipID: "5", ComponentID: "12", Type: "Upgrade", Priority: models.PriorityMedium, Status: models.JobOpen, AssignedEngineerID: "3", ScheduledDate: "2024-06-01", CompletedDate: nil},
		{ID: "13", ShipID: "6", ComponentID: "13", Type: "Overhaul", Priority: models.PriorityHigh, Status: models.JobOpen, AssignedEngineerID: "3", ScheduledDate: "2024-07-10", CompletedDate: nil},
		{ID: "14", ShipID: "6", ComponentID: "14", Type: "Maintenance", Priority: models.PriorityMedium, Status: models.JobOpen, AssignedEngineerID: "3", ScheduledDate: "2024-06-25", CompletedDate: nil},
	}
}

func seedNotifications() []models.Notification {
	return []models.Notification{
		{ID: "1", Type: models.NotificationJobCreated, Message: "New Inspection job scheduled for BrahMos Missile System on INS Vikrant", Date: "2024-05-01T08:30:00Z", Read: false},
		{ID: "2", Type: models.NotificationJobUpdated, Message: "Repair job for Main Propulsion System on INS Kolkata has been updated to In Progress", Date: "2024-04-28T14:15:00Z", Read: true},
		{ID: "3", Type: models.NotificationJobCompleted, Message: "Inspection job for Diesel Engine MTU 12V1163 on INS Tarkash has been completed", Date: "2024-04-25T16:45:00Z", Read: false},
		{ID: "4", Type: models.NotificationJobCreated, Message: "New Overhaul job scheduled for AK-630 Gun System on INS Kamorta", Date: "2024-04-22T09:10:00Z", Read: false},
		{ID: "5", Type: models.NotificationJobUpdated, Message: "Upgrade job for HUMSA-NG Sonar System on INS Chennai priority changed to High", Date: "2024-04-18T11:30:00Z", Read: true},
	}
}
