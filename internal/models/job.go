package models

// JobStatus is the progress state of a maintenance job.
type JobStatus string

const (
	JobOpen       JobStatus = "Open"
	JobInProgress JobStatus = "In Progress"
	JobCompleted  JobStatus = "Completed"
)

// Valid reports whether s is one of the known job statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobOpen, JobInProgress, JobCompleted:
		return true
	}
	return false
}

// Priority ranks the urgency of a job.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Job is a maintenance task scheduled against a component of a ship.
type Job struct {
	ID                 string    `json:"id"`
	ShipID             string    `json:"shipId"`
	ComponentID        string    `json:"componentId"`
	Type               string    `json:"type"`
	Priority           Priority  `json:"priority"`
	Status             JobStatus `json:"status"`
	AssignedEngineerID string    `json:"assignedEngineerId"`
	// ScheduledDate is stored as YYYY-MM-DD.
	ScheduledDate string `json:"scheduledDate"`
	// CompletedDate is set only while Status is Completed.
	CompletedDate *string `json:"completedDate"`
	Description   string  `json:"description,omitempty"`
	// CreatedAt is an RFC 3339 timestamp stamped on creation.
	CreatedAt string `json:"createdAt,omitempty"`
}

// JobPatch holds a partial update of a job.
type JobPatch struct {
	ShipID             *string    `json:"shipId,omitempty"`
	ComponentID        *string    `json:"componentId,omitempty"`
	Type               *string    `json:"type,omitempty"`
	Priority           *Priority  `json:"priority,omitempty"`
	Status             *JobStatus `json:"status,omitempty"`
	AssignedEngineerID *string    `json:"assignedEngineerId,omitempty"`
	ScheduledDate      *string    `json:"scheduledDate,omitempty"`
	CompletedDate      *string    `json:"completedDate,omitempty"`
	Description        *string    `json:"description,omitempty"`
}

// JobFilter narrows a job listing. Empty fields match everything.
type JobFilter struct {
	ShipID      string
	ComponentID string
	Status      JobStatus
	Priority    Priority
	// Search matches the job type case-insensitively.
	Search string
	// EngineerID restricts the result to jobs assigned to that engineer.
	EngineerID string
}
