package models

// Role is the access level of a user.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleInspector Role = "Inspector"
	RoleEngineer  Role = "Engineer"
)

// User represents an application user with credentials.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	// Password is stored as entered and is never returned after login.
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// Public returns a copy of the user with the password stripped.
func (u User) Public() User {
	u.Password = ""
	return u
}

// Notification is an entry of the notification log. It references other
// entities only through its message text.
type Notification struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	// Date is an RFC 3339 timestamp.
	Date string `json:"date"`
	Read bool   `json:"read"`
}

// Notification types emitted by the job workflow.
const (
	NotificationJobCreated   = "Job Created"
	NotificationJobUpdated   = "Job Updated"
	NotificationJobCompleted = "Job Completed"
)
