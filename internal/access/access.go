// Package access holds the role rules of the tracker. The functions are pure
// and take the acting user; a nil user never has a permission.
package access

import "github.com/atinyakov/FleetKeeper/internal/models"

func hasRole(u *models.User, roles ...models.Role) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// CanEditShip covers creating and editing ships.
func CanEditShip(u *models.User) bool { return hasRole(u, models.RoleAdmin, models.RoleInspector) }

// CanDeleteShip reports whether u may delete ships.
func CanDeleteShip(u *models.User) bool { return hasRole(u, models.RoleAdmin) }

// CanEditComponent covers creating and editing components.
func CanEditComponent(u *models.User) bool {
	return hasRole(u, models.RoleAdmin, models.RoleInspector)
}

// CanDeleteComponent follows CanEditComponent.
func CanDeleteComponent(u *models.User) bool { return CanEditComponent(u) }

// CanEditJob covers creating and editing jobs.
func CanEditJob(u *models.User) bool { return hasRole(u, models.RoleAdmin, models.RoleInspector) }

// CanDeleteJob reports whether u may delete jobs.
func CanDeleteJob(u *models.User) bool { return hasRole(u, models.RoleAdmin) }

// CanUpdateJobStatus allows admins, inspectors and the engineer assigned to
// job.
func CanUpdateJobStatus(u *models.User, job models.Job) bool {
	if hasRole(u, models.RoleAdmin, models.RoleInspector) {
		return true
	}
	return hasRole(u, models.RoleEngineer) && job.AssignedEngineerID == u.ID
}

// CanManageUsers guards the users and settings pages.
func CanManageUsers(u *models.User) bool { return hasRole(u, models.RoleAdmin) }

// CanSeeJob hides jobs not assigned to an engineer from that engineer.
func CanSeeJob(u *models.User, job models.Job) bool {
	if u == nil {
		return false
	}
	if u.Role == models.RoleEngineer {
		return job.AssignedEngineerID == u.ID
	}
	return true
}

// VisibleJobs filters jobs down to those u may see.
func VisibleJobs(u *models.User, jobs []models.Job) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if CanSeeJob(u, j) {
			out = append(out, j)
		}
	}
	return out
}
