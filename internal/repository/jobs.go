package repository

import (
	"context"
	"strings"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/models"
)

// JobRepository stores maintenance jobs under the "jobs" key.
//
// It owns the completion invariant: a job carries a completedDate only while
// its status is Completed.
type JobRepository struct {
	c *collection[models.Job]
}

// NewJobRepository loads jobs from store, seeding the default schedule when
// the key is absent.
func NewJobRepository(ctx context.Context, store *kv.Adapter, opts ...Option) *JobRepository {
	return &JobRepository{c: newCollection(ctx, store, kv.KeyJobs, seedJobs, opts)}
}

// List returns all jobs in stored order.
func (r *JobRepository) List(_ context.Context) []models.Job {
	return r.c.list()
}

// GetByID returns the job with the given id.
func (r *JobRepository) GetByID(_ context.Context, id string) (models.Job, bool) {
	return r.c.find(func(j models.Job) bool { return j.ID == id })
}

// Add stores a new job. Status defaults to Open and scheduledDate to today.
func (r *JobRepository) Add(ctx context.Context, job models.Job) (models.Job, error) {
	var err error
	if job.Status == "" {
		job.Status = models.JobOpen
	}
	if job.ScheduledDate, err = normalizeOrToday(job.ScheduledDate, r.c.today(), "scheduledDate"); err != nil {
		return models.Job{}, err
	}
	if job.CompletedDate != nil {
		d, err := normalizeField(*job.CompletedDate, "completedDate")
		if err != nil {
			return models.Job{}, err
		}
		job.CompletedDate = &d
	}
	r.enforceCompletion(&job)
	if job.CreatedAt == "" {
		job.CreatedAt = r.c.now().UTC().Format(time.RFC3339)
	}
	job.ID = r.c.newID()
	r.c.appendItem(ctx, job)
	return job, nil
}

// Update merges patch into the job with the given id. When the patch sets a
// status, completedDate is cleared for any status other than Completed, and
// stamped with today when moving to Completed without an explicit date.
func (r *JobRepository) Update(ctx context.Context, id string, patch models.JobPatch) (models.Job, bool, error) {
	return r.c.update(ctx, func(j models.Job) bool { return j.ID == id }, func(j models.Job) (models.Job, error) {
		if patch.ShipID != nil {
			j.ShipID = *patch.ShipID
		}
		if patch.ComponentID != nil {
			j.ComponentID = *patch.ComponentID
		}
		if patch.Type != nil {
			j.Type = *patch.Type
		}
		if patch.Priority != nil {
			j.Priority = *patch.Priority
		}
		if patch.AssignedEngineerID != nil {
			j.AssignedEngineerID = *patch.AssignedEngineerID
		}
		if patch.Description != nil {
			j.Description = *patch.Description
		}
		if patch.ScheduledDate != nil {
			d, err := normalizeField(*patch.ScheduledDate, "scheduledDate")
			if err != nil {
				return j, err
			}
			j.ScheduledDate = d
		}
		if patch.CompletedDate != nil {
			if *patch.CompletedDate == "" {
				j.CompletedDate = nil
			} else {
				d, err := normalizeField(*patch.CompletedDate, "completedDate")
				if err != nil {
					return j, err
				}
				j.CompletedDate = &d
			}
		}
		if patch.Status != nil {
			j.Status = *patch.Status
			r.enforceCompletion(&j)
		}
		return j, nil
	})
}

// Complete marks the job Completed as of today, whatever its prior status.
func (r *JobRepository) Complete(ctx context.Context, id string) (models.Job, bool) {
	status := models.JobCompleted
	today := r.c.today()
	job, found, _ := r.Update(ctx, id, models.JobPatch{Status: &status, CompletedDate: &today})
	return job, found
}

func (r *JobRepository) enforceCompletion(j *models.Job) {
	if j.Status != models.JobCompleted {
		j.CompletedDate = nil
		return
	}
	if j.CompletedDate == nil {
		today := r.c.today()
		j.CompletedDate = &today
	}
}

// Delete removes the job.
func (r *JobRepository) Delete(ctx context.Context, id string) bool {
	return r.c.removeWhere(ctx, func(j models.Job) bool { return j.ID == id }) > 0
}

// ByShip returns the jobs scheduled on the given ship.
func (r *JobRepository) ByShip(_ context.Context, shipID string) []models.Job {
	return r.c.filter(func(j models.Job) bool { return j.ShipID == shipID })
}

// ByComponent returns the jobs scheduled against the given component.
func (r *JobRepository) ByComponent(_ context.Context, componentID string) []models.Job {
	return r.c.filter(func(j models.Job) bool { return j.ComponentID == componentID })
}

// ByEngineer returns the jobs assigned to the given engineer.
func (r *JobRepository) ByEngineer(_ context.Context, engineerID string) []models.Job {
	return r.c.filter(func(j models.Job) bool { return j.AssignedEngineerID == engineerID })
}

// ByDateRange returns jobs whose scheduledDate falls within [start, end],
// both ends inclusive and compared as calendar dates.
func (r *JobRepository) ByDateRange(_ context.Context, start, end string) ([]models.Job, error) {
	from, err := normalizeField(start, "start")
	if err != nil {
		return nil, err
	}
	to, err := normalizeField(end, "end")
	if err != nil {
		return nil, err
	}
	return r.c.filter(func(j models.Job) bool {
		return j.ScheduledDate >= from && j.ScheduledDate <= to
	}), nil
}

// Filter returns the jobs matching every non-empty field of f.
func (r *JobRepository) Filter(_ context.Context, f models.JobFilter) []models.Job {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	return r.c.filter(func(j models.Job) bool {
		switch {
		case f.ShipID != "" && j.ShipID != f.ShipID:
			return false
		case f.ComponentID != "" && j.ComponentID != f.ComponentID:
			return false
		case f.Status != "" && j.Status != f.Status:
			return false
		case f.Priority != "" && j.Priority != f.Priority:
			return false
		case f.EngineerID != "" && j.AssignedEngineerID != f.EngineerID:
			return false
		case search != "" && !strings.Contains(strings.ToLower(j.Type), search):
			return false
		}
		return true
	})
}
