package service

import (
	"context"

	"github.com/atinyakov/FleetKeeper/internal/access"
	"github.com/atinyakov/FleetKeeper/internal/logger"
	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/atinyakov/FleetKeeper/internal/views"
	"go.uber.org/zap"
)

// JobRepository defines the job persistence used by the services.
type JobRepository interface {
	List(ctx context.Context) []models.Job
	GetByID(ctx context.Context, id string) (models.Job, bool)
	Add(ctx context.Context, job models.Job) (models.Job, error)
	Update(ctx context.Context, id string, patch models.JobPatch) (models.Job, bool, error)
	Complete(ctx context.Context, id string) (models.Job, bool)
	Delete(ctx context.Context, id string) bool
	ByShip(ctx context.Context, shipID string) []models.Job
	ByDateRange(ctx context.Context, start, end string) ([]models.Job, error)
	Filter(ctx context.Context, f models.JobFilter) []models.Job
}

// JobQuery narrows a job listing. From and To bound the scheduled date,
// inclusively; either may be empty.
type JobQuery struct {
	models.JobFilter
	From string
	To   string
}

// JobService runs the maintenance job workflow. Every mutation is persisted
// first and then reported to the notifier; the two writes are independent,
// so a failed notification never rolls back the job.
type JobService struct {
	jobs       JobRepository
	components ComponentRepository
	ships      ShipRepository
	users      UserRepository
	notifier   Notifier
	log        *zap.Logger
}

// NewJobService constructs a JobService.
func NewJobService(jobs JobRepository, components ComponentRepository, ships ShipRepository, users UserRepository, notifier Notifier, log *zap.Logger) *JobService {
	return &JobService{
		jobs:       jobs,
		components: components,
		ships:      ships,
		users:      users,
		notifier:   notifier,
		log:        logger.OrNop(log),
	}
}

// List returns the jobs matching q that actor may see. Engineers only see
// their own assignments.
func (s *JobService) List(ctx context.Context, actor *models.User, q JobQuery) ([]models.Job, error) {
	if actor == nil {
		return nil, models.ErrUnauthorized
	}
	from, err := optionalDate(q.From, "from")
	if err != nil {
		return nil, err
	}
	to, err := optionalDate(q.To, "to")
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleEngineer {
		q.EngineerID = actor.ID
	}
	jobs := s.jobs.Filter(ctx, q.JobFilter)
	if from == "" && to == "" {
		return jobs, nil
	}
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if (from == "" || j.ScheduledDate >= from) && (to == "" || j.ScheduledDate <= to) {
			out = append(out, j)
		}
	}
	return out, nil
}

func optionalDate(s, field string) (string, error) {
	if blank(s) {
		return "", nil
	}
	d, err := models.NormalizeDate(s)
	if err != nil {
		return "", models.NewValidationError(field, "Invalid date")
	}
	return d, nil
}

// ByShip returns the visible jobs scheduled on a ship.
func (s *JobService) ByShip(ctx context.Context, actor *models.User, shipID string) ([]models.Job, error) {
	if actor == nil {
		return nil, models.ErrUnauthorized
	}
	if _, ok := s.ships.GetByID(ctx, shipID); !ok {
		return nil, &models.NotFoundError{Entity: "ship", ID: shipID}
	}
	return access.VisibleJobs(actor, s.jobs.ByShip(ctx, shipID)), nil
}

// Get returns a single job.
func (s *JobService) Get(ctx context.Context, actor *models.User, id string) (models.Job, error) {
	if actor == nil {
		return models.Job{}, models.ErrUnauthorized
	}
	job, ok := s.jobs.GetByID(ctx, id)
	if !ok {
		return models.Job{}, &models.NotFoundError{Entity: "job", ID: id}
	}
	if !access.CanSeeJob(actor, job) {
		return models.Job{}, models.ErrForbidden
	}
	return job, nil
}

// Create validates in, schedules the job and announces it.
func (s *JobService) Create(ctx context.Context, actor *models.User, in JobInput) (models.Job, error) {
	if err := authorize(actor, access.CanEditJob); err != nil {
		return models.Job{}, err
	}
	if err := in.Validate(); err != nil {
		return models.Job{}, err
	}
	if err := s.checkReferences(ctx, in.ShipID, in.ComponentID, in.AssignedEngineerID); err != nil {
		return models.Job{}, err
	}
	job, err := s.jobs.Add(ctx, in.job())
	if err != nil {
		return models.Job{}, err
	}
	ship, comp := s.Names(ctx, job)
	s.notifier.NotifyJobCreated(ctx, job.Type, comp, ship)
	s.log.Info("job created", zap.String("id", job.ID), zap.String("by", actor.ID))
	return job, nil
}

// Update applies patch to the job and announces the change.
func (s *JobService) Update(ctx context.Context, actor *models.User, id string, patch models.JobPatch) (models.Job, error) {
	if err := authorize(actor, access.CanEditJob); err != nil {
		return models.Job{}, err
	}
	current, ok := s.jobs.GetByID(ctx, id)
	if !ok {
		return models.Job{}, &models.NotFoundError{Entity: "job", ID: id}
	}
	if err := validateJobPatch(patch); err != nil {
		return models.Job{}, err
	}
	shipID, compID, engID := current.ShipID, current.ComponentID, ""
	if patch.ShipID != nil {
		shipID = *patch.ShipID
	}
	if patch.ComponentID != nil {
		compID = *patch.ComponentID
	}
	if patch.AssignedEngineerID != nil {
		engID = *patch.AssignedEngineerID
	}
	if patch.ShipID != nil || patch.ComponentID != nil || engID != "" {
		if err := s.checkReferences(ctx, shipID, compID, engID); err != nil {
			return models.Job{}, err
		}
	}

	job, found, err := s.jobs.Update(ctx, id, patch)
	if err != nil {
		return models.Job{}, err
	}
	if !found {
		return models.Job{}, &models.NotFoundError{Entity: "job", ID: id}
	}
	s.announce(ctx, current, job)
	return job, nil
}

// UpdateStatus moves the job to status. Moving to Completed stamps today's
// completion date; any other status clears it. Setting the current status
// again is a no-op.
func (s *JobService) UpdateStatus(ctx context.Context, actor *models.User, id string, status models.JobStatus) (models.Job, error) {
	if actor == nil {
		return models.Job{}, models.ErrUnauthorized
	}
	if !status.Valid() {
		return models.Job{}, models.NewValidationError("status", "Status is required")
	}
	current, ok := s.jobs.GetByID(ctx, id)
	if !ok {
		return models.Job{}, &models.NotFoundError{Entity: "job", ID: id}
	}
	if !access.CanUpdateJobStatus(actor, current) {
		return models.Job{}, models.ErrForbidden
	}
	if current.Status == status {
		return current, nil
	}
	if status == models.JobCompleted {
		return s.complete(ctx, actor, current)
	}

	job, found, err := s.jobs.Update(ctx, id, models.JobPatch{Status: &status})
	if err != nil {
		return models.Job{}, err
	}
	if !found {
		return models.Job{}, &models.NotFoundError{Entity: "job", ID: id}
	}
	s.announce(ctx, current, job)
	return job, nil
}

// Complete marks the job Completed as of today, whatever its prior status.
func (s *JobService) Complete(ctx context.Context, actor *models.User, id string) (models.Job, error) {
	if actor == nil {
		return models.Job{}, models.ErrUnauthorized
	}
	current, ok := s.jobs.GetByID(ctx, id)
	if !ok {
		return models.Job{}, &models.NotFoundError{Entity: "job", ID: id}
	}
	if !access.CanUpdateJobStatus(actor, current) {
		return models.Job{}, models.ErrForbidden
	}
	return s.complete(ctx, actor, current)
}

func (s *JobService) complete(ctx context.Context, actor *models.User, current models.Job) (models.Job, error) {
	job, found := s.jobs.Complete(ctx, current.ID)
	if !found {
		return models.Job{}, &models.NotFoundError{Entity: "job", ID: current.ID}
	}
	ship, comp := s.Names(ctx, job)
	s.notifier.NotifyJobCompleted(ctx, job.Type, comp, ship)
	s.log.Info("job completed", zap.String("id", job.ID), zap.String("by", actor.ID))
	return job, nil
}

// Delete removes the job.
func (s *JobService) Delete(ctx context.Context, actor *models.User, id string) error {
	if err := authorize(actor, access.CanDeleteJob); err != nil {
		return err
	}
	if !s.jobs.Delete(ctx, id) {
		return &models.NotFoundError{Entity: "job", ID: id}
	}
	return nil
}

// Names resolves the ship and component names of job. Missing records are
// reported as views.Unknown.
func (s *JobService) Names(ctx context.Context, job models.Job) (ship, component string) {
	ship, component = views.Unknown, views.Unknown
	if sh, ok := s.ships.GetByID(ctx, job.ShipID); ok {
		ship = sh.Name
	}
	if c, ok := s.components.GetByID(ctx, job.ComponentID); ok {
		component = c.Name
	}
	return ship, component
}

func (s *JobService) announce(ctx context.Context, before, after models.Job) {
	ship, comp := s.Names(ctx, after)
	if after.Status == models.JobCompleted && before.Status != models.JobCompleted {
		s.notifier.NotifyJobCompleted(ctx, after.Type, comp, ship)
		return
	}
	s.notifier.NotifyJobUpdated(ctx, after.Type, comp, ship)
}

// checkReferences verifies that the ship exists, that the component is
// installed on it and, when engineerID is set, that it names an engineer.
func (s *JobService) checkReferences(ctx context.Context, shipID, componentID, engineerID string) error {
	var errs fieldErrors
	if _, ok := s.ships.GetByID(ctx, shipID); !ok {
		errs.add("shipId", "Ship is required")
	}
	if c, ok := s.components.GetByID(ctx, componentID); !ok {
		errs.add("componentId", "Component is required")
	} else if c.ShipID != shipID {
		errs.add("componentId", "Component must belong to the selected ship")
	}
	if engineerID != "" {
		if u, ok := s.users.GetByID(ctx, engineerID); !ok || u.Role != models.RoleEngineer {
			errs.add("assignedEngineerId", "Assigned engineer is required")
		}
	}
	return errs.err()
}
