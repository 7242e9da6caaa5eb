package service

import (
	"context"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/access"
	"github.com/atinyakov/FleetKeeper/internal/export"
	"github.com/atinyakov/FleetKeeper/internal/logger"
	"github.com/atinyakov/FleetKeeper/internal/models"
	"go.uber.org/zap"
)

// ExportService renders CSV exports and, when an archive is configured,
// keeps a copy of each.
type ExportService struct {
	ships      ShipRepository
	components ComponentRepository
	jobs       JobRepository
	archive    export.Archive
	log        *zap.Logger
	now        func() time.Time
}

// NewExportService constructs an ExportService. archive may be nil.
func NewExportService(ships ShipRepository, components ComponentRepository, jobs JobRepository, archive export.Archive, log *zap.Logger) *ExportService {
	return &ExportService{
		ships:      ships,
		components: components,
		jobs:       jobs,
		archive:    archive,
		log:        logger.OrNop(log),
		now:        time.Now,
	}
}

// WithClock replaces the time source used to date filenames.
func (s *ExportService) WithClock(now func() time.Time) *ExportService {
	s.now = now
	return s
}

// Jobs exports the jobs matching f that actor may see.
func (s *ExportService) Jobs(ctx context.Context, actor *models.User, f models.JobFilter) (export.File, error) {
	if actor == nil {
		return export.File{}, models.ErrUnauthorized
	}
	jobs := access.VisibleJobs(actor, s.jobs.Filter(ctx, f))
	file, err := export.Jobs(jobs, s.lookup(ctx), s.now())
	if err != nil {
		return export.File{}, err
	}
	s.store(ctx, file)
	return file, nil
}

// Components exports the components of shipID (all when empty) matching term.
func (s *ExportService) Components(ctx context.Context, actor *models.User, shipID, term string) (export.File, error) {
	if actor == nil {
		return export.File{}, models.ErrUnauthorized
	}
	file, err := export.Components(s.components.Search(ctx, shipID, term), s.lookup(ctx), s.now())
	if err != nil {
		return export.File{}, err
	}
	s.store(ctx, file)
	return file, nil
}

func (s *ExportService) lookup(ctx context.Context) export.Lookup {
	return export.NewLookup(s.ships.List(ctx), s.components.List(ctx))
}

// store archives f. Archive failures do not fail the export.
func (s *ExportService) store(ctx context.Context, f export.File) {
	if s.archive == nil {
		return
	}
	where, err := s.archive.Store(ctx, f)
	if err != nil {
		s.log.Error("failed to archive export", zap.String("file", f.Name), zap.Error(err))
		return
	}
	s.log.Info("export archived", zap.String("file", f.Name), zap.String("location", where))
}
