// Package app wires the repositories and services of the tracker over one
// collection store.
package app

import (
	"context"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/export"
	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/logger"
	"github.com/atinyakov/FleetKeeper/internal/repository"
	handler "github.com/atinyakov/FleetKeeper/internal/server/handler/http"
	"github.com/atinyakov/FleetKeeper/internal/service"
	"go.uber.org/zap"
)

// Options tunes the wiring. Zero values select the defaults.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Archive   export.Archive
	Log       *zap.Logger
	// Clock replaces the wall clock everywhere; used by tests.
	Clock func() time.Time
	// IDs replaces the uuid generator of the repositories.
	IDs func() string
}

// App holds the wired repositories and services.
type App struct {
	Store *kv.Adapter

	Ships         *repository.ShipRepository
	Components    *repository.ComponentRepository
	Jobs          *repository.JobRepository
	Users         *repository.UserRepository
	Notifications *repository.NotificationRepository

	Auth         *service.AuthService
	ShipSvc      *service.ShipService
	ComponentSvc *service.ComponentService
	JobSvc       *service.JobService
	NotifySvc    *service.NotificationService
	DashboardSvc *service.DashboardService
	ExportSvc    *service.ExportService
}

// DefaultTokenTTL is used when Options.TokenTTL is zero.
const DefaultTokenTTL = 24 * time.Hour

// New loads every collection from store, seeding the missing ones, and builds
// the services on top.
func New(ctx context.Context, store *kv.Adapter, opts Options) *App {
	log := logger.OrNop(opts.Log)
	ttl := opts.TokenTTL
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}

	var repoOpts []repository.Option
	if opts.Clock != nil {
		repoOpts = append(repoOpts, repository.WithClock(opts.Clock))
	}
	if opts.IDs != nil {
		repoOpts = append(repoOpts, repository.WithIDGenerator(opts.IDs))
	}

	a := &App{
		Store:         store,
		Ships:         repository.NewShipRepository(ctx, store, repoOpts...),
		Components:    repository.NewComponentRepository(ctx, store, repoOpts...),
		Jobs:          repository.NewJobRepository(ctx, store, repoOpts...),
		Users:         repository.NewUserRepository(ctx, store, repoOpts...),
		Notifications: repository.NewNotificationRepository(ctx, store, repoOpts...),
	}

	a.Auth = service.NewAuthService(a.Users, opts.JWTSecret, ttl)
	a.ShipSvc = service.NewShipService(a.Ships)
	a.ComponentSvc = service.NewComponentService(a.Components, a.Ships)
	a.NotifySvc = service.NewNotificationService(a.Notifications, log.Named("notifications"))
	a.JobSvc = service.NewJobService(a.Jobs, a.Components, a.Ships, a.Users, a.NotifySvc, log.Named("jobs"))
	a.DashboardSvc = service.NewDashboardService(a.Ships, a.Components, a.Jobs)
	a.ExportSvc = service.NewExportService(a.Ships, a.Components, a.Jobs, opts.Archive, log.Named("export"))
	if opts.Clock != nil {
		a.DashboardSvc.WithClock(opts.Clock)
		a.ExportSvc.WithClock(opts.Clock)
	}
	return a
}

// Handlers builds the HTTP handlers over the services.
func (a *App) Handlers() handler.Handlers {
	return handler.Handlers{
		Auth:          &handler.AuthHandler{AuthService: a.Auth},
		Ships:         &handler.ShipHandler{Ships: a.ShipSvc, Components: a.ComponentSvc, Jobs: a.JobSvc},
		Components:    &handler.ComponentHandler{Components: a.ComponentSvc},
		Jobs:          &handler.JobHandler{Jobs: a.JobSvc},
		Notifications: &handler.NotificationHandler{Notifications: a.NotifySvc},
		Dashboard:     &handler.DashboardHandler{Dashboard: a.DashboardSvc},
		Export:        &handler.ExportHandler{Export: a.ExportSvc},
	}
}
