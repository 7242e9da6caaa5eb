package http

import (
	"net/http"

	"github.com/atinyakov/FleetKeeper/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth          *AuthHandler
	Ships         *ShipHandler
	Components    *ComponentHandler
	Jobs          *JobHandler
	Notifications *NotificationHandler
	Dashboard     *DashboardHandler
	Export        *ExportHandler
}

// Metrics is the instrumentation the router reports to and exposes.
type Metrics interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// NewRouter constructs the HTTP API.
//
// Middleware chain (applied in order):
//  1. Recoverer                      turns panics into 500s
//  2. Instrument(metrics)            request counter and latency, when set
//  3. WithRequestLogging(logger)     logs every request
//  4. AllowContentType               rejects non-JSON bodies under /api
//  5. BearerAuth(authenticator)      resolves the session token
//
// Everything under /api except POST /api/login requires a session.
func NewRouter(
	h Handlers,
	authenticator middleware.Authenticator,
	metrics Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	if metrics != nil {
		r.Use(middleware.Instrument(metrics))
	}
	r.Use(middleware.WithRequestLogging(logger))

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))
		r.Use(middleware.BearerAuth(authenticator))

		r.Post("/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Post("/logout", h.Auth.Logout)
			r.Get("/me", h.Auth.Me)
			r.Get("/users", h.Auth.Users)

			r.Route("/ships", func(r chi.Router) {
				r.Get("/", h.Ships.List)
				r.Post("/", h.Ships.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Ships.Get)
					r.Put("/", h.Ships.Update)
					r.Delete("/", h.Ships.Delete)
					r.Get("/components", h.Ships.ComponentsOf)
					r.Get("/jobs", h.Ships.JobsOf)
				})
			})

			r.Route("/components", func(r chi.Router) {
				r.Get("/", h.Components.List)
				r.Post("/", h.Components.Create)
				r.Get("/{id}", h.Components.Get)
				r.Put("/{id}", h.Components.Update)
				r.Delete("/{id}", h.Components.Delete)
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", h.Jobs.List)
				r.Post("/", h.Jobs.Create)
				r.Get("/{id}", h.Jobs.Get)
				r.Put("/{id}", h.Jobs.Update)
				r.Delete("/{id}", h.Jobs.Delete)
				r.Post("/{id}/status", h.Jobs.UpdateStatus)
				r.Post("/{id}/complete", h.Jobs.Complete)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notifications.List)
				r.Delete("/", h.Notifications.ClearAll)
				r.Post("/read", h.Notifications.MarkAllAsRead)
				r.Post("/{id}/read", h.Notifications.MarkAsRead)
				r.Delete("/{id}", h.Notifications.Delete)
			})

			r.Get("/dashboard", h.Dashboard.Stats)
			r.Get("/calendar", h.Dashboard.Calendar)
			r.Get("/export/jobs", h.Export.Jobs)
			r.Get("/export/components", h.Export.Components)
		})
	})

	return r
}
