package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/atinyakov/FleetKeeper/internal/repository"
)

var testNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

var (
	admin     = &models.User{ID: "1", Role: models.RoleAdmin, Name: "Admin User"}
	inspector = &models.User{ID: "2", Role: models.RoleInspector, Name: "Inspector User"}
	engineer  = &models.User{ID: "3", Role: models.RoleEngineer, Name: "Engineer User"}
)

type recordedNotification struct {
	kind, jobType, component, ship string
}

type recordingNotifier struct {
	events []recordedNotification
}

func (r *recordingNotifier) record(kind, jobType, component, ship string) models.Notification {
	r.events = append(r.events, recordedNotification{kind, jobType, component, ship})
	return models.Notification{Type: kind}
}

func (r *recordingNotifier) NotifyJobCreated(_ context.Context, jobType, component, ship string) models.Notification {
	return r.record(models.NotificationJobCreated, jobType, component, ship)
}

func (r *recordingNotifier) NotifyJobUpdated(_ context.Context, jobType, component, ship string) models.Notification {
	return r.record(models.NotificationJobUpdated, jobType, component, ship)
}

func (r *recordingNotifier) NotifyJobCompleted(_ context.Context, jobType, component, ship string) models.Notification {
	return r.record(models.NotificationJobCompleted, jobType, component, ship)
}

type fixture struct {
	store      *kv.Adapter
	ships      *repository.ShipRepository
	components *repository.ComponentRepository
	jobs       *repository.JobRepository
	users      *repository.UserRepository
	notes      *repository.NotificationRepository
	notifier   *recordingNotifier
	jobSvc     *JobService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := kv.NewAdapter(kv.NewMemoryStore(), nil)
	n := 0
	opts := []repository.Option{
		repository.WithClock(func() time.Time { return testNow }),
		repository.WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	}
	f := &fixture{
		store:      store,
		ships:      repository.NewShipRepository(ctx, store, opts...),
		components: repository.NewComponentRepository(ctx, store, opts...),
		jobs:       repository.NewJobRepository(ctx, store, opts...),
		users:      repository.NewUserRepository(ctx, store, opts...),
		notes:      repository.NewNotificationRepository(ctx, store, opts...),
		notifier:   &recordingNotifier{},
	}
	f.jobSvc = NewJobService(f.jobs, f.components, f.ships, f.users, f.notifier, nil)
	return f
}
