package service

import (
	"context"
	"errors"
	"testing"

	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJobInput() JobInput {
	return JobInput{
		ShipID:             "1",
		ComponentID:        "2",
		Type:               "Inspection",
		Priority:           models.PriorityMedium,
		Status:             models.JobOpen,
		AssignedEngineerID: "3",
		ScheduledDate:      "2024-06-01",
	}
}

func TestJobCreate_NotifiesAfterPersist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	job, err := f.jobSvc.Create(ctx, inspector, validJobInput())
	require.NoError(t, err)

	_, stored := f.jobs.GetByID(ctx, job.ID)
	assert.True(t, stored)
	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, recordedNotification{models.NotificationJobCreated, "Inspection", "BrahMos Missile System", "INS Vikrant"}, f.notifier.events[0])
}

func TestJobCreate_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.jobSvc.Create(ctx, admin, JobInput{})
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors, 7)
	assert.Equal(t, "Ship is required", verr.Errors[0].Message)

	in := validJobInput()
	in.ComponentID = "7"
	_, err = f.jobSvc.Create(ctx, admin, in)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Component must belong to the selected ship", verr.Errors[0].Message)

	in = validJobInput()
	in.AssignedEngineerID = "2"
	_, err = f.jobSvc.Create(ctx, admin, in)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "assignedEngineerId", verr.Errors[0].Field)

	assert.Empty(t, f.notifier.events)
}

func TestJobCreate_Permissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.jobSvc.Create(ctx, engineer, validJobInput())
	assert.ErrorIs(t, err, models.ErrForbidden)
	_, err = f.jobSvc.Create(ctx, nil, validJobInput())
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestJobUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	job, err := f.jobSvc.UpdateStatus(ctx, engineer, "2", models.JobInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.JobInProgress, job.Status)
	assert.Nil(t, job.CompletedDate)

	job, err = f.jobSvc.UpdateStatus(ctx, engineer, "2", models.JobCompleted)
	require.NoError(t, err)
	require.NotNil(t, job.CompletedDate)
	assert.Equal(t, "2024-05-10", *job.CompletedDate)

	job, err = f.jobSvc.UpdateStatus(ctx, inspector, "2", models.JobOpen)
	require.NoError(t, err)
	assert.Nil(t, job.CompletedDate)

	_, err = f.jobSvc.UpdateStatus(ctx, inspector, "2", models.JobOpen)
	require.NoError(t, err)

	kinds := make([]string, 0, len(f.notifier.events))
	for _, e := range f.notifier.events {
		kinds = append(kinds, e.kind)
	}
	assert.Equal(t, []string{models.NotificationJobUpdated, models.NotificationJobCompleted, models.NotificationJobUpdated}, kinds)
}

func TestJobUpdateStatus_OtherEngineerForbidden(t *testing.T) {
	f := newFixture(t)
	other := &models.User{ID: "8", Role: models.RoleEngineer}

	_, err := f.jobSvc.UpdateStatus(context.Background(), other, "2", models.JobInProgress)
	assert.ErrorIs(t, err, models.ErrForbidden)
	_, err = f.jobSvc.UpdateStatus(context.Background(), admin, "2", "Paused")
	assert.ErrorIs(t, err, models.ErrValidation)
	_, err = f.jobSvc.UpdateStatus(context.Background(), admin, "missing", models.JobOpen)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestJobComplete_FromAnyStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	job, err := f.jobSvc.Complete(ctx, admin, "1")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", *job.CompletedDate)
	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, recordedNotification{models.NotificationJobCompleted, "Inspection", "Gas Turbine Engine", "INS Vikrant"}, f.notifier.events[0])
}

func TestJobUpdate_Orphans(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.True(t, f.ships.Delete(ctx, "1"))

	desc := "after decommission"
	_, err := f.jobSvc.Update(ctx, admin, "3", models.JobPatch{Description: &desc})
	require.NoError(t, err)
	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, "Unknown", f.notifier.events[0].ship)
	assert.Equal(t, "Barak-8 Air Defense System", f.notifier.events[0].component)
}

func TestJobList_EngineerScopeAndRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.jobSvc.Create(ctx, admin, JobInput{
		ShipID: "1", ComponentID: "1", Type: "Repair", Priority: models.PriorityLow,
		Status: models.JobOpen, AssignedEngineerID: "3", ScheduledDate: "2024-05-07",
	})
	require.NoError(t, err)

	all, err := f.jobSvc.List(ctx, admin, JobQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 15)

	other := &models.User{ID: "8", Role: models.RoleEngineer}
	mine, err := f.jobSvc.List(ctx, other, JobQuery{})
	require.NoError(t, err)
	assert.Empty(t, mine)

	ranged, err := f.jobSvc.List(ctx, engineer, JobQuery{JobFilter: models.JobFilter{ShipID: "1"}, From: "2024-05-01", To: "2024-05-10"})
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, "3", ranged[0].ID)

	_, err = f.jobSvc.List(ctx, admin, JobQuery{From: "whenever"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestJobGetAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := &models.User{ID: "8", Role: models.RoleEngineer}
	_, err := f.jobSvc.Get(ctx, other, "1")
	assert.ErrorIs(t, err, models.ErrForbidden)

	assert.ErrorIs(t, f.jobSvc.Delete(ctx, inspector, "1"), models.ErrForbidden)
	require.NoError(t, f.jobSvc.Delete(ctx, admin, "1"))
	assert.ErrorIs(t, f.jobSvc.Delete(ctx, admin, "1"), models.ErrNotFound)
}
