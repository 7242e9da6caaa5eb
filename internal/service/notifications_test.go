package service

import (
	"context"
	"testing"

	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyMessages(t *testing.T) {
	f := newFixture(t)
	svc := NewNotificationService(f.notes, nil)
	ctx := context.Background()

	created := svc.NotifyJobCreated(ctx, "Inspection", "Gas Turbine Engine", "INS Vikrant")
	updated := svc.NotifyJobUpdated(ctx, "Repair", "AK-630 Gun System", "INS Kamorta")
	completed := svc.NotifyJobCompleted(ctx, "Overhaul", "Kavach Chaff System", "INS Kamorta")

	assert.Equal(t, "New Inspection job scheduled for Gas Turbine Engine on INS Vikrant", created.Message)
	assert.Equal(t, models.NotificationJobCreated, created.Type)
	assert.Equal(t, "Repair job for AK-630 Gun System on INS Kamorta has been updated", updated.Message)
	assert.Equal(t, "Overhaul job for Kavach Chaff System on INS Kamorta has been completed", completed.Message)
	assert.False(t, completed.Read)

	list, err := svc.List(ctx, engineer)
	require.NoError(t, err)
	require.Len(t, list.Items, 8)
	assert.Equal(t, completed.ID, list.Items[0].ID, "newest entry first")
	assert.Equal(t, 6, list.Unread)
}

func TestNotificationLifecycle(t *testing.T) {
	f := newFixture(t)
	svc := NewNotificationService(f.notes, nil)
	ctx := context.Background()

	list, err := svc.MarkAsRead(ctx, admin, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, list.Unread)

	_, err = svc.MarkAsRead(ctx, admin, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	list, err = svc.Delete(ctx, admin, "3")
	require.NoError(t, err)
	assert.Len(t, list.Items, 4)
	assert.Equal(t, 1, list.Unread)

	list, err = svc.MarkAllAsRead(ctx, admin)
	require.NoError(t, err)
	assert.Zero(t, list.Unread)

	list, err = svc.ClearAll(ctx, admin)
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	_, err = svc.List(ctx, nil)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestJobServiceWithNotificationLog(t *testing.T) {
	f := newFixture(t)
	svc := NewNotificationService(f.notes, nil)
	jobs := NewJobService(f.jobs, f.components, f.ships, f.users, svc, nil)
	ctx := context.Background()

	_, err := jobs.UpdateStatus(ctx, engineer, "4", models.JobCompleted)
	require.NoError(t, err)

	list, err := svc.List(ctx, engineer)
	require.NoError(t, err)
	assert.Equal(t, "Repair job for MiG-29K Support System on INS Vikramaditya has been completed", list.Items[0].Message)
	assert.Equal(t, models.NotificationJobCompleted, list.Items[0].Type)
}
