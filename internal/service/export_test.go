package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/export"
	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenArchive struct{ calls int }

func (b *brokenArchive) Store(context.Context, export.File) (string, error) {
	b.calls++
	return "", errors.New("bucket unavailable")
}

func TestExportJobs_Archived(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	svc := NewExportService(f.ships, f.components, f.jobs, export.FSArchive{Dir: dir}, nil).
		WithClock(func() time.Time { return testNow })

	file, err := svc.Jobs(context.Background(), admin, models.JobFilter{ShipID: "6"})
	require.NoError(t, err)
	assert.Equal(t, "maintenance_jobs_2024-05-10.csv", file.Name)

	lines := strings.Split(string(file.Content), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Type,Ship,Component,Priority,Status,ScheduledDate,Description", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Overhaul,INS Kamorta,AK-630 Gun System,High,Open,2024-07-10"))

	archived, err := os.ReadFile(filepath.Join(dir, "exports", file.Name))
	require.NoError(t, err)
	assert.Equal(t, file.Content, archived)
}

func TestExportJobs_NothingVisible(t *testing.T) {
	f := newFixture(t)
	svc := NewExportService(f.ships, f.components, f.jobs, nil, nil)

	other := &models.User{ID: "8", Role: models.RoleEngineer}
	_, err := svc.Jobs(context.Background(), other, models.JobFilter{})
	assert.ErrorIs(t, err, export.ErrNoJobs)

	_, err = svc.Jobs(context.Background(), nil, models.JobFilter{})
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestExportComponents_ArchiveFailureIgnored(t *testing.T) {
	f := newFixture(t)
	archive := &brokenArchive{}
	svc := NewExportService(f.ships, f.components, f.jobs, archive, nil).
		WithClock(func() time.Time { return testNow })

	file, err := svc.Components(context.Background(), inspector, "3", "")
	require.NoError(t, err)
	assert.Equal(t, "components_2024-05-10.csv", file.Name)
	assert.Equal(t, 1, archive.calls)
	assert.Len(t, strings.Split(string(file.Content), "\n"), 3)

	_, err = svc.Components(context.Background(), inspector, "", "no such part")
	assert.ErrorIs(t, err, export.ErrNoComponents)
}
