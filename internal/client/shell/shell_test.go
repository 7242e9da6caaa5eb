package shell

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/app"
	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/service"
)

var fixedNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func runShell(t *testing.T, store *kv.Adapter, exportDir, input string) string {
	t.Helper()
	ctx := context.Background()
	n := 0
	a := app.New(ctx, store, app.Options{
		JWTSecret: "s",
		Clock:     func() time.Time { return fixedNow },
		IDs:       func() string { n++; return fmt.Sprintf("new-%d", n) },
	})
	var out bytes.Buffer
	sh := New(a, service.NewSession(ctx, a.Auth, store), strings.NewReader(input), &out, exportDir)
	sh.now = func() time.Time { return fixedNow }
	sh.Run(ctx)
	return out.String()
}

func memStore() *kv.Adapter { return kv.NewAdapter(kv.NewMemoryStore(), nil) }

func TestShell_RequiresLogin(t *testing.T) {
	out := runShell(t, memStore(), t.TempDir(), "ships\nexit\n")
	if !strings.Contains(out, "Please log in first") {
		t.Errorf("expected login prompt, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "Bye\n") {
		t.Errorf("expected Bye at the end, got:\n%s", out)
	}
}

func TestShell_LoginPersistsAcrossRuns(t *testing.T) {
	store := memStore()
	out := runShell(t, store, t.TempDir(), "login admin@test.in\nadmin123\nexit\n")
	if !strings.Contains(out, "Welcome, Admin User (Admin)") {
		t.Fatalf("login failed:\n%s", out)
	}

	out = runShell(t, store, t.TempDir(), "whoami\nlogout\nwhoami\n")
	if !strings.Contains(out, "Admin User <admin@test.in> (Admin)") {
		t.Errorf("session was not restored:\n%s", out)
	}
	if !strings.Contains(out, "Please log in first") {
		t.Errorf("logout did not clear the session:\n%s", out)
	}
}

func TestShell_BadPassword(t *testing.T) {
	out := runShell(t, memStore(), t.TempDir(), "login admin@test.in\nnope\n")
	if !strings.Contains(out, "Invalid email or password") {
		t.Errorf("expected generic credential error, got:\n%s", out)
	}
}

func TestShell_EngineerCompletesJob(t *testing.T) {
	out := runShell(t, memStore(), t.TempDir(), strings.Join([]string{
		"login engineer@test.in", "engine123",
		"status 3 Completed",
		"notifications",
		"ship delete 1",
	}, "\n")+"\n")

	for _, want := range []string{
		"Job 3 is now Completed",
		"4 unread",
		"Calibration job for Barak-8 Air Defense System on INS Vikrant has been completed",
		"You do not have permission to do that",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShell_ValidationErrors(t *testing.T) {
	out := runShell(t, memStore(), t.TempDir(), strings.Join([]string{
		"login inspector@test.in", "inspect123",
		"ship add", "INS Delhi", "IMO12", "India", "",
	}, "\n")+"\n")

	if !strings.Contains(out, "imo: IMO must be in format IMO followed by 7 digits") {
		t.Errorf("expected imo validation message:\n%s", out)
	}
}

func TestShell_ExportWritesFile(t *testing.T) {
	dir := t.TempDir()
	out := runShell(t, memStore(), dir, "login admin@test.in\nadmin123\nexport components\n")

	path := filepath.Join(dir, "components_2024-05-10.csv")
	if !strings.Contains(out, "Exported to "+path) {
		t.Fatalf("unexpected output:\n%s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if !strings.HasPrefix(string(data), "Name,Ship,SerialNumber,InstallDate,LastMaintenance,Status,Description\n") {
		t.Errorf("unexpected header: %q", data)
	}
}

func TestShell_DashboardAndCalendar(t *testing.T) {
	out := runShell(t, memStore(), t.TempDir(), "login admin@test.in\nadmin123\ndashboard\ncalendar month 2024-05-01\n")

	for _, want := range []string{"Total Ships", "May 2024", "2024-05-20  Maintenance (Open)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
