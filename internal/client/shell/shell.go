// Package shell implements the interactive terminal front end. It drives the
// services directly over the local store, with the logged-in user kept in
// the store's session key.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/app"
	"github.com/atinyakov/FleetKeeper/internal/export"
	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/atinyakov/FleetKeeper/internal/service"
	"github.com/atinyakov/FleetKeeper/internal/views"
)

const promptText = "fleetkeeper> "

const helpText = `Available commands:
  login <email>                 log in (asks for the password)
  logout | whoami
  ships [search]                list ships
  ship add | ship delete <id>
  components [shipId]           list components
  component add <shipId>
  jobs [status]                 list jobs visible to you
  job add | job delete <id>
  status <jobId> <status>       move a job to Open, In Progress or Completed
  complete <jobId>
  notifications | read <id> | readall | clear
  dashboard
  calendar [month|week] [YYYY-MM-DD]
  export jobs|components        write a CSV file to the export directory
  help | exit`

// Shell is a line-oriented REPL over the application services.
type Shell struct {
	app       *app.App
	session   *service.Session
	in        *bufio.Scanner
	out       io.Writer
	exportDir string
	now       func() time.Time
}

// New creates a shell reading commands from in and writing to out. CSV
// exports are written to exportDir.
func New(a *app.App, session *service.Session, in io.Reader, out io.Writer, exportDir string) *Shell {
	return &Shell{
		app:       a,
		session:   session,
		in:        bufio.NewScanner(in),
		out:       out,
		exportDir: exportDir,
		now:       time.Now,
	}
}

// Run executes commands until "exit" or end of input.
func (s *Shell) Run(ctx context.Context) {
	for {
		fmt.Fprint(s.out, promptText)
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return
		}
		args := strings.Fields(s.in.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" {
			fmt.Fprintln(s.out, "Bye")
			return
		}
		if err := s.dispatch(ctx, args); err != nil {
			fmt.Fprintln(s.out, describe(err))
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, args []string) error {
	u := s.session.Current()
	switch args[0] {
	case "help":
		fmt.Fprintln(s.out, helpText)
		return nil
	case "login":
		return s.login(ctx, args)
	case "logout":
		s.session.Logout(ctx)
		fmt.Fprintln(s.out, "Logged out")
		return nil
	case "whoami":
		if u == nil {
			return models.ErrUnauthorized
		}
		fmt.Fprintf(s.out, "%s <%s> (%s)\n", u.Name, u.Email, u.Role)
		return nil
	case "ships":
		return s.ships(ctx, u, strings.Join(args[1:], " "))
	case "ship":
		return s.ship(ctx, u, args)
	case "components":
		return s.components(ctx, u, arg(args, 1))
	case "component":
		return s.component(ctx, u, args)
	case "jobs":
		return s.jobs(ctx, u, models.JobStatus(strings.Join(args[1:], " ")))
	case "job":
		return s.job(ctx, u, args)
	case "status":
		if len(args) < 3 {
			return usage("status <jobId> <status>")
		}
		job, err := s.app.JobSvc.UpdateStatus(ctx, u, args[1], models.JobStatus(strings.Join(args[2:], " ")))
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Job %s is now %s\n", job.ID, job.Status)
		return nil
	case "complete":
		if len(args) < 2 {
			return usage("complete <jobId>")
		}
		job, err := s.app.JobSvc.Complete(ctx, u, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Job %s completed on %s\n", job.ID, *job.CompletedDate)
		return nil
	case "notifications":
		list, err := s.app.NotifySvc.List(ctx, u)
		if err != nil {
			return err
		}
		s.printNotifications(list)
		return nil
	case "read":
		if len(args) < 2 {
			return usage("read <id>")
		}
		list, err := s.app.NotifySvc.MarkAsRead(ctx, u, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%d unread\n", list.Unread)
		return nil
	case "readall":
		if _, err := s.app.NotifySvc.MarkAllAsRead(ctx, u); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "All notifications marked as read")
		return nil
	case "clear":
		if _, err := s.app.NotifySvc.ClearAll(ctx, u); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Notifications cleared")
		return nil
	case "dashboard":
		return s.dashboard(ctx, u)
	case "calendar":
		return s.calendar(ctx, u, args)
	case "export":
		return s.export(ctx, u, arg(args, 1))
	}
	return fmt.Errorf("unknown command %q, type 'help' for a list of commands", args[0])
}

func (s *Shell) login(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("login <email>")
	}
	password := s.ask("Password: ")
	u, err := s.session.Login(ctx, args[1], password)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Welcome, %s (%s)\n", u.Name, u.Role)
	return nil
}

func (s *Shell) ships(ctx context.Context, u *models.User, term string) error {
	ships, err := s.app.ShipSvc.List(ctx, u, term, "")
	if err != nil {
		return err
	}
	tw := s.table("ID", "NAME", "IMO", "FLAG", "STATUS")
	for _, sh := range ships {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", sh.ID, sh.Name, sh.IMO, sh.Flag, sh.Status)
	}
	return tw.Flush()
}

func (s *Shell) ship(ctx context.Context, u *models.User, args []string) error {
	switch arg(args, 1) {
	case "add":
		sh, err := s.app.ShipSvc.Create(ctx, u, s.PromptShip())
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Ship %s added\n", sh.ID)
		return nil
	case "delete":
		if len(args) < 3 {
			return usage("ship delete <id>")
		}
		if err := s.app.ShipSvc.Delete(ctx, u, args[2]); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Ship deleted")
		return nil
	}
	return usage("ship add | ship delete <id>")
}

func (s *Shell) components(ctx context.Context, u *models.User, shipID string) error {
	comps, err := s.app.ComponentSvc.List(ctx, u, shipID, "")
	if err != nil {
		return err
	}
	now := s.now()
	tw := s.table("ID", "SHIP", "NAME", "SERIAL", "LAST MAINTENANCE", "")
	for _, c := range comps {
		flag := ""
		if views.MaintenanceOverdue(c, now) {
			flag = "overdue"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.ShipID, c.Name, c.SerialNumber, c.LastMaintenanceDate, flag)
	}
	return tw.Flush()
}

func (s *Shell) component(ctx context.Context, u *models.User, args []string) error {
	if arg(args, 1) != "add" || len(args) < 3 {
		return usage("component add <shipId>")
	}
	c, err := s.app.ComponentSvc.Create(ctx, u, s.PromptComponent(args[2]))
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Component %s added\n", c.ID)
	return nil
}

func (s *Shell) jobs(ctx context.Context, u *models.User, status models.JobStatus) error {
	jobs, err := s.app.JobSvc.List(ctx, u, service.JobQuery{JobFilter: models.JobFilter{Status: status}})
	if err != nil {
		return err
	}
	now := s.now()
	tw := s.table("ID", "TYPE", "SHIP", "COMPONENT", "PRIORITY", "STATUS", "SCHEDULED", "")
	for _, j := range jobs {
		ship, comp := s.app.JobSvc.Names(ctx, j)
		flag := ""
		if views.JobOverdue(j, now) {
			flag = "overdue"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n", j.ID, j.Type, ship, comp, j.Priority, j.Status, j.ScheduledDate, flag)
	}
	return tw.Flush()
}

func (s *Shell) job(ctx context.Context, u *models.User, args []string) error {
	switch arg(args, 1) {
	case "add":
		j, err := s.app.JobSvc.Create(ctx, u, s.PromptJob())
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Job %s scheduled for %s\n", j.ID, j.ScheduledDate)
		return nil
	case "delete":
		if len(args) < 3 {
			return usage("job delete <id>")
		}
		if err := s.app.JobSvc.Delete(ctx, u, args[2]); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Job deleted")
		return nil
	}
	return usage("job add | job delete <id>")
}

func (s *Shell) printNotifications(list service.NotificationList) {
	fmt.Fprintf(s.out, "%d unread\n", list.Unread)
	for _, n := range list.Items {
		mark := " "
		if !n.Read {
			mark = "*"
		}
		fmt.Fprintf(s.out, "%s [%s] %s %s\n", mark, n.ID, n.Date, n.Message)
	}
}

func (s *Shell) dashboard(ctx context.Context, u *models.User) error {
	d, err := s.app.DashboardSvc.Dashboard(ctx, u)
	if err != nil {
		return err
	}
	st := d.Stats
	tw := s.table("METRIC", "VALUE")
	fmt.Fprintf(tw, "Total Ships\t%d\n", st.TotalShips)
	fmt.Fprintf(tw, "Total Components\t%d\n", st.TotalComponents)
	fmt.Fprintf(tw, "Overdue Jobs\t%d\n", st.OverdueJobs)
	fmt.Fprintf(tw, "Components with Overdue Maintenance\t%d\n", st.OverdueMaintenanceComponents)
	fmt.Fprintf(tw, "Jobs In Progress\t%d\n", st.JobsInProgress)
	fmt.Fprintf(tw, "Completed Jobs\t%d\n", st.CompletedJobs)
	return tw.Flush()
}

func (s *Shell) calendar(ctx context.Context, u *models.User, args []string) error {
	view, err := views.ParseCalendarView(arg(args, 1))
	if err != nil {
		return usage("calendar [month|week] [YYYY-MM-DD]")
	}
	var ref time.Time
	if d := arg(args, 2); d != "" {
		if ref, err = models.ParseDate(d); err != nil {
			return models.NewValidationError("date", "Invalid date")
		}
	}
	cal, err := s.app.DashboardSvc.Calendar(ctx, u, view, ref)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, cal.Title)
	for _, d := range cal.Days {
		if len(d.Jobs) == 0 {
			continue
		}
		types := make([]string, 0, len(d.Jobs))
		for _, j := range d.Jobs {
			types = append(types, fmt.Sprintf("%s (%s)", j.Type, j.Status))
		}
		fmt.Fprintf(s.out, "  %s  %s\n", d.Key, strings.Join(types, ", "))
	}
	fmt.Fprintf(s.out, "previous: %s  next: %s\n", cal.Previous, cal.Next)
	return nil
}

func (s *Shell) export(ctx context.Context, u *models.User, what string) error {
	var (
		file export.File
		err  error
	)
	switch what {
	case "jobs":
		file, err = s.app.ExportSvc.Jobs(ctx, u, models.JobFilter{})
	case "components":
		file, err = s.app.ExportSvc.Components(ctx, u, "", "")
	default:
		return usage("export jobs|components")
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return err
	}
	dst := filepath.Join(s.exportDir, file.Name)
	if err := os.WriteFile(dst, file.Content, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Exported to %s\n", dst)
	return nil
}

func (s *Shell) table(headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

type usageError string

func (u usageError) Error() string { return "Usage: " + string(u) }

func usage(s string) error { return usageError(s) }

// describe renders err for the terminal.
func describe(err error) string {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		lines := make([]string, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			lines = append(lines, fmt.Sprintf("  %s: %s", fe.Field, fe.Message))
		}
		return "Invalid input:\n" + strings.Join(lines, "\n")
	case errors.Is(err, models.ErrUnauthorized):
		return "Please log in first"
	case errors.Is(err, models.ErrForbidden):
		return "You do not have permission to do that"
	}
	return err.Error()
}
