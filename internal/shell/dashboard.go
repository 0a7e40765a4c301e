package shell

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/inovacc/clientrec/internal/application"
	"github.com/inovacc/clientrec/internal/auth"
	"github.com/inovacc/clientrec/internal/cli"
)

var dashboardMenu = []cli.MenuItem{
	{Title: "Clients", Description: "Manage client records", Action: "clients"},
	{Title: "Reports", Description: "Manage client reports", Action: "reports"},
	{Title: "Statistics", Description: "Totals and groupings", Action: "stats"},
	{Title: "Export", Description: "Write PDF, xlsx and CSV files", Action: "export"},
	{Title: "Settings", Description: "Password and configuration", Action: "settings"},
	{Title: "Logout", Description: "Back to the main menu", Action: "logout"},
}

var settingsMenu = []cli.MenuItem{
	{Title: "Change Password", Action: "passwd"},
	{Title: "Show Configuration", Action: "config"},
	{Title: "Session", Action: "session"},
	{Title: "Back", Action: "back"},
}

func (s *Shell) dashboard(ctx context.Context, sess Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return errQuit
		}

		s.printTotals(ctx)

		choice, err := s.ui.Choose(fmt.Sprintf("Dashboard - %s", sess.User.Username), dashboardMenu)
		if err != nil {
			if !errors.Is(err, cli.ErrCancelled) {
				return err
			}

			choice = "logout"
		}

		switch choice {
		case "clients":
			err = s.clientsMenu(ctx)
		case "reports":
			err = s.reportsMenu(ctx)
		case "stats":
			err = s.showStats(ctx)
		case "export":
			err = s.exportMenu(ctx)
		case "settings":
			err = s.settings(ctx, sess)
		case "logout":
			s.log.Info("logout", "session_id", sess.ID.String(), "user", sess.User.Username)
			s.println(cli.Success("Logged out"))

			return nil
		}

		if err != nil {
			if isQuit(err) {
				return err
			}

			s.report(err)
		}
	}
}

// submenu loops over items until back or cancel, dispatching to handlers.
func (s *Shell) submenu(ctx context.Context, title string, items []cli.MenuItem, handlers map[string]func(context.Context) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return errQuit
		}

		choice, err := s.ui.Choose(title, items)
		if err != nil {
			if errors.Is(err, cli.ErrCancelled) {
				return nil
			}

			return err
		}

		handler, ok := handlers[choice]
		if !ok {
			return nil
		}

		if err := handler(ctx); err != nil {
			if isQuit(err) {
				return err
			}

			s.report(err)
		}
	}
}

func (s *Shell) printTotals(ctx context.Context) {
	cs, err := s.records.ClientStats(ctx)
	if err != nil {
		s.report(err)
		return
	}

	rs, err := s.records.ReportStats(ctx)
	if err != nil {
		s.report(err)
		return
	}

	s.println(cli.Box("Quick totals", [][2]string{
		{"Clients", fmt.Sprint(cs.TotalClients)},
		{"Reports", fmt.Sprint(rs.TotalReports)},
		{"Pending", fmt.Sprint(rs.ByStatus["pending"])},
	}))
}

func (s *Shell) showStats(ctx context.Context) error {
	cs, err := s.records.ClientStats(ctx)
	if err != nil {
		return err
	}

	rs, err := s.records.ReportStats(ctx)
	if err != nil {
		return err
	}

	s.println(cli.Header("Statistics"))
	PrintStats(s.out, cs, rs)

	return nil
}

func (s *Shell) settings(ctx context.Context, sess Session) error {
	return s.submenu(ctx, "Settings", settingsMenu, map[string]func(context.Context) error{
		"passwd": func(ctx context.Context) error {
			return s.changePassword(ctx, sess)
		},
		"config": func(context.Context) error {
			s.println(cli.Box("Configuration", [][2]string{
				{"Config file", s.info.ConfigPath},
				{"Database", s.info.DatabasePath},
				{"Export directory", s.info.OutputDir},
				{"Log file", s.info.LogFile},
				{"Locale", s.info.Locale},
			}))

			return nil
		},
		"session": func(context.Context) error {
			role := "user"
			if sess.User.IsAdmin {
				role = "administrator"
			}

			s.println(cli.Box("Session", [][2]string{
				{"ID", sess.ID.String()},
				{"User", sess.User.Username},
				{"Role", role},
				{"Since", sess.StartedAt.Format(dateLayout)},
			}))

			return nil
		},
	})
}

func (s *Shell) changePassword(ctx context.Context, sess Session) error {
	current, err := s.prompt.Password("Current password")
	if err != nil {
		return quitOn(err)
	}

	next, err := s.prompt.Password("New password")
	if err != nil {
		return quitOn(err)
	}

	confirmation, err := s.prompt.Password("Confirm new password")
	if err != nil {
		return quitOn(err)
	}

	if err := auth.ConfirmPassword(next, confirmation); err != nil {
		return err
	}

	ok, err := s.accounts.ChangePassword(ctx, sess.User.ID, current, next)
	if err != nil {
		return err
	}

	if !ok {
		s.println(cli.Warning("Current password is incorrect"))
		return nil
	}

	s.log.Info("password changed", "session_id", sess.ID.String())
	s.println(cli.Success("Password changed"))

	return nil
}

func systemRows(info Info) [][2]string {
	return [][2]string{
		{"Program", fmt.Sprintf("%s %s", application.AppTitle, application.Version)},
		{"Go", runtime.Version()},
		{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
		{"Config file", info.ConfigPath},
		{"Database", info.DatabasePath},
		{"Export directory", info.OutputDir},
		{"Log file", info.LogFile},
	}
}
