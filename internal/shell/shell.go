// Package shell runs the interactive clientrec menus.
//
// The shell asks for an administrator account on first run, then loops over
// the main menu (login, register, about, help, system info, exit). A login
// opens the dashboard for an explicit [Session]; logout drops it. Errors
// raised by an action are printed and the loop continues; only exit, an
// interrupt or the end of input stops it.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/inovacc/clientrec/internal/application"
	"github.com/inovacc/clientrec/internal/auth"
	"github.com/inovacc/clientrec/internal/cli"
	"github.com/inovacc/clientrec/internal/model"
)

// Records is the part of the record store the shell uses.
//
//nolint:interfacebloat // the shell exposes every record operation
type Records interface {
	CreateClient(ctx context.Context, in model.NewClient) (int64, error)
	GetClient(ctx context.Context, id int64) (*model.Client, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	SearchClients(ctx context.Context, term string) ([]model.Client, error)
	UpdateClient(ctx context.Context, id int64, upd model.ClientUpdate) (bool, error)
	DeleteClient(ctx context.Context, id int64) (bool, error)

	CreateReport(ctx context.Context, in model.NewReport) (int64, error)
	GetReport(ctx context.Context, id int64) (*model.Report, error)
	ListReportsByClient(ctx context.Context, clientID int64) ([]model.Report, error)
	ListAllReports(ctx context.Context) ([]model.Report, error)
	UpdateReportStatus(ctx context.Context, id int64, status string) (bool, error)
	AddReportField(ctx context.Context, reportID int64, name, value, fieldType string) (int64, error)
	ListReportFields(ctx context.Context, reportID int64) ([]model.ReportField, error)
	ListClientReportFields(ctx context.Context, clientID int64) ([]model.ReportField, error)

	ClientStats(ctx context.Context) (model.ClientStats, error)
	ReportStats(ctx context.Context) (model.ReportStats, error)
}

// Accounts is the part of the credential manager the shell uses.
type Accounts interface {
	CreateUser(ctx context.Context, username, password string, isAdmin bool) (auth.CreateOutcome, error)
	Authenticate(ctx context.Context, username, password string) (*model.UserSummary, error)
	UserExists(ctx context.Context) (bool, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) (bool, error)
}

// Documents is the export engine.
type Documents interface {
	Dir() string
	ClientPDF(client model.Client, fields []model.ReportField) (string, error)
	ClientsPDF(clients []model.Client) (string, error)
	ClientsXLSX(clients []model.Client) (string, error)
	ClientsCSV(clients []model.Client) (string, error)
	ReportsXLSX(reports []model.Report) (string, error)
	ReportsCSV(reports []model.Report) (string, error)
	StatisticsPDF(cs model.ClientStats, rs model.ReportStats) (string, error)
}

// Info describes where the shell keeps its files; shown by system info and
// settings.
type Info struct {
	ConfigPath   string
	DatabasePath string
	OutputDir    string
	LogFile      string
	Locale       string
}

// Deps wires a Shell.
type Deps struct {
	Records   Records
	Accounts  Accounts
	Documents Documents
	UI        UI
	Prompter  Prompter
	Out       io.Writer
	Logger    *slog.Logger
	Info      Info
	Clock     func() time.Time
}

// Shell is the interactive menu loop.
type Shell struct {
	records  Records
	accounts Accounts
	docs     Documents
	ui       UI
	prompt   Prompter
	out      io.Writer
	log      *slog.Logger
	info     Info
	now      func() time.Time
}

// errQuit unwinds every menu back to Run.
var errQuit = errors.New("quit")

// New returns a Shell. UI, Prompter and Out default to the terminal.
func New(d Deps) *Shell {
	s := &Shell{
		records:  d.Records,
		accounts: d.Accounts,
		docs:     d.Documents,
		ui:       d.UI,
		prompt:   d.Prompter,
		out:      d.Out,
		log:      d.Logger,
		info:     d.Info,
		now:      d.Clock,
	}

	if s.ui == nil {
		s.ui = TUI{}
	}

	if s.prompt == nil {
		s.prompt = NewStdPrompter()
	}

	if s.out == nil {
		s.out = os.Stdout
	}

	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}

	if s.now == nil {
		s.now = time.Now
	}

	return s
}

var mainMenu = []cli.MenuItem{
	{Title: "Login", Description: "Sign in to manage clients", Action: "login"},
	{Title: "Register", Description: "Create a new user", Action: "register"},
	{Title: "About", Description: "About this program", Action: "about"},
	{Title: "Help", Description: "How to use the menus", Action: "help"},
	{Title: "System Info", Description: "Paths and runtime", Action: "sysinfo"},
	{Title: "Exit", Description: "Leave the program", Action: "exit"},
}

// Run shows the main menu until the operator exits. It returns nil on exit or
// end of input and ctx.Err() on interrupt.
func (s *Shell) Run(ctx context.Context) error {
	s.log.Info("shell started")
	defer s.log.Info("shell stopped")

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.bootstrap(ctx); err != nil {
		if isQuit(err) {
			return ctx.Err()
		}

		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.ui.Choose(application.AppTitle, mainMenu)
		if err != nil {
			if errors.Is(err, cli.ErrCancelled) || isQuit(err) {
				s.println("Goodbye!")
				return ctx.Err()
			}

			return err
		}

		switch choice {
		case "login":
			err = s.login(ctx)
		case "register":
			err = s.register(ctx)
		case "about":
			s.about()
		case "help":
			s.help()
		case "sysinfo":
			s.systemInfo()
		case "exit":
			s.println("Goodbye!")
			return nil
		}

		if err != nil {
			if isQuit(err) {
				return ctx.Err()
			}

			s.report(err)
		}
	}
}

// bootstrap demands an administrator account when no user exists yet.
func (s *Shell) bootstrap(ctx context.Context) error {
	exists, err := s.accounts.UserExists(ctx)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	s.println(cli.Header("First run: create the administrator account"))

	for {
		username, password, err := s.askNewCredentials()
		if err != nil {
			if isQuit(err) {
				return err
			}

			s.report(err)

			continue
		}

		outcome, err := s.accounts.CreateUser(ctx, username, password, true)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				s.report(err)
				continue
			}

			return err
		}

		if outcome == auth.OutcomeCreated {
			s.println(cli.Success("Administrator %q created", username))
			s.log.Info("administrator created", "username", username)

			return nil
		}

		s.println(cli.Warning("Username %q is already taken", username))
	}
}

func (s *Shell) askNewCredentials() (string, string, error) {
	username, err := s.prompt.Prompt("Username")
	if err != nil {
		return "", "", quitOn(err)
	}

	if username == "" {
		return "", "", auth.ErrInvalidCredentials
	}

	password, err := s.prompt.Password("Password")
	if err != nil {
		return "", "", quitOn(err)
	}

	confirmation, err := s.prompt.Password("Confirm password")
	if err != nil {
		return "", "", quitOn(err)
	}

	if err := auth.ConfirmPassword(password, confirmation); err != nil {
		return "", "", err
	}

	if password == "" {
		return "", "", auth.ErrInvalidCredentials
	}

	return username, password, nil
}

func (s *Shell) login(ctx context.Context) error {
	username, err := s.prompt.Prompt("Username")
	if err != nil {
		return quitOn(err)
	}

	password, err := s.prompt.Password("Password")
	if err != nil {
		return quitOn(err)
	}

	user, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	sess := NewSession(*user, s.now())
	s.log.Info("login", "session_id", sess.ID.String(), "user", user.Username)
	s.println(cli.Success("Welcome, %s", user.Username))

	return s.dashboard(ctx, sess)
}

func (s *Shell) register(ctx context.Context) error {
	username, password, err := s.askNewCredentials()
	if err != nil {
		return err
	}

	isAdmin, err := s.prompt.Confirm("Administrator account?")
	if err != nil {
		return quitOn(err)
	}

	outcome, err := s.accounts.CreateUser(ctx, username, password, isAdmin)
	if err != nil {
		return err
	}

	if outcome == auth.OutcomeConflict {
		s.println(cli.Warning("Username %q is already taken", username))
		return nil
	}

	s.println(cli.Success("User %q registered", username))

	return nil
}

func (s *Shell) about() {
	s.println(cli.Box("About", [][2]string{
		{"Program", application.AppTitle},
		{"Version", application.Version},
		{"Purpose", "Keep client records, reports and exports"},
		{"Exports", "PDF, Excel (xlsx), CSV"},
	}))
}

func (s *Shell) help() {
	s.println(cli.Header("Help"))
	s.println(`
  Use the arrow keys and Enter to pick a menu entry; q or Esc goes back.
  Forms: Tab moves between fields, Enter on [ Submit ] saves, Esc cancels.

  Login            open the dashboard
  Clients          list, view, add, edit, delete and search clients
  Reports          attach reports to clients, set their status, add fields
  Statistics       totals per country, city, status and type
  Export           write PDF, xlsx and CSV files to the export directory
  Settings         change your password, show the configuration`)
}

func (s *Shell) systemInfo() {
	s.println(cli.Box("System Info", systemRows(s.info)))
}

func (s *Shell) report(err error) {
	if errors.Is(err, cli.ErrCancelled) {
		s.println("Cancelled.")
		return
	}

	s.log.Error("operation failed", "error", err)
	s.println(cli.Failure(err))
}

func (s *Shell) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

// quitOn maps end of input to errQuit.
func quitOn(err error) error {
	if errors.Is(err, io.EOF) {
		return errQuit
	}

	return err
}

func isQuit(err error) bool {
	return errors.Is(err, errQuit) || errors.Is(err, io.EOF)
}
