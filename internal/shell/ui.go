package shell

import (
	"github.com/inovacc/clientrec/internal/cli"
	"github.com/inovacc/clientrec/internal/model"
)

// UI is the set of full screen widgets the shell drives.
type UI interface {
	Choose(title string, items []cli.MenuItem) (string, error)
	PickClient(title string, clients []model.Client) (*model.Client, error)
	Form(title string, fields []cli.Field) ([]string, error)
	Busy(label string, job func() (string, error)) (string, error)
	Batch(jobs []cli.BatchJob) ([]cli.BatchResult, error)
}

// TUI renders widgets with bubbletea.
type TUI struct{}

func (TUI) Choose(title string, items []cli.MenuItem) (string, error) {
	return cli.RunMenu(title, items)
}

func (TUI) PickClient(title string, clients []model.Client) (*model.Client, error) {
	return cli.PickClient(title, clients)
}

func (TUI) Form(title string, fields []cli.Field) ([]string, error) {
	return cli.RunForm(title, fields)
}

func (TUI) Busy(label string, job func() (string, error)) (string, error) {
	return cli.RunTask(label, job)
}

func (TUI) Batch(jobs []cli.BatchJob) ([]cli.BatchResult, error) {
	return cli.RunBatch(jobs)
}
