package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/inovacc/clientrec/internal/cli"
	"github.com/inovacc/clientrec/internal/model"
)

var exportMenu = []cli.MenuItem{
	{Title: "Client PDF", Description: "One client with its report data", Action: "client-pdf"},
	{Title: "Clients PDF", Action: "clients-pdf"},
	{Title: "Clients Excel", Action: "clients-xlsx"},
	{Title: "Clients CSV", Action: "clients-csv"},
	{Title: "Reports Excel", Action: "reports-xlsx"},
	{Title: "Reports CSV", Action: "reports-csv"},
	{Title: "Statistics PDF", Action: "stats-pdf"},
	{Title: "Everything", Description: "Every document above except the single client PDF", Action: "all"},
	{Title: "Back", Action: "back"},
}

func (s *Shell) exportMenu(ctx context.Context) error {
	return s.submenu(ctx, "Export", exportMenu, map[string]func(context.Context) error{
		"client-pdf": s.exportClient,
		"clients-pdf": func(ctx context.Context) error {
			return s.exportClients(ctx, s.docs.ClientsPDF)
		},
		"clients-xlsx": func(ctx context.Context) error {
			return s.exportClients(ctx, s.docs.ClientsXLSX)
		},
		"clients-csv": func(ctx context.Context) error {
			return s.exportClients(ctx, s.docs.ClientsCSV)
		},
		"reports-xlsx": func(ctx context.Context) error {
			return s.exportReports(ctx, s.docs.ReportsXLSX)
		},
		"reports-csv": func(ctx context.Context) error {
			return s.exportReports(ctx, s.docs.ReportsCSV)
		},
		"stats-pdf": s.exportStats,
		"all":       s.exportAll,
	})
}

func (s *Shell) exportClient(ctx context.Context) error {
	c, err := s.pickClient(ctx, "Export client")
	if err != nil || c == nil {
		return err
	}

	fields, err := s.records.ListClientReportFields(ctx, c.ID)
	if err != nil {
		return err
	}

	path, err := s.ui.Busy("Writing client PDF", func() (string, error) {
		return s.docs.ClientPDF(*c, fields)
	})
	if err != nil {
		return err
	}

	s.saved(path)

	return nil
}

func (s *Shell) exportClients(ctx context.Context, write func([]model.Client) (string, error)) error {
	clients, err := s.records.ListClients(ctx)
	if err != nil {
		return err
	}

	path, err := s.ui.Busy("Writing clients", func() (string, error) {
		return write(clients)
	})
	if err != nil {
		return err
	}

	s.saved(path)

	return nil
}

func (s *Shell) exportReports(ctx context.Context, write func([]model.Report) (string, error)) error {
	reports, err := s.records.ListAllReports(ctx)
	if err != nil {
		return err
	}

	path, err := s.ui.Busy("Writing reports", func() (string, error) {
		return write(reports)
	})
	if err != nil {
		return err
	}

	s.saved(path)

	return nil
}

func (s *Shell) exportStats(ctx context.Context) error {
	cs, err := s.records.ClientStats(ctx)
	if err != nil {
		return err
	}

	rs, err := s.records.ReportStats(ctx)
	if err != nil {
		return err
	}

	path, err := s.ui.Busy("Writing statistics PDF", func() (string, error) {
		return s.docs.StatisticsPDF(cs, rs)
	})
	if err != nil {
		return err
	}

	s.saved(path)

	return nil
}

func (s *Shell) saved(path string) {
	s.log.Info("export written", "path", path)
	s.println(cli.Success("Saved %s", path))
}

// exportAll loads the records once and writes every collection document.
func (s *Shell) exportAll(ctx context.Context) error {
	clients, err := s.records.ListClients(ctx)
	if err != nil {
		return err
	}

	reports, err := s.records.ListAllReports(ctx)
	if err != nil {
		return err
	}

	cs, err := s.records.ClientStats(ctx)
	if err != nil {
		return err
	}

	rs, err := s.records.ReportStats(ctx)
	if err != nil {
		return err
	}

	clientsJob := func(name string, write func([]model.Client) (string, error)) cli.BatchJob {
		return cli.BatchJob{Name: name, Run: func() (string, error) { return write(clients) }}
	}

	reportsJob := func(name string, write func([]model.Report) (string, error)) cli.BatchJob {
		return cli.BatchJob{Name: name, Run: func() (string, error) { return write(reports) }}
	}

	results, err := s.ui.Batch([]cli.BatchJob{
		clientsJob("Clients PDF", s.docs.ClientsPDF),
		clientsJob("Clients Excel", s.docs.ClientsXLSX),
		clientsJob("Clients CSV", s.docs.ClientsCSV),
		reportsJob("Reports Excel", s.docs.ReportsXLSX),
		reportsJob("Reports CSV", s.docs.ReportsCSV),
		{Name: "Statistics PDF", Run: func() (string, error) { return s.docs.StatisticsPDF(cs, rs) }},
	})

	var failed []error

	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", r.Name, r.Err))
			continue
		}

		s.saved(r.Path)
	}

	if err != nil {
		return err
	}

	return errors.Join(failed...)
}
