package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/inovacc/clientrec/internal/cli"
	"github.com/inovacc/clientrec/internal/model"
)

var reportsMenu = []cli.MenuItem{
	{Title: "List All Reports", Action: "list"},
	{Title: "Reports of a Client", Action: "by-client"},
	{Title: "Add Report", Action: "add"},
	{Title: "Set Report Status", Action: "status"},
	{Title: "Add Report Field", Action: "field"},
	{Title: "Show Report Fields", Action: "fields"},
	{Title: "Back", Action: "back"},
}

func (s *Shell) reportsMenu(ctx context.Context) error {
	return s.submenu(ctx, "Reports", reportsMenu, map[string]func(context.Context) error{
		"list":      s.listReports,
		"by-client": s.listClientReports,
		"add":       s.addReport,
		"status":    s.setReportStatus,
		"field":     s.addReportField,
		"fields":    s.showReportFields,
	})
}

func (s *Shell) listReports(ctx context.Context) error {
	reports, err := s.records.ListAllReports(ctx)
	if err != nil {
		return err
	}

	PrintReports(s.out, reports)

	return nil
}

func (s *Shell) listClientReports(ctx context.Context) error {
	c, err := s.pickClient(ctx, "Reports of client")
	if err != nil || c == nil {
		return err
	}

	reports, err := s.records.ListReportsByClient(ctx, c.ID)
	if err != nil {
		return err
	}

	PrintReports(s.out, reports)

	return nil
}

func (s *Shell) addReport(ctx context.Context) error {
	c, err := s.pickClient(ctx, "Report for client")
	if err != nil || c == nil {
		return err
	}

	values, err := s.ui.Form(fmt.Sprintf("New report for %s", c.Name), []cli.Field{
		{Label: "Title", Required: true},
		{Label: "Description"},
		{Label: "Type", Placeholder: model.DefaultReportType},
	})
	if err != nil {
		return err
	}

	id, err := s.records.CreateReport(ctx, model.NewReport{
		ClientID:    c.ID,
		Title:       values[0],
		Description: values[1],
		Type:        values[2],
	})
	if err != nil {
		return err
	}

	s.println(cli.Success("Report created with id %d", id))

	return nil
}

// askReport prompts for a report id and loads it.
func (s *Shell) askReport(ctx context.Context) (*model.Report, error) {
	raw, err := s.prompt.Prompt("Report ID")
	if err != nil {
		return nil, quitOn(err)
	}

	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}

	return s.records.GetReport(ctx, id)
}

func (s *Shell) setReportStatus(ctx context.Context) error {
	r, err := s.askReport(ctx)
	if err != nil {
		return err
	}

	items := make([]cli.MenuItem, 0, len(model.ReportStatuses))
	for _, st := range model.ReportStatuses {
		items = append(items, cli.MenuItem{Title: st, Action: st})
	}

	status, err := s.ui.Choose(fmt.Sprintf("Status of %q (now %s)", r.Title, r.Status), items)
	if err != nil {
		return err
	}

	ok, err := s.records.UpdateReportStatus(ctx, r.ID, status)
	if err != nil {
		return err
	}

	if !ok {
		s.println(cli.Warning("Report #%d no longer exists", r.ID))
		return nil
	}

	s.println(cli.Success("Report #%d is now %s", r.ID, status))

	return nil
}

func (s *Shell) addReportField(ctx context.Context) error {
	r, err := s.askReport(ctx)
	if err != nil {
		return err
	}

	values, err := s.ui.Form(fmt.Sprintf("New field for %q", r.Title), []cli.Field{
		{Label: "Field name", Required: true},
		{Label: "Value"},
		{Label: "Type", Placeholder: model.DefaultFieldType},
	})
	if err != nil {
		return err
	}

	if _, err := s.records.AddReportField(ctx, r.ID, values[0], values[1], values[2]); err != nil {
		return err
	}

	s.println(cli.Success("Field %q added to report #%d", values[0], r.ID))

	return nil
}

func (s *Shell) showReportFields(ctx context.Context) error {
	r, err := s.askReport(ctx)
	if err != nil {
		return err
	}

	fields, err := s.records.ListReportFields(ctx, r.ID)
	if err != nil {
		return err
	}

	PrintFields(s.out, fields)

	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}

	return id, nil
}
