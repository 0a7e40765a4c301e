package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/inovacc/clientrec/internal/cli"
	"github.com/inovacc/clientrec/internal/model"
	"github.com/inovacc/clientrec/internal/store"
)

var clientsMenu = []cli.MenuItem{
	{Title: "List Clients", Action: "list"},
	{Title: "View Client", Action: "view"},
	{Title: "Add Client", Action: "add"},
	{Title: "Edit Client", Action: "edit"},
	{Title: "Delete Client", Action: "delete"},
	{Title: "Search Clients", Action: "search"},
	{Title: "Back", Action: "back"},
}

func (s *Shell) clientsMenu(ctx context.Context) error {
	return s.submenu(ctx, "Clients", clientsMenu, map[string]func(context.Context) error{
		"list":   s.listClients,
		"view":   s.viewClient,
		"add":    s.addClient,
		"edit":   s.editClient,
		"delete": s.deleteClient,
		"search": s.searchClients,
	})
}

func clientFields(c model.Client) []cli.Field {
	return []cli.Field{
		{Label: "Name", Value: c.Name, Required: true},
		{Label: "Email", Value: c.Email, Required: true},
		{Label: "Phone", Value: c.Phone},
		{Label: "Company", Value: c.Company},
		{Label: "Address", Value: c.Address},
		{Label: "City", Value: c.City},
		{Label: "Country", Value: c.Country},
	}
}

func (s *Shell) listClients(ctx context.Context) error {
	clients, err := s.records.ListClients(ctx)
	if err != nil {
		return err
	}

	PrintClients(s.out, clients)

	return nil
}

// pickClient lists the clients and lets the operator choose one. It returns
// nil without error when there is nothing to choose from.
func (s *Shell) pickClient(ctx context.Context, title string) (*model.Client, error) {
	clients, err := s.records.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	if len(clients) == 0 {
		s.println("No clients found.")
		return nil, nil
	}

	return s.ui.PickClient(title, clients)
}

func (s *Shell) viewClient(ctx context.Context) error {
	c, err := s.pickClient(ctx, "View client")
	if err != nil || c == nil {
		return err
	}

	PrintClient(s.out, *c)

	reports, err := s.records.ListReportsByClient(ctx, c.ID)
	if err != nil {
		return err
	}

	s.println()
	PrintReports(s.out, reports)

	return nil
}

func (s *Shell) addClient(ctx context.Context) error {
	values, err := s.ui.Form("New client", clientFields(model.Client{}))
	if err != nil {
		return err
	}

	id, err := s.records.CreateClient(ctx, model.NewClient{
		Name:    values[0],
		Email:   values[1],
		Phone:   values[2],
		Company: values[3],
		Address: values[4],
		City:    values[5],
		Country: values[6],
	})
	if err != nil {
		if errors.Is(err, store.ErrConstraintViolation) {
			return fmt.Errorf("a client with email %q already exists: %w", values[1], err)
		}

		return err
	}

	s.println(cli.Success("Client created with id %d", id))

	return nil
}

func (s *Shell) editClient(ctx context.Context) error {
	c, err := s.pickClient(ctx, "Edit client")
	if err != nil || c == nil {
		return err
	}

	values, err := s.ui.Form(fmt.Sprintf("Edit client #%d", c.ID), clientFields(*c))
	if err != nil {
		return err
	}

	upd := model.ClientUpdate{
		Name:    changed(c.Name, values[0]),
		Email:   changed(c.Email, values[1]),
		Phone:   changed(c.Phone, values[2]),
		Company: changed(c.Company, values[3]),
		Address: changed(c.Address, values[4]),
		City:    changed(c.City, values[5]),
		Country: changed(c.Country, values[6]),
	}

	if upd.IsEmpty() {
		s.println("No changes.")
		return nil
	}

	ok, err := s.records.UpdateClient(ctx, c.ID, upd)
	if err != nil {
		return err
	}

	if !ok {
		s.println(cli.Warning("Client #%d no longer exists", c.ID))
		return nil
	}

	s.println(cli.Success("Client #%d updated", c.ID))

	return nil
}

func (s *Shell) deleteClient(ctx context.Context) error {
	c, err := s.pickClient(ctx, "Delete client")
	if err != nil || c == nil {
		return err
	}

	confirmed, err := s.prompt.Confirm(fmt.Sprintf("Delete client #%d %s?", c.ID, c.Name))
	if err != nil {
		return quitOn(err)
	}

	if !confirmed {
		s.println("Cancelled.")
		return nil
	}

	ok, err := s.records.DeleteClient(ctx, c.ID)
	if err != nil {
		if errors.Is(err, store.ErrClientHasReports) {
			s.println(cli.Warning("Client #%d still has reports and was not deleted", c.ID))
			return nil
		}

		return err
	}

	if !ok {
		s.println(cli.Warning("Client #%d no longer exists", c.ID))
		return nil
	}

	s.println(cli.Success("Client #%d deleted", c.ID))

	return nil
}

func (s *Shell) searchClients(ctx context.Context) error {
	term, err := s.prompt.Prompt("Search (name, email or company)")
	if err != nil {
		return quitOn(err)
	}

	clients, err := s.records.SearchClients(ctx, term)
	if err != nil {
		return err
	}

	PrintClients(s.out, clients)

	return nil
}

// changed returns a pointer to next when it differs from current.
func changed(current, next string) *string {
	if current == next {
		return nil
	}

	return &next
}
