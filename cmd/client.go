package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/inovacc/clientrec/internal/encoding"
	"github.com/inovacc/clientrec/internal/model"
	"github.com/inovacc/clientrec/internal/shell"
	"github.com/inovacc/clientrec/internal/store"
	"github.com/spf13/cobra"
)

var (
	clientName    string
	clientEmail   string
	clientPhone   string
	clientCompany string
	clientAddress string
	clientCity    string
	clientCountry string

	clientListJSON    bool
	clientDeleteForce bool
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage client records",
	Long: `Manage client records.

Available Commands:
  add          Register a new client
  list         List all clients, newest first
  show         Show one client and its reports
  edit         Change some fields of a client
  delete       Delete a client without reports
  search       Find clients by name, email or company

Examples:
  clientrec client add --name "Ana Gomez" --email ana@example.com -u admin
  clientrec client list -u admin
  clientrec client edit 3 --city Lima -u admin
  clientrec client search acme -u admin`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new client",
	Args:  cobra.NoArgs,
	RunE:  runClientAdd,
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients, newest first",
	Args:  cobra.NoArgs,
	RunE:  runClientList,
}

var clientShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one client and its reports",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientShow,
}

var clientEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change some fields of a client",
	Long: `Change some fields of a client. Only the flags you pass are written;
pass an empty value (--phone "") to clear an optional field.`,
	Args: cobra.ExactArgs(1),
	RunE: runClientEdit,
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a client without reports",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientDelete,
}

var clientSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find clients by name, email or company",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientSearch,
}

func init() {
	rootCmd.AddCommand(clientCmd)
	clientCmd.AddCommand(clientAddCmd, clientListCmd, clientShowCmd, clientEditCmd, clientDeleteCmd, clientSearchCmd)

	for _, c := range []*cobra.Command{clientAddCmd, clientEditCmd} {
		c.Flags().StringVar(&clientName, "name", "", "Client name")
		c.Flags().StringVar(&clientEmail, "email", "", "Client email (unique)")
		c.Flags().StringVar(&clientPhone, "phone", "", "Phone number")
		c.Flags().StringVar(&clientCompany, "company", "", "Company")
		c.Flags().StringVar(&clientAddress, "address", "", "Postal address")
		c.Flags().StringVar(&clientCity, "city", "", "City")
		c.Flags().StringVar(&clientCountry, "country", "", "Country")
	}

	_ = clientAddCmd.MarkFlagRequired("name")
	_ = clientAddCmd.MarkFlagRequired("email")

	clientListCmd.Flags().BoolVar(&clientListJSON, "json", false, "Output as JSON")
	clientDeleteCmd.Flags().BoolVarP(&clientDeleteForce, "force", "f", false, "Skip confirmation")
}

func runClientAdd(cmd *cobra.Command, _ []string) error {
	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		id, err := c.store.CreateClient(ctx, model.NewClient{
			Name:    clientName,
			Email:   clientEmail,
			Phone:   clientPhone,
			Company: clientCompany,
			Address: clientAddress,
			City:    clientCity,
			Country: clientCountry,
		})
		if err != nil {
			if errors.Is(err, store.ErrConstraintViolation) {
				return fmt.Errorf("a client with email %q already exists: %w", clientEmail, err)
			}

			return err
		}

		c.log.Info("client created", "client_id", id, "user", c.user.Username)
		printSuccess(c.out, "Client created with id %d", id)

		return nil
	})
}

func runClientList(cmd *cobra.Command, _ []string) error {
	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		clients, err := c.store.ListClients(ctx)
		if err != nil {
			return err
		}

		if clientListJSON {
			return encoding.WriteJSON(c.out, clients)
		}

		shell.PrintClients(c.out, clients)

		return nil
	})
}

func runClientShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		client, err := c.store.GetClient(ctx, id)
		if err != nil {
			return err
		}

		reports, err := c.store.ListReportsByClient(ctx, id)
		if err != nil {
			return err
		}

		shell.PrintClient(c.out, *client)
		_, _ = fmt.Fprintln(c.out)
		shell.PrintReports(c.out, reports)

		return nil
	})
}

func runClientEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	upd := clientUpdateFromFlags(cmd)
	if upd.IsEmpty() {
		return errors.New("nothing to change; pass at least one of --name, --email, --phone, --company, --address, --city, --country")
	}

	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		ok, err := c.store.UpdateClient(ctx, id, upd)
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("client %d: %w", id, store.ErrNotFound)
		}

		c.log.Info("client updated", "client_id", id, "user", c.user.Username)
		printSuccess(c.out, "Client #%d updated", id)

		return nil
	})
}

// clientUpdateFromFlags sets only the fields whose flag was given.
func clientUpdateFromFlags(cmd *cobra.Command) model.ClientUpdate {
	var upd model.ClientUpdate

	pick := func(flag string, value *string) *string {
		if !cmd.Flags().Changed(flag) {
			return nil
		}

		v := *value

		return &v
	}

	upd.Name = pick("name", &clientName)
	upd.Email = pick("email", &clientEmail)
	upd.Phone = pick("phone", &clientPhone)
	upd.Company = pick("company", &clientCompany)
	upd.Address = pick("address", &clientAddress)
	upd.City = pick("city", &clientCity)
	upd.Country = pick("country", &clientCountry)

	return upd
}

func runClientDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		client, err := c.store.GetClient(ctx, id)
		if err != nil {
			return err
		}

		if !clientDeleteForce && !promptConfirm(c.prompt, fmt.Sprintf("Delete client #%d %s?", id, client.Name)) {
			_, _ = fmt.Fprintln(c.out, "Cancelled.")
			return nil
		}

		ok, err := c.store.DeleteClient(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrClientHasReports) {
				return fmt.Errorf("client #%d still has reports and was not deleted: %w", id, err)
			}

			return err
		}

		if !ok {
			return fmt.Errorf("client %d: %w", id, store.ErrNotFound)
		}

		c.log.Info("client deleted", "client_id", id, "user", c.user.Username)
		printSuccess(c.out, "Client #%d deleted", id)

		return nil
	})
}

func runClientSearch(cmd *cobra.Command, args []string) error {
	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		clients, err := c.store.SearchClients(ctx, args[0])
		if err != nil {
			return err
		}

		shell.PrintClients(c.out, clients)

		return nil
	})
}
