package cmd

import (
	"context"
	"fmt"

	"github.com/inovacc/clientrec/internal/model"
	"github.com/spf13/cobra"
)

var (
	exportClientsFormat string
	exportReportsFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write records to PDF, Excel or CSV files",
	Long: `Write records to documents in the export directory (see --output).

File names carry the kind of document and a timestamp, for example
clients_20240301_091500.xlsx or client_3_20240301_091500.pdf.

Examples:
  clientrec export client 3 -u admin
  clientrec export clients --format csv -u admin
  clientrec export reports --format xlsx -u admin
  clientrec export stats -u admin --locale es`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var exportClientCmd = &cobra.Command{
	Use:   "client <id>",
	Short: "PDF of one client with its report data",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportClient,
}

var exportClientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "All clients as pdf, xlsx or csv",
	Args:  cobra.NoArgs,
	RunE:  runExportClients,
}

var exportReportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "All reports as xlsx or csv",
	Args:  cobra.NoArgs,
	RunE:  runExportReports,
}

var exportStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Statistics as PDF",
	Args:  cobra.NoArgs,
	RunE:  runExportStats,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportClientCmd, exportClientsCmd, exportReportsCmd, exportStatsCmd)

	exportClientsCmd.Flags().StringVar(&exportClientsFormat, "format", "pdf", "Output format: pdf, xlsx, csv")
	exportReportsCmd.Flags().StringVar(&exportReportsFormat, "format", "xlsx", "Output format: xlsx, csv")
}

func runExportClient(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		client, err := c.store.GetClient(ctx, id)
		if err != nil {
			return err
		}

		fields, err := c.store.ListClientReportFields(ctx, id)
		if err != nil {
			return err
		}

		path, err := c.docs.ClientPDF(*client, fields)
		if err != nil {
			return err
		}

		c.saved(path)

		return nil
	})
}

func runExportClients(cmd *cobra.Command, _ []string) error {
	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		var write func([]model.Client) (string, error)

		switch exportClientsFormat {
		case "pdf":
			write = c.docs.ClientsPDF
		case "xlsx":
			write = c.docs.ClientsXLSX
		case "csv":
			write = c.docs.ClientsCSV
		default:
			return fmt.Errorf("unsupported format %q (want pdf, xlsx or csv)", exportClientsFormat)
		}

		clients, err := c.store.ListClients(ctx)
		if err != nil {
			return err
		}

		path, err := write(clients)
		if err != nil {
			return err
		}

		c.saved(path)

		return nil
	})
}

func runExportReports(cmd *cobra.Command, _ []string) error {
	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		var write func([]model.Report) (string, error)

		switch exportReportsFormat {
		case "xlsx":
			write = c.docs.ReportsXLSX
		case "csv":
			write = c.docs.ReportsCSV
		default:
			return fmt.Errorf("unsupported format %q (want xlsx or csv)", exportReportsFormat)
		}

		reports, err := c.store.ListAllReports(ctx)
		if err != nil {
			return err
		}

		path, err := write(reports)
		if err != nil {
			return err
		}

		c.saved(path)

		return nil
	})
}

func runExportStats(cmd *cobra.Command, _ []string) error {
	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		cs, err := c.store.ClientStats(ctx)
		if err != nil {
			return err
		}

		rs, err := c.store.ReportStats(ctx)
		if err != nil {
			return err
		}

		path, err := c.docs.StatisticsPDF(cs, rs)
		if err != nil {
			return err
		}

		c.saved(path)

		return nil
	})
}

func (c *call) saved(path string) {
	c.log.Info("export written", "path", path, "user", c.user.Username)
	printSuccess(c.out, "Saved %s", path)
}
