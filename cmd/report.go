package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/inovacc/clientrec/internal/model"
	"github.com/inovacc/clientrec/internal/shell"
	"github.com/inovacc/clientrec/internal/store"
	"github.com/spf13/cobra"
)

var (
	reportClientID    int64
	reportTitle       string
	reportDescription string
	reportType        string

	fieldName  string
	fieldValue string
	fieldType  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Manage client reports",
	Long: `Manage the reports filed for clients.

Available Commands:
  add          File a report for a client
  list         List all reports, or those of one client
  status       Set the status of a report
  field        Attach a named value to a report
  fields       Show the values attached to a report

Examples:
  clientrec report add --client 1 --title "Site visit" -u admin
  clientrec report list --client 1 -u admin
  clientrec report status 4 completed -u admin
  clientrec report field 4 --name budget --value 1200 --type number -u admin`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var reportAddCmd = &cobra.Command{
	Use:   "add",
	Short: "File a report for a client",
	Args:  cobra.NoArgs,
	RunE:  runReportAdd,
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all reports, or those of one client",
	Args:  cobra.NoArgs,
	RunE:  runReportList,
}

var reportStatusCmd = &cobra.Command{
	Use:       "status <id> <status>",
	Short:     "Set the status of a report",
	Long:      "Set the status of a report. Known statuses: " + strings.Join(model.ReportStatuses, ", ") + ".",
	Args:      cobra.ExactArgs(2),
	ValidArgs: model.ReportStatuses,
	RunE:      runReportStatus,
}

var reportFieldCmd = &cobra.Command{
	Use:   "field <report-id>",
	Short: "Attach a named value to a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportField,
}

var reportFieldsCmd = &cobra.Command{
	Use:   "fields <report-id>",
	Short: "Show the values attached to a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportFields,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportAddCmd, reportListCmd, reportStatusCmd, reportFieldCmd, reportFieldsCmd)

	reportAddCmd.Flags().Int64Var(&reportClientID, "client", 0, "Client id (required)")
	reportAddCmd.Flags().StringVar(&reportTitle, "title", "", "Report title (required)")
	reportAddCmd.Flags().StringVar(&reportDescription, "description", "", "Free text")
	reportAddCmd.Flags().StringVar(&reportType, "type", model.DefaultReportType, "Report type")
	_ = reportAddCmd.MarkFlagRequired("client")
	_ = reportAddCmd.MarkFlagRequired("title")

	reportListCmd.Flags().Int64Var(&reportClientID, "client", 0, "Only reports of this client")

	reportFieldCmd.Flags().StringVar(&fieldName, "name", "", "Field name (required)")
	reportFieldCmd.Flags().StringVar(&fieldValue, "value", "", "Field value")
	reportFieldCmd.Flags().StringVar(&fieldType, "type", model.DefaultFieldType, "Field type")
	_ = reportFieldCmd.MarkFlagRequired("name")
}

func runReportAdd(cmd *cobra.Command, _ []string) error {
	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		id, err := c.store.CreateReport(ctx, model.NewReport{
			ClientID:    reportClientID,
			Title:       reportTitle,
			Description: reportDescription,
			Type:        reportType,
		})
		if err != nil {
			return err
		}

		c.log.Info("report created", "report_id", id, "client_id", reportClientID, "user", c.user.Username)
		printSuccess(c.out, "Report created with id %d", id)

		return nil
	})
}

func runReportList(cmd *cobra.Command, _ []string) error {
	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		var (
			reports []model.Report
			err     error
		)

		if reportClientID > 0 {
			reports, err = c.store.ListReportsByClient(ctx, reportClientID)
		} else {
			reports, err = c.store.ListAllReports(ctx)
		}

		if err != nil {
			return err
		}

		shell.PrintReports(c.out, reports)

		return nil
	})
}

func runReportStatus(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	status := args[1]
	if !slices.Contains(model.ReportStatuses, status) {
		return fmt.Errorf("unknown status %q (want one of %s)", status, strings.Join(model.ReportStatuses, ", "))
	}

	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		ok, err := c.store.UpdateReportStatus(ctx, id, status)
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("report %d: %w", id, store.ErrNotFound)
		}

		c.log.Info("report status changed", "report_id", id, "status", status, "user", c.user.Username)
		printSuccess(c.out, "Report #%d is now %s", id, status)

		return nil
	})
}

func runReportField(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		if _, err := c.store.AddReportField(ctx, id, fieldName, fieldValue, fieldType); err != nil {
			return err
		}

		printSuccess(c.out, "Field %q added to report #%d", fieldName, id)

		return nil
	})
}

func runReportFields(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		if _, err := c.store.GetReport(ctx, id); err != nil {
			return err
		}

		fields, err := c.store.ListReportFields(ctx, id)
		if err != nil {
			return err
		}

		shell.PrintFields(c.out, fields)

		return nil
	})
}
