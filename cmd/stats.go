package cmd

import (
	"context"

	"github.com/inovacc/clientrec/internal/encoding"
	"github.com/inovacc/clientrec/internal/model"
	"github.com/inovacc/clientrec/internal/shell"
	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show client and report statistics",
	Long: `Show totals and groupings of the records:

  - clients per country and the ten busiest cities
  - reports per status and per type

Examples:
  clientrec stats -u admin
  clientrec stats --json -u admin`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

func runStats(cmd *cobra.Command, _ []string) error {
	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		cs, err := c.store.ClientStats(ctx)
		if err != nil {
			return err
		}

		rs, err := c.store.ReportStats(ctx)
		if err != nil {
			return err
		}

		if statsJSON {
			return encoding.WriteJSON(c.out, struct {
				Clients model.ClientStats `json:"clients"`
				Reports model.ReportStats `json:"reports"`
			}{cs, rs})
		}

		shell.PrintStats(c.out, cs, rs)

		return nil
	})
}
