package cmd

import (
	"fmt"
	"runtime"

	"github.com/inovacc/clientrec/internal/application"
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		if versionShort {
			_, _ = fmt.Fprintln(out, application.Version)
			return
		}

		printInfoBox(out, application.AppTitle, [][2]string{
			{"Version", application.Version},
			{"Go", runtime.Version()},
			{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}
