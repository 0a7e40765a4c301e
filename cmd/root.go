package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/inovacc/clientrec/internal/application"
	"github.com/inovacc/clientrec/internal/shell"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
	outputDir  string
	localeFlag string
	logFormat  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Keep client records, reports and exports",
	Long: `Clientrec keeps a local register of clients and the reports filed for them,
and writes them out as PDF, Excel and CSV documents.

Run without a command to open the interactive menus. On first run you are
asked to create the administrator account.

Examples:
  clientrec                                  # Interactive menus
  clientrec client list -u admin             # List clients
  clientrec export clients --format xlsx -u admin
  clientrec config show`,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default is config.ini in the application directory)")
	pf.StringVar(&dbPath, "db", "", "SQLite database file")
	pf.StringVar(&outputDir, "output", "", "Directory for exported documents")
	pf.StringVar(&localeFlag, "locale", "", "Language of document headers (en, es)")
	pf.StringVar(&logFormat, "log-format", "", "Log format (text, json)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")
}

func runShell(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(cmd.Context(), logToFile)
	if err != nil {
		return err
	}
	defer e.Close()

	sh := shell.New(shell.Deps{
		Records:   e.store,
		Accounts:  e.auth,
		Documents: e.docs,
		Out:       cmd.OutOrStdout(),
		Logger:    e.log,
		Info:      e.info(),
	})

	if err := sh.Run(cmd.Context()); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}

		return err
	}

	return nil
}
