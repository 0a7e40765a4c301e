package cmd

import (
	"fmt"

	"github.com/inovacc/clientrec/internal/config"
	"github.com/inovacc/clientrec/internal/encoding"
	"github.com/spf13/cobra"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
	Long: `Show or create the configuration file.

Settings are resolved from built-in defaults, then the config file, then
the --db, --output, --locale, --log-format and --verbose flags.

Examples:
  clientrec config show
  clientrec config init --locale es`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing file")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	file := path
	if !encoding.FileExists(path) {
		file += " (not created)"
	}

	printInfoBox(cmd.OutOrStdout(), "Configuration", [][2]string{
		{"Config file", file},
		{"Database", cfg.DatabasePath},
		{"Export directory", cfg.OutputDir},
		{"Locale", cfg.Locale},
		{"Log level", cfg.LogLevel},
		{"Log format", cfg.LogFormat},
		{"Log file", cfg.LogFile},
	})

	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	if encoding.FileExists(path) && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Configuration written to %s", path)

	return nil
}
