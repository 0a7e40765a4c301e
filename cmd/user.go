package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/inovacc/clientrec/internal/auth"
	"github.com/spf13/cobra"
)

var (
	userAddAdmin    bool
	userNewPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage login accounts",
	Long: `Manage the accounts that may open the records.

Available Commands:
  add          Create an account (administrators only, or anyone on first run)
  passwd       Change your own password

Examples:
  clientrec user add maria -u admin
  clientrec user add boss --admin -u admin
  clientrec user passwd -u maria`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Create an account",
	Long: `Create an account. When no account exists yet the new account becomes
the administrator and no sign-in is needed; otherwise sign in as an
administrator with --user.`,
	Args: cobra.ExactArgs(1),
	RunE: runUserAdd,
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change your own password",
	Args:  cobra.NoArgs,
	RunE:  runUserPasswd,
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userAddCmd, userPasswdCmd)

	userAddCmd.Flags().BoolVar(&userAddAdmin, "admin", false, "Grant administrator rights")

	for _, c := range []*cobra.Command{userAddCmd, userPasswdCmd} {
		c.Flags().StringVar(&userNewPassword, "new-password", "", "Password for the account (prompted when empty)")
	}
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	username := args[0]

	e, err := openEnv(ctx, logToStderr)
	if err != nil {
		return err
	}
	defer e.Close()

	p := prompterFor(cmd)
	out := cmd.OutOrStdout()

	exists, err := e.auth.UserExists(ctx)
	if err != nil {
		return err
	}

	isAdmin := userAddAdmin

	if exists {
		admin, _, err := authenticate(ctx, e, p)
		if err != nil {
			return err
		}

		if !admin.IsAdmin {
			return errors.New("only administrators can add users")
		}
	} else {
		isAdmin = true
		_, _ = fmt.Fprintln(out, "No accounts yet; creating the administrator.")
	}

	password, err := askNewPassword(p, userNewPassword)
	if err != nil {
		return err
	}

	outcome, err := e.auth.CreateUser(ctx, username, password, isAdmin)
	if err != nil {
		return err
	}

	if outcome == auth.OutcomeConflict {
		return fmt.Errorf("username %q is already taken", username)
	}

	printSuccess(out, "User %q created", username)

	return nil
}

func runUserPasswd(cmd *cobra.Command, _ []string) error {
	return runAuthenticated(cmd, func(ctx context.Context, c *call) error {
		next, err := askNewPassword(c.prompt, userNewPassword)
		if err != nil {
			return err
		}

		ok, err := c.auth.ChangePassword(ctx, c.user.ID, c.password, next)
		if err != nil {
			return err
		}

		if !ok {
			return auth.ErrInvalidCredentials
		}

		c.log.Info("password changed", "user", c.user.Username)
		printSuccess(c.out, "Password changed")

		return nil
	})
}
