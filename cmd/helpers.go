package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/inovacc/clientrec/internal/auth"
	"github.com/inovacc/clientrec/internal/cli"
	"github.com/inovacc/clientrec/internal/model"
	"github.com/inovacc/clientrec/internal/shell"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	userFlag     string
	passwordFlag string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&userFlag, "user", "u", "", "Username for commands that touch records")
	pf.StringVar(&passwordFlag, "password", "", "Password (or set "+auth.PasswordEnv+")")
}

// call is one authenticated command invocation.
type call struct {
	*env
	user     *model.UserSummary
	password string
	prompt   shell.Prompter
	out      io.Writer
}

// runAuthenticated opens the records, signs in as --user and hands over to fn.
func runAuthenticated(cmd *cobra.Command, fn func(ctx context.Context, c *call) error) error {
	e, err := openEnv(cmd.Context(), logToStderr)
	if err != nil {
		return err
	}
	defer e.Close()

	p := prompterFor(cmd)

	user, password, err := authenticate(cmd.Context(), e, p)
	if err != nil {
		return err
	}

	return fn(cmd.Context(), &call{env: e, user: user, password: password, prompt: p, out: cmd.OutOrStdout()})
}

// authenticate resolves the password from --password, the environment or a
// prompt, in that order, and signs in with it.
func authenticate(ctx context.Context, e *env, p shell.Prompter) (*model.UserSummary, string, error) {
	if userFlag == "" {
		return nil, "", errors.New("--user is required")
	}

	res, err := auth.NewResolver().
		WithFlagValue(passwordFlag).
		WithEnv(auth.PasswordEnv).
		WithPrompt(func() (string, error) {
			return askPassword(p, "Password for "+userFlag)
		}).
		Resolve()
	if err != nil {
		return nil, "", err
	}

	user, err := e.auth.Authenticate(ctx, userFlag, res.Password)
	if err != nil {
		e.log.Warn("authentication failed", "user", userFlag, "source", string(res.Source))
		return nil, "", err
	}

	e.log.Debug("authenticated", "user", user.Username, "source", string(res.Source))

	return user, res.Password, nil
}

// askPassword treats end of input as no answer.
func askPassword(p shell.Prompter, label string) (string, error) {
	pw, err := p.Password(label)
	if errors.Is(err, io.EOF) {
		return "", nil
	}

	return pw, err
}

// askNewPassword returns value when set, otherwise prompts twice.
func askNewPassword(p shell.Prompter, value string) (string, error) {
	if value != "" {
		return value, nil
	}

	pw, err := askPassword(p, "New password")
	if err != nil {
		return "", err
	}

	if pw == "" {
		return "", fmt.Errorf("new password is empty: %w", auth.ErrInvalidCredentials)
	}

	confirmation, err := askPassword(p, "Confirm new password")
	if err != nil {
		return "", err
	}

	if err := auth.ConfirmPassword(pw, confirmation); err != nil {
		return "", err
	}

	return pw, nil
}

// prompterFor reads answers from the command's input. Passwords are hidden
// when that input is a terminal.
func prompterFor(cmd *cobra.Command) shell.Prompter {
	in := cmd.InOrStdin()

	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}

	return shell.NewLinePrompter(in, cmd.ErrOrStderr(), fd)
}

// promptConfirm asks the user for confirmation and returns true if they confirm
func promptConfirm(p shell.Prompter, question string) bool {
	ok, err := p.Confirm(question)

	return err == nil && ok
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}

	return id, nil
}

func printSuccess(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, cli.Success(format, args...))
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// centerString centers a string in a field of given width
func centerString(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	padding := (width - n) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-n-padding, "")
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

// printInfoBox prints a framed box with a title and label/value rows
func printInfoBox(w io.Writer, title string, rows [][2]string) {
	inner := boxWidth - 2

	_, _ = fmt.Fprintln(w, "╔"+strings.Repeat("═", inner)+"╗")
	_, _ = fmt.Fprintf(w, "║%s║\n", centerString(title, inner))
	_, _ = fmt.Fprintln(w, "╠"+strings.Repeat("═", inner)+"╣")

	for _, r := range rows {
		content := truncateString(fmt.Sprintf("  %s: %s", r[0], r[1]), inner)
		_, _ = fmt.Fprintf(w, "║%s%*s║\n", content, inner-utf8.RuneCountInString(content), "")
	}

	_, _ = fmt.Fprintln(w, "╚"+strings.Repeat("═", inner)+"╝")
}
