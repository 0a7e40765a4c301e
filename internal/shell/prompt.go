package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// Prompter reads single line answers from the operator.
type Prompter interface {
	Prompt(label string) (string, error)
	Password(label string) (string, error)
	Confirm(question string) (bool, error)
}

// LinePrompter reads answers line by line. Passwords are read without echo
// when stdin is a terminal.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// NewLinePrompter returns a prompter on in/out. fd is the terminal used for
// hidden password entry; pass -1 to read passwords from in.
func NewLinePrompter(in io.Reader, out io.Writer, fd int) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out, fd: fd}
}

// NewStdPrompter returns a prompter on the process's standard streams.
func NewStdPrompter() *LinePrompter {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fd = -1
	}

	return NewLinePrompter(os.Stdin, os.Stdout, fd)
}

// Prompt prints label and returns the trimmed line. If EOF occurs after some
// input was read, the partial line is returned.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label+": "); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}

		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Password prompts without echo.
func (p *LinePrompter) Password(label string) (string, error) {
	if p.fd < 0 {
		return p.Prompt(label)
	}

	if _, err := fmt.Fprint(p.out, label+": "); err != nil {
		return "", err
	}

	pw, err := readPassword(p.fd)
	_, _ = fmt.Fprintln(p.out)

	if err != nil {
		return "", err
	}

	return string(pw), nil
}

// Confirm asks a yes/no question. y, yes, s and si confirm.
func (p *LinePrompter) Confirm(question string) (bool, error) {
	answer, err := p.Prompt(question + " [y/N]")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	default:
		return false, nil
	}
}
